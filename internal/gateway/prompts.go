package gateway

import (
	"fmt"
	"strings"
)

func definePrompt(word, explanationLang, nativeLang string) string {
	return fmt.Sprintf(`You are a friendly lexicographer helping a language learner.

For the word or phrase '%s', produce a JSON object with these fields:
- word: the word exactly as given
- phonetic: IPA transcription
- partOfSpeech: the main part of speech, in %s
- definition: a clear, learner-friendly definition in %s
- nativeDefinition: the same definition rendered in %s
- examples: 3 short example sentences in %s, simplest first
- synonyms: up to 5 synonyms in %s (empty list if none fit)
- etymology: one or two sentences on the word's origin, in %s
- vibeTags: 3 to 5 short mood or register tags (e.g. "formal", "playful"), in %s`,
		word,
		explanationLang, explanationLang, nativeLang,
		explanationLang, explanationLang, explanationLang, explanationLang)
}

func meaningsPrompt(word, explanationLang string) string {
	return fmt.Sprintf(`List up to 3 lesser-known meanings, idioms or slang uses of '%s'
that a learner would not find in a basic dictionary entry. Answer in %s as a JSON
array of objects with fields "context" (where/how the usage appears) and
"definition" (what it means there). Return an empty array if there is nothing
genuinely interesting to add.`, word, explanationLang)
}

func imagePrompt(word, styleContext string) string {
	prompt := fmt.Sprintf("A single clear illustration of the concept '%s'. "+
		"Simple composition, no text or letters anywhere in the image, "+
		"suitable as a vocabulary flashcard picture.", word)
	if styleContext != "" {
		prompt += fmt.Sprintf(" Style and mood: %s.", styleContext)
	}
	return prompt
}

func storyPrompt(words []string, explanationLang string) string {
	return fmt.Sprintf(`Write a short, coherent practice story in %s (about 120 words)
that naturally uses as many of these vocabulary words as possible: %s.

Wrap every occurrence of a vocabulary word from the list in double curly braces,
like {{word}}, and leave all other text plain. Respond as a JSON object with
fields "title", "content" (the story text with the markers) and "wordsUsed"
(the list of vocabulary words you managed to use).`,
		explanationLang, strings.Join(words, ", "))
}

func chatSystemPrompt(word, explanationLang, nativeLang string) string {
	return fmt.Sprintf(`You are a patient language tutor. The learner is currently
studying the word '%s'. Answer their questions about this word in %s, keeping
answers short and concrete. If the learner seems confused, you may add a brief
clarification in %s.`, word, explanationLang, nativeLang)
}

package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"google.golang.org/genai"
)

// WordDefinition is the structured definition the service returns for one
// word. It is immutable once set and replaced wholesale on the next search.
type WordDefinition struct {
	Word             string   `json:"word" validate:"required"`
	Phonetic         string   `json:"phonetic" validate:"required"`
	PartOfSpeech     string   `json:"partOfSpeech" validate:"required"`
	Definition       string   `json:"definition" validate:"required"`
	NativeDefinition string   `json:"nativeDefinition" validate:"required"`
	Examples         []string `json:"examples" validate:"required,min=1,dive,required"`
	Synonyms         []string `json:"synonyms"`
	Etymology        string   `json:"etymology" validate:"required"`
	VibeTags         []string `json:"vibeTags"`
}

// AdditionalMeaning is one supplementary idiom/trivia/slang fact beyond the
// core definition.
type AdditionalMeaning struct {
	Context    string `json:"context" validate:"required"`
	Definition string `json:"definition" validate:"required"`
}

// StoryQuiz is a generated practice passage. Content embeds saved words in
// {{word}} markers that the story renderer turns into click-to-reveal blanks.
type StoryQuiz struct {
	Title     string   `json:"title" validate:"required"`
	Content   string   `json:"content" validate:"required"`
	WordsUsed []string `json:"wordsUsed"`
}

var validate = validator.New()

// parseDefinition decodes and strictly validates a definition payload.
// Anything that does not carry all required fields is rejected here so that
// loosely-typed service output never propagates inward.
func parseDefinition(raw string) (*WordDefinition, error) {
	var def WordDefinition
	if err := json.Unmarshal([]byte(raw), &def); err != nil {
		return nil, fmt.Errorf("malformed definition payload: %w", err)
	}
	if err := validate.Struct(&def); err != nil {
		return nil, fmt.Errorf("incomplete definition payload: %w", err)
	}
	return &def, nil
}

// parseMeanings decodes an additional-meanings payload. Unusable entries are
// dropped rather than failing the whole batch; at most maxExtraMeanings
// entries are kept.
func parseMeanings(raw string) []AdditionalMeaning {
	var meanings []AdditionalMeaning
	if err := json.Unmarshal([]byte(raw), &meanings); err != nil {
		return nil
	}
	kept := make([]AdditionalMeaning, 0, maxExtraMeanings)
	for _, m := range meanings {
		if validate.Struct(&m) != nil {
			continue
		}
		kept = append(kept, m)
		if len(kept) == maxExtraMeanings {
			break
		}
	}
	return kept
}

// parseStory decodes and validates a story payload.
func parseStory(raw string) (*StoryQuiz, error) {
	var story StoryQuiz
	if err := json.Unmarshal([]byte(raw), &story); err != nil {
		return nil, fmt.Errorf("malformed story payload: %w", err)
	}
	if err := validate.Struct(&story); err != nil {
		return nil, fmt.Errorf("incomplete story payload: %w", err)
	}
	return &story, nil
}

// definitionSchema constrains the definition response so the service always
// returns every field the application renders.
func definitionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"word":             {Type: genai.TypeString},
			"phonetic":         {Type: genai.TypeString},
			"partOfSpeech":     {Type: genai.TypeString},
			"definition":       {Type: genai.TypeString},
			"nativeDefinition": {Type: genai.TypeString},
			"examples":         {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"synonyms":         {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"etymology":        {Type: genai.TypeString},
			"vibeTags":         {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{
			"word", "phonetic", "partOfSpeech", "definition",
			"nativeDefinition", "examples", "synonyms", "etymology", "vibeTags",
		},
	}
}

func meaningsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"context":    {Type: genai.TypeString},
				"definition": {Type: genai.TypeString},
			},
			Required: []string{"context", "definition"},
		},
	}
}

func storySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":     {Type: genai.TypeString},
			"content":   {Type: genai.TypeString},
			"wordsUsed": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"title", "content", "wordsUsed"},
	}
}

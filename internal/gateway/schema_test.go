package gateway

import "testing"

const validDefinitionJSON = `{
	"word": "gato",
	"phonetic": "/ˈɡato/",
	"partOfSpeech": "noun",
	"definition": "A small domesticated feline.",
	"nativeDefinition": "Eine kleine domestizierte Katze.",
	"examples": ["El gato duerme.", "Mi gato es negro."],
	"synonyms": ["minino"],
	"etymology": "From Late Latin cattus.",
	"vibeTags": ["cozy", "everyday"]
}`

func TestParseDefinition(t *testing.T) {
	def, err := parseDefinition(validDefinitionJSON)
	if err != nil {
		t.Fatalf("parseDefinition() error = %v", err)
	}
	if def.Word != "gato" {
		t.Errorf("word = %q, want gato", def.Word)
	}
	if len(def.Examples) != 2 {
		t.Errorf("examples = %d, want 2", len(def.Examples))
	}
	if def.NativeDefinition == "" {
		t.Error("native definition missing")
	}
}

func TestParseDefinitionRejectsIncomplete(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "not JSON",
			raw:  "the cat sat on the mat",
		},
		{
			name: "empty object",
			raw:  "{}",
		},
		{
			name: "missing phonetic",
			raw: `{"word":"gato","partOfSpeech":"noun","definition":"a cat",
				"nativeDefinition":"Katze","examples":["x"],"synonyms":[],
				"etymology":"latin","vibeTags":[]}`,
		},
		{
			name: "empty examples",
			raw: `{"word":"gato","phonetic":"/x/","partOfSpeech":"noun",
				"definition":"a cat","nativeDefinition":"Katze","examples":[],
				"synonyms":[],"etymology":"latin","vibeTags":[]}`,
		},
		{
			name: "empty string definition",
			raw: `{"word":"gato","phonetic":"/x/","partOfSpeech":"noun",
				"definition":"","nativeDefinition":"Katze","examples":["x"],
				"synonyms":[],"etymology":"latin","vibeTags":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseDefinition(tt.raw); err == nil {
				t.Error("parseDefinition() should reject payload")
			}
		})
	}
}

func TestParseDefinitionAllowsEmptySynonymsAndTags(t *testing.T) {
	raw := `{"word":"gato","phonetic":"/x/","partOfSpeech":"noun",
		"definition":"a cat","nativeDefinition":"Katze","examples":["x"],
		"synonyms":[],"etymology":"latin","vibeTags":[]}`
	if _, err := parseDefinition(raw); err != nil {
		t.Errorf("parseDefinition() error = %v, empty synonyms/tags should be fine", err)
	}
}

func TestParseMeanings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{
			name: "two valid entries",
			raw:  `[{"context":"slang","definition":"a jack"},{"context":"idiom","definition":"curiosity"}]`,
			want: 2,
		},
		{
			name: "empty array",
			raw:  `[]`,
			want: 0,
		},
		{
			name: "malformed payload yields nothing",
			raw:  `not json`,
			want: 0,
		},
		{
			name: "invalid entries dropped",
			raw:  `[{"context":"","definition":""},{"context":"slang","definition":"a jack"}]`,
			want: 1,
		},
		{
			name: "capped at three",
			raw: `[{"context":"a","definition":"1"},{"context":"b","definition":"2"},
				{"context":"c","definition":"3"},{"context":"d","definition":"4"}]`,
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseMeanings(tt.raw); len(got) != tt.want {
				t.Errorf("parseMeanings() kept %d entries, want %d", len(got), tt.want)
			}
		})
	}
}

func TestParseStory(t *testing.T) {
	story, err := parseStory(`{"title":"A Day","content":"The {{cat}} sat.","wordsUsed":["cat"]}`)
	if err != nil {
		t.Fatalf("parseStory() error = %v", err)
	}
	if story.Title != "A Day" {
		t.Errorf("title = %q, want A Day", story.Title)
	}
	if len(story.WordsUsed) != 1 {
		t.Errorf("wordsUsed = %d, want 1", len(story.WordsUsed))
	}
}

func TestParseStoryRejectsMissingContent(t *testing.T) {
	if _, err := parseStory(`{"title":"A Day","wordsUsed":[]}`); err == nil {
		t.Error("parseStory() should reject payload without content")
	}
}

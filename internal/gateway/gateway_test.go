package gateway

import (
	"fmt"
	"strings"
	"testing"
)

func TestStoryWordSubset(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{name: "fewer than limit", count: 3, want: 3},
		{name: "exactly the limit", count: 8, want: 8},
		{name: "ten distinct words trimmed to eight", count: 10, want: 8},
		{name: "many words trimmed to eight", count: 40, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := make([]string, tt.count)
			for i := range words {
				words[i] = fmt.Sprintf("word%d", i)
			}

			subset := storyWordSubset(words)
			if len(subset) != tt.want {
				t.Fatalf("storyWordSubset() returned %d words, want %d", len(subset), tt.want)
			}

			// Every chosen word must come from the input, without duplicates.
			seen := make(map[string]bool)
			valid := make(map[string]bool, len(words))
			for _, w := range words {
				valid[w] = true
			}
			for _, w := range subset {
				if !valid[w] {
					t.Errorf("subset word %q not in input", w)
				}
				if seen[w] {
					t.Errorf("subset word %q duplicated", w)
				}
				seen[w] = true
			}
		})
	}
}

func TestStoryWordSubsetDoesNotMutateInput(t *testing.T) {
	words := make([]string, 20)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	storyWordSubset(words)
	for i, w := range words {
		if w != fmt.Sprintf("word%d", i) {
			t.Fatal("storyWordSubset() reordered its input")
		}
	}
}

func TestDefinePromptMentionsLanguages(t *testing.T) {
	prompt := definePrompt("gato", "English", "German")
	for _, want := range []string{"gato", "English", "German", "vibeTags"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("define prompt missing %q", want)
		}
	}
}

func TestStoryPromptListsWords(t *testing.T) {
	prompt := storyPrompt([]string{"cat", "mat"}, "English")
	for _, want := range []string{"cat, mat", "{{word}}", "English"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("story prompt missing %q", want)
		}
	}
}

func TestImagePromptStyleContext(t *testing.T) {
	plain := imagePrompt("gato", "")
	if strings.Contains(plain, "Style and mood") {
		t.Error("image prompt should omit style section without context")
	}
	styled := imagePrompt("gato", "cozy, playful")
	if !strings.Contains(styled, "cozy, playful") {
		t.Error("image prompt missing style context")
	}
}

func TestIsGenerationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "request failure", err: requestFailed("define", fmt.Errorf("boom")), want: true},
		{name: "empty result", err: emptyResult("define"), want: true},
		{name: "unrelated error", err: fmt.Errorf("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsGenerationError(tt.err); got != tt.want {
				t.Errorf("IsGenerationError() = %v, want %v", got, tt.want)
			}
		})
	}
}

package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"ExplanationLanguage", flags.ExplanationLanguage, "en"},
		{"NativeLanguage", flags.NativeLanguage, "en"},
		{"TextModel", flags.TextModel, "gemini-2.5-flash"},
		{"ImageModel", flags.ImageModel, "gemini-2.5-flash-image-preview"},
		{"SpeechModel", flags.SpeechModel, "gemini-2.5-flash-preview-tts"},
		{"Voice", flags.Voice, "Kore"},
		{"SpeechProvider", flags.SpeechProvider, "gemini"},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini-tts"},
		{"OpenAIVoice", flags.OpenAIVoice, "nova"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	if flags.ListVoices {
		t.Error("ListVoices should default to false")
	}
	if flags.CfgFile != "" || flags.DataDir != "" {
		t.Error("CfgFile and DataDir should default to empty")
	}
}

package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// geminiVoices is the fixed set of prebuilt voices the Gemini speech models
// accept. There is no listing endpoint for them.
var geminiVoices = []string{
	"Aoede", "Charon", "Fenrir", "Kore", "Leda", "Orus", "Puck", "Zephyr",
}

// Lister prints the speech voices and models available for the configured keys
type Lister struct {
	openAIKey string
	client    *openai.Client
}

// NewLister creates a new voice lister
func NewLister(openAIKey string) *Lister {
	return &Lister{
		openAIKey: openAIKey,
		client:    openai.NewClient(openAIKey),
	}
}

// ListVoices prints the Gemini prebuilt voices and, when an OpenAI key is
// configured, the TTS-capable models available to that key.
func (l *Lister) ListVoices() error {
	fmt.Println("Gemini prebuilt voices (use --voice):")
	for _, voice := range geminiVoices {
		fmt.Printf("  - %s\n", voice)
	}

	if l.openAIKey == "" {
		fmt.Println("\nOPENAI_API_KEY not set; skipping OpenAI TTS models.")
		return nil
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list OpenAI models: %w", err)
	}

	ttsModels := []string{}
	for _, model := range models.Models {
		if strings.Contains(model.ID, "tts") || strings.Contains(model.ID, "audio") {
			ttsModels = append(ttsModels, model.ID)
		}
	}
	sort.Strings(ttsModels)

	fmt.Println("\nOpenAI TTS models (use --openai-model with --speech-provider openai):")
	for _, model := range ttsModels {
		fmt.Printf("  - %s\n", model)
	}

	return nil
}

// GeminiVoices returns the known Gemini prebuilt voice names.
func GeminiVoices() []string {
	out := make([]string, len(geminiVoices))
	copy(out, geminiVoices)
	return out
}

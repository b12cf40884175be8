package speech

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider on the OpenAI TTS API. With the "pcm"
// response format OpenAI returns the same 24 kHz 16-bit mono stream the
// rest of the application expects.
type OpenAIProvider struct {
	client *openai.Client
	config *Config
}

// NewOpenAIProvider creates a new OpenAI TTS provider.
func NewOpenAIProvider(config *Config) (Provider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &OpenAIProvider{
		client: openai.NewClient(config.OpenAIKey),
		config: config,
	}, nil
}

// Synthesize generates pronunciation audio using OpenAI TTS.
func (p *OpenAIProvider) Synthesize(ctx context.Context, word string) ([]byte, error) {
	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(p.config.OpenAIModel),
		Input:          word,
		Voice:          openai.SpeechVoice(p.config.OpenAIVoice),
		ResponseFormat: openai.SpeechResponseFormatPcm,
		Speed:          0.9,
	}

	response, err := p.client.CreateSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	defer response.Close()

	raw, err := io.ReadAll(response)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio stream: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

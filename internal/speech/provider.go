// Package speech provides text-to-speech providers for word pronunciation.
// All providers return raw 16-bit signed mono PCM at 24 kHz, ready for the
// pcm package to wrap or decode.
package speech

import (
	"context"
	"fmt"
)

// Provider defines the interface for text-to-speech providers.
type Provider interface {
	// Synthesize generates pronunciation audio for a word and returns raw
	// PCM. A nil payload with a nil error means the provider had nothing to
	// say; callers treat that as a silent no-op.
	Synthesize(ctx context.Context, word string) ([]byte, error)

	// Name returns the provider name
	Name() string
}

// Config holds common configuration for speech providers.
type Config struct {
	Provider string // Provider name: "gemini" or "openai"

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string // "tts-1", "tts-1-hd", or "gpt-4o-mini-tts"
	OpenAIVoice string // "alloy", "nova", "shimmer", ...
}

// DefaultConfig returns default speech provider configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider:    "gemini",
		OpenAIModel: "gpt-4o-mini-tts",
		OpenAIVoice: "nova",
	}
}

// Synthesizer is the subset of the AI gateway the Gemini provider needs.
type Synthesizer interface {
	SynthesizeSpeech(ctx context.Context, word string) ([]byte, error)
}

// NewProvider creates the appropriate speech provider based on configuration.
// The gateway is used for the default Gemini provider.
func NewProvider(config *Config, gw Synthesizer) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "gemini":
		if gw == nil {
			return nil, fmt.Errorf("gateway is required for the gemini speech provider")
		}
		return &GeminiProvider{gateway: gw}, nil

	case "openai":
		return NewOpenAIProvider(config)

	default:
		return nil, fmt.Errorf("unknown speech provider: %s", config.Provider)
	}
}

// GeminiProvider synthesizes speech through the AI gateway.
type GeminiProvider struct {
	gateway Synthesizer
}

// Synthesize generates audio via the gateway.
func (p *GeminiProvider) Synthesize(ctx context.Context, word string) ([]byte, error) {
	return p.gateway.SynthesizeSpeech(ctx, word)
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

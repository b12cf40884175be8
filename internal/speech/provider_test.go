package speech

import (
	"context"
	"testing"
)

type fakeSynthesizer struct {
	payload []byte
	err     error
	words   []string
}

func (f *fakeSynthesizer) SynthesizeSpeech(_ context.Context, word string) ([]byte, error) {
	f.words = append(f.words, word)
	return f.payload, f.err
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		gateway  Synthesizer
		wantName string
		wantErr  bool
	}{
		{
			name:     "nil config defaults to gemini",
			config:   nil,
			gateway:  &fakeSynthesizer{},
			wantName: "gemini",
		},
		{
			name:     "gemini provider",
			config:   &Config{Provider: "gemini"},
			gateway:  &fakeSynthesizer{},
			wantName: "gemini",
		},
		{
			name:    "gemini without gateway",
			config:  &Config{Provider: "gemini"},
			wantErr: true,
		},
		{
			name:     "openai provider",
			config:   &Config{Provider: "openai", OpenAIKey: "test-key", OpenAIModel: "tts-1", OpenAIVoice: "nova"},
			wantName: "openai",
		},
		{
			name:    "openai without key",
			config:  &Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			config:  &Config{Provider: "espeak"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.config, tt.gateway)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && p.Name() != tt.wantName {
				t.Errorf("NewProvider() name = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}

func TestGeminiProviderDelegates(t *testing.T) {
	fake := &fakeSynthesizer{payload: []byte{1, 2, 3, 4}}
	p := &GeminiProvider{gateway: fake}

	raw, err := p.Synthesize(context.Background(), "gato")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if len(raw) != 4 {
		t.Errorf("Synthesize() returned %d bytes, want 4", len(raw))
	}
	if len(fake.words) != 1 || fake.words[0] != "gato" {
		t.Errorf("gateway called with %v, want [gato]", fake.words)
	}
}

func TestGeminiProviderSilentNoOp(t *testing.T) {
	p := &GeminiProvider{gateway: &fakeSynthesizer{}}

	raw, err := p.Synthesize(context.Background(), "gato")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if raw != nil {
		t.Errorf("Synthesize() = %v, want nil for missing audio", raw)
	}
}

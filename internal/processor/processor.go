package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/arvoss/wordlens/internal/cli"
	"codeberg.org/arvoss/wordlens/internal/collection"
	"codeberg.org/arvoss/wordlens/internal/gateway"
	"codeberg.org/arvoss/wordlens/internal/gui"
	"codeberg.org/arvoss/wordlens/internal/speech"
)

// Processor assembles the application from the resolved flags.
type Processor struct {
	flags *cli.Flags
}

// NewProcessor creates a new application bootstrapper
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{flags: flags}
}

// gatewayConfig builds the gateway configuration from flags and the
// environment. The Gemini key is required for everything the app does.
func (p *Processor) gatewayConfig() (*gateway.Config, error) {
	apiKey := cli.GetGeminiKey()
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set (or gemini.api_key in the config file)")
	}

	return &gateway.Config{
		APIKey:      apiKey,
		TextModel:   p.flags.TextModel,
		ImageModel:  p.flags.ImageModel,
		SpeechModel: p.flags.SpeechModel,
		Voice:       p.flags.Voice,
	}, nil
}

// speechProvider builds the configured text-to-speech provider, backed by
// the gateway for the default Gemini provider.
func (p *Processor) speechProvider(gw *gateway.Client) (speech.Provider, error) {
	return speech.NewProvider(&speech.Config{
		Provider:    p.flags.SpeechProvider,
		OpenAIKey:   cli.GetOpenAIKey(),
		OpenAIModel: p.flags.OpenAIModel,
		OpenAIVoice: p.flags.OpenAIVoice,
	}, gw)
}

// openStore opens the wordbook database under the data directory, creating
// the directory when needed.
func (p *Processor) openStore() (*collection.Store, error) {
	if err := os.MkdirAll(p.flags.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return collection.Open(filepath.Join(p.flags.DataDir, "wordbook.db"))
}

// RunGUIMode builds all components and runs the GUI until the window closes.
func (p *Processor) RunGUIMode() error {
	gwConfig, err := p.gatewayConfig()
	if err != nil {
		return err
	}

	gw, err := gateway.New(context.Background(), gwConfig)
	if err != nil {
		return err
	}

	synth, err := p.speechProvider(gw)
	if err != nil {
		return err
	}

	store, err := p.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	app := gui.New(&gui.Config{
		ExplanationLanguage: p.flags.ExplanationLanguage,
		NativeLanguage:      p.flags.NativeLanguage,
	}, gw, synth, store)
	app.Run()

	return nil
}

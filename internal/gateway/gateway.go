package gateway

import (
	"context"
	"encoding/base64"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"
)

const (
	// maxStoryWords bounds the prompt size and keeps generated stories
	// coherent: at most this many words are sent to the story generator.
	maxStoryWords = 8

	// maxExtraMeanings is the size of the single hidden-meanings batch
	// fetched per word.
	maxExtraMeanings = 3
)

// ChatRole values for Turn. The service expects "user" and "model".
const (
	RoleUser      = "user"
	RoleAssistant = "model"
)

// Turn is one prior exchange in a word chat. The gateway is stateless per
// call: the entire transcript is resent as context on every turn.
type Turn struct {
	Role string
	Text string
}

// Config holds gateway configuration.
type Config struct {
	APIKey      string
	TextModel   string
	ImageModel  string
	SpeechModel string
	Voice       string
}

// DefaultConfig returns the default model selection.
func DefaultConfig() *Config {
	return &Config{
		TextModel:   "gemini-2.5-flash",
		ImageModel:  "gemini-2.5-flash-image-preview",
		SpeechModel: "gemini-2.5-flash-preview-tts",
		Voice:       "Kore",
	}
}

// Client is the single boundary to the generative-AI service.
type Client struct {
	genai   *genai.Client
	breaker *gobreaker.CircuitBreaker
	config  *Config
}

// New creates a gateway client. The API key is required.
func New(ctx context.Context, config *Config) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     "gemini",
		Interval: time.Minute,
		Timeout:  30 * time.Second,
	})

	return &Client{genai: gc, breaker: breaker, config: config}, nil
}

// generate runs one GenerateContent call through the circuit breaker.
func (c *Client) generate(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.genai.Models.GenerateContent(ctx, model, contents, cfg)
	})
	if err != nil {
		return nil, err
	}
	return result.(*genai.GenerateContentResponse), nil
}

// Define fetches the structured definition for a word. The absence of a
// usable payload is an error: the caller must treat it as "search failed",
// never as an empty definition.
func (c *Client) Define(ctx context.Context, word, explanationLang, nativeLang string) (*WordDefinition, error) {
	const op = "define"

	resp, err := c.generate(ctx, c.config.TextModel,
		genai.Text(definePrompt(word, explanationLang, nativeLang)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   definitionSchema(),
			Temperature:      genai.Ptr(float32(0.4)),
		})
	if err != nil {
		return nil, requestFailed(op, err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, emptyResult(op)
	}
	def, err := parseDefinition(raw)
	if err != nil {
		return nil, requestFailed(op, err)
	}
	return def, nil
}

// ExtraMeanings fetches up to three lesser-known meanings for a word. An
// unusable payload yields an empty list, not an error.
func (c *Client) ExtraMeanings(ctx context.Context, word, explanationLang string) ([]AdditionalMeaning, error) {
	resp, err := c.generate(ctx, c.config.TextModel,
		genai.Text(meaningsPrompt(word, explanationLang)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   meaningsSchema(),
			Temperature:      genai.Ptr(float32(0.7)),
		})
	if err != nil {
		return nil, requestFailed("extra meanings", err)
	}
	return parseMeanings(resp.Text()), nil
}

// GenerateImage generates an illustrative image for a word and returns it as
// a data-URI reference. Image generation is best-effort: every failure is
// swallowed and reported as "no image" so it can never block the definition
// from displaying.
func (c *Client) GenerateImage(ctx context.Context, word, styleContext string) string {
	resp, err := c.generate(ctx, c.config.ImageModel,
		genai.Text(imagePrompt(word, styleContext)),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: image generation for '%s' failed: %v\n", word, err)
		return ""
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mime := part.InlineData.MIMEType
				if mime == "" {
					mime = "image/png"
				}
				return fmt.Sprintf("data:%s;base64,%s",
					mime, base64.StdEncoding.EncodeToString(part.InlineData.Data))
			}
		}
	}
	return ""
}

// ComposeStory generates a fill-in-the-blank practice story from the given
// words. When more than maxStoryWords are supplied, a random subset is
// chosen before the request is issued.
func (c *Client) ComposeStory(ctx context.Context, words []string, explanationLang string) (*StoryQuiz, error) {
	const op = "compose story"

	if len(words) == 0 {
		return nil, emptyResult(op)
	}
	subset := storyWordSubset(words)

	resp, err := c.generate(ctx, c.config.TextModel,
		genai.Text(storyPrompt(subset, explanationLang)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   storySchema(),
			Temperature:      genai.Ptr(float32(0.9)),
		})
	if err != nil {
		return nil, requestFailed(op, err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, emptyResult(op)
	}
	story, err := parseStory(raw)
	if err != nil {
		return nil, requestFailed(op, err)
	}
	return story, nil
}

// ChatTurn answers one learner question about the current word. The full
// prior transcript is passed back in as context; no conversation handle is
// kept between calls.
func (c *Client) ChatTurn(ctx context.Context, priorTurns []Turn, newMessage, word, explanationLang, nativeLang string) (string, error) {
	const op = "chat turn"

	contents := make([]*genai.Content, 0, len(priorTurns)+1)
	for _, turn := range priorTurns {
		role := genai.Role(genai.RoleUser)
		if turn.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(newMessage, genai.RoleUser))

	resp, err := c.generate(ctx, c.config.TextModel, contents,
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(
				chatSystemPrompt(word, explanationLang, nativeLang), genai.RoleUser),
			Temperature: genai.Ptr(float32(0.6)),
		})
	if err != nil {
		return "", requestFailed(op, err)
	}

	text := resp.Text()
	if text == "" {
		return "", emptyResult(op)
	}
	return text, nil
}

// SynthesizeSpeech generates pronunciation audio for a word and returns raw
// 16-bit mono PCM at 24 kHz. A missing audio payload returns (nil, nil): the
// caller treats it as a silent no-op.
func (c *Client) SynthesizeSpeech(ctx context.Context, word string) ([]byte, error) {
	resp, err := c.generate(ctx, c.config.SpeechModel, genai.Text(word),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
						VoiceName: c.config.Voice,
					},
				},
			},
		})
	if err != nil {
		return nil, requestFailed("synthesize speech", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}
	return nil, nil
}

// storyWordSubset returns the words to send to the story generator: all of
// them when at most maxStoryWords are given, otherwise a random subset of
// exactly maxStoryWords.
func storyWordSubset(words []string) []string {
	if len(words) <= maxStoryWords {
		return words
	}
	shuffled := make([]string, len(words))
	copy(shuffled, words)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:maxStoryWords]
}

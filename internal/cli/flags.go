package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile             string
	DataDir             string
	ExplanationLanguage string
	NativeLanguage      string
	ListVoices          bool

	// Gemini flags
	TextModel   string
	ImageModel  string
	SpeechModel string
	Voice       string

	// Speech provider flags
	SpeechProvider string
	OpenAIModel    string
	OpenAIVoice    string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		ExplanationLanguage: "en",
		NativeLanguage:      "en",
		TextModel:           "gemini-2.5-flash",
		ImageModel:          "gemini-2.5-flash-image-preview",
		SpeechModel:         "gemini-2.5-flash-preview-tts",
		Voice:               "Kore",
		SpeechProvider:      "gemini",
		OpenAIModel:         "gpt-4o-mini-tts",
		OpenAIVoice:         "nova",
	}
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/arvoss/wordlens/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordlens",
		Short: "AI Vocabulary Explorer",
		Long: `wordlens is a vocabulary-learning desktop application.

Enter a word to get a structured definition, an illustrative image,
pronunciation audio and hidden meanings, chat with a tutor about it,
and collect words into a wordbook that generates fill-in-the-blank
practice stories.

Examples:
  wordlens                         # Launch the application
  wordlens --explanation-lang es   # Explain words in Spanish
  wordlens --list-voices           # List available speech voices`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Keep all local state under the XDG state directory like other desktop tools
	home, _ := os.UserHomeDir()
	defaultDataDir := filepath.Join(home, ".local", "state", "wordlens")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wordlens.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.DataDir, "data-dir", "d", defaultDataDir, "Directory for the wordbook database")
	cmd.Flags().StringVar(&flags.ExplanationLanguage, "explanation-lang", flags.ExplanationLanguage, "Language code definitions are rendered in")
	cmd.Flags().StringVar(&flags.NativeLanguage, "native-lang", flags.NativeLanguage, "The learner's own language code")
	cmd.Flags().BoolVar(&flags.ListVoices, "list-voices", false, "List available speech voices and models for the configured keys")

	// Gemini flags
	cmd.Flags().StringVar(&flags.TextModel, "text-model", flags.TextModel, "Gemini model for definitions, stories and chat")
	cmd.Flags().StringVar(&flags.ImageModel, "image-model", flags.ImageModel, "Gemini model for image generation")
	cmd.Flags().StringVar(&flags.SpeechModel, "speech-model", flags.SpeechModel, "Gemini model for speech synthesis")
	cmd.Flags().StringVar(&flags.Voice, "voice", flags.Voice, "Gemini prebuilt voice name")

	// Speech provider flags
	cmd.Flags().StringVar(&flags.SpeechProvider, "speech-provider", flags.SpeechProvider, "Speech provider: gemini or openai")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", flags.OpenAIVoice, "OpenAI voice: alloy, ash, coral, echo, nova, sage, shimmer, ...")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("data.directory", cmd.Flags().Lookup("data-dir"))
	viper.BindPFlag("language.explanation", cmd.Flags().Lookup("explanation-lang"))
	viper.BindPFlag("language.native", cmd.Flags().Lookup("native-lang"))
	viper.BindPFlag("gemini.text_model", cmd.Flags().Lookup("text-model"))
	viper.BindPFlag("gemini.image_model", cmd.Flags().Lookup("image-model"))
	viper.BindPFlag("gemini.speech_model", cmd.Flags().Lookup("speech-model"))
	viper.BindPFlag("gemini.voice", cmd.Flags().Lookup("voice"))
	viper.BindPFlag("speech.provider", cmd.Flags().Lookup("speech-provider"))
	viper.BindPFlag("speech.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("speech.openai_voice", cmd.Flags().Lookup("openai-voice"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".wordlens" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordlens")
	}

	// Environment variables
	viper.SetEnvPrefix("WORDLENS")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	// First check environment variable
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("gemini.api_key")
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("speech.openai_key")
}

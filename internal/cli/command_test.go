package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "wordlens" {
		t.Errorf("Expected Use to be 'wordlens', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "AI Vocabulary Explorer") {
		t.Errorf("Expected Short description to contain 'AI Vocabulary Explorer'")
	}

	// Test that flags are set up
	flagTests := []struct {
		name     string
		expected bool
	}{
		{"config", true},
		{"data-dir", true},
		{"explanation-lang", true},
		{"native-lang", true},
		{"list-voices", true},
		{"text-model", true},
		{"image-model", true},
		{"speech-model", true},
		{"voice", true},
		{"speech-provider", true},
		{"openai-model", true},
		{"openai-voice", true},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.name == "config" {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil && tt.expected {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	// Test default values
	dataDirFlag := cmd.Flags().Lookup("data-dir")
	if dataDirFlag == nil {
		t.Fatal("data-dir flag not found")
	}

	home, _ := os.UserHomeDir()
	expectedDefault := filepath.Join(home, ".local", "state", "wordlens")
	if dataDirFlag.DefValue != expectedDefault {
		t.Errorf("Expected default data dir to be %s, got %s", expectedDefault, dataDirFlag.DefValue)
	}

	langFlag := cmd.Flags().Lookup("explanation-lang")
	if langFlag == nil {
		t.Fatal("explanation-lang flag not found")
	}
	if langFlag.DefValue != "en" {
		t.Errorf("Expected default explanation language to be en, got %s", langFlag.DefValue)
	}
}

func TestGetGeminiKeyFromEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	if got := GetGeminiKey(); got != "env-key" {
		t.Errorf("GetGeminiKey() = %q, want env-key", got)
	}
}

func TestGetOpenAIKeyFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")
	if got := GetOpenAIKey(); got != "env-key" {
		t.Errorf("GetOpenAIKey() = %q, want env-key", got)
	}
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/arvoss/wordlens/internal/cli"
	"codeberg.org/arvoss/wordlens/internal/models"
	"codeberg.org/arvoss/wordlens/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(flags *cli.Flags) error {
	// Handle --list-voices flag
	if flags.ListVoices {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListVoices()
	}

	// No subcommands: the application is the GUI
	proc := processor.NewProcessor(flags)
	return proc.RunGUIMode()
}

package cmd

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriChat/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "rorichat",
	Short: "Terminal chat client for a local Ollama server",
	Long:  `RoriChat is a terminal chat client for a local Ollama-compatible server with multiple conversations, syntax-highlighted code blocks and automatic chat titles.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Bubble Tea owns the terminal, so debug logs go to a file
		if os.Getenv("RORICHAT_DEBUG") != "" {
			f, err := tea.LogToFile("rorichat-debug.log", "debug")
			if err != nil {
				log.Fatalf("Failed to open debug log: %v", err)
			}
			defer f.Close()
		}

		application, err := app.NewApplication()
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

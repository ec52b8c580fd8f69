package cmd

import (
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriChat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or edit the client configuration",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Server URL: %s\n", cfg.ServerURL)
		model := cfg.Model
		if model == "" {
			model = "(first available)"
		}
		fmt.Printf("Default model: %s\n", model)
		fmt.Printf("Highlight theme: %s\n", cfg.Theme)
	},
}

var editConfigCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the configuration interactively",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		serverPrompt := promptui.Prompt{
			Label:   "Server URL",
			Default: cfg.ServerURL,
		}
		cfg.ServerURL, err = serverPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		modelPrompt := promptui.Prompt{
			Label:   "Default model (empty for first available)",
			Default: cfg.Model,
		}
		cfg.Model, err = modelPrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		themePrompt := promptui.Prompt{
			Label:   "Highlight theme",
			Default: cfg.Theme,
		}
		cfg.Theme, err = themePrompt.Run()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Println("Configuration saved")
	},
}

func init() {
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(editConfigCmd)
	rootCmd.AddCommand(configCmd)
}

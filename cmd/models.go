package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/ollama"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available on the server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		client := ollama.NewClientWithConfig(&ollama.ClientConfig{
			BaseURL: cfg.ServerURL,
			Timeout: 10 * time.Second,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		models, err := client.ListModels(ctx)
		if err != nil {
			log.Fatalf("Failed to list models: %v", err)
		}

		if len(models) == 0 {
			fmt.Println("No models installed on the server")
			return
		}

		fmt.Printf("Models on %s:\n\n", cfg.ServerURL)
		for _, m := range models {
			marker := ""
			if m.Name == cfg.Model {
				marker = " (default)"
			}
			fmt.Printf("  %s%s\n", m.Name, marker)
			fmt.Printf("    Size: %s\n", m.FormatSize())
			if m.Details.Family != "" {
				fmt.Printf("    Family: %s\n", m.Details.Family)
			}
			if m.Details.ParameterSize != "" {
				fmt.Printf("    Parameters: %s (%s)\n", m.Details.ParameterSize, m.Details.QuantizationLevel)
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

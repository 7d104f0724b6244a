// Package cli provides the terminal client for finassist.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"finassist/internal/config"
)

const version = "1.0.0"

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "finassist",
		Short: "finassist - personal finance assistant",
		Long: `finassist is a personal finance assistant chat. It tailors investment
suggestions to your profile and enriches quote answers with live market data.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("create data directory: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: start a chat session.
			return runChat(cmd.Context(), cfg)
		},
	}

	rootCmd.AddCommand(newChatCmd(cfg))
	rootCmd.AddCommand(newLoginCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(cfg))

	return rootCmd
}

// newChatCmd creates the chat command.
func newChatCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an assistant chat session",
		Long: `Capture your investor profile and start an interactive chat session.
Quote answers are enriched with live market data when available.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd.Context(), cfg)
		},
	}
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("finassist v" + version)
		},
	}
}

// newConfigCmd creates the config command.
func newConfigCmd(cfg *config.Config) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Run: func(cmd *cobra.Command, args []string) {
			showConfig(cfg)
		},
	})

	return configCmd
}

func showConfig(cfg *config.Config) {
	masked := func(key string) string {
		if key == "" {
			return "(not set)"
		}
		return "****"
	}

	fmt.Println("Model:")
	fmt.Printf("  base url:       %s\n", cfg.GeminiBaseURL)
	fmt.Printf("  model:          %s\n", cfg.GeminiModel)
	fmt.Printf("  api key:        %s\n", masked(cfg.GeminiAPIKey))
	fmt.Println("Quotes:")
	fmt.Printf("  provider:       %s\n", cfg.QuoteProvider)
	fmt.Printf("  alpha vantage:  %s\n", masked(cfg.AlphaVantageAPIKey))
	fmt.Println("Storage:")
	fmt.Printf("  data dir:       %s\n", cfg.DataDir)
	fmt.Printf("  history:        %t\n", cfg.HistoryEnabled)
	fmt.Println("HTTP:")
	fmt.Printf("  timeout:        %s\n", cfg.HTTPTimeout)
}

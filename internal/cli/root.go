// Package cli implements the mvp-launchpad commands.
package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"mvp_launchpad/config"
	"mvp_launchpad/internal/app"
	"mvp_launchpad/internal/workflow"
)

var (
	configDir string
	ephemeral bool

	cfg config.Config
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "mvp-launchpad",
	Short: "Turn a one-sentence business idea into an MVP plan and landing page copy",
	Long: "Generates a structured MVP plan and landing page marketing copy from a business idea, " +
		"keeps a local history of results and a daily usage quota.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadDotEnv()

		var err error
		cfg, err = config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("cannot load config: %w", err)
		}
		if ephemeral {
			cfg.StoreBackend = "memory"
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", ".", "Directory containing config.yaml")
	RootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep history and usage in memory only")

	RootCmd.AddCommand(serveCmd, generateCmd, historyCmd, usageCmd)
}

// Execute runs the root command.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDotEnv loads .env before viper reads the environment.
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		// It's common for .env to not exist (e.g., in production)
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}
}

// openApp builds the application, with a generator only when withGenerator is set.
func openApp(ctx context.Context, withGenerator bool) (*app.App, error) {
	var gen workflow.Generator
	if withGenerator {
		g, err := app.NewGenerator(cfg)
		if err != nil {
			return nil, err
		}
		gen = g
	}
	return app.New(ctx, cfg, gen)
}

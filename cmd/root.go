package cmd

import (
	"fmt"
	"log"
	"os"

	"storefront/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Storefront API: users, products and orders over HTTP",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "path to the env file (optional)")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// Execute runs the CLI; no subcommand means serve.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap loads config and builds the logger shared by every subcommand.
func bootstrap() (*utils.Config, *zap.Logger, error) {
	config, err := utils.LoadConfig(envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}

	return config, logger, nil
}

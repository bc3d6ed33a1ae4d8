package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"promptgallery/internal/domain/config"
)

var (
	// Global flags
	configPath string
	envFile    string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "promptgallery",
	Short: "Browse, filter and copy Figma MCP prompts",
	Long: `promptgallery serves a searchable gallery of prompt documents kept as
markdown files with front matter, and offers the same filters on the command
line.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "site.yaml", "Path to the site config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file with overrides")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(copyCmd)
}

// loadConfig reads the dotenv file (if any), the YAML config and the
// environment, in that order of precedence from lowest to highest.
func loadConfig() (config.Config, error) {
	if envFile != "" {
		config.LoadDotEnv(envFile)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", configPath, err)
	}
	return cfg, nil
}

// rootContext is used when a command runs without a context, as in tests.
func rootContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

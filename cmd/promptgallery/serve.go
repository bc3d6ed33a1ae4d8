package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"promptgallery/internal/serve"
)

var (
	serveAddr    string
	serveNoWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gallery web server",
	Long: `Loads the prompt collection, indexes it and serves the gallery.
With watching enabled, edits under the content directory reload the
collection and refresh open browser tabs.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides server.addr)")
	serveCmd.Flags().BoolVar(&serveNoWatch, "no-watch", false, "Disable content watching and dev reload")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if serveNoWatch {
		cfg.Server.Watch = false
	}

	ctx, stop := signal.NotifyContext(rootContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := serve.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("serve init: %w", err)
	}
	defer s.Close()

	logger.Info("starting", zap.String("addr", cfg.Server.Addr), zap.String("content", cfg.Build.SourceDir))
	if err := s.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"promptgallery/internal/ingest"
)

const (
	copiedMessage     = "Prompt copied to clipboard!"
	copyFailedMessage = "Failed to copy prompt."
)

var copyFull bool

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

var copyCmd = &cobra.Command{
	Use:   "copy <slug>",
	Short: "Copy a prompt to the system clipboard",
	Long: `Copies the Prompt section of one entry to the system clipboard, or the
whole document with --full.`,
	Args: cobra.ExactArgs(1),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().BoolVar(&copyFull, "full", false, "Copy the full document instead of the Prompt section")
}

func runCopy(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	slug := args[0]
	loader := ingest.NewLoader(cfg.Build.SourceDir, cfg.Gallery.DefaultLanguage, logger)
	for _, e := range loader.LoadEntries(rootContext(cmd)) {
		if e.Slug != slug {
			continue
		}
		text := e.Content
		if !copyFull {
			text = e.Sections().Prompt
		}
		if err := writeClipboard(text); err != nil {
			logger.Warn("clipboard write failed", zap.String("slug", slug), zap.Error(err))
			return errors.New(copyFailedMessage)
		}
		fmt.Fprintln(cmd.OutOrStdout(), copiedMessage)
		return nil
	}
	return fmt.Errorf("prompt %q not found", slug)
}

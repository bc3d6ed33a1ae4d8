package ingest

import (
	"context"

	"go.uber.org/zap"
	"promptgallery/internal/domain/prompt"
)

// Snapshot is the outcome of one load. Fallback is set when the content
// directory could not be read and the built-in sample list was used.
type Snapshot struct {
	Entries  []prompt.Entry
	Warnings []Warning
	Fallback bool
	Err      error
}

// Loader is the read side of the prompt collection.
type Loader struct {
	SourceDir       string
	DefaultLanguage string
	Logger          *zap.Logger
}

func NewLoader(sourceDir, defaultLanguage string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		SourceDir:       sourceDir,
		DefaultLanguage: defaultLanguage,
		Logger:          logger.Named("ingest"),
	}
}

// LoadEntries always returns something to render: on any failure it logs and
// falls back to the sample list.
func (l *Loader) LoadEntries(ctx context.Context) []prompt.Entry {
	return l.Load(ctx).Entries
}

func (l *Loader) Load(ctx context.Context) Snapshot {
	if err := ctx.Err(); err != nil {
		return l.fallback(err)
	}

	entries, warns, err := Ingest(Options{
		SourceDir:       l.SourceDir,
		DefaultLanguage: l.DefaultLanguage,
	})
	if err != nil {
		return l.fallback(err)
	}
	for _, w := range warns {
		l.Logger.Warn("skipped or degraded entry", zap.String("path", w.Path), zap.String("reason", w.Msg))
	}
	l.Logger.Info("loaded prompts", zap.String("dir", l.SourceDir), zap.Int("count", len(entries)))
	return Snapshot{Entries: entries, Warnings: warns}
}

func (l *Loader) fallback(err error) Snapshot {
	entries := prompt.Fallback()
	for i := range entries {
		entries[i].Normalize(l.DefaultLanguage)
	}
	l.Logger.Warn("error loading prompts, using fallback sample data",
		zap.String("dir", l.SourceDir),
		zap.Int("count", len(entries)),
		zap.Error(err),
	)
	return Snapshot{Entries: entries, Fallback: true, Err: err}
}

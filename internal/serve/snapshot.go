package serve

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"promptgallery/internal/domain/build"
	"promptgallery/internal/domain/prompt"
	"promptgallery/internal/index"
)

// snapshot is the collection as of the last reload. Handlers read it under
// Server.mu and never modify it.
type snapshot struct {
	entries     []prompt.Entry
	fingerprint build.Fingerprint
}

func (s *Server) current() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Reload reads the collection, rebuilds the index and swaps the snapshot.
// A content read failure is not an error: the loader falls back to the
// sample list.
func (s *Server) Reload(ctx context.Context) error {
	loaded := s.loader.Load(ctx)

	if err := s.idx.Rebuild(loaded.Entries); err != nil {
		return fmt.Errorf("index rebuild: %w", err)
	}

	fp := build.New(build.HashEntries(loaded.Entries), s.themeHash, s.configHash)
	prev, err := s.idx.LoadFingerprint()
	changed := true
	switch {
	case err == nil:
		changed = fp.Changed(prev)
	case !errors.Is(err, index.ErrNotFound):
		return fmt.Errorf("load fingerprint: %w", err)
	}
	if err := s.idx.SaveFingerprint(fp); err != nil {
		return fmt.Errorf("save fingerprint: %w", err)
	}

	s.mu.Lock()
	s.snap = snapshot{entries: loaded.Entries, fingerprint: fp}
	s.mu.Unlock()

	s.logger.Info("reload complete",
		zap.Int("prompts", len(loaded.Entries)),
		zap.Bool("fallback", loaded.Fallback),
		zap.Bool("changed", changed),
	)
	if changed {
		s.broadcastSSE("reload")
	}
	return nil
}

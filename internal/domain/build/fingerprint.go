// Package build fingerprints everything a rendered page depends on. The
// render hash doubles as the HTTP entity tag.
package build

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"sort"

	"promptgallery/internal/domain/prompt"
)

type Fingerprint struct {
	ContentHash string
	ThemeHash   string
	ConfigHash  string
	RenderHash  string
}

// New combines the three inputs into a fingerprint with its render hash set.
func New(contentHash, themeHash, configHash string) Fingerprint {
	fp := Fingerprint{ContentHash: contentHash, ThemeHash: themeHash, ConfigHash: configHash}
	fp.ComputeRenderHash()
	return fp
}

func (f *Fingerprint) ComputeRenderHash() {
	h := sha256.New()
	h.Write([]byte(f.ContentHash))
	h.Write([]byte{0})
	h.Write([]byte(f.ThemeHash))
	h.Write([]byte{0})
	h.Write([]byte(f.ConfigHash))
	f.RenderHash = hex.EncodeToString(h.Sum(nil))
}

// ETag is the quoted, shortened render hash.
func (f Fingerprint) ETag() string {
	if len(f.RenderHash) < 16 {
		return `"` + f.RenderHash + `"`
	}
	return `"` + f.RenderHash[:16] + `"`
}

// Changed reports whether the render hash differs from prev.
func (f Fingerprint) Changed(prev Fingerprint) bool {
	return f.RenderHash != prev.RenderHash
}

// HashEntries hashes the collection in order. Entries loaded from disk carry
// their file hash; the rest are hashed by their JSON form.
func HashEntries(entries []prompt.Entry) string {
	h := sha256.New()
	for _, e := range entries {
		h.Write([]byte(e.Slug))
		h.Write([]byte{0})
		if e.ContentHash != "" {
			h.Write([]byte(e.ContentHash))
		} else {
			b, _ := json.Marshal(e)
			h.Write(b)
		}
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// HashFS hashes every regular file in fsys by path and content.
func HashFS(fsys fs.FS) (string, error) {
	var paths []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	sort.Strings(paths)

	h := sha256.New()
	for _, p := range paths {
		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return "", err
		}
		h.Write([]byte(p))
		h.Write([]byte{0})
		h.Write(b)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashValue hashes the JSON encoding of v.
func HashValue(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

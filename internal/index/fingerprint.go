package index

import (
	bolt "go.etcd.io/bbolt"
	"promptgallery/internal/domain/build"
)

var (
	kContent = []byte("content")
	kTheme   = []byte("theme")
	kConfig  = []byte("config")
	kRender  = []byte("render")
)

// SaveFingerprint records the hashes of the last successful load.
func (s *Store) SaveFingerprint(fp build.Fingerprint) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bBuild)
		if err != nil {
			return err
		}
		for _, kv := range []struct {
			k []byte
			v string
		}{
			{kContent, fp.ContentHash},
			{kTheme, fp.ThemeHash},
			{kConfig, fp.ConfigHash},
			{kRender, fp.RenderHash},
		} {
			if err := b.Put(kv.k, []byte(kv.v)); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadFingerprint returns the stored fingerprint, or ErrNotFound before the
// first save.
func (s *Store) LoadFingerprint() (build.Fingerprint, error) {
	var fp build.Fingerprint
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bBuild)
		if b == nil {
			return ErrNotFound
		}
		fp.ContentHash = string(b.Get(kContent))
		fp.ThemeHash = string(b.Get(kTheme))
		fp.ConfigHash = string(b.Get(kConfig))
		fp.RenderHash = string(b.Get(kRender))
		return nil
	})
	return fp, err
}

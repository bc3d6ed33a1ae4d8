package index

import (
	"encoding/json"
	"errors"
	"strings"

	bolt "go.etcd.io/bbolt"
	"promptgallery/internal/domain/prompt"
)

// Rebuild replaces the whole index with entries, in the given order. Entries
// without a slug are ignored; later duplicates of a slug are ignored.
func (s *Store) Rebuild(entries []prompt.Entry) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range allBuckets {
			if err := tx.DeleteBucket(name); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
				return err
			}
		}

		metaB, err := tx.CreateBucket(bMeta)
		if err != nil {
			return err
		}
		orderB, err := tx.CreateBucket(bOrder)
		if err != nil {
			return err
		}
		idxTagB, err := tx.CreateBucket(bIdxTag)
		if err != nil {
			return err
		}
		idxCatB, err := tx.CreateBucket(bIdxCat)
		if err != nil {
			return err
		}
		idxLangB, err := tx.CreateBucket(bIdxLang)
		if err != nil {
			return err
		}

		seq := 0
		for _, e := range entries {
			slug := strings.TrimSpace(e.Slug)
			if slug == "" || metaB.Get([]byte(slug)) != nil {
				continue
			}
			mb, err := json.Marshal(e)
			if err != nil {
				return err
			}
			if err := metaB.Put([]byte(slug), mb); err != nil {
				return err
			}

			key := makeSeqSlugKey(seq, slug)
			seq++
			if err := orderB.Put(key, []byte(slug)); err != nil {
				return err
			}

			for _, tag := range e.Tags {
				if err := putFacet(idxTagB, tag, key); err != nil {
					return err
				}
			}
			if err := putFacet(idxCatB, e.Category, key); err != nil {
				return err
			}
			if err := putFacet(idxLangB, e.Language, key); err != nil {
				return err
			}
		}
		return nil
	})
}

func putFacet(parent *bolt.Bucket, value string, key []byte) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	sb, err := parent.CreateBucketIfNotExists([]byte(value))
	if err != nil {
		return err
	}
	return sb.Put(key, []byte{1})
}

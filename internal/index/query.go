package index

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"

	bolt "go.etcd.io/bbolt"
	"promptgallery/internal/domain/prompt"
)

var ErrNotFound = errors.New("not found")

func (s *Store) GetEntry(slug string) (prompt.Entry, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return prompt.Entry{}, ErrNotFound
	}
	var e prompt.Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bMeta)
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(slug))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &e)
	})
	return e, err
}

// Slugs returns every indexed slug in collection order.
func (s *Store) Slugs() ([]string, error) {
	var out []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bOrder)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			out = append(out, string(v))
			return nil
		})
	})
	return out, err
}

func (s *Store) Count() (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		if b := tx.Bucket(bMeta); b != nil {
			n = b.Stats().KeyN
		}
		return nil
	})
	return n, err
}

// FacetStat is one facet value and the number of entries carrying it.
// First is the collection position of the earliest entry with the value.
type FacetStat struct {
	Name  string
	Count int
	First int
}

func (s *Store) TagStats() ([]FacetStat, error)      { return s.facetStats(bIdxTag) }
func (s *Store) CategoryStats() ([]FacetStat, error) { return s.facetStats(bIdxCat) }
func (s *Store) LanguageStats() ([]FacetStat, error) { return s.facetStats(bIdxLang) }

// facetStats counts entries per value, most used first, ties by first
// appearance.
func (s *Store) facetStats(bucket []byte) ([]FacetStat, error) {
	var stats []FacetStat
	err := s.db.View(func(tx *bolt.Tx) error {
		parent := tx.Bucket(bucket)
		if parent == nil {
			return nil
		}
		return parent.ForEach(func(name, v []byte) error {
			if v != nil {
				return nil
			}
			sb := parent.Bucket(name)
			if sb == nil {
				return nil
			}
			st := FacetStat{Name: string(name), First: -1}
			c := sb.Cursor()
			for k, _ := c.First(); k != nil; k, _ = c.Next() {
				if slugFromSeqSlugKey(k) == "" {
					continue
				}
				if st.First < 0 {
					st.First = seqFromSeqSlugKey(k)
				}
				st.Count++
			}
			if st.Count > 0 {
				stats = append(stats, st)
			}
			return nil
		})
	})
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Count == stats[j].Count {
			return stats[i].First < stats[j].First
		}
		return stats[i].Count > stats[j].Count
	})
	return stats, err
}

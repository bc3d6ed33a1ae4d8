// Package gallery holds the filter, search and pagination logic of the prompt
// list. Everything here is a pure function over in-memory data.
package gallery

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

const (
	ListPageSize         = 12
	ContributorsPageSize = 8
)

// Query parameter names.
const (
	ParamCategory = "category"
	ParamLanguage = "language"
	ParamTags     = "tags"
	ParamSearch   = "search"
	ParamPage     = "page"
)

// State is the active filter selection. The three sets are ordered and
// duplicate-free; order is selection order and is kept in the URL.
type State struct {
	Categories []string
	Languages  []string
	Tags       []string
	Search     string
	Page       int
}

// ParseQuery rebuilds a State from query parameters. Missing parameters give
// empty sets; page defaults to 1.
func ParseQuery(q url.Values) State {
	return State{
		Categories: splitList(q.Get(ParamCategory)),
		Languages:  splitList(q.Get(ParamLanguage)),
		Tags:       splitList(q.Get(ParamTags)),
		Search:     q.Get(ParamSearch),
		Page:       parsePage(q.Get(ParamPage)),
	}
}

// Values emits only the non-empty dimensions; page only when past the first.
func (s State) Values() url.Values {
	v := url.Values{}
	if len(s.Categories) > 0 {
		v.Set(ParamCategory, strings.Join(s.Categories, ","))
	}
	if len(s.Languages) > 0 {
		v.Set(ParamLanguage, strings.Join(s.Languages, ","))
	}
	if len(s.Tags) > 0 {
		v.Set(ParamTags, strings.Join(s.Tags, ","))
	}
	if s.Search != "" {
		v.Set(ParamSearch, s.Search)
	}
	if s.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(s.Page))
	}
	return v
}

func (s State) Encode() string {
	return s.Values().Encode()
}

// URL returns path with the encoded state, or the bare path when the state is
// empty.
func (s State) URL(path string) string {
	if q := s.Encode(); q != "" {
		return path + "?" + q
	}
	return path
}

// Active reports whether any filter dimension or the search is set.
func (s State) Active() bool {
	return len(s.Categories) > 0 || len(s.Languages) > 0 || len(s.Tags) > 0 || s.Search != ""
}

func (s State) CurrentPage() int {
	if s.Page < 1 {
		return 1
	}
	return s.Page
}

func (s State) HasCategory(v string) bool { return slices.Contains(s.Categories, v) }
func (s State) HasLanguage(v string) bool { return slices.Contains(s.Languages, v) }
func (s State) HasTag(v string) bool      { return slices.Contains(s.Tags, v) }

// ToggleCategory adds (on) or removes a category and resets the page.
func (s State) ToggleCategory(v string, on bool) State {
	s = s.clone()
	s.Categories = toggle(s.Categories, v, on)
	s.Page = 1
	return s
}

func (s State) ToggleLanguage(v string, on bool) State {
	s = s.clone()
	s.Languages = toggle(s.Languages, v, on)
	s.Page = 1
	return s
}

func (s State) ToggleTag(v string, on bool) State {
	s = s.clone()
	s.Tags = toggle(s.Tags, v, on)
	s.Page = 1
	return s
}

// FlipCategory toggles v against its current membership. Chip links use the
// Flip variants.
func (s State) FlipCategory(v string) State { return s.ToggleCategory(v, !s.HasCategory(v)) }
func (s State) FlipLanguage(v string) State { return s.ToggleLanguage(v, !s.HasLanguage(v)) }
func (s State) FlipTag(v string) State      { return s.ToggleTag(v, !s.HasTag(v)) }

func (s State) WithSearch(q string) State {
	s = s.clone()
	s.Search = q
	s.Page = 1
	return s
}

// WithPage moves to page p; it is the only reducer that keeps the filters and
// does not reset the page.
func (s State) WithPage(p int) State {
	s = s.clone()
	if p < 1 {
		p = 1
	}
	s.Page = p
	return s
}

// ResetCategories drops the category selection; the Reset links of the
// sidebar use these.
func (s State) ResetCategories() State {
	s = s.clone()
	s.Categories = nil
	s.Page = 1
	return s
}

func (s State) ResetLanguages() State {
	s = s.clone()
	s.Languages = nil
	s.Page = 1
	return s
}

func (s State) ResetTags() State {
	s = s.clone()
	s.Tags = nil
	s.Page = 1
	return s
}

// Clear drops every filter and the search.
func (s State) Clear() State {
	return State{Page: 1}
}

func (s State) clone() State {
	s.Categories = slices.Clone(s.Categories)
	s.Languages = slices.Clone(s.Languages)
	s.Tags = slices.Clone(s.Tags)
	return s
}

func toggle(set []string, v string, on bool) []string {
	if v == "" {
		return set
	}
	idx := slices.Index(set, v)
	switch {
	case on && idx < 0:
		return append(set, v)
	case !on && idx >= 0:
		return slices.Delete(set, idx, idx+1)
	}
	return set
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(raw, ",") {
		if tok == "" || slices.Contains(out, tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func parsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

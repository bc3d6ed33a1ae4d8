package gallery

import (
	"strings"

	"promptgallery/internal/domain/prompt"
)

// Matches applies AND across dimensions and OR within a dimension. Search is a
// case-insensitive substring test against the title and each tag.
func Matches(e prompt.Entry, s State) bool {
	if len(s.Categories) > 0 && !s.HasCategory(e.Category) {
		return false
	}
	if len(s.Languages) > 0 && !s.HasLanguage(e.Language) {
		return false
	}
	if len(s.Tags) > 0 && !anyTag(e, s.Tags) {
		return false
	}
	if s.Search != "" && !matchesSearch(e, strings.ToLower(s.Search)) {
		return false
	}
	return true
}

func anyTag(e prompt.Entry, tags []string) bool {
	for _, t := range tags {
		if e.HasTag(t) {
			return true
		}
	}
	return false
}

func matchesSearch(e prompt.Entry, needle string) bool {
	if strings.Contains(strings.ToLower(e.Title), needle) {
		return true
	}
	for _, t := range e.Tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

// Filter returns the entries matching s, in input order.
func Filter(entries []prompt.Entry, s State) []prompt.Entry {
	out := make([]prompt.Entry, 0, len(entries))
	for _, e := range entries {
		if Matches(e, s) {
			out = append(out, e)
		}
	}
	return out
}

// Page is one rendered slice of the filtered list.
type Page struct {
	Items      []prompt.Entry `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
	Filtered   int            `json:"filtered"`
	Total      int            `json:"total"`
}

func (p Page) HasPrev() bool { return p.Page > 1 }
func (p Page) HasNext() bool { return p.Page < p.TotalPages }

// Numbers lists every page number, for numbered pagination links.
func (p Page) Numbers() []int {
	out := make([]int, p.TotalPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// VisiblePage filters entries and slices out the current page.
// TotalPages is ceil(filtered/pageSize) and 0 when nothing matches.
func VisiblePage(entries []prompt.Entry, s State, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = ListPageSize
	}
	filtered := Filter(entries, s)
	items, totalPages := Paginate(filtered, s.CurrentPage(), pageSize)
	return Page{
		Items:      items,
		Page:       s.CurrentPage(),
		PageSize:   pageSize,
		TotalPages: totalPages,
		Filtered:   len(filtered),
		Total:      len(entries),
	}
}

// Paginate returns items[(page-1)*size : page*size] clamped to the slice and
// the total page count. A page past the end yields an empty slice.
func Paginate[T any](items []T, page, size int) ([]T, int) {
	if size <= 0 {
		return nil, 0
	}
	if page < 1 {
		page = 1
	}
	totalPages := (len(items) + size - 1) / size
	// compared before multiplying so huge page numbers cannot overflow
	if page > totalPages {
		return []T{}, totalPages
	}
	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}

// AllTags lists distinct tags in first-appearance order.
func AllTags(entries []prompt.Entry) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range entries {
		for _, t := range e.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

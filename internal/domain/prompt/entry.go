package prompt

import "strings"

// Entry is one prompt document. Entries are read-only once loaded.
type Entry struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Language string   `json:"language"`
	Tags     []string `json:"tags"`
	Content  string   `json:"content,omitempty"`

	// SourcePath is empty for fallback entries.
	SourcePath  string `json:"-"`
	ContentHash string `json:"-"`
}

const (
	ExcerptRunes   = 150
	CardTagLimit   = 3
	noContentLabel = "No content available"
)

func (e *Entry) Normalize(defaultLanguage string) {
	e.Title = strings.TrimSpace(e.Title)
	e.Slug = strings.TrimSpace(e.Slug)
	e.Category = strings.TrimSpace(e.Category)
	e.Language = strings.TrimSpace(e.Language)
	if e.Language == "" {
		e.Language = defaultLanguage
	}
	e.Tags = normalizeTags(e.Tags)
}

// Excerpt is the card description: the first 150 runes of the raw body.
func (e Entry) Excerpt() string {
	if e.Content == "" {
		return noContentLabel
	}
	runes := []rune(e.Content)
	if len(runes) > ExcerptRunes {
		runes = runes[:ExcerptRunes]
	}
	return string(runes) + "..."
}

// CardTags returns the tags shown on a card and how many were left out.
func (e Entry) CardTags() ([]string, int) {
	if len(e.Tags) <= CardTagLimit {
		return e.Tags, 0
	}
	return e.Tags[:CardTagLimit], len(e.Tags) - CardTagLimit
}

func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Sections parses the body into its Prompt and How to Use parts.
func (e Entry) Sections() Sections {
	return ParseSections(e.Content)
}

// normalizeTags trims and de-duplicates while keeping insertion order and case.
func normalizeTags(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

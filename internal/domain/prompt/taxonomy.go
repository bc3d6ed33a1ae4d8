package prompt

// Category is display metadata for one category identifier.
type Category struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Icon  string `yaml:"icon" json:"icon"`
}

// DefaultCategories is the taxonomy used when site.yaml does not define one.
func DefaultCategories() []Category {
	return []Category{
		{ID: "auto-populate", Title: "Auto Populate", Icon: "wand"},
		{ID: "annotation", Title: "Annotation", Icon: "message-square"},
		{ID: "overrides", Title: "Overrides", Icon: "refresh-cw"},
		{ID: "connectors", Title: "Connectors", Icon: "git-branch"},
		{ID: "vibe-design", Title: "Vibe Design", Icon: "palette"},
	}
}

// Taxonomy resolves category identifiers to display metadata. It is built once
// from configuration and is safe for concurrent reads.
type Taxonomy struct {
	ordered []Category
	byID    map[string]Category
}

func NewTaxonomy(cats []Category) *Taxonomy {
	t := &Taxonomy{byID: make(map[string]Category, len(cats))}
	for _, c := range cats {
		if c.ID == "" {
			continue
		}
		if _, dup := t.byID[c.ID]; dup {
			continue
		}
		if c.Title == "" {
			c.Title = c.ID
		}
		t.byID[c.ID] = c
		t.ordered = append(t.ordered, c)
	}
	return t
}

// Lookup returns ok=false for identifiers outside the taxonomy; such entries
// render without a category badge.
func (t *Taxonomy) Lookup(id string) (Category, bool) {
	c, ok := t.byID[id]
	return c, ok
}

func (t *Taxonomy) All() []Category {
	out := make([]Category, len(t.ordered))
	copy(out, t.ordered)
	return out
}

func (t *Taxonomy) Len() int { return len(t.ordered) }

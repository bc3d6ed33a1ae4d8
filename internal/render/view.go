package render

import (
	"html/template"

	"promptgallery/internal/contributors"
	"promptgallery/internal/domain/config"
	"promptgallery/internal/domain/prompt"
	"promptgallery/internal/gallery"
)

// Chrome is what every full page shares: header, footer and dev reload.
type Chrome struct {
	Site      config.SiteConfig
	Title     string
	DevReload bool
}

type HeroStats struct {
	Prompts    int
	Categories int
	Languages  int
}

// Chip is one selectable filter value. URL is the list state after toggling
// the value.
type Chip struct {
	Value  string
	Label  string
	Icon   string
	Active bool
	URL    string
}

// FilterGroup is one sidebar block. Chips past Visible go behind a
// disclosure.
type FilterGroup struct {
	Name     string
	Chips    []Chip
	Visible  int
	ResetURL string
}

func (g FilterGroup) Shown() []Chip {
	if g.Visible <= 0 || len(g.Chips) <= g.Visible {
		return g.Chips
	}
	return g.Chips[:g.Visible]
}

func (g FilterGroup) Hidden() []Chip {
	if g.Visible <= 0 || len(g.Chips) <= g.Visible {
		return nil
	}
	return g.Chips[g.Visible:]
}

// ActiveChip is a current selection rendered above the grid; RemoveURL drops
// it.
type ActiveChip struct {
	Kind      string
	Label     string
	RemoveURL string
}

type Card struct {
	Slug     string
	Title    string
	URL      string
	Language string
	Excerpt  string
	Tags     []string
	MoreTags int
	Category *prompt.Category
	CopyText string
}

type PageLink struct {
	Number  int
	URL     string
	Current bool
}

type Pagination struct {
	Page       int
	TotalPages int
	PrevURL    string
	NextURL    string
	Links      []PageLink
}

// Show is false for a single page.
func (p Pagination) Show() bool { return p.TotalPages > 1 }

type HomePage struct {
	Chrome
	Hero       HeroStats
	State      gallery.State
	Categories FilterGroup
	Languages  FilterGroup
	Tags       FilterGroup
	Active     []ActiveChip
	ClearURL   string
	Cards      []Card
	Page       gallery.Page
	Pagination Pagination

	// Contributors enables the lazily loaded contributors section.
	Contributors bool
}

// Filtering reports whether the result header shows the filtered count.
func (p HomePage) Filtering() bool { return p.Page.Filtered != p.Page.Total }

type PromptPage struct {
	Chrome
	Entry      prompt.Entry
	Category   *prompt.Category
	PromptHTML template.HTML
	HowToHTML  template.HTML
	CopyText   string
	FullText   string
	BackURL    string
	TagLinks   []FacetLink
}

// FacetLink is one facet value on an overview page, linking to the list
// filtered by it.
type FacetLink struct {
	Name  string
	Label string
	Icon  string
	Count int
	URL   string
}

type TagsPage struct {
	Chrome
	Tags  []FacetLink
	Total int
}

type CategoriesPage struct {
	Chrome
	Categories []FacetLink
	Languages  []FacetLink
	Total      int
}

type NotFoundPage struct {
	Chrome
	Path string
}

type ContributorsFragment struct {
	Contributors []contributors.Contributor
	Pagination   Pagination
	RepoURL      string
}

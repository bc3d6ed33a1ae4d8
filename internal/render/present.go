package render

import (
	"fmt"

	"promptgallery/internal/contributors"
	"promptgallery/internal/domain/config"
	"promptgallery/internal/domain/prompt"
	"promptgallery/internal/domain/site"
	"promptgallery/internal/gallery"
)

const (
	listPath     = "/"
	chipsVisible = 5
)

// PromptURL is the detail route of slug.
func PromptURL(slug string) string {
	return site.PromptRoute(slug).Path
}

// Presenter turns the loaded collection and a request's filter state into
// view models.
type Presenter struct {
	Site         config.SiteConfig
	Gallery      config.GalleryConfig
	Taxonomy     *prompt.Taxonomy
	Markdown     *MarkdownRenderer
	Contributors bool
	DevReload    bool
}

func NewPresenter(cfg config.Config) *Presenter {
	return &Presenter{
		Site:         cfg.Site,
		Gallery:      cfg.Gallery,
		Taxonomy:     prompt.NewTaxonomy(cfg.Gallery.Categories),
		Markdown:     NewMarkdownRenderer(),
		Contributors: cfg.Contributors.Enabled,
	}
}

func (p *Presenter) chrome(title string) Chrome {
	if title == "" {
		title = p.Site.Title
	} else {
		title = title + " | " + p.Site.Brand
	}
	return Chrome{Site: p.Site, Title: title, DevReload: p.DevReload}
}

func (p *Presenter) category(id string) *prompt.Category {
	c, ok := p.Taxonomy.Lookup(id)
	if !ok {
		return nil
	}
	return &c
}

func (p *Presenter) Home(entries []prompt.Entry, s gallery.State) HomePage {
	page := gallery.VisiblePage(entries, s, p.Gallery.PageSize)

	cards := make([]Card, 0, len(page.Items))
	for _, e := range page.Items {
		cards = append(cards, p.card(e))
	}

	return HomePage{
		Chrome: p.chrome(""),
		Hero: HeroStats{
			Prompts:    len(entries),
			Categories: p.Taxonomy.Len(),
			Languages:  len(p.Gallery.Languages),
		},
		State:        s,
		Categories:   p.categoryGroup(s),
		Languages:    p.languageGroup(s),
		Tags:         tagGroup(entries, s),
		Active:       p.activeChips(s),
		ClearURL:     s.Clear().URL(listPath),
		Cards:        cards,
		Page:         page,
		Pagination:   pagination(page.Page, page.TotalPages, func(n int) string { return s.WithPage(n).URL(listPath) }),
		Contributors: p.Contributors,
	}
}

func (p *Presenter) card(e prompt.Entry) Card {
	tags, more := e.CardTags()
	return Card{
		Slug:     e.Slug,
		Title:    e.Title,
		URL:      PromptURL(e.Slug),
		Language: e.Language,
		Excerpt:  e.Excerpt(),
		Tags:     tags,
		MoreTags: more,
		Category: p.category(e.Category),
		CopyText: e.Content,
	}
}

func (p *Presenter) categoryGroup(s gallery.State) FilterGroup {
	g := FilterGroup{Name: "Categories"}
	for _, c := range p.Taxonomy.All() {
		g.Chips = append(g.Chips, Chip{
			Value:  c.ID,
			Label:  c.Title,
			Icon:   c.Icon,
			Active: s.HasCategory(c.ID),
			URL:    s.FlipCategory(c.ID).URL(listPath),
		})
	}
	if len(s.Categories) > 0 {
		g.ResetURL = s.ResetCategories().URL(listPath)
	}
	return g
}

func (p *Presenter) languageGroup(s gallery.State) FilterGroup {
	g := FilterGroup{Name: "Languages", Visible: chipsVisible}
	for _, l := range p.Gallery.Languages {
		g.Chips = append(g.Chips, Chip{
			Value:  l,
			Label:  l,
			Active: s.HasLanguage(l),
			URL:    s.FlipLanguage(l).URL(listPath),
		})
	}
	if len(s.Languages) > 0 {
		g.ResetURL = s.ResetLanguages().URL(listPath)
	}
	return g
}

func tagGroup(entries []prompt.Entry, s gallery.State) FilterGroup {
	g := FilterGroup{Name: "Tags", Visible: chipsVisible}
	for _, t := range gallery.AllTags(entries) {
		g.Chips = append(g.Chips, Chip{
			Value:  t,
			Label:  t,
			Active: s.HasTag(t),
			URL:    s.FlipTag(t).URL(listPath),
		})
	}
	if len(s.Tags) > 0 {
		g.ResetURL = s.ResetTags().URL(listPath)
	}
	return g
}

func (p *Presenter) activeChips(s gallery.State) []ActiveChip {
	var out []ActiveChip
	for _, id := range s.Categories {
		label := id
		if c, ok := p.Taxonomy.Lookup(id); ok {
			label = c.Title
		}
		out = append(out, ActiveChip{Kind: "category", Label: label, RemoveURL: s.ToggleCategory(id, false).URL(listPath)})
	}
	for _, l := range s.Languages {
		out = append(out, ActiveChip{Kind: "language", Label: l, RemoveURL: s.ToggleLanguage(l, false).URL(listPath)})
	}
	for _, t := range s.Tags {
		out = append(out, ActiveChip{Kind: "tag", Label: t, RemoveURL: s.ToggleTag(t, false).URL(listPath)})
	}
	if s.Search != "" {
		out = append(out, ActiveChip{Kind: "search", Label: fmt.Sprintf("%q", s.Search), RemoveURL: s.WithSearch("").URL(listPath)})
	}
	return out
}

func pagination(page, total int, link func(int) string) Pagination {
	pg := Pagination{Page: page, TotalPages: total}
	if total <= 1 {
		return pg
	}
	if page > 1 {
		pg.PrevURL = link(min(page-1, total))
	}
	if page < total {
		pg.NextURL = link(page + 1)
	}
	for n := 1; n <= total; n++ {
		pg.Links = append(pg.Links, PageLink{Number: n, URL: link(n), Current: n == page})
	}
	return pg
}

// Prompt builds the detail page. Markdown errors are returned; the caller
// answers 500.
func (p *Presenter) Prompt(e prompt.Entry) (PromptPage, error) {
	sec := e.Sections()
	promptHTML, err := p.Markdown.RenderHTML(sec.Prompt)
	if err != nil {
		return PromptPage{}, fmt.Errorf("render prompt section: %w", err)
	}
	howToHTML, err := p.Markdown.RenderHTML(sec.HowTo)
	if err != nil {
		return PromptPage{}, fmt.Errorf("render how-to section: %w", err)
	}

	var tags []FacetLink
	for _, t := range e.Tags {
		tags = append(tags, FacetLink{Name: t, Label: t, URL: gallery.State{}.ToggleTag(t, true).URL(listPath)})
	}
	return PromptPage{
		Chrome:     p.chrome(e.Title),
		Entry:      e,
		Category:   p.category(e.Category),
		PromptHTML: promptHTML,
		HowToHTML:  howToHTML,
		CopyText:   sec.Prompt,
		FullText:   e.Content,
		BackURL:    listPath,
		TagLinks:   tags,
	}, nil
}

// FacetCount is a facet value with the number of entries carrying it.
type FacetCount struct {
	Name  string
	Count int
}

func (p *Presenter) Tags(stats []FacetCount, total int) TagsPage {
	links := make([]FacetLink, 0, len(stats))
	for _, st := range stats {
		links = append(links, FacetLink{
			Name:  st.Name,
			Label: st.Name,
			Count: st.Count,
			URL:   gallery.State{}.ToggleTag(st.Name, true).URL(listPath),
		})
	}
	return TagsPage{Chrome: p.chrome("Tags"), Tags: links, Total: total}
}

// Categories lists every taxonomy category, including empty ones, in
// taxonomy order, followed by uncategorized values found in the index.
func (p *Presenter) Categories(cats, langs []FacetCount, total int) CategoriesPage {
	counts := make(map[string]int, len(cats))
	for _, c := range cats {
		counts[c.Name] = c.Count
	}

	page := CategoriesPage{Chrome: p.chrome("Categories"), Total: total}
	for _, c := range p.Taxonomy.All() {
		page.Categories = append(page.Categories, FacetLink{
			Name:  c.ID,
			Label: c.Title,
			Icon:  c.Icon,
			Count: counts[c.ID],
			URL:   gallery.State{}.ToggleCategory(c.ID, true).URL(listPath),
		})
	}
	for _, c := range cats {
		if _, ok := p.Taxonomy.Lookup(c.Name); ok {
			continue
		}
		page.Categories = append(page.Categories, FacetLink{
			Name:  c.Name,
			Label: c.Name,
			Count: c.Count,
			URL:   gallery.State{}.ToggleCategory(c.Name, true).URL(listPath),
		})
	}
	for _, l := range langs {
		page.Languages = append(page.Languages, FacetLink{
			Name:  l.Name,
			Label: l.Name,
			Count: l.Count,
			URL:   gallery.State{}.ToggleLanguage(l.Name, true).URL(listPath),
		})
	}
	return page
}

func (p *Presenter) NotFound(path string) NotFoundPage {
	return NotFoundPage{Chrome: p.chrome("Page Not Found"), Path: path}
}

// ContributorsFragment slices one page of contributors. The fragment links
// request other pages of itself.
func (p *Presenter) ContributorsFragment(all []contributors.Contributor, page int, repoURL string) ContributorsFragment {
	items, total := gallery.Paginate(all, page, p.Gallery.ContributorsPageSize)
	if page < 1 {
		page = 1
	}
	return ContributorsFragment{
		Contributors: items,
		Pagination: pagination(page, total, func(n int) string {
			return fmt.Sprintf("/fragments/contributors?page=%d", n)
		}),
		RepoURL: repoURL,
	}
}

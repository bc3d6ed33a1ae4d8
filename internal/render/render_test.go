package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"promptgallery/internal/contributors"
	"promptgallery/internal/domain/config"
	"promptgallery/internal/domain/prompt"
	"promptgallery/internal/gallery"
)

func newPresenter() *Presenter {
	return NewPresenter(config.Default())
}

func newRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	r, err := NewTemplateRenderer(DefaultTheme())
	require.NoError(t, err)
	return r
}

func manyEntries(n int) []prompt.Entry {
	out := make([]prompt.Entry, n)
	for i := range out {
		out[i] = prompt.Entry{
			Slug:     fmt.Sprintf("p-%02d", i),
			Title:    fmt.Sprintf("Prompt %d", i),
			Category: "annotation",
			Language: "English",
			Tags:     []string{"a", "b", "c", "d"},
			Content:  "# Prompt\nDo it.",
		}
	}
	return out
}

func TestMarkdownRenderer(t *testing.T) {
	md := NewMarkdownRenderer()

	h, err := md.RenderHTML("Use **bold** and ~~strike~~\n\n| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)
	assert.Contains(t, string(h), "<strong>bold</strong>")
	assert.Contains(t, string(h), "<del>strike</del>")
	assert.Contains(t, string(h), "<table>")

	h, err = md.RenderHTML("")
	require.NoError(t, err)
	assert.Empty(t, h)
}

func TestHomeCards(t *testing.T) {
	p := newPresenter()
	entries := []prompt.Entry{
		{Slug: "x", Title: "X", Category: "vibe-design", Language: "English", Tags: []string{"a", "b", "c", "d", "e"}, Content: "body"},
		{Slug: "y", Title: "Y", Category: "design-generation", Language: "中文"},
	}
	page := p.Home(entries, gallery.State{})

	require.Len(t, page.Cards, 2)
	x := page.Cards[0]
	assert.Equal(t, "/prompts/x", x.URL)
	assert.Equal(t, []string{"a", "b", "c"}, x.Tags)
	assert.Equal(t, 2, x.MoreTags)
	require.NotNil(t, x.Category)
	assert.Equal(t, "Vibe Design", x.Category.Title)
	assert.Equal(t, "body", x.CopyText)

	y := page.Cards[1]
	assert.Nil(t, y.Category, "unknown category has no badge")
	assert.Equal(t, "No content available", y.Excerpt)

	assert.Equal(t, HeroStats{Prompts: 2, Categories: 5, Languages: 3}, page.Hero)
	assert.False(t, page.Pagination.Show())
	assert.False(t, page.Filtering())
}

func TestHomeChipLinks(t *testing.T) {
	p := newPresenter()
	s := gallery.State{Categories: []string{"annotation"}, Page: 2}
	page := p.Home(manyEntries(30), s)

	var annotation, overrides Chip
	for _, c := range page.Categories.Chips {
		switch c.Value {
		case "annotation":
			annotation = c
		case "overrides":
			overrides = c
		}
	}
	assert.True(t, annotation.Active)
	assert.Equal(t, "/", annotation.URL, "removing the only filter returns to the bare list")
	assert.Equal(t, "/?category=annotation%2Coverrides", overrides.URL)
	assert.Equal(t, "/", page.Categories.ResetURL)
	assert.Empty(t, page.Tags.ResetURL)

	require.Len(t, page.Active, 1)
	assert.Equal(t, "Annotation", page.Active[0].Label)
	assert.Equal(t, "/", page.ClearURL)

	assert.Equal(t, []string{"a", "b", "c", "d"}, chipValues(page.Tags.Shown()))
	assert.Empty(t, page.Tags.Hidden())
}

func chipValues(chips []Chip) []string {
	var out []string
	for _, c := range chips {
		out = append(out, c.Value)
	}
	return out
}

func TestFilterGroupDisclosure(t *testing.T) {
	g := FilterGroup{Visible: 5}
	for i := 0; i < 7; i++ {
		g.Chips = append(g.Chips, Chip{Value: fmt.Sprint(i)})
	}
	assert.Len(t, g.Shown(), 5)
	assert.Len(t, g.Hidden(), 2)

	g.Visible = 0
	assert.Len(t, g.Shown(), 7)
	assert.Nil(t, g.Hidden())
}

func TestHomePagination(t *testing.T) {
	p := newPresenter()
	page := p.Home(manyEntries(25), gallery.State{Tags: []string{"a"}, Page: 2})

	pg := page.Pagination
	assert.True(t, pg.Show())
	assert.Equal(t, 3, pg.TotalPages)
	assert.Equal(t, "/?tags=a", pg.PrevURL)
	assert.Equal(t, "/?page=3&tags=a", pg.NextURL)
	require.Len(t, pg.Links, 3)
	assert.True(t, pg.Links[1].Current)
	assert.Len(t, page.Cards, 12)
}

func TestPromptPage(t *testing.T) {
	p := newPresenter()
	e := prompt.Entry{
		Slug:     "x",
		Title:    "X",
		Category: "overrides",
		Language: "English",
		Tags:     []string{"swap"},
		Content:  "# Prompt\nSwap **all** instances.\n\n# How to Use\n1. Select\n2. Run",
	}
	page, err := p.Prompt(e)
	require.NoError(t, err)
	assert.Equal(t, "Swap **all** instances.", page.CopyText)
	assert.Contains(t, string(page.PromptHTML), "<strong>all</strong>")
	assert.Contains(t, string(page.HowToHTML), "<ol>")
	assert.Equal(t, "X | MCP Magic", page.Title)
	require.Len(t, page.TagLinks, 1)
	assert.Equal(t, "/?tags=swap", page.TagLinks[0].URL)

	page, err = p.Prompt(prompt.Entry{Slug: "z", Title: "Z", Content: "no sections"})
	require.NoError(t, err)
	assert.Empty(t, page.PromptHTML)
	assert.Empty(t, page.HowToHTML)
}

func TestCategoriesPage(t *testing.T) {
	p := newPresenter()
	page := p.Categories(
		[]FacetCount{{Name: "annotation", Count: 3}, {Name: "legacy", Count: 1}},
		[]FacetCount{{Name: "English", Count: 4}},
		4,
	)
	require.Len(t, page.Categories, 6)
	assert.Equal(t, "auto-populate", page.Categories[0].Name)
	assert.Zero(t, page.Categories[0].Count)
	assert.Equal(t, 3, page.Categories[1].Count)
	assert.Equal(t, "legacy", page.Categories[5].Name)
	assert.Equal(t, "/?language=English", page.Languages[0].URL)
}

func TestContributorsFragment(t *testing.T) {
	p := newPresenter()
	var all []contributors.Contributor
	for i := 0; i < 10; i++ {
		all = append(all, contributors.Contributor{Login: fmt.Sprintf("u%d", i)})
	}
	frag := p.ContributorsFragment(all, 2, "https://github.com/o/r/graphs/contributors")
	assert.Len(t, frag.Contributors, 2)
	assert.Equal(t, "/fragments/contributors?page=1", frag.Pagination.PrevURL)
	assert.Empty(t, frag.Pagination.NextURL)
}

func TestRenderHome(t *testing.T) {
	r := newRenderer(t)
	p := newPresenter()
	p.DevReload = true

	out, err := r.RenderHome(context.Background(), p.Home(manyEntries(13), gallery.State{Search: "Prompt"}))
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, "13 Prompts")
	assert.Contains(t, html, "13+")
	assert.Contains(t, html, `href="/prompts/p-00"`)
	assert.Contains(t, html, "+1")
	assert.Contains(t, html, "Loading contributors...")
	assert.Contains(t, html, "/static/js/reload.js")
	assert.Contains(t, html, `rel="next"`)
	assert.NotContains(t, html, "filtered results from")

	out, err = r.RenderHome(context.Background(), p.Home(manyEntries(3), gallery.State{Search: "zzz"}))
	require.NoError(t, err)
	assert.Contains(t, string(out), "No prompts found")
	assert.Contains(t, string(out), "0 filtered results from 3 total prompts")
}

func TestRenderPromptEscapesCopyText(t *testing.T) {
	r := newRenderer(t)
	page, err := newPresenter().Prompt(prompt.Entry{Slug: "x", Title: "X", Content: "# Prompt\nsay \"hi\" <b>"})
	require.NoError(t, err)

	out, err := r.RenderPrompt(context.Background(), page)
	require.NoError(t, err)
	assert.Contains(t, string(out), `data-copy="say &#34;hi&#34; &lt;b&gt;"`)
	assert.NotContains(t, string(out), "How to Use")
}

func TestRenderOtherPages(t *testing.T) {
	r := newRenderer(t)
	p := newPresenter()
	ctx := context.Background()

	out, err := r.RenderNotFound(ctx, p.NotFound("/nope"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "Page Not Found")

	out, err = r.RenderTags(ctx, p.Tags([]FacetCount{{Name: "design system", Count: 2}}, 5))
	require.NoError(t, err)
	assert.Contains(t, string(out), `href="/?tags=design+system"`)

	out, err = r.RenderCategories(ctx, p.Categories(nil, nil, 0))
	require.NoError(t, err)
	assert.Contains(t, string(out), "Vibe Design")

	frag := p.ContributorsFragment([]contributors.Contributor{{Login: "kim", Name: "Kim Lee", HTMLURL: "https://github.com/kim"}}, 1, "https://github.com/o/r/graphs/contributors")
	out, err = r.RenderContributors(ctx, frag)
	require.NoError(t, err)
	assert.Contains(t, string(out), "@kim")
	assert.Contains(t, string(out), "KI")
	assert.Contains(t, string(out), "View all contributors on GitHub")
	assert.NotContains(t, string(out), "<html")
}

func TestCheckThemeTemplates(t *testing.T) {
	assert.NoError(t, CheckThemeTemplates(DefaultTheme()))

	err := CheckThemeTemplates(fstest.MapFS{"templates/home.tmpl": {Data: []byte("x")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt.tmpl")
}

func TestThemeFS(t *testing.T) {
	fsys, onDisk, err := ThemeFS(t.TempDir(), "missing")
	require.NoError(t, err)
	assert.False(t, onDisk)
	assert.NoError(t, CheckThemeTemplates(fsys))

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "custom", "templates"), 0o755))
	fsys, onDisk, err = ThemeFS(dir, "custom")
	require.NoError(t, err)
	assert.True(t, onDisk)
	assert.Error(t, CheckThemeTemplates(fsys))

	static, err := StaticFS(DefaultTheme())
	require.NoError(t, err)
	_, err = static.Open("js/copy.js")
	assert.NoError(t, err)
}

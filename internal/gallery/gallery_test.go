package gallery

import (
	"fmt"
	"math"
	"math/rand"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"promptgallery/internal/domain/prompt"
)

var (
	categories = []string{"auto-populate", "annotation", "overrides", "connectors", "vibe-design"}
	languages  = []string{"English", "한국어", "中文"}
	tagPool    = []string{"content", "text", "colors", "layout", "design system", "WCAG", "Korean"}
)

func sampleEntries(n int) []prompt.Entry {
	out := make([]prompt.Entry, n)
	for i := range out {
		out[i] = prompt.Entry{
			Slug:     fmt.Sprintf("entry-%02d", i),
			Title:    fmt.Sprintf("Entry %d", i),
			Category: categories[i%len(categories)],
			Language: languages[i%len(languages)],
			Tags:     []string{tagPool[i%len(tagPool)], tagPool[(i+2)%len(tagPool)]},
		}
	}
	return out
}

func randomState(r *rand.Rand) State {
	pick := func(pool []string) []string {
		var out []string
		for _, v := range pool {
			if r.Intn(3) == 0 {
				out = append(out, v)
			}
		}
		return out
	}
	s := State{
		Categories: pick(categories),
		Languages:  pick(languages),
		Tags:       pick(tagPool),
		Page:       1 + r.Intn(3),
	}
	if r.Intn(2) == 0 {
		s.Search = []string{"entry 1", "CONTENT", "colo", "x"}[r.Intn(4)]
	}
	return s
}

var equateEmpty = cmpopts.EquateEmpty()

func TestParseQuery(t *testing.T) {
	q, err := url.ParseQuery("category=annotation,,overrides&language=English&tags=a,b,a&search=Hello%20World&page=3")
	require.NoError(t, err)

	got := ParseQuery(q)
	want := State{
		Categories: []string{"annotation", "overrides"},
		Languages:  []string{"English"},
		Tags:       []string{"a", "b"},
		Search:     "Hello World",
		Page:       3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseQuery mismatch (-want +got):\n%s", diff)
	}
}

func TestParseQueryMissingParams(t *testing.T) {
	got := ParseQuery(url.Values{"page": {"-2"}})
	if diff := cmp.Diff(State{Page: 1}, got, equateEmpty); diff != "" {
		t.Fatalf("unexpected state (-want +got):\n%s", diff)
	}
}

func TestURLOmitsEmptyParams(t *testing.T) {
	assert.Equal(t, "/", State{}.URL("/"))
	assert.Equal(t, "/", State{Page: 1}.URL("/"))

	u := State{Tags: []string{"content"}}.URL("/")
	assert.Equal(t, "/?tags=content", u)
	assert.NotContains(t, u, "category=")

	u = State{Categories: []string{"a", "b"}, Search: "x y", Page: 2}.URL("/")
	assert.Equal(t, "/?category=a%2Cb&page=2&search=x+y", u)
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		s := randomState(r)
		q, err := url.ParseQuery(s.Encode())
		require.NoError(t, err)
		if diff := cmp.Diff(s, ParseQuery(q), equateEmpty); diff != "" {
			t.Fatalf("round trip changed state (-want +got):\n%s", diff)
		}
	}
}

func TestEmptyStateMatchesEverything(t *testing.T) {
	for _, e := range append(sampleEntries(20), prompt.Fallback()...) {
		assert.True(t, Matches(e, State{}), e.Slug)
	}
}

func TestVisiblePageItemsSatisfyMatches(t *testing.T) {
	entries := sampleEntries(40)
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		s := randomState(r)
		p := VisiblePage(entries, s, ListPageSize)
		assert.LessOrEqual(t, len(p.Items), ListPageSize)
		for _, e := range p.Items {
			assert.True(t, Matches(e, s), "entry %s does not match %+v", e.Slug, s)
		}
	}
}

func TestMatchesDimensions(t *testing.T) {
	e := prompt.Entry{
		Title:    "Generate creative color palettes",
		Category: "vibe-design",
		Language: "English",
		Tags:     []string{"colors", "branding"},
	}

	assert.True(t, Matches(e, State{Categories: []string{"annotation", "vibe-design"}}))
	assert.False(t, Matches(e, State{Categories: []string{"annotation"}}))
	assert.False(t, Matches(e, State{Languages: []string{"中文"}}))
	assert.True(t, Matches(e, State{Tags: []string{"nope", "branding"}}), "tags are OR")
	assert.False(t, Matches(e, State{Categories: []string{"vibe-design"}, Tags: []string{"nope"}}), "dimensions are AND")
	assert.True(t, Matches(e, State{Search: "PALETTE"}))
	assert.True(t, Matches(e, State{Search: "brand"}))
	assert.False(t, Matches(e, State{Search: "typography"}))
}

func TestUnknownCategoryNeverMatchesCategoryFilter(t *testing.T) {
	e := prompt.Entry{Category: "design-generation"}
	assert.True(t, Matches(e, State{}))
	for _, c := range categories {
		assert.False(t, Matches(e, State{Categories: []string{c}}))
	}
}

func TestSearchKorean(t *testing.T) {
	korean := prompt.Entry{
		Slug:  "korean-content-generation",
		Title: "한국어 콘텐츠 자동 생성",
		Tags:  []string{"한국어", "콘텐츠", "자동화", "로컬라이제이션"},
	}
	english := prompt.Entry{
		Slug:  "korean-localization",
		Title: "Localized copy",
		Tags:  []string{"localization", "Korean"},
	}

	s := State{Search: "Korean"}
	assert.False(t, Matches(korean, s))
	assert.True(t, Matches(english, s))
	assert.True(t, Matches(english, State{Search: "korean"}))
	assert.True(t, Matches(korean, State{Search: "콘텐츠"}))
}

func TestPaginationBoundary(t *testing.T) {
	entries := sampleEntries(13)

	p := VisiblePage(entries, State{}, 12)
	assert.Equal(t, 2, p.TotalPages)
	assert.Len(t, p.Items, 12)
	assert.True(t, p.HasNext())
	assert.False(t, p.HasPrev())

	p = VisiblePage(entries, State{Page: 2}, 12)
	assert.Len(t, p.Items, 1)
	assert.Equal(t, "entry-12", p.Items[0].Slug)
	assert.Equal(t, []int{1, 2}, p.Numbers())

	p = VisiblePage(entries, State{Page: 5}, 12)
	assert.Empty(t, p.Items)
	assert.Equal(t, 2, p.TotalPages)
}

func TestHugePageNumber(t *testing.T) {
	q := url.Values{ParamPage: {"2305843009213693953"}}
	s := ParseQuery(q)
	require.Equal(t, 2305843009213693953, s.Page)

	p := VisiblePage(sampleEntries(13), s, 12)
	assert.Empty(t, p.Items)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, 13, p.Filtered)

	page, total := Paginate([]string{"a", "b"}, math.MaxInt, ContributorsPageSize)
	assert.Empty(t, page)
	assert.Equal(t, 1, total)
}

func TestNoMatchesHasZeroPages(t *testing.T) {
	p := VisiblePage(sampleEntries(5), State{Search: "zzz"}, 12)
	assert.Zero(t, p.TotalPages)
	assert.Zero(t, p.Filtered)
	assert.Equal(t, 5, p.Total)
	assert.Empty(t, p.Items)
}

func TestTagScenario(t *testing.T) {
	entries := make([]prompt.Entry, 14)
	for i := range entries {
		entries[i] = prompt.Entry{Slug: fmt.Sprintf("p%d", i), Title: fmt.Sprintf("Prompt %d", i), Tags: []string{"misc"}}
		if i%3 == 0 {
			entries[i].Tags = append(entries[i].Tags, "content")
		}
	}

	s := State{}.ToggleTag("content", true)
	assert.Len(t, Filter(entries, s), 5)
	p := VisiblePage(entries, s, ListPageSize)
	assert.Equal(t, 5, p.Filtered)
	assert.Len(t, p.Items, 5)
	assert.Equal(t, 1, p.TotalPages)
}

func TestToggleIdempotence(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		s := randomState(r)
		s.Page = 1
		tag := "fresh-tag"

		back := s.ToggleTag(tag, true).ToggleTag(tag, false)
		if diff := cmp.Diff(s, back, equateEmpty); diff != "" {
			t.Fatalf("toggle on/off changed state (-want +got):\n%s", diff)
		}
	}
}

func TestReducersResetPage(t *testing.T) {
	s := State{Page: 4}
	assert.Equal(t, 1, s.ToggleCategory("annotation", true).Page)
	assert.Equal(t, 1, s.ToggleLanguage("English", true).Page)
	assert.Equal(t, 1, s.ToggleTag("colors", true).Page)
	assert.Equal(t, 1, s.WithSearch("x").Page)
	assert.Equal(t, 1, s.FlipTag("x").Page)
	assert.Equal(t, 2, s.WithPage(2).Page)
}

func TestReducersDoNotMutate(t *testing.T) {
	s := State{Tags: []string{"a", "b", "c"}}
	_ = s.ToggleTag("b", false)
	_ = s.ToggleTag("d", true)
	assert.Equal(t, []string{"a", "b", "c"}, s.Tags)
}

func TestToggleAppendsAndRemoves(t *testing.T) {
	s := State{}.ToggleCategory("b", true).ToggleCategory("a", true).ToggleCategory("b", true)
	assert.Equal(t, []string{"b", "a"}, s.Categories)

	s = s.ToggleCategory("b", false)
	assert.Equal(t, []string{"a"}, s.Categories)

	s = s.FlipCategory("a")
	assert.Empty(t, s.Categories)
	assert.False(t, s.Active())
}

func TestPaginateGeneric(t *testing.T) {
	logins := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}

	page, total := Paginate(logins, 2, ContributorsPageSize)
	assert.Equal(t, []string{"i", "j"}, page)
	assert.Equal(t, 2, total)

	page, total = Paginate([]string{}, 1, ContributorsPageSize)
	assert.Empty(t, page)
	assert.Zero(t, total)
}

func TestAllTags(t *testing.T) {
	entries := []prompt.Entry{
		{Tags: []string{"b", "a"}},
		{Tags: []string{"a", "c"}},
	}
	assert.Equal(t, []string{"b", "a", "c"}, AllTags(entries))
}

func TestResetDimension(t *testing.T) {
	s := State{Categories: []string{"a"}, Languages: []string{"English"}, Tags: []string{"x"}, Search: "q", Page: 3}

	got := s.ResetTags()
	want := State{Categories: []string{"a"}, Languages: []string{"English"}, Search: "q", Page: 1}
	if diff := cmp.Diff(want, got, equateEmpty); diff != "" {
		t.Fatalf("ResetTags (-want +got):\n%s", diff)
	}
	assert.Empty(t, s.ResetCategories().Categories)
	assert.Empty(t, s.ResetLanguages().Languages)
	assert.Equal(t, []string{"x"}, s.Tags)
	assert.Equal(t, "/", s.Clear().URL("/"))
}

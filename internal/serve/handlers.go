package serve

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"promptgallery/internal/app"
	"promptgallery/internal/domain/prompt"
	"promptgallery/internal/gallery"
	"promptgallery/internal/index"
	"promptgallery/internal/render"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	snap := s.current()
	state := gallery.ParseQuery(r.URL.Query())
	// empty or reordered parameters, e.g. from the search form
	if r.URL.RawQuery != state.Encode() {
		http.Redirect(w, r, state.URL("/"), http.StatusFound)
		return
	}

	htmlBytes, err := s.tpl.RenderHome(r.Context(), s.present.Home(snap.entries, state))
	if err != nil {
		s.renderError(w, "home", err)
		return
	}
	writeHTML(w, htmlBytes)
}

func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	e, err := s.idx.GetEntry(chi.URLParam(r, "slug"))
	if errors.Is(err, index.ErrNotFound) {
		s.handleNotFound(w, r)
		return
	}
	if err != nil {
		s.renderError(w, "prompt lookup", err)
		return
	}
	if notModified(w, r, s.current().fingerprint.ETag()) {
		return
	}

	page, err := s.present.Prompt(e)
	if err != nil {
		s.renderError(w, "prompt markdown", err)
		return
	}
	htmlBytes, err := s.tpl.RenderPrompt(r.Context(), page)
	if err != nil {
		s.renderError(w, "prompt", err)
		return
	}
	writeHTML(w, htmlBytes)
}

func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	stats, err := s.idx.TagStats()
	if err != nil {
		s.renderError(w, "tags query", err)
		return
	}
	total, err := s.idx.Count()
	if err != nil {
		s.renderError(w, "tags query", err)
		return
	}

	htmlBytes, err := s.tpl.RenderTags(r.Context(), s.present.Tags(facetCounts(stats), total))
	if err != nil {
		s.renderError(w, "tags overview", err)
		return
	}
	writeHTML(w, htmlBytes)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.idx.CategoryStats()
	if err != nil {
		s.renderError(w, "categories query", err)
		return
	}
	langs, err := s.idx.LanguageStats()
	if err != nil {
		s.renderError(w, "categories query", err)
		return
	}
	total, err := s.idx.Count()
	if err != nil {
		s.renderError(w, "categories query", err)
		return
	}

	page := s.present.Categories(facetCounts(cats), facetCounts(langs), total)
	htmlBytes, err := s.tpl.RenderCategories(r.Context(), page)
	if err != nil {
		s.renderError(w, "categories overview", err)
		return
	}
	writeHTML(w, htmlBytes)
}

func facetCounts(stats []index.FacetStat) []render.FacetCount {
	out := make([]render.FacetCount, 0, len(stats))
	for _, st := range stats {
		out = append(out, render.FacetCount{Name: st.Name, Count: st.Count})
	}
	return out
}

// handleContributors answers 204 whenever there is nothing to show, so the
// page script drops the section.
func (s *Server) handleContributors(w http.ResponseWriter, r *http.Request) {
	if s.contrib == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	res := s.contrib.Get(r.Context())
	if res.Empty() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	page := gallery.ParseQuery(r.URL.Query()).CurrentPage()
	frag := s.present.ContributorsFragment(res.Contributors, page, s.contributorsURL)
	if len(frag.Contributors) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	htmlBytes, err := s.tpl.RenderContributors(r.Context(), frag)
	if err != nil {
		s.renderError(w, "contributors", err)
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=300")
	writeHTML(w, htmlBytes)
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	routes, err := s.routes.BuildRoutes()
	if err != nil {
		s.renderError(w, "sitemap routes", err)
		return
	}
	body, err := app.Sitemap(s.cfg.Site.SiteURL, routes)
	if err != nil {
		s.renderError(w, "sitemap", err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(body)
}

type apiPromptResponse struct {
	prompt.Entry
	URL    string `json:"url"`
	Prompt string `json:"prompt"`
	HowTo  string `json:"how_to"`
}

func (s *Server) handleAPIList(w http.ResponseWriter, r *http.Request) {
	snap := s.current()
	if notModified(w, r, snap.fingerprint.ETag()) {
		return
	}
	page := gallery.VisiblePage(snap.entries, gallery.ParseQuery(r.URL.Query()), s.cfg.Gallery.PageSize)
	if page.Items == nil {
		page.Items = []prompt.Entry{}
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleAPIPrompt(w http.ResponseWriter, r *http.Request) {
	e, err := s.idx.GetEntry(chi.URLParam(r, "slug"))
	if errors.Is(err, index.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "prompt not found")
		return
	}
	if err != nil {
		s.logger.Error("api prompt lookup failed", zap.Error(err))
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if notModified(w, r, s.current().fingerprint.ETag()) {
		return
	}
	sec := e.Sections()
	writeJSON(w, http.StatusOK, apiPromptResponse{
		Entry:  e,
		URL:    render.PromptURL(e.Slug),
		Prompt: sec.Prompt,
		HowTo:  sec.HowTo,
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	htmlBytes, err := s.tpl.RenderNotFound(r.Context(), s.present.NotFound(r.URL.Path))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(htmlBytes)
}

func (s *Server) renderError(w http.ResponseWriter, what string, err error) {
	s.logger.Error("render failed", zap.String("view", what), zap.Error(err))
	http.Error(w, "render "+what+" error", http.StatusInternalServerError)
}

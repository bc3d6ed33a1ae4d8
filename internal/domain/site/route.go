// Package site names the public routes of the gallery.
package site

import (
	"fmt"
	"net/url"
	"strings"
)

type RouteKind string

const (
	RouteList       RouteKind = "list"
	RoutePrompt     RouteKind = "prompt"
	RouteTags       RouteKind = "tags"
	RouteCategories RouteKind = "categories"
	RouteSitemap    RouteKind = "sitemap"
	RouteNotFound   RouteKind = "404"
)

type Route struct {
	Kind RouteKind
	Slug string
	Path string
}

// PromptRoute is the detail route of one prompt.
func PromptRoute(slug string) Route {
	return Route{Kind: RoutePrompt, Slug: slug, Path: "/prompts/" + url.PathEscape(slug)}
}

// URL joins the route path onto an absolute base such as
// "https://example.com".
func (r Route) URL(base string) string {
	return strings.TrimRight(base, "/") + r.Path
}

func (r Route) String() string {
	parts := []string{string(r.Kind)}
	if r.Slug != "" {
		parts = append(parts, "slug="+r.Slug)
	}
	if r.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", r.Path))
	}
	return strings.Join(parts, " ")
}

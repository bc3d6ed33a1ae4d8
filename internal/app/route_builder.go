// Package app assembles site-wide outputs from the index.
package app

import (
	"promptgallery/internal/domain/site"
	"promptgallery/internal/index"
)

type RouteBuilder struct {
	Index *index.Store
}

// BuildPageRoutes lists the fixed pages that belong in the sitemap.
func (rb *RouteBuilder) BuildPageRoutes() []site.Route {
	return []site.Route{
		{Kind: site.RouteList, Path: "/"},
		{Kind: site.RouteTags, Path: "/tags"},
		{Kind: site.RouteCategories, Path: "/categories"},
	}
}

// BuildPromptRoutes lists one detail route per indexed prompt, in collection
// order.
func (rb *RouteBuilder) BuildPromptRoutes() ([]site.Route, error) {
	slugs, err := rb.Index.Slugs()
	if err != nil {
		return nil, err
	}
	routes := make([]site.Route, 0, len(slugs))
	for _, slug := range slugs {
		routes = append(routes, site.PromptRoute(slug))
	}
	return routes, nil
}

func (rb *RouteBuilder) BuildRoutes() ([]site.Route, error) {
	prompts, err := rb.BuildPromptRoutes()
	if err != nil {
		return nil, err
	}
	return append(rb.BuildPageRoutes(), prompts...), nil
}

package app

import (
	"encoding/xml"

	"promptgallery/internal/domain/site"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap renders routes as a sitemaps.org urlset under baseURL.
func Sitemap(baseURL string, routes []site.Route) ([]byte, error) {
	set := urlSet{XMLNS: sitemapNS}
	for _, r := range routes {
		u := sitemapURL{Loc: r.URL(baseURL)}
		switch r.Kind {
		case site.RouteList:
			u.ChangeFreq, u.Priority = "daily", "1.0"
		case site.RoutePrompt:
			u.ChangeFreq, u.Priority = "weekly", "0.8"
		default:
			u.ChangeFreq, u.Priority = "weekly", "0.5"
		}
		set.URLs = append(set.URLs, u)
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

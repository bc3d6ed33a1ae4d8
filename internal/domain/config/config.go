package config

import (
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	domainerr "promptgallery/internal/domain/errors"
	"promptgallery/internal/domain/prompt"
)

type Config struct {
	Site         SiteConfig         `yaml:"site"`
	Build        BuildConfig        `yaml:"build"`
	Server       ServerConfig       `yaml:"server"`
	Gallery      GalleryConfig      `yaml:"gallery"`
	Contributors ContributorsConfig `yaml:"contributors"`
}

type SiteConfig struct {
	Title       string     `yaml:"title"`
	Brand       string     `yaml:"brand"`
	Description string     `yaml:"description"`
	SiteURL     string     `yaml:"site_url"`
	Theme       string     `yaml:"theme"`
	Language    string     `yaml:"language"`
	RepoURL     string     `yaml:"repo_url"`
	SubmitURL   string     `yaml:"submit_url"`
	Hero        HeroConfig `yaml:"hero"`
	Resources   []Link     `yaml:"resources"`
	Credits     []Credit   `yaml:"credits"`
	Community   []Link     `yaml:"community"`
}

type HeroConfig struct {
	Badge       string   `yaml:"badge"`
	Headline    string   `yaml:"headline"`
	Rotating    []string `yaml:"rotating"`
	Playgrounds []Link   `yaml:"playgrounds"`
	TutorialURL string   `yaml:"tutorial_url"`
}

type Link struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

type Credit struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type BuildConfig struct {
	SourceDir string `yaml:"source_dir"`
	ThemeDir  string `yaml:"theme_dir"`
	IndexPath string `yaml:"index_path"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	Watch        bool          `yaml:"watch"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type GalleryConfig struct {
	PageSize             int               `yaml:"page_size"`
	ContributorsPageSize int               `yaml:"contributors_page_size"`
	DefaultLanguage      string            `yaml:"default_language"`
	Languages            []string          `yaml:"languages"`
	Categories           []prompt.Category `yaml:"categories"`
}

type ContributorsConfig struct {
	Enabled     bool          `yaml:"enabled"`
	APIURL      string        `yaml:"api_url"`
	Repo        string        `yaml:"repo"`
	Timeout     time.Duration `yaml:"timeout"`
	TTL         time.Duration `yaml:"ttl"`
	Concurrency int           `yaml:"concurrency"`
}

func Default() Config {
	return Config{
		Site: SiteConfig{
			Title:       "Figma MCP Magic - Prompt Collection",
			Brand:       "MCP Magic",
			Description: "A curated collection of powerful prompts for Figma MCP (Model Context Protocol). Transform your design workflow with AI-powered automation.",
			SiteURL:     "http://localhost:8080",
			Theme:       "default",
			Language:    "en",
			RepoURL:     "https://github.com/dusskapark/figma-mcp-prompts",
			SubmitURL:   "https://github.com/dusskapark/figma-mcp-prompts/blob/main/CONTRIBUTING.md",
			Hero: HeroConfig{
				Badge:    "Figma MCP Integration",
				Headline: "Automate Your",
				Rotating: []string{"Design Workflow", "Design Tasks", "Annotations", "Handoff", "Documentation", "with MCP"},
				Playgrounds: []Link{
					{Title: "English Playground", URL: "https://www.figma.com/community/file/1513760524697897204"},
					{Title: "한국어 플레이그라운드", URL: "https://www.figma.com/community/file/1513759391089024242"},
				},
				TutorialURL: "https://youtube.com/playlist?list=PLLQlZaiiGlHOdfqGoErLQaMaDPZdHARVV",
			},
			Resources: []Link{
				{Title: "English Playground", URL: "https://www.figma.com/community/file/1513760524697897204", Description: "Try MCP prompts in English Figma playground"},
				{Title: "한국어 플레이그라운드", URL: "https://www.figma.com/community/file/1513759391089024242", Description: "한국어 Figma 플레이그라운드에서 MCP 프롬프트 체험"},
				{Title: "Tutorial Videos", URL: "https://youtube.com/playlist?list=PLLQlZaiiGlHOdfqGoErLQaMaDPZdHARVV", Description: "Watch step-by-step tutorials on YouTube"},
			},
			Credits: []Credit{
				{Name: "Jude", URL: "https://www.linkedin.com/in/dusskapark/"},
				{Name: "Lucy", URL: "https://www.linkedin.com/in/yu-chi-tan/"},
			},
			Community: []Link{
				{Title: "Friends of Figma Seoul", URL: "https://friends.figma.com/seoul/"},
				{Title: "Friends of Figma Taiwan", URL: "https://friends.figma.com/taiwan/"},
			},
		},
		Build: BuildConfig{
			SourceDir: "src/content/prompts",
			ThemeDir:  "themes",
			IndexPath: ".promptgallery/index.db",
		},
		Server: ServerConfig{
			Addr:         ":8080",
			Watch:        true,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Gallery: GalleryConfig{
			PageSize:             12,
			ContributorsPageSize: 8,
			DefaultLanguage:      "English",
			Languages:            []string{"English", "한국어", "中文"},
			Categories:           prompt.DefaultCategories(),
		},
		Contributors: ContributorsConfig{
			Enabled:     true,
			APIURL:      "https://api.github.com",
			Repo:        "FigmaAI/figma-mcp-prompts",
			Timeout:     10 * time.Second,
			TTL:         time.Hour,
			Concurrency: 4,
		},
	}
}

func (c Config) Validate() error {
	var ve domainerr.ValidationError

	if strings.TrimSpace(c.Site.Title) == "" {
		ve.Add("site.title", "must not be empty")
	}

	if strings.TrimSpace(c.Site.SiteURL) == "" {
		ve.Add("site.site_url", "must not be empty")
	} else if !isValidAbsURL(c.Site.SiteURL) {
		ve.Add("site.site_url", "must be a valid absolute URL")
	}

	if strings.TrimSpace(c.Site.Theme) == "" {
		ve.Add("site.theme", "must not be empty")
	}

	if strings.TrimSpace(c.Build.SourceDir) == "" {
		ve.Add("build.source_dir", "must not be empty")
	}
	if strings.TrimSpace(c.Build.IndexPath) == "" {
		ve.Add("build.index_path", "must not be empty")
	}

	if strings.TrimSpace(c.Server.Addr) == "" {
		ve.Add("server.addr", "must not be empty")
	}

	if c.Gallery.PageSize <= 0 {
		ve.Add("gallery.page_size", "must be positive")
	}
	if c.Gallery.ContributorsPageSize <= 0 {
		ve.Add("gallery.contributors_page_size", "must be positive")
	}
	if strings.TrimSpace(c.Gallery.DefaultLanguage) == "" {
		ve.Add("gallery.default_language", "must not be empty")
	}
	seen := make(map[string]struct{}, len(c.Gallery.Categories))
	for i, cat := range c.Gallery.Categories {
		if strings.TrimSpace(cat.ID) == "" {
			ve.Addf("gallery.categories", "entry %d has an empty id", i)
			continue
		}
		if _, dup := seen[cat.ID]; dup {
			ve.Addf("gallery.categories", "duplicate id %q", cat.ID)
		}
		seen[cat.ID] = struct{}{}
	}

	if c.Contributors.Enabled {
		if !isValidAbsURL(c.Contributors.APIURL) {
			ve.Add("contributors.api_url", "must be a valid absolute URL")
		}
		if owner, repo, ok := strings.Cut(c.Contributors.Repo, "/"); !ok || owner == "" || repo == "" {
			ve.Add("contributors.repo", "must be in owner/name form")
		}
		if c.Contributors.Concurrency <= 0 {
			ve.Add("contributors.concurrency", "must be positive")
		}
	}

	if ve.HasAny() {
		return ve
	}
	return nil
}

func isValidAbsURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// Load overlays path on Default, applies environment overrides and validates.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// fields present in the file replace defaults, the rest stay
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	case os.IsNotExist(err):
	default:
		return cfg, err
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

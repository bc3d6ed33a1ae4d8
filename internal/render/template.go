package render

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed all:theme
var embedded embed.FS

var requiredTemplates = []string{
	"home.tmpl",
	"prompt.tmpl",
	"tags.tmpl",
	"categories.tmpl",
	"404.tmpl",
	"contributors.tmpl",
}

// DefaultTheme is the theme compiled into the binary.
func DefaultTheme() fs.FS {
	sub, err := fs.Sub(embedded, "theme/default")
	if err != nil {
		panic(err)
	}
	return sub
}

// ThemeFS returns themeDir/themeName when it exists on disk and the embedded
// default theme otherwise.
func ThemeFS(themeDir, themeName string) (fs.FS, bool, error) {
	if themeDir == "" || themeName == "" {
		return DefaultTheme(), false, nil
	}
	dir := filepath.Join(themeDir, themeName)
	st, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return DefaultTheme(), false, nil
	case err != nil:
		return nil, false, err
	case !st.IsDir():
		return nil, false, fmt.Errorf("theme %s is not a directory", dir)
	}
	return os.DirFS(dir), true, nil
}

// StaticFS is the static/ subtree of a theme.
func StaticFS(theme fs.FS) (fs.FS, error) {
	return fs.Sub(theme, "static")
}

type TemplateRenderer struct {
	tpl *template.Template
}

func NewTemplateRenderer(theme fs.FS) (*TemplateRenderer, error) {
	if err := CheckThemeTemplates(theme); err != nil {
		return nil, err
	}
	tpl, err := template.New("").Funcs(templateFuncs()).ParseFS(theme, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{tpl: tpl}, nil
}

var categoryIcons = map[string]string{
	"wand":           "✨",
	"message-square": "💬",
	"refresh-cw":     "🔄",
	"git-branch":     "🔀",
	"palette":        "🎨",
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"nowYear": func() int {
			return time.Now().Year()
		},
		"add":       func(a, b int) int { return a + b },
		"sub":       func(a, b int) int { return a - b },
		"join":      strings.Join,
		"promptURL": PromptURL,
		"icon": func(name string) string {
			if s, ok := categoryIcons[name]; ok {
				return s
			}
			return "•"
		},
	}
}

func (r *TemplateRenderer) RenderHome(ctx context.Context, page HomePage) ([]byte, error) {
	return r.exec("home.tmpl", page)
}

func (r *TemplateRenderer) RenderPrompt(ctx context.Context, page PromptPage) ([]byte, error) {
	return r.exec("prompt.tmpl", page)
}

func (r *TemplateRenderer) RenderTags(ctx context.Context, page TagsPage) ([]byte, error) {
	return r.exec("tags.tmpl", page)
}

func (r *TemplateRenderer) RenderCategories(ctx context.Context, page CategoriesPage) ([]byte, error) {
	return r.exec("categories.tmpl", page)
}

func (r *TemplateRenderer) RenderNotFound(ctx context.Context, page NotFoundPage) ([]byte, error) {
	return r.exec("404.tmpl", page)
}

func (r *TemplateRenderer) RenderContributors(ctx context.Context, frag ContributorsFragment) ([]byte, error) {
	return r.exec("contributors.tmpl", frag)
}

func (r *TemplateRenderer) exec(name string, data any) ([]byte, error) {
	t := r.tpl.Lookup(name)
	if t == nil {
		return nil, fmt.Errorf("template %s not found", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func CheckThemeTemplates(theme fs.FS) error {
	var missing []string
	for _, name := range requiredTemplates {
		if _, err := fs.Stat(theme, "templates/"+name); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing templates: %s", strings.Join(missing, ", "))
	}
	return nil
}

package ingest

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var errNoFrontMatter = errors.New("no front matter found")
var errInvalidFrontMatter = errors.New("invalid front matter")

type FrontMatter struct {
	Title    string   `yaml:"title" toml:"title"`
	Slug     string   `yaml:"slug" toml:"slug"`
	Category string   `yaml:"category" toml:"category"`
	Language string   `yaml:"language" toml:"language"`
	Tags     []string `yaml:"tags" toml:"tags"`
}

// ParseFrontMatter splits raw into front matter and body. "---" fences hold
// YAML, "+++" fences hold TOML. Without a fence the whole input is the body
// and errNoFrontMatter is returned.
func ParseFrontMatter(raw []byte) (FrontMatter, []byte, error) {
	norm := bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	norm = bytes.ReplaceAll(norm, []byte("\r"), []byte("\n"))
	norm = bytes.TrimLeft(norm, "\n\t ")
	if len(norm) == 0 {
		return FrontMatter{}, nil, errNoFrontMatter
	}

	var sep string
	switch {
	case bytes.HasPrefix(norm, []byte("---\n")):
		sep = "---"
	case bytes.HasPrefix(norm, []byte("+++\n")):
		sep = "+++"
	default:
		return FrontMatter{}, bytes.TrimSpace(norm), errNoFrontMatter
	}

	rest := norm[len(sep)+1:]
	var head, body []byte

	if parts := bytes.SplitN(rest, []byte("\n"+sep+"\n"), 2); len(parts) == 2 {
		head, body = parts[0], parts[1]
	} else if bytes.HasSuffix(rest, []byte("\n"+sep)) {
		// front matter only, no body
		head = rest[:len(rest)-len(sep)-1]
	} else if bytes.Equal(bytes.TrimSpace(rest), []byte(sep)) {
		head = nil
	} else {
		return FrontMatter{}, nil, errInvalidFrontMatter
	}

	var fm FrontMatter
	if head = bytes.TrimSpace(head); len(head) > 0 {
		var err error
		if sep == "+++" {
			err = toml.Unmarshal(head, &fm)
		} else {
			err = yaml.Unmarshal(head, &fm)
		}
		if err != nil {
			return FrontMatter{}, nil, err
		}
	}
	return fm, bytes.TrimSpace(body), nil
}

// ResolveSlug picks the front matter slug, else the file name. A file named
// index.* takes its directory name, matching <slug>/index.mdoc layouts.
func ResolveSlug(fm FrontMatter, rel string) string {
	if s := strings.TrimSpace(fm.Slug); s != "" {
		return slugify(s)
	}
	rel = path.Clean(strings.ReplaceAll(rel, "\\", "/"))
	base := path.Base(rel)
	name := strings.TrimSuffix(base, path.Ext(base))
	if strings.EqualFold(name, "index") {
		if dir := path.Base(path.Dir(rel)); dir != "." && dir != "/" {
			name = dir
		}
	}
	return slugify(name)
}

func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func slugify(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var out []rune
	lastDash := false

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]

		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if 'A' <= r && r <= 'Z' {
				r = r + ('a' - 'A')
			}
			out = append(out, r)
			lastDash = false
		case r == '_':
			out = append(out, r)
			lastDash = false
		default:
			if !lastDash && len(out) > 0 {
				out = append(out, '-')
				lastDash = true
			}
		}
	}
	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}

// Package contributors fetches the repository's contributor list from the
// GitHub REST API and caches it for the contributors section.
package contributors

import (
	"strings"
	"time"
)

type Contributor struct {
	ID            int64  `json:"id"`
	Login         string `json:"login"`
	Name          string `json:"name"`
	AvatarURL     string `json:"avatar_url"`
	HTMLURL       string `json:"html_url"`
	Contributions int    `json:"contributions"`
	Type          string `json:"type"`
}

// DisplayName is the profile name, or the login when the profile has none.
func (c Contributor) DisplayName() string {
	if n := strings.TrimSpace(c.Name); n != "" {
		return n
	}
	return c.Login
}

// Initials are the first two runes of the display name, upper-cased, for the
// avatar placeholder.
func (c Contributor) Initials() string {
	r := []rune(c.DisplayName())
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

// ShowHandle reports whether the @login badge adds anything to the name.
func (c Contributor) ShowHandle() bool {
	return c.DisplayName() != c.Login
}

// Result is either a list of contributors or the error that prevented
// fetching it.
type Result struct {
	Contributors []Contributor
	Err          error
	FetchedAt    time.Time
}

func (r Result) OK() bool { return r.Err == nil }

// Empty reports whether there is nothing to render.
func (r Result) Empty() bool { return r.Err != nil || len(r.Contributors) == 0 }

// apiContributor mirrors one item of GET /repos/{owner}/{repo}/contributors.
type apiContributor struct {
	ID            int64  `json:"id"`
	Login         string `json:"login"`
	AvatarURL     string `json:"avatar_url"`
	HTMLURL       string `json:"html_url"`
	Contributions int    `json:"contributions"`
	Type          string `json:"type"`
}

// apiUser mirrors the fields used from GET /users/{login}.
type apiUser struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

func convertContributor(ac apiContributor, name string) Contributor {
	if strings.TrimSpace(name) == "" {
		name = ac.Login
	}
	return Contributor{
		ID:            ac.ID,
		Login:         ac.Login,
		Name:          name,
		AvatarURL:     ac.AvatarURL,
		HTMLURL:       ac.HTMLURL,
		Contributions: ac.Contributions,
		Type:          ac.Type,
	}
}

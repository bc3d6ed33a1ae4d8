package prompt

import (
	"regexp"
	"strings"
	"unicode"
)

type Sections struct {
	Prompt string
	HowTo  string
}

var sectionSplit = regexp.MustCompile(`(?m)^# `)

// ParseSections splits a body on level-1 headings. The heading line, lowercased
// with whitespace removed, is the key; only "prompt", "howtouse" and "howto"
// are kept. Later duplicates replace earlier ones.
func ParseSections(body string) Sections {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	parsed := make(map[string]string)
	for _, chunk := range sectionSplit.Split(body, -1) {
		if chunk == "" {
			continue
		}
		lines := strings.Split(strings.TrimSpace(chunk), "\n")
		key := sectionKey(lines[0])
		parsed[key] = strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}

	howTo, ok := parsed["howtouse"]
	if !ok || howTo == "" {
		howTo = parsed["howto"]
	}
	return Sections{
		Prompt: parsed["prompt"],
		HowTo:  howTo,
	}
}

func sectionKey(line string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, line)
}

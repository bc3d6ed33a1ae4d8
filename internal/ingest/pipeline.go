package ingest

import (
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"promptgallery/internal/domain/prompt"
)

type Warning struct {
	Path string
	Msg  string
}

type Result struct {
	Entry prompt.Entry
	Rel   string
	Warns []Warning
	Skip  bool
	Err   error
}

type Options struct {
	SourceDir       string
	DefaultLanguage string
}

// Ingest reads every prompt file under opt.SourceDir. Files with broken front
// matter or no usable slug are skipped with a warning; an unreadable
// directory or file fails the whole run.
func Ingest(opt Options) ([]prompt.Entry, []Warning, error) {
	files, err := DiscoverSource(opt.SourceDir)
	if err != nil {
		return nil, nil, err
	}

	workers := runtime.GOMAXPROCS(0)
	jobs := make(chan SourceFile)
	results := make(chan Result)

	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sf := range jobs {
				results <- parseFile(sf, opt.DefaultLanguage)
			}
		}()
	}

	go func() {
		for _, f := range files {
			jobs <- f
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var (
		collected []Result
		warns     []Warning
		firstErr  error
	)
	for r := range results {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		warns = append(warns, r.Warns...)
		if r.Skip {
			continue
		}
		collected = append(collected, r)
	}
	if firstErr != nil {
		return nil, nil, firstErr
	}

	sort.Slice(collected, func(i, j int) bool { return collected[i].Rel < collected[j].Rel })
	sort.SliceStable(warns, func(i, j int) bool { return warns[i].Path < warns[j].Path })

	seen := make(map[string]struct{}, len(collected))
	out := make([]prompt.Entry, 0, len(collected))
	for _, r := range collected {
		if _, ok := seen[r.Entry.Slug]; ok {
			warns = append(warns, Warning{Path: r.Entry.SourcePath, Msg: "duplicate slug, skipped: " + r.Entry.Slug})
			continue
		}
		seen[r.Entry.Slug] = struct{}{}
		out = append(out, r.Entry)
	}
	return out, warns, nil
}

func parseFile(sf SourceFile, defaultLanguage string) Result {
	raw, err := os.ReadFile(sf.Path)
	if err != nil {
		return Result{Err: err}
	}

	fm, body, fmErr := ParseFrontMatter(raw)
	var warns []Warning
	if fmErr != nil && fmErr != errNoFrontMatter {
		warns = append(warns, Warning{
			Path: sf.Path,
			Msg:  "failed to parse front matter: " + fmErr.Error(),
		})
		return Result{Warns: warns, Skip: true}
	}

	slug := ResolveSlug(fm, sf.Rel)
	if slug == "" {
		warns = append(warns, Warning{Path: sf.Path, Msg: "empty slug"})
		return Result{Warns: warns, Skip: true}
	}

	e := prompt.Entry{
		Slug:        slug,
		Title:       fm.Title,
		Category:    fm.Category,
		Language:    fm.Language,
		Tags:        fm.Tags,
		Content:     string(body),
		SourcePath:  sf.Path,
		ContentHash: HashBytes(raw),
	}
	e.Normalize(defaultLanguage)
	if strings.TrimSpace(e.Title) == "" {
		warns = append(warns, Warning{Path: sf.Path, Msg: "title is empty"})
	}
	return Result{Entry: e, Rel: sf.Rel, Warns: warns}
}

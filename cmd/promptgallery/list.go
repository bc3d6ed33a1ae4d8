package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"promptgallery/internal/gallery"
	"promptgallery/internal/ingest"
)

var (
	listCategories []string
	listLanguages  []string
	listTags       []string
	listSearch     string
	listPage       int
	listJSON       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List prompts with the gallery filters",
	Long: `Filters the collection exactly as the web list does: values within one
flag are OR-ed, different flags are AND-ed, and --search matches titles and
tags case-insensitively.

Example:
  promptgallery list --category annotation,overrides --tags content`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringSliceVar(&listCategories, "category", nil, "Category ids")
	listCmd.Flags().StringSliceVar(&listLanguages, "language", nil, "Languages")
	listCmd.Flags().StringSliceVar(&listTags, "tags", nil, "Tags")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Search text")
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print JSON instead of a table")
}

func listState() gallery.State {
	s := gallery.State{}
	for _, c := range listCategories {
		s = s.ToggleCategory(strings.TrimSpace(c), true)
	}
	for _, l := range listLanguages {
		s = s.ToggleLanguage(strings.TrimSpace(l), true)
	}
	for _, t := range listTags {
		s = s.ToggleTag(strings.TrimSpace(t), true)
	}
	if listSearch != "" {
		s = s.WithSearch(listSearch)
	}
	return s.WithPage(listPage)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loader := ingest.NewLoader(cfg.Build.SourceDir, cfg.Gallery.DefaultLanguage, logger)
	entries := loader.LoadEntries(rootContext(cmd))
	page := gallery.VisiblePage(entries, listState(), cfg.Gallery.PageSize)

	out := cmd.OutOrStdout()
	if listJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(page)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tTITLE\tCATEGORY\tLANGUAGE\tTAGS")
	for _, e := range page.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Slug, e.Title, e.Category, e.Language, strings.Join(e.Tags, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d of %d prompts, page %d of %d\n", page.Filtered, page.Total, page.Page, max(page.TotalPages, 1))
	return nil
}

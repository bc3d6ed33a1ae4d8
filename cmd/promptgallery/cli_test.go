package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"promptgallery/internal/gallery"
)

func setupWorkspace(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()

	root := t.TempDir()
	source := filepath.Join(root, "prompts")
	files := map[string]string{
		"annotations.md": "---\ntitle: Design annotations\ncategory: annotation\ntags: [review, content]\n---\n# Prompt\nAnnotate every frame.\n\n# How to Use\nSelect a frame.",
		"palettes.md":    "---\ntitle: Creative color palettes\ncategory: vibe-design\nlanguage: 中文\ntags: [colors]\n---\n# Prompt\nGenerate palettes.",
	}
	for name, data := range files {
		require.NoError(t, os.MkdirAll(source, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(source, name), []byte(data), 0o644))
	}

	cfgFile := filepath.Join(root, "site.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("build:\n  source_dir: "+source+"\n"), 0o644))

	configPath = cfgFile
	envFile = ""
	t.Cleanup(func() {
		configPath = "site.yaml"
		envFile = ".env"
		listCategories, listLanguages, listTags, listSearch, listPage, listJSON = nil, nil, nil, "", 1, false
		copyFull = false
	})
}

func testCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestListTable(t *testing.T) {
	setupWorkspace(t)
	cmd, out := testCmd()

	require.NoError(t, runList(cmd, nil))
	assert.Contains(t, out.String(), "SLUG")
	assert.Contains(t, out.String(), "annotations")
	assert.Contains(t, out.String(), "palettes")
	assert.Contains(t, out.String(), "2 of 2 prompts, page 1 of 1")
}

func TestListFiltersJSON(t *testing.T) {
	setupWorkspace(t)
	listLanguages = []string{"中文"}
	listJSON = true
	cmd, out := testCmd()

	require.NoError(t, runList(cmd, nil))
	var page gallery.Page
	require.NoError(t, json.Unmarshal(out.Bytes(), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "palettes", page.Items[0].Slug)
	assert.Equal(t, 2, page.Total)
}

func TestListState(t *testing.T) {
	listCategories = []string{"annotation", "annotation", "overrides"}
	listSearch = "color"
	listPage = 2
	t.Cleanup(func() { listCategories, listSearch, listPage = nil, "", 1 })

	s := listState()
	assert.Equal(t, []string{"annotation", "overrides"}, s.Categories)
	assert.Equal(t, "color", s.Search)
	assert.Equal(t, 2, s.Page)
}

func TestListStateTrimsValues(t *testing.T) {
	listTags = []string{"content", " text ", " ", "content "}
	listLanguages = []string{" 中文"}
	t.Cleanup(func() { listTags, listLanguages = nil, nil })

	s := listState()
	assert.Equal(t, []string{"content", "text"}, s.Tags)
	assert.Equal(t, []string{"中文"}, s.Languages)
}

func TestListHugePage(t *testing.T) {
	setupWorkspace(t)
	listPage = 2305843009213693953
	cmd, out := testCmd()

	require.NoError(t, runList(cmd, nil))
	assert.Contains(t, out.String(), "2 of 2 prompts")
}

func stubClipboard(t *testing.T, err error) *string {
	t.Helper()
	var got string
	prev := writeClipboard
	writeClipboard = func(text string) error {
		got = text
		return err
	}
	t.Cleanup(func() { writeClipboard = prev })
	return &got
}

func TestCopyPromptSection(t *testing.T) {
	setupWorkspace(t)
	got := stubClipboard(t, nil)
	cmd, out := testCmd()

	require.NoError(t, runCopy(cmd, []string{"annotations"}))
	assert.Equal(t, "Annotate every frame.", *got)
	assert.Equal(t, copiedMessage+"\n", out.String())
}

func TestCopyFull(t *testing.T) {
	setupWorkspace(t)
	got := stubClipboard(t, nil)
	copyFull = true
	cmd, _ := testCmd()

	require.NoError(t, runCopy(cmd, []string{"annotations"}))
	assert.Contains(t, *got, "# How to Use")
}

func TestCopyFailures(t *testing.T) {
	setupWorkspace(t)
	stubClipboard(t, errors.New("no clipboard"))
	cmd, _ := testCmd()

	err := runCopy(cmd, []string{"annotations"})
	require.Error(t, err)
	assert.Equal(t, copyFailedMessage, err.Error())

	err = runCopy(cmd, []string{"missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("gallery:\n  page_size: 0\n"), 0o644))
	configPath, envFile = bad, ""
	t.Cleanup(func() { configPath, envFile = "site.yaml", ".env" })

	_, err := loadConfig()
	assert.Error(t, err)
}

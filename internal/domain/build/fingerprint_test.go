package build

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"promptgallery/internal/domain/prompt"
)

func TestRenderHashDependsOnEveryInput(t *testing.T) {
	base := New("c", "t", "k")
	assert.Len(t, base.RenderHash, 64)
	assert.True(t, New("c2", "t", "k").Changed(base))
	assert.True(t, New("c", "t2", "k").Changed(base))
	assert.True(t, New("c", "t", "k2").Changed(base))
	assert.False(t, New("c", "t", "k").Changed(base))
	assert.True(t, New("ct", "", "k").Changed(New("c", "t", "k")))
}

func TestETag(t *testing.T) {
	fp := New("c", "t", "k")
	tag := fp.ETag()
	assert.Len(t, tag, 18)
	assert.Equal(t, `"`+fp.RenderHash[:16]+`"`, tag)
	assert.Equal(t, `""`, Fingerprint{}.ETag())
}

func TestHashEntries(t *testing.T) {
	a := []prompt.Entry{{Slug: "a", ContentHash: "1"}, {Slug: "b", Title: "B"}}
	b := []prompt.Entry{{Slug: "b", Title: "B"}, {Slug: "a", ContentHash: "1"}}
	assert.Equal(t, HashEntries(a), HashEntries(a))
	assert.NotEqual(t, HashEntries(a), HashEntries(b), "order matters")

	changed := []prompt.Entry{{Slug: "a", ContentHash: "2"}, {Slug: "b", Title: "B"}}
	assert.NotEqual(t, HashEntries(a), HashEntries(changed))
}

func TestHashFS(t *testing.T) {
	fsys := fstest.MapFS{
		"layout.html":     {Data: []byte("<html>")},
		"partials/x.html": {Data: []byte("x")},
	}
	h1, err := HashFS(fsys)
	require.NoError(t, err)

	fsys["partials/x.html"] = &fstest.MapFile{Data: []byte("y")}
	h2, err := HashFS(fsys)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestHashValue(t *testing.T) {
	h1, err := HashValue(map[string]int{"a": 1})
	require.NoError(t, err)
	h2, err := HashValue(map[string]int{"a": 2})
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

package control_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/docnav/internal/control"
	"github.com/ja-he/docnav/internal/site"
)

const sidebar = `
title: rovr docs
root: content
sidebar:
  - label: overview
    slug: overview
  - label: guides
    items:
      - label: long
        slug: guides/long
      - label: missing
        slug: guides/missing
`

func write(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// longPage has 42 lines, matching "needle" on lines 7 and 32.
func longPage() string {
	lines := []string{"---", "title: Long", "next: false", "---", "# Long", ""}
	for i := 0; i < 40; i++ {
		if i == 5 || i == 30 {
			lines = append(lines, "a needle here")
		} else {
			lines = append(lines, fmt.Sprintf("line %d", i))
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func setup(t *testing.T, framed bool) (string, *control.Viewer) {
	t.Helper()
	dir := t.TempDir()
	write(t, filepath.Join(dir, "sidebar.yaml"), sidebar)
	write(t, filepath.Join(dir, "content", "overview.md"), "# Overview\n\nshort\n")
	write(t, filepath.Join(dir, "content", "guides", "long.md"), longPage())

	s, err := site.Load(filepath.Join(dir, "sidebar.yaml"))
	require.NoError(t, err)
	return dir, control.NewViewer(s, framed, zerolog.Nop())
}

func TestOpen(t *testing.T) {
	_, v := setup(t, true)

	require.NoError(t, v.OpenFirst())
	assert.Equal(t, "overview", v.Page.Slug)
	n, of := v.Position()
	assert.Equal(t, 1, n)
	assert.Equal(t, 3, of)

	assert.Error(t, v.Open("nope"))
	assert.Equal(t, "overview", v.Page.Slug)

	t.Run("missing page shows a notice", func(t *testing.T) {
		require.NoError(t, v.Open("guides/missing"))
		v.Layout(80, 20)
		text := []string{}
		for _, r := range v.Rows() {
			text = append(text, r.Text)
		}
		assert.Contains(t, strings.Join(text, "\n"), "There is no file for 'guides/missing'")
	})

	t.Run("neighbours honor opt-outs", func(t *testing.T) {
		require.NoError(t, v.Open("overview"))
		prev, next := v.Neighbours()
		assert.Nil(t, prev)
		require.NotNil(t, next)
		assert.Equal(t, "guides/long", next.Slug)

		require.NoError(t, v.Open("guides/long"))
		prev, next = v.Neighbours()
		require.NotNil(t, prev)
		assert.Equal(t, "overview", prev.Slug)
		assert.Nil(t, next)
	})
}

func TestContainers(t *testing.T) {
	t.Run("framed", func(t *testing.T) {
		_, v := setup(t, true)
		require.NoError(t, v.Open("guides/long"))
		v.Layout(42, 20)
		assert.Len(t, v.Rows(), 42)

		c := v.ScrollableContainer()
		assert.Same(t, v.Frame(), c)
		assert.Equal(t, "content frame", c.Describe())
		assert.Equal(t, 17, c.Scroll.Viewport())
		assert.False(t, v.PageContainer().Scroll.Overflows())

		v.ScrollToBottom()
		assert.Equal(t, 25, c.Scroll.Top())
		v.ScrollPages(-0.5)
		assert.Equal(t, 16, c.Scroll.Top())
		v.ScrollToTop()
		assert.Equal(t, 0, c.Scroll.Top())
	})

	t.Run("unframed", func(t *testing.T) {
		_, v := setup(t, false)
		require.NoError(t, v.Open("guides/long"))
		v.Layout(42, 20)

		c := v.ScrollableContainer()
		assert.Same(t, v.PageContainer(), c)
		assert.Equal(t, "page", c.Describe())
		v.ScrollToBottom()
		assert.Equal(t, 25, c.Scroll.Top())
	})

	t.Run("nothing overflows", func(t *testing.T) {
		_, v := setup(t, true)
		require.NoError(t, v.Open("overview"))
		v.Layout(42, 20)

		c := v.ScrollableContainer()
		assert.Same(t, v.PageContainer(), c)
		assert.False(t, c.Scroll.ScrollBy(3))
	})

	t.Run("opening a page scrolls to the top", func(t *testing.T) {
		_, v := setup(t, true)
		require.NoError(t, v.Open("guides/long"))
		v.Layout(42, 20)
		v.ScrollToBottom()
		require.NoError(t, v.Open("guides/long"))
		v.Layout(42, 20)
		assert.Equal(t, 0, v.Frame().Scroll.Top())
	})
}

func TestSearch(t *testing.T) {
	_, v := setup(t, true)
	require.NoError(t, v.Open("guides/long"))
	v.Layout(42, 20)
	frame := v.Frame().Scroll

	assert.Equal(t, 2, v.SetSearch("NEEDLE"))
	assert.Equal(t, []int{7, 32}, v.Search.Matches)
	assert.Equal(t, 0, v.Search.Current)
	assert.Equal(t, 0, frame.Top())
	assert.True(t, v.IsMatch(32))
	assert.False(t, v.IsMatch(8))

	v.NextMatch()
	assert.Equal(t, 1, v.Search.Current)
	assert.Equal(t, 16, frame.Top())

	v.NextMatch()
	assert.Equal(t, 0, v.Search.Current)
	assert.Equal(t, 7, frame.Top())

	v.PrevMatch()
	assert.Equal(t, 1, v.Search.Current)
	assert.Equal(t, 16, frame.Top())

	assert.Equal(t, 0, v.SetSearch("absent"))
	v.NextMatch()
	assert.Equal(t, -1, v.Search.Current)
}

func TestReload(t *testing.T) {
	dir, v := setup(t, true)
	require.NoError(t, v.Open("overview"))
	v.Layout(42, 20)
	assert.Len(t, v.Rows(), 3)

	write(t, filepath.Join(dir, "content", "overview.md"), "# Overview\n\nshort\n\nand more\n")
	v.Reload()
	assert.Len(t, v.Rows(), 5)

	t.Run("replacing the site keeps the page", func(t *testing.T) {
		s, err := site.Load(filepath.Join(dir, "sidebar.yaml"))
		require.NoError(t, err)
		require.NoError(t, v.ReplaceSite(s))
		assert.Equal(t, "overview", v.Page.Slug)
		assert.Same(t, s, v.Site)
	})

	t.Run("replacing the site without the page opens the first", func(t *testing.T) {
		require.NoError(t, v.Open("guides/long"))
		s, err := site.Parse([]byte("sidebar:\n  - label: overview\n    slug: overview\n"), filepath.Join(dir, "content"), "inline")
		require.NoError(t, err)
		require.NoError(t, v.ReplaceSite(s))
		assert.Equal(t, "overview", v.Page.Slug)
	})
}

func TestToggleSidebar(t *testing.T) {
	_, v := setup(t, true)
	assert.True(t, v.SidebarVisible)
	v.ToggleSidebar()
	assert.False(t, v.SidebarVisible)
}

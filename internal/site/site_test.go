package site_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/docnav/internal/site"
)

const sidebar = `
title: rovr docs
root: content
sidebar:
  - label: overview
    slug: overview
  - label: get started
    items:
      - label: installation
        slug: get-started/installation
      - label: first steps
        slug: get-started/first-steps
  - label: GitHub
    link: https://github.com/NSPC911/rovr
  - label: reference
    collapsed: true
    items:
      - label: keybindings
        slug: reference/keybindings
`

func write(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func setupSite(t *testing.T) (dir string, s *site.Site) {
	t.Helper()
	dir = t.TempDir()
	write(t, filepath.Join(dir, "sidebar.yaml"), sidebar)
	write(t, filepath.Join(dir, "content", "overview.md"), "# Overview\n")
	write(t, filepath.Join(dir, "content", "get-started", "installation.mdx"), "# Installation\n")
	write(t, filepath.Join(dir, "content", "reference", "keybindings", "index.md"), "# Keybindings\n")

	s, err := site.Load(filepath.Join(dir, "sidebar.yaml"))
	require.NoError(t, err)
	return dir, s
}

func TestLoad(t *testing.T) {
	dir, s := setupSite(t)

	assert.Equal(t, "rovr docs", s.Title)
	assert.Equal(t, filepath.Join(dir, "content"), s.Root)

	slugs := []string{}
	for _, p := range s.Pages() {
		slugs = append(slugs, p.Slug)
	}
	assert.Equal(t, []string{
		"overview",
		"get-started/installation",
		"get-started/first-steps",
		"reference/keybindings",
	}, slugs)

	t.Run("resolution", func(t *testing.T) {
		assert.Equal(t, filepath.Join(dir, "content", "overview.md"), s.Page("overview").Path)
		assert.Equal(t, filepath.Join(dir, "content", "get-started", "installation.mdx"), s.Page("get-started/installation").Path)
		assert.Equal(t, filepath.Join(dir, "content", "reference", "keybindings", "index.md"), s.Page("reference/keybindings").Path)
		assert.False(t, s.Page("get-started/first-steps").Resolved())
	})

	t.Run("trail", func(t *testing.T) {
		assert.Empty(t, s.Page("overview").Trail)
		assert.Equal(t, []string{"get started"}, s.Page("get-started/installation").Trail)
	})

	t.Run("kinds", func(t *testing.T) {
		assert.Equal(t, site.KindPage, s.Sidebar[0].Kind())
		assert.Equal(t, site.KindGroup, s.Sidebar[1].Kind())
		assert.Equal(t, site.KindLink, s.Sidebar[2].Kind())
		assert.True(t, s.Sidebar[3].Collapsed)
	})

	t.Run("lookup", func(t *testing.T) {
		assert.Nil(t, s.Page("nope"))
		assert.Equal(t, -1, s.IndexOf("nope"))
		assert.Equal(t, 1, s.IndexOf("/get-started/installation/"))
	})
}

func TestNeighbours(t *testing.T) {
	_, s := setupSite(t)

	prev, next := s.Neighbours("overview")
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "get-started/installation", next.Slug)

	prev, next = s.Neighbours("get-started/first-steps")
	assert.Equal(t, "get-started/installation", prev.Slug)
	assert.Equal(t, "reference/keybindings", next.Slug)

	prev, next = s.Neighbours("reference/keybindings")
	assert.Equal(t, "get-started/first-steps", prev.Slug)
	assert.Nil(t, next)

	prev, next = s.Neighbours("nope")
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestInvalid(t *testing.T) {
	for name, data := range map[string]string{
		"no kind":         "sidebar:\n  - label: x\n",
		"two kinds":       "sidebar:\n  - label: x\n    slug: a\n    link: https://example.com\n",
		"duplicate slugs": "sidebar:\n  - slug: a\n  - items:\n      - slug: a\n",
		"not yaml":        "sidebar: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := site.Parse([]byte(data), t.TempDir(), name)
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := site.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestWatcher(t *testing.T) {
	dir, s := setupSite(t)
	overview := s.Page("overview").Path

	changes := make(chan string, 16)
	w, err := site.NewWatcher(zerolog.Nop(), func(path string) { changes <- path })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Set(s.Source, overview))
	assert.True(t, w.Watching(overview))

	// writes to unwatched files in a watched directory are not reported
	write(t, filepath.Join(dir, "content", "other.md"), "# Other\n")
	write(t, overview, "# Overview, changed\n")

	select {
	case path := <-changes:
		assert.Equal(t, filepath.Clean(overview), path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	require.NoError(t, w.Set(s.Source))
	assert.False(t, w.Watching(overview))

	t.Run("sidebar loaded through unclean path", func(t *testing.T) {
		unclean, err := site.Load(dir + string(filepath.Separator) + "." + string(filepath.Separator) + "sidebar.yaml")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "sidebar.yaml"), unclean.Source)

		require.NoError(t, w.Set(unclean.Source))
		write(t, filepath.Join(dir, "sidebar.yaml"), sidebar)

		// earlier writes to the page may still be queued
		timeout := time.After(5 * time.Second)
		for {
			select {
			case path := <-changes:
				if path == unclean.Source {
					return
				}
			case <-timeout:
				t.Fatal("no change reported for the sidebar")
			}
		}
	})
}

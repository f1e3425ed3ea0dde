package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/docnav/internal/config"
	"github.com/ja-he/docnav/internal/control"
	"github.com/ja-he/docnav/internal/control/action"
	"github.com/ja-he/docnav/internal/input"
	"github.com/ja-he/docnav/internal/keynav"
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
`

func setupSite(t *testing.T) *site.Site {
	t.Helper()
	dir := t.TempDir()
	for path, content := range map[string]string{
		"sidebar.yaml":                        sidebar,
		"content/overview.md":                 "# Overview\n",
		"content/get-started/installation.md": "# Installation\n\nRun the installer.\n",
	} {
		full := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	s, err := site.Load(filepath.Join(dir, "sidebar.yaml"))
	require.NoError(t, err)
	return s
}

func newHost(t *testing.T) (*host, *[]string) {
	t.Helper()
	v := control.NewViewer(setupSite(t), true, zerolog.Nop())
	require.NoError(t, v.OpenFirst())
	v.Layout(60, 20)

	activated := []string{}
	h := &host{
		viewer:    v,
		editing:   func() bool { return false },
		activate:  func(p *site.Page) { activated = append(activated, p.Slug) },
		scheduler: newManualScheduler(),
	}
	return h, &activated
}

func TestHost(t *testing.T) {
	t.Run("pagination targets", func(t *testing.T) {
		h, activated := newHost(t)

		prev, next := h.PaginationTargets()
		assert.Nil(t, prev)
		require.NotNil(t, next)
		assert.Equal(t, "get-started/installation", next.Describe())

		h.Activate(next)
		assert.Equal(t, []string{"get-started/installation"}, *activated)
	})

	t.Run("scrollable container", func(t *testing.T) {
		h, _ := newHost(t)
		c := h.ScrollableContainer()
		require.NotNil(t, c)
		assert.Equal(t, "page", c.Describe())

		h.viewer.Page = nil
		assert.Nil(t, h.ScrollableContainer())
	})

	t.Run("focused element", func(t *testing.T) {
		h, _ := newHost(t)
		assert.False(t, h.FocusedElement().Editable())
		h.editing = func() bool { return true }
		assert.True(t, h.FocusedElement().Editable())
	})

	t.Run("dispatch", func(t *testing.T) {
		h, _ := newHost(t)
		ups, blurs := 0, 0
		h.OnKeyDown(func(input.Key) bool { return false })
		h.OnKeyDown(func(k input.Key) bool { return k.IsRune('x') })
		h.OnKeyUp(func(input.Key) { ups++ })
		h.OnWindowBlur(func() { blurs++ })

		assert.True(t, h.dispatchKeyDown(input.Rune('x')))
		assert.False(t, h.dispatchKeyDown(input.Rune('y')))
		h.dispatchKeyUp(input.Rune('x'))
		h.dispatchBlur()
		assert.Equal(t, 1, ups)
		assert.Equal(t, 1, blurs)
	})
}

func TestInterpreterThroughHost(t *testing.T) {
	t.Run("chord activates next page", func(t *testing.T) {
		h, activated := newHost(t)
		i := keynav.New(h, zerolog.Nop())
		i.Install(h)

		assert.True(t, h.dispatchKeyDown(input.Rune(']')))
		assert.True(t, h.dispatchKeyDown(input.Rune(']')))
		assert.Equal(t, []string{"get-started/installation"}, *activated)
	})

	t.Run("editing bypasses", func(t *testing.T) {
		h, activated := newHost(t)
		h.editing = func() bool { return true }
		i := keynav.New(h, zerolog.Nop())
		i.Install(h)

		assert.False(t, h.dispatchKeyDown(input.Rune(']')))
		assert.False(t, h.dispatchKeyDown(input.Rune(']')))
		assert.Empty(t, *activated)
	})
}

func TestResolveMappings(t *testing.T) {
	actions := map[input.Actionspec]action.Action{
		"quit":       action.Named("quit", func() {}),
		"scroll-top": action.Named("scroll to top", func() {}),
	}

	t.Run("valid", func(t *testing.T) {
		result, warnings, err := resolveMappings(map[input.Keyspec]input.Actionspec{
			"q":  "quit",
			"gg": "scroll-top",
			"x":  config.NoAction,
			"j":  "quit",
			"]x": "quit",
		}, actions)
		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Contains(t, result, input.Keyspec("q"))
		assert.Contains(t, result, input.Keyspec("gg"))
		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "']x'")
		assert.Contains(t, warnings[1], "'j'")
	})

	t.Run("unknown action", func(t *testing.T) {
		_, _, err := resolveMappings(map[input.Keyspec]input.Actionspec{"q": "explode"}, actions)
		assert.Error(t, err)
	})

	t.Run("invalid keyspec", func(t *testing.T) {
		_, _, err := resolveMappings(map[input.Keyspec]input.Actionspec{"<nonsense>": "quit"}, actions)
		assert.Error(t, err)
	})

	t.Run("defaults resolve", func(t *testing.T) {
		c := &Controller{viewer: control.NewViewer(setupSite(t), true, zerolog.Nop())}
		keys := config.Default(config.Dark).Keys

		viewer, warnings, err := resolveMappings(keys.Viewer, c.viewerActions())
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Len(t, viewer, len(keys.Viewer))

		prompt, _, err := resolveMappings(keys.Prompt, c.promptActions())
		require.NoError(t, err)
		assert.Len(t, prompt, len(keys.Prompt))
	})
}

func TestControllerActions(t *testing.T) {
	c := &Controller{viewer: control.NewViewer(setupSite(t), true, zerolog.Nop())}
	require.NoError(t, c.viewer.OpenFirst())
	c.viewer.Layout(60, 20)

	actions := c.viewerActions()
	actions["toggle-help"].Do()
	assert.True(t, c.showHelp)
	actions["close-overlay"].Do()
	assert.False(t, c.showHelp)

	// prompt actions are no-ops without a prompt
	c.promptActions()["commit"].Do()

	actions["search"].Do()
	require.NotNil(t, c.prompt)
	for _, r := range "overview" {
		c.prompt.AddRune(r)
	}
	c.promptActions()["commit"].Do()
	assert.Nil(t, c.prompt)
	assert.Equal(t, "1 matches for 'overview'", c.message)

	actions["quit"].Do()
	assert.True(t, c.quit)
}

func TestReadConfig(t *testing.T) {
	logs := &bytes.Buffer{}
	previous := log.Logger
	log.Logger = zerolog.New(logs).Level(zerolog.InfoLevel)
	t.Cleanup(func() { log.Logger = previous })

	dir := t.TempDir()
	t.Setenv(config.HomeEnvVar, dir)

	cfg := readConfig(config.Dark)
	assert.Equal(t, config.Default(config.Dark), cfg)
	assert.Empty(t, logs.String(), "a missing config file is not worth a warning")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("sidebar: [unclosed\n"), 0o644))
	cfg = readConfig(config.Dark)
	assert.Equal(t, config.Default(config.Dark), cfg)
	assert.Contains(t, logs.String(), `"level":"warn"`)
}

func TestSidebarPath(t *testing.T) {
	assert.Equal(t, "a.yaml", sidebarPath("a.yaml", config.Config{Sidebar: "b.yaml"}))
	assert.Equal(t, "b.yaml", sidebarPath("", config.Config{Sidebar: "b.yaml"}))
	assert.Equal(t, "sidebar.yaml", sidebarPath("", config.Config{}))
}

func TestWritePages(t *testing.T) {
	s := setupSite(t)
	modified := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for _, p := range s.Pages() {
		if p.Resolved() {
			require.NoError(t, os.Chtimes(p.Path, modified, modified))
		}
	}

	buf := &bytes.Buffer{}
	require.NoError(t, writePages(buf, s, modified.Add(3*time.Minute)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "1  overview "))
	assert.True(t, strings.HasSuffix(lines[0], "overview  [11 B, 3 minutes ago]"))
	assert.True(t, strings.HasSuffix(lines[1], "get started › installation  [35 B, 3 minutes ago]"))
	assert.True(t, strings.HasSuffix(lines[2], "get started › first steps  [missing]"))
}

func TestWriteKeys(t *testing.T) {
	keys := config.Default(config.Dark).Keys
	keys.Viewer["r"] = config.NoAction

	buf := &bytes.Buffer{}
	require.NoError(t, writeKeys(buf, keys))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Keys\n"))
	assert.Contains(t, out, "| `]]` | go to next page |")
	assert.Contains(t, out, "| `j` | scroll down (hold to accelerate) |")
	assert.Contains(t, out, "within 1 s.")
	assert.Contains(t, out, "every 16 ms")
	assert.Contains(t, out, "| `q` | quit |")
	assert.Contains(t, out, "| `<cr>` | commit |")
	assert.NotContains(t, out, "| `r` |")
}

func TestShowVersion(t *testing.T) {
	buf := &bytes.Buffer{}
	showVersion(buf)
	assert.Equal(t, "development (unknown)\n", buf.String())
}

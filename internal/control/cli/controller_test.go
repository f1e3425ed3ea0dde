package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/docnav/internal/config"
	"github.com/ja-he/docnav/internal/input"
	"github.com/ja-he/docnav/internal/site"
	"github.com/ja-he/docnav/internal/styling"
	"github.com/ja-he/docnav/internal/tui"
)

// manualScheduler runs frames, timers and posted callbacks only when told to.
type manualScheduler struct {
	now    time.Time
	frames []func()
	timers []*manualTimer

	// the file watcher posts from its own goroutine
	mtx    sync.Mutex
	posted []func()
}

type manualTimer struct {
	at        time.Time
	f         func()
	cancelled bool
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (s *manualScheduler) RequestFrame(f func()) { s.frames = append(s.frames, f) }

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) (cancel func()) {
	t := &manualTimer{at: s.now.Add(d), f: f}
	s.timers = append(s.timers, t)
	return func() { t.cancelled = true }
}

func (s *manualScheduler) Now() time.Time { return s.now }

func (s *manualScheduler) Post(f func()) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.posted = append(s.posted, f)
	return nil
}

func (s *manualScheduler) Run(ev *tcell.EventInterrupt) bool {
	f, ok := ev.Data().(func())
	if ok {
		f()
	}
	return ok
}

// advance moves time forward, firing the timers that become due.
func (s *manualScheduler) advance(d time.Duration) {
	s.now = s.now.Add(d)
	for i := 0; i < len(s.timers); i++ {
		t := s.timers[i]
		if !t.cancelled && !t.at.After(s.now) {
			t.cancelled = true
			t.f()
		}
	}
}

// frame runs the callbacks requested for the next frame, one frame interval
// later.
func (s *manualScheduler) frame() {
	s.now = s.now.Add(tui.FrameInterval * 2)
	frames := s.frames
	s.frames = nil
	for _, f := range frames {
		f()
	}
}

const longSidebar = `
title: long docs
root: content
sidebar:
  - label: first
    slug: first
  - label: second
    slug: second
`

// setupLongSite writes a site whose first page is longer than the screen and
// returns the directory it is in.
func setupLongSite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	lines := []string{"# First"}
	for i := 0; i < 80; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	for path, content := range map[string]string{
		"sidebar.yaml":      longSidebar,
		"content/first.md":  strings.Join(lines, "\n") + "\n",
		"content/second.md": "# Second\n",
	} {
		full := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return dir
}

func newTestController(t *testing.T, sidebarPath string) (*Controller, *manualScheduler) {
	t.Helper()
	s, err := site.Load(sidebarPath)
	require.NoError(t, err)

	cfg := config.Default(config.Dark)
	stylesheet, err := styling.NewStylesheetFromConfig(cfg.Stylesheet)
	require.NoError(t, err)

	renderer, err := tui.NewScreenHandler(tcell.NewSimulationScreen("UTF-8"))
	require.NoError(t, err)

	sched := newManualScheduler()
	c, err := newController(ControllerOptions{
		Site:       s,
		Framed:     true,
		Keys:       cfg.Keys,
		Stylesheet: *stylesheet,
	}, renderer, sched, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(c.shutdown)

	c.draw()
	return c, sched
}

func TestControllerKeys(t *testing.T) {
	press := func(c *Controller, keys string) {
		for _, r := range keys {
			c.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
			c.draw()
		}
	}

	t.Run("chord navigates without reaching the key map", func(t *testing.T) {
		c, _ := newTestController(t, filepath.Join(setupLongSite(t), "sidebar.yaml"))

		press(c, "]]")
		assert.Equal(t, "second", c.viewer.Page.Slug)
		assert.False(t, c.quit)
		assert.Equal(t, rune(0), c.interpreter.Pending())
	})

	t.Run("mismatched chord key falls through to the key map", func(t *testing.T) {
		c, _ := newTestController(t, filepath.Join(setupLongSite(t), "sidebar.yaml"))

		press(c, "]q")
		assert.Equal(t, "first", c.viewer.Page.Slug)
		assert.True(t, c.quit)
	})

	t.Run("consumed key abandons key map sequence", func(t *testing.T) {
		c, _ := newTestController(t, filepath.Join(setupLongSite(t), "sidebar.yaml"))
		scroll := c.viewer.ScrollableContainer().Scroll
		require.True(t, scroll.Overflows())

		press(c, "G")
		bottom := scroll.Offset()
		require.Greater(t, bottom, 0.0)

		press(c, "gjg")
		assert.Equal(t, bottom, scroll.Offset())

		press(c, "gg")
		assert.Equal(t, 0.0, scroll.Offset())
	})

	t.Run("held motion key scrolls every frame", func(t *testing.T) {
		c, sched := newTestController(t, filepath.Join(setupLongSite(t), "sidebar.yaml"))
		scroll := c.viewer.ScrollableContainer().Scroll

		press(c, "j")
		assert.True(t, c.interpreter.Scroll().Active)
		sched.frame()
		sched.frame()
		assert.Greater(t, scroll.Offset(), 0.0)
	})

	t.Run("synthesized release stops scrolling", func(t *testing.T) {
		c, sched := newTestController(t, filepath.Join(setupLongSite(t), "sidebar.yaml"))
		j := input.Rune('j')

		press(c, "j")
		require.True(t, c.interpreter.Held(j))
		sched.advance(input.DefaultInitialReleaseDelay - time.Millisecond)
		assert.True(t, c.interpreter.Scroll().Active)

		sched.advance(time.Millisecond)
		assert.False(t, c.interpreter.Held(j))
		assert.False(t, c.interpreter.Scroll().Active)
	})

	t.Run("focus loss stops scrolling", func(t *testing.T) {
		c, _ := newTestController(t, filepath.Join(setupLongSite(t), "sidebar.yaml"))

		press(c, "j")
		require.True(t, c.interpreter.Scroll().Active)

		c.handleEvent(tcell.NewEventFocus(true))
		assert.True(t, c.interpreter.Scroll().Active)

		c.handleEvent(tcell.NewEventFocus(false))
		assert.False(t, c.interpreter.Scroll().Active)
		assert.True(t, c.interpreter.Held(input.Rune('j')))
	})

	t.Run("search prompt gets chord keys", func(t *testing.T) {
		c, _ := newTestController(t, filepath.Join(setupLongSite(t), "sidebar.yaml"))

		press(c, "/]]")
		require.NotNil(t, c.prompt)
		assert.Equal(t, "]]", c.prompt.GetContent())
		assert.Equal(t, "first", c.viewer.Page.Slug)
	})

	t.Run("interrupts run on the loop", func(t *testing.T) {
		c, _ := newTestController(t, filepath.Join(setupLongSite(t), "sidebar.yaml"))

		ran := false
		c.handleEvent(tcell.NewEventInterrupt(func() { ran = true }))
		assert.True(t, ran)
	})
}

func TestControllerFileChanged(t *testing.T) {
	dir := setupLongSite(t)
	unclean := dir + string(filepath.Separator) + "." + string(filepath.Separator) + "sidebar.yaml"
	c, _ := newTestController(t, unclean)

	t.Run("sidebar", func(t *testing.T) {
		sidebar := filepath.Join(dir, "sidebar.yaml")
		require.NoError(t, os.WriteFile(sidebar, []byte(longSidebar+"  - label: third\n    slug: third\n"), 0o644))

		c.fileChanged(sidebar)
		assert.Len(t, c.viewer.Site.Pages(), 3)
		assert.Equal(t, "first", c.viewer.Page.Slug)
	})

	t.Run("broken sidebar keeps the site", func(t *testing.T) {
		sidebar := filepath.Join(dir, "sidebar.yaml")
		require.NoError(t, os.WriteFile(sidebar, []byte("sidebar: [unclosed\n"), 0o644))

		c.fileChanged(sidebar)
		assert.Len(t, c.viewer.Site.Pages(), 3)
		assert.NotEmpty(t, c.message)
	})

	t.Run("current page", func(t *testing.T) {
		require.NoError(t, os.WriteFile(c.viewer.Page.Path, []byte("# Changed\n"), 0o644))

		c.fileChanged(c.viewer.Page.Path)
		assert.Equal(t, "Changed", c.viewer.Doc.Title())
	})

	t.Run("other file", func(t *testing.T) {
		doc := c.viewer.Doc
		c.fileChanged(filepath.Join(dir, "content", "second.md"))
		assert.Same(t, doc, c.viewer.Doc)
	})
}

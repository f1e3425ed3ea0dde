package cli

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/ja-he/docnav/internal/control"
	"github.com/ja-he/docnav/internal/control/editor"
	"github.com/ja-he/docnav/internal/input"
	"github.com/ja-he/docnav/internal/input/processors"
	"github.com/ja-he/docnav/internal/keynav"
	"github.com/ja-he/docnav/internal/potatolog"
	"github.com/ja-he/docnav/internal/site"
	"github.com/ja-he/docnav/internal/styling"
	"github.com/ja-he/docnav/internal/tui"
	"github.com/ja-he/docnav/internal/ui"
	"github.com/ja-he/docnav/internal/ui/panes"
	"github.com/ja-he/docnav/internal/util"
)

const (
	sidebarMaxWidth = 30
	helpMaxWidth    = 70
	perfWidth       = 50
)

// Controller is the struct for the TUI controller.
// It owns the event loop; everything it holds is only touched from there.
type Controller struct {
	viewer      *control.Viewer
	rootPane    *panes.RootPane
	interpreter *keynav.Interpreter
	host        *host
	release     *input.ReleaseDetector
	scheduler   eventScheduler
	watcher     *site.Watcher
	viewerKeys  *input.Tree

	prompt          editor.StringEditor
	showHelp        bool
	showLog         bool
	showPerformance bool
	message         string
	quit            bool

	renderTimes          util.MetricsHandler
	eventProcessingTimes util.MetricsHandler

	screenEvents      tui.EventPollable
	initializedScreen tui.InitializedScreen
	syncer            tui.ScreenSynchronizer

	log zerolog.Logger
}

// ControllerOptions are the settings the TUI is started with.
type ControllerOptions struct {
	Site       *site.Site
	StartSlug  string
	Framed     bool
	Keys       input.InputConfig
	Stylesheet styling.Stylesheet
}

// eventScheduler is a scheduler whose callbacks the event loop runs.
type eventScheduler interface {
	scheduler
	Post(f func()) error
	Run(ev *tcell.EventInterrupt) bool
}

// NewController creates a new Controller, initializing the screen.
func NewController(opts ControllerOptions, logger zerolog.Logger) (*Controller, error) {
	renderer, err := tui.NewTUIScreenHandler()
	if err != nil {
		return nil, err
	}
	c, err := newController(opts, renderer, tui.NewScheduler(renderer, logger), logger)
	if err != nil {
		renderer.Fini()
		return nil, err
	}
	return c, nil
}

func newController(
	opts ControllerOptions,
	renderer *tui.ScreenHandler,
	sched eventScheduler,
	logger zerolog.Logger,
) (*Controller, error) {
	c := &Controller{
		viewer: control.NewViewer(opts.Site, opts.Framed, logger),
		log:    logger.With().Str("component", "controller").Logger(),
	}

	if opts.StartSlug != "" {
		if err := c.viewer.Open(opts.StartSlug); err != nil {
			return nil, err
		}
	} else if err := c.viewer.OpenFirst(); err != nil {
		return nil, err
	}

	viewerMappings, warnings, err := resolveMappings(opts.Keys.Viewer, c.viewerActions())
	if err != nil {
		return nil, fmt.Errorf("invalid viewer key mappings: %w", err)
	}
	for _, w := range warnings {
		c.log.Warn().Msg(w)
	}
	promptMappings, _, err := resolveMappings(opts.Keys.Prompt, c.promptActions())
	if err != nil {
		return nil, fmt.Errorf("invalid prompt key mappings: %w", err)
	}
	c.viewerKeys, err = input.ConstructInputTree(viewerMappings)
	if err != nil {
		return nil, fmt.Errorf("failed to construct input tree for root pane (%w)", err)
	}
	promptInputProcessor, err := processors.NewTextInputProcessor(promptMappings, func(r rune) {
		if c.prompt != nil {
			c.prompt.AddRune(r)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to construct input processor for prompt (%w)", err)
	}

	cursorWrangler := ui.NewCursorWrangler(renderer, logger)
	stylesheet := opts.Stylesheet

	screenSize := func() (w, h int) { _, _, w, h = renderer.Dimensions(); return }
	screenDimensions := func() (x, y, w, h int) {
		screenWidth, screenHeight := screenSize()
		return 0, 0, screenWidth, screenHeight
	}
	sidebarWidth := func() int {
		if !c.viewer.SidebarVisible {
			return 0
		}
		screenWidth, _ := screenSize()
		return min(sidebarMaxWidth, screenWidth/3)
	}
	sidebarDimensions := func() (x, y, w, h int) {
		_, screenHeight := screenSize()
		return 0, 0, sidebarWidth(), screenHeight - 1
	}
	bodyDimensions := func() (x, y, w, h int) {
		screenWidth, screenHeight := screenSize()
		return sidebarWidth(), 0, screenWidth - sidebarWidth(), screenHeight - 1
	}
	headerDimensions := func() (x, y, w, h int) {
		x, y, w, h = bodyDimensions()
		if c.viewer.Framed {
			return x, y, w, min(control.HeaderHeight, h)
		}
		return x, y, w, h
	}
	documentDimensions := func() (x, y, w, h int) {
		x, y, w, h = bodyDimensions()
		if c.viewer.Framed {
			return x, y + control.HeaderHeight, w, max(h-control.HeaderHeight, 0)
		}
		return x, y, w, h
	}
	statusDimensions := func() (x, y, w, h int) {
		screenWidth, screenHeight := screenSize()
		return 0, screenHeight - 1, screenWidth, 1
	}
	logDimensions := func() (x, y, w, h int) {
		screenWidth, screenHeight := screenSize()
		return 0, 0, screenWidth, screenHeight - 1
	}
	helpContent := func() input.Help {
		help := c.rootPane.GetHelp()
		for k, v := range keynav.Help() {
			help[k] = v
		}
		return help
	}
	helpDimensions := func() (x, y, w, h int) {
		screenWidth, screenHeight := screenSize()
		w = min(helpMaxWidth, screenWidth-4)
		h = min(len(helpContent())+2, screenHeight-2)
		return (screenWidth - w) / 2, (screenHeight - h) / 2, w, h
	}
	perfDimensions := func() (x, y, w, h int) {
		screenWidth, _ := screenSize()
		return max(screenWidth-perfWidth, 0), 0, min(perfWidth, screenWidth), 2
	}

	headerOrigin := func() int {
		if c.viewer.Framed {
			return 0
		}
		return c.viewer.PageContainer().Scroll.Top()
	}
	documentOrigin := func() int {
		if c.viewer.Framed {
			return c.viewer.Frame().Scroll.Top()
		}
		return c.viewer.PageContainer().Scroll.Top() - control.HeaderHeight
	}

	c.rootPane = panes.NewRootPane(
		renderer,
		cursorWrangler,
		screenDimensions,

		panes.NewHeaderPane(
			ui.NewConstrainedRenderer(renderer, headerDimensions),
			headerDimensions,
			stylesheet,
			c.title,
			func() []string {
				if c.viewer.Page == nil {
					return nil
				}
				return append(append([]string{}, c.viewer.Page.Trail...), c.viewer.Page.Label)
			},
			func() string {
				if c.viewer.Doc == nil {
					return ""
				}
				return c.viewer.Doc.Meta.Description
			},
			headerOrigin,
		),
		panes.NewDocumentPane(
			ui.NewConstrainedRenderer(renderer, documentDimensions),
			documentDimensions,
			stylesheet,
			c.viewer.Rows,
			documentOrigin,
			c.viewer.IsMatch,
		),
		panes.NewSidebarPane(
			ui.NewConstrainedRenderer(renderer, sidebarDimensions),
			sidebarDimensions,
			stylesheet,
			func() bool { return c.viewer.SidebarVisible },
			func() []site.Entry { return c.viewer.Site.Sidebar },
			func() string {
				if c.viewer.Page == nil {
					return ""
				}
				return c.viewer.Page.Slug
			},
			c.viewer.SidebarScroll(),
		),
		panes.NewStatusPane(
			ui.NewConstrainedRenderer(renderer, statusDimensions),
			statusDimensions,
			stylesheet,
			c.status,
			time.Now,
		),
		panes.NewLogPane(
			ui.NewConstrainedRenderer(renderer, logDimensions),
			logDimensions,
			stylesheet,
			func() bool { return c.showLog },
			func() string { return "LOG" },
			&potatolog.GlobalMemoryLogReaderWriter,
		),
		panes.NewHelpPane(
			ui.NewConstrainedRenderer(renderer, helpDimensions),
			helpDimensions,
			stylesheet,
			func() bool { return c.showHelp },
			helpContent,
		),
		panes.NewPromptPane(
			ui.NewConstrainedRenderer(renderer, statusDimensions),
			statusDimensions,
			stylesheet,
			processors.NewModalInputProcessor(promptInputProcessor),
			func() editor.StringEditorView {
				if c.prompt == nil {
					return nil
				}
				return c.prompt
			},
			cursorWrangler,
		),
		panes.NewPerfPane(
			ui.NewConstrainedRenderer(renderer, perfDimensions),
			perfDimensions,
			func() bool { return c.showPerformance },
			&c.renderTimes,
			&c.eventProcessingTimes,
		),
		processors.NewModalInputProcessor(c.viewerKeys),
		logger,
	)

	c.scheduler = sched
	c.host = &host{
		viewer:    c.viewer,
		editing:   func() bool { return c.prompt != nil },
		activate:  func(p *site.Page) { c.openPage(p.Slug) },
		scheduler: c.scheduler,
	}
	c.interpreter = keynav.New(c.host, logger.With().Str("component", "keynav").Logger())
	c.interpreter.Install(c.host)
	c.release = input.NewReleaseDetector(c.scheduler, c.host.dispatchKeyUp)

	c.watcher, err = site.NewWatcher(logger, func(path string) {
		if err := c.scheduler.Post(func() { c.fileChanged(path) }); err != nil {
			c.log.Warn().Err(err).Str("file", path).Msg("could not deliver file change")
		}
	})
	if err != nil {
		c.log.Warn().Err(err).Msg("could not watch files, live reload disabled")
		c.watcher = nil
	}
	c.watch()

	c.screenEvents = renderer.GetEventPollable()
	c.initializedScreen = renderer
	c.syncer = renderer

	return c, nil
}

func (c *Controller) title() string {
	if c.viewer.Doc != nil {
		if t := c.viewer.Doc.Title(); t != "" {
			return t
		}
	}
	if c.viewer.Page != nil {
		return c.viewer.Page.Label
	}
	return c.viewer.Site.Title
}

func (c *Controller) status() panes.StatusInfo {
	n, of := c.viewer.Position()
	scroll := c.interpreter.Scroll()
	info := panes.StatusInfo{
		Position:  n,
		Pages:     of,
		Percent:   c.viewer.ScrollableContainer().Scroll.Percent(),
		Pending:   c.interpreter.Pending(),
		Direction: scroll.Direction,
		Speed:     scroll.Speed,
		Message:   c.message,
	}
	if c.viewer.Page != nil {
		info.Slug = c.viewer.Page.Slug
	}
	if c.viewer.Doc != nil {
		info.Modified = c.viewer.Doc.Modified
		info.Size = c.viewer.Doc.Size
	}
	return info
}

func (c *Controller) openPage(slug string) {
	if err := c.viewer.Open(slug); err != nil {
		c.log.Error().Err(err).Msg("could not open page")
		c.message = err.Error()
		return
	}
	c.message = ""
	c.watch()
}

func (c *Controller) reload() {
	c.viewer.Reload()
	c.message = "reloaded"
}

func (c *Controller) openSearch() {
	c.prompt = editor.NewStringEditor(
		"/",
		"",
		func(query string) {
			c.prompt = nil
			n := c.viewer.SetSearch(query)
			switch {
			case query == "":
				c.message = ""
			case n == 0:
				c.message = fmt.Sprintf("no matches for '%s'", query)
			default:
				c.message = fmt.Sprintf("%d matches for '%s'", n, query)
			}
		},
		func() { c.prompt = nil },
	)
}

// watch watches the files of the site and the current page.
func (c *Controller) watch() {
	if c.watcher == nil {
		return
	}
	paths := []string{c.viewer.Site.Source}
	if c.viewer.Page != nil && c.viewer.Page.Resolved() {
		paths = append(paths, c.viewer.Page.Path)
	}
	if err := c.watcher.Set(paths...); err != nil {
		c.log.Warn().Err(err).Msg("could not watch files")
	}
}

func (c *Controller) fileChanged(path string) {
	switch {
	case path == c.viewer.Site.Source:
		s, err := site.Load(path)
		if err != nil {
			c.log.Error().Err(err).Msg("could not reload sidebar, keeping the previous one")
			c.message = "sidebar has errors, see log"
			return
		}
		if err := c.viewer.ReplaceSite(s); err != nil {
			c.log.Error().Err(err).Msg("could not open a page of the reloaded site")
		}
		c.watch()
	case c.viewer.Page != nil && path == c.viewer.Page.Path:
		c.viewer.Reload()
	}
}

func (c *Controller) handleKey(key input.Key) {
	c.release.Press(key)
	if c.host.dispatchKeyDown(key) {
		// a consumed key interrupts any sequence begun in the key map
		c.viewerKeys.Reset()
		return
	}
	if !c.rootPane.ProcessInput(key) {
		c.log.Debug().Str("key", key.ToDebugString()).Msg("could not apply key input")
	}
}

func (c *Controller) handleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		c.handleKey(input.KeyFromTcellEvent(e))
	case *tcell.EventFocus:
		if !e.Focused {
			c.host.dispatchBlur()
		}
	case *tcell.EventResize:
		c.syncer.NeedsSync()
	case *tcell.EventInterrupt:
		if !c.scheduler.Run(e) {
			c.log.Warn().Interface("data", e.Data()).Msg("unhandled interrupt")
		}
	}
}

func (c *Controller) draw() {
	start := time.Now()

	_, _, w, h := c.rootPane.Dimensions()
	sidebar := 0
	if c.viewer.SidebarVisible {
		sidebar = min(sidebarMaxWidth, w/3)
	}
	c.viewer.Layout(w-sidebar, h-1)
	c.rootPane.Draw()

	c.renderTimes.Add(uint64(time.Since(start).Microseconds()))
}

// shutdown stops watching files and finalizes the screen.
func (c *Controller) shutdown() {
	if c.watcher != nil {
		if err := c.watcher.Close(); err != nil {
			c.log.Warn().Err(err).Msg("could not close file watcher")
		}
	}
	c.initializedScreen.Fini()
}

// Run runs the event loop until the user quits.
func (c *Controller) Run() {
	defer c.shutdown()
	c.log.Info().Str("site", c.viewer.Site.Title).Msg("docnav TUI started")

	c.draw()
	for !c.quit {
		ev := c.screenEvents.PollEvent()
		if ev == nil {
			return
		}

		start := time.Now()
		c.handleEvent(ev)
		c.eventProcessingTimes.Add(uint64(time.Since(start).Microseconds()))

		if !c.quit {
			c.draw()
		}
	}
}

// Package control holds the state of the viewer and the operations on it;
// its subpackages drive it from the command line and the terminal.
package control

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ja-he/docnav/internal/document"
	"github.com/ja-he/docnav/internal/site"
	"github.com/ja-he/docnav/internal/ui"
)

// HeaderHeight is the number of rows above the document: the title, the
// trail or description, and a blank separator.
const HeaderHeight = 3

// Container is a region of the viewer that can be scrolled.
type Container struct {
	Name   string
	Scroll *ui.ScrollState
}

// Describe returns the container's name.
func (c *Container) Describe() string { return c.Name }

// PageTarget is a page that can be navigated to.
type PageTarget struct {
	Page *site.Page
}

// Describe returns the target page's slug.
func (t PageTarget) Describe() string { return t.Page.Slug }

// SearchState is the last search and the position among its matches.
type SearchState struct {
	Query   string
	Matches []int
	// Current is the index into Matches last jumped to, -1 before any jump.
	Current int
}

// Viewer is the state of the documentation viewer: the site, the page being
// shown, how it is laid out and how far it is scrolled.
//
// It is not safe for concurrent use.
type Viewer struct {
	Site *site.Site
	Page *site.Page
	Doc  *document.Document

	// Framed selects whether the document scrolls inside its own frame below
	// a fixed header, or together with the header.
	Framed         bool
	SidebarVisible bool

	Search SearchState

	frame   Container
	page    Container
	sidebar ui.ScrollState

	rows      []document.Row
	wrapWidth int

	log zerolog.Logger
}

// NewViewer returns a viewer for the given site, showing nothing until a page
// is opened.
func NewViewer(s *site.Site, framed bool, logger zerolog.Logger) *Viewer {
	v := &Viewer{
		Site:           s,
		Framed:         framed,
		SidebarVisible: true,
		Search:         SearchState{Current: -1},
		log:            logger.With().Str("component", "viewer").Logger(),
	}
	v.frame = Container{Name: "content frame", Scroll: &ui.ScrollState{}}
	v.page = Container{Name: "page", Scroll: &ui.ScrollState{}}
	return v
}

// Open shows the page with the given slug, scrolled to the top.
// Pages without a file, or whose file cannot be read, are shown with a notice
// instead; only an unknown slug is an error.
func (v *Viewer) Open(slug string) error {
	p := v.Site.Page(slug)
	if p == nil {
		return fmt.Errorf("no page with slug '%s'", slug)
	}

	v.Page = p
	v.Doc = v.load(p)
	v.frame.Scroll.ScrollTo(0)
	v.page.Scroll.ScrollTo(0)
	v.relayout()
	v.log.Debug().Str("page", p.Slug).Msg("opened page")
	return nil
}

// OpenFirst opens the first page of the site.
func (v *Viewer) OpenFirst() error {
	pages := v.Site.Pages()
	if len(pages) == 0 {
		return fmt.Errorf("site has no pages")
	}
	return v.Open(pages[0].Slug)
}

// Reload reads the current page again, keeping the scroll position as far as
// the new content allows.
func (v *Viewer) Reload() {
	if v.Page == nil {
		return
	}
	v.Doc = v.load(v.Page)
	v.relayout()
	v.log.Debug().Str("page", v.Page.Slug).Msg("reloaded page")
}

// ReplaceSite swaps in a reloaded site, staying on the current page if it
// still exists and opening the first page otherwise.
func (v *Viewer) ReplaceSite(s *site.Site) error {
	v.Site = s
	if v.Page != nil {
		if p := s.Page(v.Page.Slug); p != nil {
			v.Page = p
			v.Reload()
			return nil
		}
	}
	return v.OpenFirst()
}

func (v *Viewer) load(p *site.Page) *document.Document {
	if !p.Resolved() {
		return document.Placeholder(p.Label, fmt.Sprintf("There is no file for '%s' below '%s'.", p.Slug, v.Site.Root))
	}
	d, err := document.Load(p.Path)
	if err != nil {
		v.log.Error().Err(err).Str("page", p.Slug).Msg("could not load page")
		return document.Placeholder(p.Label, "The page could not be loaded:", err.Error())
	}
	return d
}

// Layout fits the viewer to a body of the given dimensions (the area right of
// the sidebar and above the status bar).
func (v *Viewer) Layout(w, h int) {
	width := max(w-2, 1)
	if width != v.wrapWidth {
		v.wrapWidth = width
		v.relayout()
	}

	if v.Framed {
		v.frame.Scroll.SetExtent(len(v.rows), max(h-HeaderHeight, 0))
		v.page.Scroll.SetExtent(h, h)
	} else {
		v.frame.Scroll.SetExtent(len(v.rows), len(v.rows))
		v.page.Scroll.SetExtent(HeaderHeight+len(v.rows), h)
	}
}

func (v *Viewer) relayout() {
	if v.Doc == nil || v.wrapWidth == 0 {
		v.rows = nil
		return
	}
	v.rows = v.Doc.Wrap(v.wrapWidth)
	v.Search.Matches = document.Search(v.rows, v.Search.Query)
	v.Search.Current = -1
}

// Rows returns the document laid out for the current width.
func (v *Viewer) Rows() []document.Row { return v.rows }

// Frame returns the document's own scroll container.
func (v *Viewer) Frame() *Container { return &v.frame }

// PageContainer returns the scroll container of the whole body, header
// included.
func (v *Viewer) PageContainer() *Container { return &v.page }

// SidebarScroll returns the scroll state of the sidebar.
func (v *Viewer) SidebarScroll() *ui.ScrollState { return &v.sidebar }

// ScrollableContainer returns the container that scrolling applies to: the
// content frame if it overflows, otherwise the page.
func (v *Viewer) ScrollableContainer() *Container {
	if v.Framed && v.frame.Scroll.Overflows() {
		return &v.frame
	}
	return &v.page
}

// Neighbours returns the pages before and after the current one, honoring
// the page's opt-outs. Either is nil where there is none.
func (v *Viewer) Neighbours() (prev, next *site.Page) {
	if v.Page == nil {
		return nil, nil
	}
	prev, next = v.Site.Neighbours(v.Page.Slug)
	if v.Doc != nil {
		if v.Doc.Meta.PrevDisabled() {
			prev = nil
		}
		if v.Doc.Meta.NextDisabled() {
			next = nil
		}
	}
	return prev, next
}

// Position returns the 1-based position of the current page in reading order
// and the number of pages.
func (v *Viewer) Position() (n, of int) {
	if v.Page == nil {
		return 0, len(v.Site.Pages())
	}
	return v.Site.IndexOf(v.Page.Slug) + 1, len(v.Site.Pages())
}

// ScrollToTop scrolls the active container to the top.
func (v *Viewer) ScrollToTop() {
	v.ScrollableContainer().Scroll.ScrollTo(0)
}

// ScrollToBottom scrolls the active container to the bottom.
func (v *Viewer) ScrollToBottom() {
	s := v.ScrollableContainer().Scroll
	s.ScrollTo(s.Max())
}

// ScrollPages scrolls the active container by the given number of viewport
// heights (fractions allowed, negative scrolls up).
func (v *Viewer) ScrollPages(pages float64) {
	s := v.ScrollableContainer().Scroll
	s.ScrollBy(pages * float64(max(s.Viewport(), 1)))
}

// SetSearch searches the document for the query and jumps to the first match.
// Returns the number of matches.
func (v *Viewer) SetSearch(query string) int {
	v.Search = SearchState{
		Query:   query,
		Matches: document.Search(v.rows, query),
		Current: -1,
	}
	if len(v.Search.Matches) > 0 {
		v.NextMatch()
	}
	v.log.Debug().Str("query", query).Int("matches", len(v.Search.Matches)).Msg("searched")
	return len(v.Search.Matches)
}

// NextMatch jumps to the next search match, wrapping around.
func (v *Viewer) NextMatch() { v.stepMatch(+1) }

// PrevMatch jumps to the previous search match, wrapping around.
func (v *Viewer) PrevMatch() { v.stepMatch(-1) }

func (v *Viewer) stepMatch(step int) {
	n := len(v.Search.Matches)
	if n == 0 {
		return
	}
	switch {
	case v.Search.Current < 0 && step < 0:
		v.Search.Current = n - 1
	case v.Search.Current < 0:
		v.Search.Current = 0
	default:
		v.Search.Current = ((v.Search.Current+step)%n + n) % n
	}
	v.reveal(v.Search.Matches[v.Search.Current])
}

// reveal scrolls the given document row into view.
func (v *Viewer) reveal(row int) {
	if v.Framed {
		v.frame.Scroll.Reveal(row)
		return
	}
	v.page.Scroll.Reveal(HeaderHeight + row)
}

// IsMatch reports whether the given document row matches the search.
func (v *Viewer) IsMatch(row int) bool {
	for _, m := range v.Search.Matches {
		if m == row {
			return true
		}
	}
	return false
}

// ToggleSidebar shows or hides the sidebar.
func (v *Viewer) ToggleSidebar() {
	v.SidebarVisible = !v.SidebarVisible
}

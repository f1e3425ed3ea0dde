package panes

import (
	"strings"

	"github.com/ja-he/docnav/internal/site"
	"github.com/ja-he/docnav/internal/styling"
	"github.com/ja-he/docnav/internal/ui"
	"github.com/ja-he/docnav/internal/util"
)

// SidebarItem is a line of the sidebar.
type SidebarItem struct {
	Depth   int
	Label   string
	Kind    site.Kind
	Current bool
}

// SidebarItems flattens the sidebar tree into lines.
// Collapsed groups only show their entries if they contain the current page.
func SidebarItems(entries []site.Entry, current string) []SidebarItem {
	items := []SidebarItem{}
	var walk func(entries []site.Entry, depth int)
	walk = func(entries []site.Entry, depth int) {
		for i := range entries {
			e := &entries[i]
			items = append(items, SidebarItem{
				Depth:   depth,
				Label:   e.Label,
				Kind:    e.Kind(),
				Current: e.Kind() == site.KindPage && e.Slug == current,
			})
			if e.Kind() == site.KindGroup && (!e.Collapsed || contains(e.Items, current)) {
				walk(e.Items, depth+1)
			}
		}
	}
	walk(entries, 0)
	return items
}

func contains(entries []site.Entry, slug string) bool {
	for i := range entries {
		switch entries[i].Kind() {
		case site.KindPage:
			if entries[i].Slug == slug {
				return true
			}
		case site.KindGroup:
			if contains(entries[i].Items, slug) {
				return true
			}
		}
	}
	return false
}

// SidebarPane shows the sidebar of the site, highlighting the current page.
type SidebarPane struct {
	ui.LeafPane

	entries func() []site.Entry
	current func() string
	scroll  *ui.ScrollState
}

// Draw draws this pane.
func (p *SidebarPane) Draw() {
	x, y, w, h := p.Dimensions()
	items := SidebarItems(p.entries(), p.current())

	p.scroll.SetExtent(len(items), h)
	for i := range items {
		if items[i].Current {
			p.scroll.Reveal(i)
		}
	}

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Sidebar)
	top := p.scroll.Top()
	for line := 0; line < h && top+line < len(items); line++ {
		item := items[top+line]
		style := p.Stylesheet.Sidebar
		text := item.Label
		switch {
		case item.Current:
			style = p.Stylesheet.SidebarCurrent
			p.Renderer.DrawBox(x, y+line, w, 1, style)
		case item.Kind == site.KindGroup:
			style = p.Stylesheet.SidebarGroup
		case item.Kind == site.KindLink:
			style = p.Stylesheet.SidebarLink
			text += " ↗"
		}
		indent := 1 + 2*item.Depth
		p.Renderer.DrawText(x+indent, y+line, w-indent, 1, style, util.TruncateAt(strings.TrimSpace(text), w-indent-1))
	}
}

// NewSidebarPane constructs and returns a new SidebarPane.
func NewSidebarPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	visible func() bool,
	entries func() []site.Entry,
	current func() string,
	scroll *ui.ScrollState,
) *SidebarPane {
	return &SidebarPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: visible,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		entries: entries,
		current: current,
		scroll:  scroll,
	}
}

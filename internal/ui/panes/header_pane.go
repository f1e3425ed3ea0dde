package panes

import (
	"strings"

	"github.com/ja-he/docnav/internal/styling"
	"github.com/ja-he/docnav/internal/ui"
	"github.com/ja-he/docnav/internal/util"
)

// HeaderPane shows the title of the current page and where it is located in
// the site (or its description, if it has one).
//
// The header scrolls away with the document when the document has no frame
// of its own; origin returns how many of its rows are scrolled off.
type HeaderPane struct {
	ui.LeafPane

	title       func() string
	trail       func() []string
	description func() string
	origin      func() int
}

// Draw draws this pane.
func (p *HeaderPane) Draw() {
	x, y, w, h := p.Dimensions()
	origin := p.origin()

	lines := []struct {
		style styling.DrawStyling
		text  string
	}{
		{p.Stylesheet.Header.Bolded(), p.title()},
		{p.Stylesheet.Header.DefaultDimmed(), p.secondLine()},
		{p.Stylesheet.Normal, ""},
	}

	for i, line := range lines {
		row := i - origin
		if row < 0 || row >= h {
			continue
		}
		p.Renderer.DrawBox(x, y+row, w, 1, line.style)
		p.Renderer.DrawText(x+1, y+row, w-2, 1, line.style, util.TruncateAt(line.text, w-2))
	}
}

func (p *HeaderPane) secondLine() string {
	if d := p.description(); d != "" {
		return d
	}
	return strings.Join(p.trail(), " › ")
}

// NewHeaderPane constructs and returns a new HeaderPane.
func NewHeaderPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	title func() string,
	trail func() []string,
	description func() string,
	origin func() int,
) *HeaderPane {
	return &HeaderPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		title:       title,
		trail:       trail,
		description: description,
		origin:      origin,
	}
}

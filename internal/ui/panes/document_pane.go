package panes

import (
	"github.com/ja-he/docnav/internal/document"
	"github.com/ja-he/docnav/internal/styling"
	"github.com/ja-he/docnav/internal/ui"
)

// DocumentPane shows the laid out rows of the current page.
//
// origin returns the index of the row shown on the pane's first line; it is
// negative while the document starts further down (e.g. below a header
// scrolling along with it).
type DocumentPane struct {
	ui.LeafPane

	rows    func() []document.Row
	origin  func() int
	isMatch func(row int) bool
}

// Draw draws this pane.
func (p *DocumentPane) Draw() {
	x, y, w, h := p.Dimensions()
	rows := p.rows()
	origin := p.origin()

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)
	for line := 0; line < h; line++ {
		i := origin + line
		if i < 0 || i >= len(rows) {
			continue
		}
		style := p.styleFor(rows[i])
		if p.isMatch(i) {
			style = p.Stylesheet.Match
		}
		p.Renderer.DrawText(x+1, y+line, w-1, 1, style, rows[i].Text)
	}
}

func (p *DocumentPane) styleFor(r document.Row) styling.DrawStyling {
	switch r.Kind {
	case document.KindHeading:
		return p.Stylesheet.ForHeading(r.Level)
	case document.KindFence:
		return p.Stylesheet.Code.DefaultDimmed()
	case document.KindCode:
		return p.Stylesheet.Code
	case document.KindQuote:
		return p.Stylesheet.Quote
	case document.KindListItem:
		return p.Stylesheet.ListItem
	default:
		return p.Stylesheet.Normal
	}
}

// NewDocumentPane constructs and returns a new DocumentPane.
func NewDocumentPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	rows func() []document.Row,
	origin func() int,
	isMatch func(row int) bool,
) *DocumentPane {
	return &DocumentPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		rows:    rows,
		origin:  origin,
		isMatch: isMatch,
	}
}

package panes

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/ja-he/docnav/internal/styling"
	"github.com/ja-he/docnav/internal/ui"
)

// StatusInfo is what the status bar shows.
type StatusInfo struct {
	Position int
	Pages    int
	Slug     string
	Percent  int

	// Pending is the first key of an incomplete chord, 0 if there is none.
	Pending   rune
	Direction int
	Speed     float64

	Modified time.Time
	Size     int64

	Message string
}

// StatusPane is a status bar at the bottom of the screen.
type StatusPane struct {
	ui.LeafPane

	info func() StatusInfo
	now  func() time.Time
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()
	info := p.info()

	bgStyle := p.Stylesheet.Status
	bgStyleEmph := bgStyle.DefaultEmphasized()

	p.Renderer.DrawBox(x, y, w, h, bgStyle)

	position := fmt.Sprintf(" %d/%d ", info.Position, info.Pages)
	p.Renderer.DrawText(x, y, runewidth.StringWidth(position), 1, bgStyleEmph.Bolded(), position)
	left := x + runewidth.StringWidth(position) + 1
	p.Renderer.DrawText(left, y, w-left, 1, bgStyle, info.Slug)
	left += runewidth.StringWidth(info.Slug) + 2
	if info.Message != "" {
		p.Renderer.DrawText(left, y, w-left, 1, bgStyle.Italicized(), info.Message)
	}

	right := x + w
	drawRight := func(text string, style styling.DrawStyling) {
		width := runewidth.StringWidth(text)
		if right-width < left {
			return
		}
		right -= width
		p.Renderer.DrawText(right, y, width, 1, style, text)
		right--
	}

	drawRight(fmt.Sprintf(" %3d%% ", info.Percent), bgStyleEmph)
	if !info.Modified.IsZero() {
		drawRight(fmt.Sprintf("%s, %s", humanize.Bytes(uint64(info.Size)), humanize.RelTime(info.Modified, p.now(), "ago", "from now")), bgStyle.DefaultDimmed())
	}
	if info.Direction != 0 {
		arrow := "↓"
		if info.Direction < 0 {
			arrow = "↑"
		}
		drawRight(fmt.Sprintf("%s %.2fx", arrow, info.Speed), bgStyle)
	}
	if info.Pending != 0 {
		drawRight(" "+string(info.Pending)+" ", p.Stylesheet.StatusPending)
	}
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	info func() StatusInfo,
	now func() time.Time,
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		info: info,
		now:  now,
	}
}

package panes

import (
	"fmt"
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/docnav/internal/potatolog"
	"github.com/ja-he/docnav/internal/styling"
	"github.com/ja-he/docnav/internal/ui"
	"github.com/ja-he/docnav/internal/util"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	ui.LeafPane

	logReader potatolog.LogReader

	titleString func() string
}

// Draw draws the log over top of all previously drawn contents, if it is
// currently active.
func (p *LogPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	row := 2

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.LogDefault)
	title := p.titleString()
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.LogTitleBox)
	p.Renderer.DrawText(x+(w/2-runewidth.StringWidth(title)/2), y, runewidth.StringWidth(title), 1, p.Stylesheet.LogTitleBox, title)

	entries := p.logReader.Get()
	for i := len(entries) - 1; i >= 0 && row < h; i-- {
		entry := entries[i]

		levelLen := len(" error ")
		extraDataIndentWidth := levelLen + 1
		level := str(entry["level"])
		p.Renderer.DrawText(x, y+row, levelLen, 1, p.levelStyle(level), util.PadCenter(level, levelLen))

		col := x + extraDataIndentWidth
		for _, part := range []struct {
			key   string
			style styling.DrawStyling
		}{
			{"message", p.Stylesheet.LogDefault},
			{"caller", p.Stylesheet.LogEntryLocation},
			{"time", p.Stylesheet.LogEntryTime},
		} {
			text := str(entry[part.key])
			if text == "" {
				continue
			}
			p.Renderer.DrawText(col, y+row, x+w-col, 1, part.style, text)
			col += runewidth.StringWidth(text) + 1
		}
		row++

		keys := make([]string, 0, len(entry))
		for k := range entry {
			switch k {
			case "caller", "message", "time", "level":
			default:
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			col := x + extraDataIndentWidth
			p.Renderer.DrawText(col, y+row, w, 1, p.Stylesheet.LogEntryTime, k)
			p.Renderer.DrawText(col+runewidth.StringWidth(k)+2, y+row, w, 1, p.Stylesheet.LogEntryLocation, str(entry[k]))
			row++
		}
	}
}

func (p *LogPane) levelStyle(level string) styling.DrawStyling {
	switch level {
	case "error":
		return p.Stylesheet.LogEntryTypeError
	case "warn":
		return p.Stylesheet.LogEntryTypeWarn
	case "info":
		return p.Stylesheet.LogEntryTypeInfo
	case "debug":
		return p.Stylesheet.LogEntryTypeDebug
	case "trace":
		return p.Stylesheet.LogEntryTypeTrace
	}
	return p.Stylesheet.LogDefault
}

func str(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	titleString func() string,
	logReader potatolog.LogReader,
) *LogPane {
	return &LogPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				Visible: condition,
				ID:      ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		titleString: titleString,
		logReader:   logReader,
	}
}

package panes

import (
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/docnav/internal/input"
	"github.com/ja-he/docnav/internal/styling"
	"github.com/ja-he/docnav/internal/ui"
)

// A HelpPane is a pane that displays a help popup.
// For example, it could display a list of key mappings and their actions.
type HelpPane struct {
	ui.LeafPane

	Content func() input.Help
}

// Draw draws the help popup.
func (p *HelpPane) Draw() {
	if p.IsVisible() {

		x, y, w, h := p.Dimensions()
		p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Help)

		keysDrawn := 0
		const border = 1
		const maxKeyWidth = 20
		const pad = 1
		keyOffset := x + border
		descriptionOffset := keyOffset + maxKeyWidth + pad

		drawMapping := func(keys, description string) {
			keysWidth := runewidth.StringWidth(keys)
			p.Renderer.DrawText(keyOffset+maxKeyWidth-keysWidth, y+border+keysDrawn, keysWidth, 1, p.Stylesheet.Help.DefaultEmphasized().Bolded(), keys)
			p.Renderer.DrawText(descriptionOffset, y+border+keysDrawn, w-(descriptionOffset-x)-border, 1, p.Stylesheet.Help.Italicized(), description)
			keysDrawn++
		}

		help := p.Content()
		content := make([]mappingAndAction, 0, len(help))
		for mapping, action := range help {
			content = append(content, mappingAndAction{mapping: mapping, action: action})
		}
		sort.Sort(byAction(content))
		for i := range content {
			drawMapping(content[i].mapping, content[i].action)
		}

	}
}

type mappingAndAction = struct {
	mapping string
	action  string
}
type byAction []mappingAndAction

func (a byAction) Len() int      { return len(a) }
func (a byAction) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a byAction) Less(i, j int) bool {
	if a[i].action == a[j].action {
		return a[i].mapping < a[j].mapping
	}
	return a[i].action < a[j].action
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	content func() input.Help,
) *HelpPane {
	return &HelpPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		Content: content,
	}
}

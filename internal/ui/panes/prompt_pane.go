package panes

import (
	"github.com/mattn/go-runewidth"

	"github.com/ja-he/docnav/internal/control/editor"
	"github.com/ja-he/docnav/internal/input"
	"github.com/ja-he/docnav/internal/styling"
	"github.com/ja-he/docnav/internal/ui"
)

// PromptPane visualizes the editing of a string (as seen by a
// StringEditorView) in a single line, e.g. for entering a search.
type PromptPane struct {
	ui.LeafPane

	view func() editor.StringEditorView

	cursorController ui.CursorLocationRequestHandler
}

// Draw draws the prompt.
func (p *PromptPane) Draw() {
	if !p.IsVisible() {
		return
	}
	view := p.view()
	x, y, w, h := p.Dimensions()

	prefix := view.GetName()
	prefixWidth := runewidth.StringWidth(prefix)
	content := []rune(view.GetContent())

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Editor)
	p.Renderer.DrawText(x, y, prefixWidth, 1, p.Stylesheet.Editor.Bolded(), prefix)
	p.Renderer.DrawText(x+prefixWidth, y, w-prefixWidth, 1, p.Stylesheet.Editor, string(content))

	cursorX := x + prefixWidth + runewidth.StringWidth(string(content[:view.GetCursorPos()]))
	p.cursorController.Put(ui.CursorLocation{X: cursorX, Y: y}, "prompt")
}

// Undraw ensures that the cursor is hidden.
func (p *PromptPane) Undraw() {
	p.cursorController.Delete("prompt")
}

// NewPromptPane creates a new PromptPane, visible while view returns an
// editor.
func NewPromptPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	inputProcessor input.ModalInputProcessor,
	view func() editor.StringEditorView,
	cursorController ui.CursorLocationRequestHandler,
) *PromptPane {
	return &PromptPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				InputProcessor: inputProcessor,
				Visible:        func() bool { return view() != nil },
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		view:             view,
		cursorController: cursorController,
	}
}

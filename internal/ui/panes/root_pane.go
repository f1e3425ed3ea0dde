// Package panes contains the panes the viewer's screen is made up of.
package panes

import (
	"github.com/rs/zerolog"

	"github.com/ja-he/docnav/internal/input"
	"github.com/ja-he/docnav/internal/ui"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle, invoking the subpanes' rendering, etc.
type RootPane struct {
	ID ui.PaneID

	renderer       ui.RenderOrchestratorControl
	cursorWrangler *ui.CursorWrangler

	dimensions func() (x, y, w, h int)

	headerPane   ui.Pane
	documentPane ui.Pane
	sidebarPane  ui.Pane
	statusPane   ui.Pane

	logPane    ui.Pane
	helpPane   ui.Pane
	promptPane ui.Pane

	performanceMetricsOverlay ui.Pane

	inputProcessor input.ModalInputProcessor

	log zerolog.Logger
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

func (p *RootPane) getCurrentlyActivePanesInOrder() (active []ui.Pane, inactive []ui.Pane) {
	for _, pane := range []ui.Pane{
		p.headerPane,
		p.documentPane,
		p.sidebarPane,
		p.statusPane,
		p.logPane,
		p.helpPane,
		p.promptPane,
	} {
		if pane.IsVisible() {
			active = append(active, pane)
		} else {
			inactive = append(inactive, pane)
		}
	}
	return active, inactive
}

// IsVisible returns true, the root pane is always visible.
func (p *RootPane) IsVisible() bool { return true }

// Draw draws this pane.
func (p *RootPane) Draw() {
	p.renderer.Clear()

	active, inactive := p.getCurrentlyActivePanesInOrder()
	for _, pane := range inactive {
		pane.Undraw()
	}
	for _, pane := range active {
		p.log.Trace().Msgf("drawing %d...", pane.Identify())
		pane.Draw()
	}

	p.performanceMetricsOverlay.Draw()

	// After all drawing draw or hide the cursor, depending on what is requested
	// during the draw of subpanes.
	p.cursorWrangler.Enact()

	p.renderer.Show()
}

// Undraw undraws all subpanes.
func (p *RootPane) Undraw() {
	p.renderer.Clear()

	active, inactive := p.getCurrentlyActivePanesInOrder()
	for _, pane := range append(active, inactive...) {
		pane.Undraw()
	}
	p.performanceMetricsOverlay.Undraw()

	p.renderer.Show()
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
func (p *RootPane) CapturesInput() bool {
	if p.focussedPane().CapturesInput() {
		return true
	}
	return p.inputProcessor.CapturesInput()
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
// Defers to the panes' input processor or its focussed subpanes.
func (p *RootPane) ProcessInput(key input.Key) bool {

	if p.inputProcessor.CapturesInput() {

		return p.inputProcessor.ProcessInput(key)

	} else if p.focussedPane().CapturesInput() {

		return p.focussedPane().ProcessInput(key)

	} else {

		processAttemptResult := p.focussedPane().ProcessInput(key)
		if processAttemptResult {
			return true
		}

		return p.inputProcessor.ProcessInput(key)

	}

}

// Identify returns the root pane's ID.
func (p *RootPane) Identify() ui.PaneID { return p.ID }

// HasFocus returns true, the root pane always has focus.
func (p *RootPane) HasFocus() bool { return true }

// Focusses returns the ID of the focussed subpane.
func (p *RootPane) Focusses() ui.PaneID {
	return p.focussedPane().Identify()
}

// FocusPrev does nothing, focus follows the overlays.
func (p *RootPane) FocusPrev() {}

// FocusNext does nothing, focus follows the overlays.
func (p *RootPane) FocusNext() {}

// FocussedPane returns the pane that currently has focus: the topmost visible
// overlay, or the document.
func (p *RootPane) FocussedPane() ui.Pane {
	return p.focussedPane()
}

func (p *RootPane) focussedPane() ui.Pane {
	switch {
	case p.promptPane.IsVisible():
		return p.promptPane
	case p.helpPane.IsVisible():
		return p.helpPane
	case p.logPane.IsVisible():
		return p.logPane
	default:
		return p.documentPane
	}
}

// SetParent panics, the root pane has no parent.
func (p *RootPane) SetParent(ui.PaneQuerier) { panic("root set parent") }

// ApplyModalOverlay applies an overlay to this processor.
// It returns the processors index, by which in the future, all overlays down
// to and including this overlay can be removed
func (p *RootPane) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	return p.inputProcessor.ApplyModalOverlay(overlay)
}

// PopModalOverlay removes the topmost overlay from this processor.
func (p *RootPane) PopModalOverlay() error {
	return p.inputProcessor.PopModalOverlay()
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *RootPane) PopModalOverlays(index uint) {
	p.inputProcessor.PopModalOverlays(index)
}

// GetHelp returns the input help map for this processor.
func (p *RootPane) GetHelp() input.Help {
	result := input.Help{}

	for k, v := range p.inputProcessor.GetHelp() {
		result[k] = v
	}
	for k, v := range p.focussedPane().GetHelp() {
		result[k] = v
	}

	return result
}

// NewRootPane constructs and returns a new RootPane.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	cursorWrangler *ui.CursorWrangler,
	dimensions func() (x, y, w, h int),
	headerPane ui.Pane,
	documentPane ui.Pane,
	sidebarPane ui.Pane,
	statusPane ui.Pane,
	logPane ui.Pane,
	helpPane ui.Pane,
	promptPane ui.Pane,
	performanceMetricsOverlay ui.Pane,
	inputProcessor input.ModalInputProcessor,
	logger zerolog.Logger,
) *RootPane {
	rootPane := &RootPane{
		ID:                        ui.GeneratePaneID(),
		renderer:                  renderer,
		cursorWrangler:            cursorWrangler,
		dimensions:                dimensions,
		headerPane:                headerPane,
		documentPane:              documentPane,
		sidebarPane:               sidebarPane,
		statusPane:                statusPane,
		logPane:                   logPane,
		helpPane:                  helpPane,
		promptPane:                promptPane,
		performanceMetricsOverlay: performanceMetricsOverlay,
		inputProcessor:            inputProcessor,
		log:                       logger.With().Str("component", "root-pane").Logger(),
	}
	defer rootPane.log.Trace().Msgf("created root pane with id '%d'", rootPane.Identify())

	for _, pane := range []ui.Pane{headerPane, documentPane, sidebarPane, statusPane, logPane, helpPane, promptPane, performanceMetricsOverlay} {
		pane.SetParent(rootPane)
	}

	return rootPane
}

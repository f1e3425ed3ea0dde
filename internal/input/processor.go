package input

// SimpleInputProcessor turns keys into actions, e.g. the viewer's key map or
// the search prompt's line editing.
type SimpleInputProcessor interface {

	// CapturesInput reports whether the processor wants all following input,
	// e.g. because it is in the middle of a sequence like "gg", or because it
	// is the open search prompt.
	CapturesInput() bool

	// ProcessInput handles the key.
	// Returns whether the key applied, i.e. triggered an action or advanced a
	// sequence.
	ProcessInput(key Key) bool

	// GetHelp describes the processor's bindings for the help overlay.
	GetHelp() Help
}

// ModalInputProcessor is a SimpleInputProcessor whose bindings can be
// temporarily replaced by overlays stacked on top of it.
type ModalInputProcessor interface {
	SimpleInputProcessor

	// ApplyModalOverlay puts the overlay on top, where it receives all input.
	// The returned index can be given to PopModalOverlays.
	ApplyModalOverlay(SimpleInputProcessor) (index uint)

	// PopModalOverlay removes the topmost overlay.
	PopModalOverlay() error

	// PopModalOverlays removes the overlay at the index and all above it.
	PopModalOverlays(index uint)
}

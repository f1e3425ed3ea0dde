// Package action contains the actions that key mappings resolve to.
package action

// Action is something the viewer does in response to input, e.g. scrolling
// to the top of the document or opening the search prompt.
type Action interface {
	// Do performs the action.
	Do()

	// Explain returns a short, human-readable description of what Do does, as
	// shown in the help overlay and the generated key reference.
	Explain() string
}

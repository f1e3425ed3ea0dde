package keynav

import (
	"time"

	"github.com/ja-he/docnav/internal/input"
)

// Element is a focus target of the host.
type Element interface {
	// Editable reports whether typing into the element is possible (e.g. a
	// text prompt), in which case the interpreter stays out of the way.
	Editable() bool
}

// Container is something that can be scrolled vertically.
type Container interface {
	Describe() string
}

// Target is something that can be navigated to, e.g. a link to the next
// document.
type Target interface {
	Describe() string
}

// Host is the environment the interpreter operates in.
//
// Lookups may return nil to indicate absence (no focused element, no
// scrollable container, no pagination target), which the interpreter treats
// as a no-op.
type Host interface {
	// FocusedElement returns the element currently holding input focus.
	FocusedElement() Element
	// ScrollableContainer returns the container that currently has overflow,
	// preferring a designated content frame over the page as a whole.
	ScrollableContainer() Container
	// ScrollContainerBy scrolls the given container by the given (possibly
	// fractional) vertical offset.
	ScrollContainerBy(c Container, offset float64)
	// PaginationTargets returns the previous and next targets of the current
	// document.
	PaginationTargets() (prev, next Target)
	// Activate navigates to the target.
	Activate(t Target)

	// RequestFrame schedules f to run before the next repaint.
	RequestFrame(f func())
	// AfterFunc schedules f to run after d and returns a function cancelling
	// it.
	AfterFunc(d time.Duration, f func()) (cancel func())
	// Now returns the current (monotonic) time.
	Now() time.Time
}

// EventSource delivers key and focus events to the handlers subscribed via
// it. A handler for key-down reports whether it consumed the event, i.e.
// whether the default handling should be suppressed.
type EventSource interface {
	OnKeyDown(handler func(input.Key) (consumed bool))
	OnKeyUp(handler func(input.Key))
	OnWindowBlur(handler func())
}

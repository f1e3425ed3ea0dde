package cli

import (
	"time"

	"github.com/ja-he/docnav/internal/control"
	"github.com/ja-he/docnav/internal/input"
	"github.com/ja-he/docnav/internal/keynav"
	"github.com/ja-he/docnav/internal/site"
)

// scheduler delivers frames and timers onto the event loop.
type scheduler interface {
	RequestFrame(f func())
	AfterFunc(d time.Duration, f func()) (cancel func())
	Now() time.Time
}

// focusElement is what holds input focus: the search prompt (editable) or
// the document.
type focusElement struct {
	editable bool
}

func (e focusElement) Editable() bool { return e.editable }

// host exposes the viewer to the key interpreter and dispatches terminal
// events to the handlers the interpreter subscribes.
type host struct {
	viewer    *control.Viewer
	editing   func() bool
	activate  func(*site.Page)
	scheduler scheduler

	keyDown []func(input.Key) bool
	keyUp   []func(input.Key)
	blur    []func()
}

var (
	_ keynav.Host        = &host{}
	_ keynav.EventSource = &host{}
)

func (h *host) FocusedElement() keynav.Element {
	return focusElement{editable: h.editing()}
}

func (h *host) ScrollableContainer() keynav.Container {
	if h.viewer.Page == nil {
		return nil
	}
	return h.viewer.ScrollableContainer()
}

func (h *host) ScrollContainerBy(c keynav.Container, offset float64) {
	if container, ok := c.(*control.Container); ok {
		container.Scroll.ScrollBy(offset)
	}
}

func (h *host) PaginationTargets() (prev, next keynav.Target) {
	p, n := h.viewer.Neighbours()
	if p != nil {
		prev = control.PageTarget{Page: p}
	}
	if n != nil {
		next = control.PageTarget{Page: n}
	}
	return prev, next
}

func (h *host) Activate(t keynav.Target) {
	if target, ok := t.(control.PageTarget); ok {
		h.activate(target.Page)
	}
}

func (h *host) RequestFrame(f func()) { h.scheduler.RequestFrame(f) }

func (h *host) AfterFunc(d time.Duration, f func()) (cancel func()) {
	return h.scheduler.AfterFunc(d, f)
}

func (h *host) Now() time.Time { return h.scheduler.Now() }

func (h *host) OnKeyDown(handler func(input.Key) (consumed bool)) {
	h.keyDown = append(h.keyDown, handler)
}

func (h *host) OnKeyUp(handler func(input.Key)) { h.keyUp = append(h.keyUp, handler) }

func (h *host) OnWindowBlur(handler func()) { h.blur = append(h.blur, handler) }

// dispatchKeyDown hands the key to all key-down handlers.
// Returns whether any of them consumed it.
func (h *host) dispatchKeyDown(k input.Key) (consumed bool) {
	for _, handler := range h.keyDown {
		if handler(k) {
			consumed = true
		}
	}
	return consumed
}

func (h *host) dispatchKeyUp(k input.Key) {
	for _, handler := range h.keyUp {
		handler(k)
	}
}

func (h *host) dispatchBlur() {
	for _, handler := range h.blur {
		handler()
	}
}

// Package keynav interprets keyboard input for vi-style navigation of a
// rendered document: the chords `[[` and `]]` page to the previous and next
// document, and holding `j` or `k` scrolls continuously with acceleration.
//
// The Interpreter owns all of its state and reaches its surroundings only
// through the Host it was constructed with, so any environment that can
// report focus, scroll a container and schedule callbacks can host it.
// All methods, including the callbacks it schedules via the Host, are
// expected to run on one goroutine (the host's event loop).
package keynav

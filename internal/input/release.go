package input

import "time"

// Terminals only report key presses (and auto-repeated presses), never
// releases. These delays decide when a key that stopped repeating counts as
// released.
const (
	// DefaultInitialReleaseDelay covers the typical auto-repeat delay between a
	// press and its first repetition.
	DefaultInitialReleaseDelay = 600 * time.Millisecond
	// DefaultRepeatReleaseDelay covers the gap between two auto-repeats.
	DefaultRepeatReleaseDelay = 120 * time.Millisecond
)

// Timers schedules a callback after a delay and returns a function that
// cancels it.
type Timers interface {
	AfterFunc(d time.Duration, f func()) (cancel func())
}

// ReleaseDetector synthesizes key releases from the presses a terminal
// delivers. Every press (re-)arms a timer for its key; when the timer fires
// without another press of the same key, the key is reported as released.
//
// It is not safe for concurrent use; all calls, including the timer callbacks
// delivered via Timers, are expected on the same goroutine.
type ReleaseDetector struct {
	timers    Timers
	onRelease func(Key)

	initialDelay time.Duration
	repeatDelay  time.Duration

	held map[Key]*heldKey
}

type heldKey struct {
	repeating bool
	cancel    func()
}

// NewReleaseDetector returns a detector reporting releases to onRelease.
func NewReleaseDetector(timers Timers, onRelease func(Key)) *ReleaseDetector {
	return &ReleaseDetector{
		timers:       timers,
		onRelease:    onRelease,
		initialDelay: DefaultInitialReleaseDelay,
		repeatDelay:  DefaultRepeatReleaseDelay,
		held:         map[Key]*heldKey{},
	}
}

// Press registers a press of the given key.
// Returns whether the press is a repetition of a key that is still held.
func (d *ReleaseDetector) Press(k Key) (repeat bool) {
	k = k.Plain()

	h, ok := d.held[k]
	if ok {
		h.cancel()
		h.repeating = true
	} else {
		h = &heldKey{}
		d.held[k] = h
	}

	delay := d.initialDelay
	if h.repeating {
		delay = d.repeatDelay
	}

	var fired bool
	cancel := d.timers.AfterFunc(delay, func() {
		if fired {
			return
		}
		fired = true
		d.release(k, h)
	})
	h.cancel = func() {
		fired = true
		cancel()
	}

	return ok
}

// Held reports whether the key is currently considered held.
func (d *ReleaseDetector) Held(k Key) bool {
	_, ok := d.held[k.Plain()]
	return ok
}

func (d *ReleaseDetector) release(k Key, h *heldKey) {
	if d.held[k] != h {
		return
	}
	delete(d.held, k)
	d.onRelease(k)
}

package keynav

import (
	"github.com/rs/zerolog"

	"github.com/ja-he/docnav/internal/input"
)

var (
	keyPrev = input.Rune('[')
	keyNext = input.Rune(']')
	keyDown = input.Rune('j')
	keyUp   = input.Rune('k')
)

// Interpreter turns key events into chord navigation and continuous
// scrolling.
type Interpreter struct {
	host Host
	log  zerolog.Logger

	seq    sequenceState
	scroll scrollState
	held   map[input.Key]struct{}
}

// New constructs an interpreter operating on the given host.
func New(host Host, logger zerolog.Logger) *Interpreter {
	return &Interpreter{
		host: host,
		log:  logger,
		held: map[input.Key]struct{}{},
	}
}

// Install subscribes the interpreter to the given event source.
func (i *Interpreter) Install(src EventSource) {
	src.OnKeyDown(i.KeyDown)
	src.OnKeyUp(i.KeyUp)
	src.OnWindowBlur(i.Blur)
	i.log.Debug().Msg("installed key handlers")
}

// KeyDown handles a key press (or an auto-repeat of one).
// Returns whether the key was consumed, in which case the host should not
// perform its own handling of it.
func (i *Interpreter) KeyDown(k input.Key) (consumed bool) {
	if i.typing() {
		return false
	}
	if k.HasModifier() {
		return false
	}

	i.held[k.Plain()] = struct{}{}

	if i.seq.awaiting() {
		return i.completeSequence(k)
	}

	switch k {
	case keyPrev, keyNext:
		i.armSequence(k.Ch)
		return true
	case keyDown:
		i.startScroll(+1)
		return true
	case keyUp:
		i.startScroll(-1)
		return true
	default:
		return false
	}
}

// KeyUp handles a key release.
// Scrolling stops once neither motion key is held anymore.
func (i *Interpreter) KeyUp(k input.Key) {
	k = k.Plain()
	delete(i.held, k)

	if k != keyDown && k != keyUp {
		return
	}
	if i.isHeld(keyDown) || i.isHeld(keyUp) {
		return
	}
	i.stopScroll("motion keys released")
}

// Blur handles the host losing input focus.
// It stops scrolling but leaves the set of held keys as it is.
func (i *Interpreter) Blur() {
	i.stopScroll("focus lost")
}

// Pending returns the first key of a chord in progress, or 0 if there is
// none.
func (i *Interpreter) Pending() rune {
	return i.seq.pending
}

// Scroll returns the state of the scroll driver.
func (i *Interpreter) Scroll() ScrollStatus {
	return ScrollStatus{
		Active:    i.scroll.active,
		Direction: i.scroll.direction,
		Speed:     i.scroll.speed,
	}
}

// Held reports whether the given key is currently held.
func (i *Interpreter) Held(k input.Key) bool {
	return i.isHeld(k.Plain())
}

func (i *Interpreter) isHeld(k input.Key) bool {
	_, ok := i.held[k]
	return ok
}

func (i *Interpreter) typing() bool {
	e := i.host.FocusedElement()
	return e != nil && e.Editable()
}

// Handles reports whether the interpreter acts on the given key when it is
// pressed outside of a chord, i.e. whether a key map binding starting with it
// would never be reached.
func Handles(k input.Key) bool {
	switch k {
	case keyPrev, keyNext, keyDown, keyUp:
		return true
	}
	return false
}

// Help describes the keys the interpreter handles.
func Help() input.Help {
	return input.Help{
		"[[": "go to previous page",
		"]]": "go to next page",
		"j":  "scroll down (hold to accelerate)",
		"k":  "scroll up (hold to accelerate)",
	}
}

package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key press as the viewer sees it.
//
// Shift is folded into the character for rune keys ('G' rather than shift+g),
// so Mod only carries shift for non-rune keys. Control keys such as <c-d>
// carry tcell.ModCtrl, as reported by tcell.
type Key struct {
	Mod tcell.ModMask
	Key tcell.Key
	Ch  rune
}

// Rune returns the Key for the given (unmodified) character.
func Rune(r rune) Key {
	return Key{Key: tcell.KeyRune, Ch: r}
}

// IsRune reports whether k is the plain, unmodified character r.
func (k Key) IsRune(r rune) bool {
	return k.Key == tcell.KeyRune && k.Ch == r && k.Mod == tcell.ModNone
}

// Plain returns the key without any modifiers, which identifies the physical
// key, e.g. for tracking which keys are being held.
func (k Key) Plain() Key {
	return Key{Key: k.Key, Ch: k.Ch}
}

// HasModifier reports whether any of ctrl, alt, meta or shift is set.
func (k Key) HasModifier() bool {
	return k.Mod&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta|tcell.ModShift) != 0
}

// ToDebugString returns a representation of the key for logging.
func (k Key) ToDebugString() string {
	return fmt.Sprintf(
		"(%s (%d),'%s'(%d),mod:%d)",
		tcell.KeyNames[k.Key],
		int(k.Key),
		string(k.Ch),
		int(k.Ch),
		int(k.Mod),
	)
}

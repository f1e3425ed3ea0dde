package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Keyspec is a textual key sequence specification as used in the
// configuration, e.g. "gg" or "<c-d>".
type Keyspec string

// specialKeys maps the identifiers usable in '<...>' to their keys.
// The reverse mapping is derived from this, so every key must appear once.
var specialKeys = map[string]Key{
	"space": Rune(' '),
	"cr":    {Key: tcell.KeyEnter},
	"esc":   {Key: tcell.KeyESC},
	"tab":   {Key: tcell.KeyTab},
	"del":   {Key: tcell.KeyDelete},
	"bs":    {Key: tcell.KeyBackspace2},
	"left":  {Key: tcell.KeyLeft},
	"right": {Key: tcell.KeyRight},
	"up":    {Key: tcell.KeyUp},
	"down":  {Key: tcell.KeyDown},
	"home":  {Key: tcell.KeyHome},
	"end":   {Key: tcell.KeyEnd},
	"pgup":  {Key: tcell.KeyPgUp},
	"pgdn":  {Key: tcell.KeyPgDn},
	"lt":    Rune('<'),
	"gt":    Rune('>'),

	"c-space": {Key: tcell.KeyCtrlSpace, Mod: tcell.ModCtrl},
	"c-bs":    {Key: tcell.KeyBackspace},
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		// <c-h>, <c-i> and <c-m> collide with backspace, tab and enter in
		// terminals, the others are unambiguous
		if c == 'h' || c == 'i' || c == 'm' {
			continue
		}
		specialKeys["c-"+string(c)] = Key{Key: tcell.KeyCtrlA + tcell.Key(c-'a'), Mod: tcell.ModCtrl}
	}
}

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	specR := []rune(spec)
	keys := make([][]rune, 0)
	specialContext := false

	for pos, r := range specR {
		switch r {

		case '<':
			if specialContext {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			specialContext = true
			keys = append(keys, []rune{r})

		case '>':
			if !specialContext {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			specialContext = false
			keys[len(keys)-1] = append(keys[len(keys)-1], r)

		default:
			if specialContext {
				if !unicode.IsLetter(r) && r != '-' {
					return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", r, pos)
				}
				keys[len(keys)-1] = append(keys[len(keys)-1], r)
			} else {
				keys = append(keys, []rune{r})
			}

		}
	}
	if specialContext {
		return nil, fmt.Errorf("special context ('<') not closed at end of spec '%s'", spec)
	}

	result := make([]Key, 0, len(keys))
	for _, keyIdentifier := range keys {
		if keyIdentifier[0] == '<' {
			key, err := KeyIdentifierToKey(string(keyIdentifier[1 : len(keyIdentifier)-1]))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '%s' to key: %w", string(keyIdentifier), err)
			}
			result = append(result, key)
		} else {
			result = append(result, Rune(keyIdentifier[0]))
		}
	}

	return result, nil
}

// KeyIdentifierToKey converts the given special identifier to the appropriate
// key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := specialKeys[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its configuration
// identifier, e.g. "<c-d>" or "g".
func ToConfigIdentifierString(k Key) string {
	for identifier, key := range specialKeys {
		if key == k {
			return "<" + identifier + ">"
		}
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	return k.ToDebugString()
}

package input_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/ja-he/docnav/internal/input"
)

func TestKeyFromTcellEvent(t *testing.T) {
	t.Run("rune keeps alt, drops shift", func(t *testing.T) {
		k := input.KeyFromTcellEvent(tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModShift|tcell.ModAlt))
		assert.Equal(t, input.Key{Key: tcell.KeyRune, Ch: 'G', Mod: tcell.ModAlt}, k)
	})
	t.Run("control key carries ctrl", func(t *testing.T) {
		k := input.KeyFromTcellEvent(tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl))
		assert.True(t, k.HasModifier())
		assert.Equal(t, "<c-d>", input.ToConfigIdentifierString(k))
	})
	t.Run("plain rune", func(t *testing.T) {
		k := input.KeyFromTcellEvent(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone))
		assert.True(t, k.IsRune('j'))
		assert.False(t, k.HasModifier())
	})
}

func TestKeyPlain(t *testing.T) {
	k := input.Key{Key: tcell.KeyRune, Ch: 'j', Mod: tcell.ModAlt}
	assert.Equal(t, input.Rune('j'), k.Plain())
	assert.False(t, k.IsRune('j'))
	assert.True(t, k.Plain().IsRune('j'))
}

func TestToConfigIdentifierString(t *testing.T) {
	for _, spec := range []input.Keyspec{"<cr>", "<esc>", "<space>", "<c-u>", "<pgdn>", "]", "x"} {
		keys, err := input.ConfigKeyspecToKeys(spec)
		if assert.NoError(t, err) && assert.Len(t, keys, 1) {
			assert.Equal(t, string(spec), input.ToConfigIdentifierString(keys[0]))
		}
	}
}

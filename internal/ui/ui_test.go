package ui_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/ja-he/docnav/internal/styling"
	"github.com/ja-he/docnav/internal/ui"
)

func TestScrollState(t *testing.T) {

	t.Run("no overflow", func(t *testing.T) {
		s := ui.ScrollState{}
		s.SetExtent(10, 20)
		assert.False(t, s.Overflows())
		assert.False(t, s.ScrollBy(5))
		assert.Equal(t, 0, s.Top())
		assert.Equal(t, 100, s.Percent())
	})

	t.Run("fractional", func(t *testing.T) {
		s := ui.ScrollState{}
		s.SetExtent(100, 20)
		assert.True(t, s.Overflows())

		assert.False(t, s.ScrollBy(0.5))
		assert.True(t, s.ScrollBy(0.5))
		assert.Equal(t, 1, s.Top())
		assert.InDelta(t, 1.0, s.Offset(), 1e-9)
	})

	t.Run("clamped", func(t *testing.T) {
		s := ui.ScrollState{}
		s.SetExtent(100, 20)
		s.ScrollBy(1000)
		assert.Equal(t, 80, s.Top())
		assert.Equal(t, 100, s.Percent())
		s.ScrollBy(-1000)
		assert.Equal(t, 0, s.Top())
		assert.Equal(t, 0, s.Percent())

		s.ScrollTo(60)
		s.SetExtent(50, 20)
		assert.Equal(t, 30, s.Top())
	})

	t.Run("reveal", func(t *testing.T) {
		s := ui.ScrollState{}
		s.SetExtent(100, 20)
		s.Reveal(50)
		assert.Equal(t, 31, s.Top())
		s.Reveal(40)
		assert.Equal(t, 31, s.Top())
		s.Reveal(10)
		assert.Equal(t, 10, s.Top())
	})
}

type drawCall struct {
	x, y, w, h int
	text       string
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawBox(x, y, w, h int, _ styling.DrawStyling) {
	r.calls = append(r.calls, drawCall{x, y, w, h, ""})
}
func (r *recordingRenderer) DrawText(x, y, w, h int, _ styling.DrawStyling, text string) {
	r.calls = append(r.calls, drawCall{x, y, w, h, text})
}
func (r *recordingRenderer) Dimensions() (x, y, w, h int) { return 0, 0, 80, 24 }

func TestConstrainedRenderer(t *testing.T) {
	rec := &recordingRenderer{}
	cr := ui.NewConstrainedRenderer(rec, func() (x, y, w, h int) { return 10, 5, 20, 10 })

	cr.DrawText(0, 0, 100, 100, nil, "x")
	cr.DrawBox(25, 12, 10, 10, nil)

	assert.Equal(t, []drawCall{
		{10, 5, 20, 10, "x"},
		{25, 12, 5, 3, ""},
	}, rec.calls)
}

type cursorRecorder struct {
	shown *ui.CursorLocation
}

func (c *cursorRecorder) HideCursor()                    { c.shown = nil }
func (c *cursorRecorder) ShowCursor(l ui.CursorLocation) { c.shown = &l }

func TestCursorWrangler(t *testing.T) {
	rec := &cursorRecorder{}
	w := ui.NewCursorWrangler(rec, zerolog.Nop())

	w.Put(ui.CursorLocation{X: 1, Y: 2}, "prompt")
	w.Enact()
	assert.Equal(t, &ui.CursorLocation{X: 1, Y: 2}, rec.shown)

	w.Delete("someone-else")
	w.Enact()
	assert.NotNil(t, rec.shown)

	w.Delete("prompt")
	w.Enact()
	assert.Nil(t, rec.shown)
}

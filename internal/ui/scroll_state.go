package ui

import "math"

// ScrollState is the vertical scroll position of content that can be taller
// than the viewport showing it.
//
// The offset is fractional, so that small per-frame scroll distances add up;
// drawing uses the whole rows via Top.
type ScrollState struct {
	offset   float64
	content  int
	viewport int
}

// SetExtent updates the height of the content and the viewport, keeping the
// offset within bounds.
func (s *ScrollState) SetExtent(content, viewport int) {
	s.content = content
	s.viewport = viewport
	s.clamp()
}

// Overflows reports whether the content is taller than the viewport, i.e.
// whether there is anything to scroll.
func (s *ScrollState) Overflows() bool {
	return s.content > s.viewport
}

// ScrollBy moves the offset by delta rows.
// Returns whether the visible rows changed.
func (s *ScrollState) ScrollBy(delta float64) (moved bool) {
	before := s.Top()
	s.offset += delta
	s.clamp()
	return s.Top() != before
}

// ScrollTo moves the offset to the given row.
func (s *ScrollState) ScrollTo(row float64) {
	s.offset = row
	s.clamp()
}

// Reveal scrolls the minimal distance for the given row to be visible.
func (s *ScrollState) Reveal(row int) {
	switch {
	case row < s.Top():
		s.ScrollTo(float64(row))
	case row >= s.Top()+s.viewport:
		s.ScrollTo(float64(row - s.viewport + 1))
	}
}

// Top returns the first visible row.
func (s *ScrollState) Top() int {
	return int(math.Floor(s.offset))
}

// Offset returns the exact offset.
func (s *ScrollState) Offset() float64 {
	return s.offset
}

// Max returns the largest possible offset.
func (s *ScrollState) Max() float64 {
	return math.Max(0, float64(s.content-s.viewport))
}

// Viewport returns the height of the viewport.
func (s *ScrollState) Viewport() int {
	return s.viewport
}

// Percent returns how far the content is scrolled, 0 at the top and 100 at
// the bottom (or when there is nothing to scroll).
func (s *ScrollState) Percent() int {
	if s.Max() == 0 {
		return 100
	}
	return int(math.Round(100 * s.offset / s.Max()))
}

func (s *ScrollState) clamp() {
	s.offset = math.Min(math.Max(s.offset, 0), s.Max())
}

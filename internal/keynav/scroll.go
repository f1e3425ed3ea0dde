package keynav

import (
	"math"
	"time"
)

const (
	// BaseScrollDistance is the distance (in rows) scrolled per frame at speed
	// 1.
	BaseScrollDistance = 0.5
	// ScrollAcceleration is added to the speed for every repeated press.
	ScrollAcceleration = 0.05
	// MaxScrollSpeed caps the speed multiplier.
	MaxScrollSpeed = 5.0
	// MinFrameInterval is the minimum time between two applied frames.
	MinFrameInterval = 16 * time.Millisecond
)

// ScrollStatus describes the scroll driver.
type ScrollStatus struct {
	Active    bool
	Direction int
	Speed     float64
}

type scrollState struct {
	active    bool
	direction int
	speed     float64
	lastFrame time.Time
	// generation identifies the running frame loop; callbacks of a loop that
	// was stopped find a different generation and end.
	generation uint64
}

func (i *Interpreter) startScroll(direction int) {
	if i.scroll.active && i.scroll.direction == direction {
		i.scroll.speed = math.Min(i.scroll.speed+ScrollAcceleration, MaxScrollSpeed)
		i.log.Trace().Float64("speed", i.scroll.speed).Msg("scroll accelerated")
		return
	}

	running := i.scroll.active
	i.scroll.active = true
	i.scroll.direction = direction
	i.scroll.speed = 1
	i.log.Debug().Int("direction", direction).Msg("scroll started")

	if !running {
		i.scroll.generation++
		i.requestFrame(i.scroll.generation)
	}
}

func (i *Interpreter) stopScroll(reason string) {
	if !i.scroll.active {
		return
	}
	i.scroll.active = false
	i.scroll.direction = 0
	i.scroll.speed = 0
	i.scroll.generation++
	i.log.Debug().Str("reason", reason).Msg("scroll stopped")
}

func (i *Interpreter) requestFrame(generation uint64) {
	i.host.RequestFrame(func() { i.frame(generation) })
}

func (i *Interpreter) frame(generation uint64) {
	if generation != i.scroll.generation || !i.scroll.active {
		return
	}

	now := i.host.Now()
	if !i.scroll.lastFrame.IsZero() && now.Sub(i.scroll.lastFrame) < MinFrameInterval {
		i.requestFrame(generation)
		return
	}
	i.scroll.lastFrame = now

	if c := i.host.ScrollableContainer(); c != nil {
		i.host.ScrollContainerBy(c, BaseScrollDistance*i.scroll.speed*float64(i.scroll.direction))
	}

	i.requestFrame(generation)
}

package tui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// FrameInterval is the interval at which requested frames are delivered.
const FrameInterval = 8 * time.Millisecond

// EventPoster accepts events for the event loop, like tcell.Screen does.
type EventPoster interface {
	PostEvent(ev tcell.Event) error
}

// Scheduler delivers animation frames and timer callbacks onto the event
// loop, by posting them as interrupt events carrying the callback.
// The event loop hands those events to Run.
//
// RequestFrame, AfterFunc and Now may be called from any goroutine; the
// callbacks only ever run inside Run.
type Scheduler struct {
	poster        EventPoster
	frameInterval time.Duration

	mtx          sync.Mutex
	frames       []func()
	framePending bool

	log zerolog.Logger
}

// NewScheduler returns a scheduler posting to the given poster.
func NewScheduler(poster EventPoster, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		poster:        poster,
		frameInterval: FrameInterval,
		log:           logger.With().Str("component", "scheduler").Logger(),
	}
}

// RequestFrame registers a callback for the next frame.
// All callbacks requested before a frame is delivered run in that frame.
func (s *Scheduler) RequestFrame(f func()) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.frames = append(s.frames, f)
	if !s.framePending {
		s.framePending = true
		time.AfterFunc(s.frameInterval, s.postFrame)
	}
}

func (s *Scheduler) postFrame() {
	err := s.poster.PostEvent(tcell.NewEventInterrupt(func() { s.runFrame() }))
	if err != nil {
		s.log.Warn().Err(err).Msg("could not post frame, retrying")
		time.AfterFunc(s.frameInterval, s.postFrame)
	}
}

func (s *Scheduler) runFrame() {
	s.mtx.Lock()
	frames := s.frames
	s.frames = nil
	s.framePending = false
	s.mtx.Unlock()

	for _, f := range frames {
		f()
	}
}

// AfterFunc runs f on the event loop after d has passed, unless the returned
// cancel function is called first (on the event loop).
func (s *Scheduler) AfterFunc(d time.Duration, f func()) (cancel func()) {
	cancelled := false
	t := time.AfterFunc(d, func() {
		err := s.poster.PostEvent(tcell.NewEventInterrupt(func() {
			if !cancelled {
				f()
			}
		}))
		if err != nil {
			s.log.Error().Err(err).Dur("after", d).Msg("could not post timer event, dropping it")
		}
	})
	return func() {
		cancelled = true
		t.Stop()
	}
}

// Post runs f on the event loop as soon as possible.
func (s *Scheduler) Post(f func()) error {
	return s.poster.PostEvent(tcell.NewEventInterrupt(f))
}

// Now returns the current time.
func (s *Scheduler) Now() time.Time {
	return time.Now()
}

// Run runs the callback carried by an interrupt event posted by the
// scheduler.
// Returns whether the event was one of the scheduler's.
func (s *Scheduler) Run(ev *tcell.EventInterrupt) bool {
	f, ok := ev.Data().(func())
	if !ok {
		return false
	}
	f()
	return true
}

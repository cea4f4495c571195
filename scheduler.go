package main

import "time"

// FrameCallback receives the time of the frame, in milliseconds. Timestamps
// given to callbacks never decrease.
type FrameCallback func(timestampMs float64)

// Scheduler runs a callback once, before the next frame is displayed. A
// callback that wants to run every frame must register itself again.
type Scheduler interface {
	RequestFrame(cb FrameCallback)
	// Now is the current time on the same clock that frame timestamps use.
	Now() float64
}

// FrameScheduler is a Scheduler driven by the host loop: the host calls
// Tick() once per displayed frame. It holds at most one pending callback,
// registering a second callback before a tick replaces the first one.
//
// Tests and replays call TickAt() with whatever timestamps they need, so
// nothing depends on the wall clock.
type FrameScheduler struct {
	Clock   func() float64
	pending FrameCallback
}

// NewFrameScheduler returns a scheduler whose clock counts milliseconds since
// the scheduler was created, on the monotonic clock.
func NewFrameScheduler() *FrameScheduler {
	start := time.Now()
	return &FrameScheduler{
		Clock: func() float64 {
			return float64(time.Since(start).Microseconds()) / 1000
		},
	}
}

func (s *FrameScheduler) RequestFrame(cb FrameCallback) {
	s.pending = cb
}

func (s *FrameScheduler) Now() float64 {
	if s.Clock == nil {
		return 0
	}
	return s.Clock()
}

func (s *FrameScheduler) Pending() bool {
	return s.pending != nil
}

// Tick runs the pending callback with the current time. It returns false if
// there was nothing to run.
func (s *FrameScheduler) Tick() bool {
	return s.TickAt(s.Now())
}

func (s *FrameScheduler) TickAt(timestampMs float64) bool {
	cb := s.pending
	if cb == nil {
		return false
	}
	// Clear before calling, the callback will most likely register again.
	s.pending = nil
	cb(timestampMs)
	return true
}

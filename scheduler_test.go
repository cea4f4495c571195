package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFrameScheduler_RunsCallbackOnce(t *testing.T) {
	s := &FrameScheduler{}
	var got []float64
	s.RequestFrame(func(ts float64) { got = append(got, ts) })
	assert.True(t, s.Pending())

	assert.True(t, s.TickAt(16))
	assert.False(t, s.TickAt(32))
	assert.Equal(t, []float64{16}, got)
	assert.False(t, s.Pending())
}

func TestFrameScheduler_CallbackCanRegisterAgain(t *testing.T) {
	s := &FrameScheduler{}
	var got []float64
	var cb FrameCallback
	cb = func(ts float64) {
		got = append(got, ts)
		s.RequestFrame(cb)
	}
	s.RequestFrame(cb)

	s.TickAt(1)
	s.TickAt(2)
	s.TickAt(3)
	assert.Equal(t, []float64{1, 2, 3}, got)
	assert.True(t, s.Pending())
}

func TestFrameScheduler_SecondRequestReplacesFirst(t *testing.T) {
	s := &FrameScheduler{}
	first, second := 0, 0
	s.RequestFrame(func(float64) { first++ })
	s.RequestFrame(func(float64) { second++ })
	s.TickAt(0)
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestFrameScheduler_TickUsesClock(t *testing.T) {
	s := &FrameScheduler{Clock: func() float64 { return 42.5 }}
	var got float64
	s.RequestFrame(func(ts float64) { got = ts })
	assert.True(t, s.Tick())
	assert.Equal(t, 42.5, got)
	assert.Equal(t, 42.5, s.Now())

	// No clock means time stands still at 0.
	assert.Equal(t, 0.0, (&FrameScheduler{}).Now())
}

func TestNewFrameScheduler_ClockNeverGoesBack(t *testing.T) {
	s := NewFrameScheduler()
	prev := s.Now()
	assert.GreaterOrEqual(t, prev, 0.0)
	for range 1000 {
		now := s.Now()
		assert.GreaterOrEqual(t, now, prev)
		prev = now
	}
}

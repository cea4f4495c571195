package main

import (
	"github.com/stretchr/testify/assert"
	"image"
	"math"
	"testing"
)

// These only exercise the transform stack, which is plain math and doesn't
// need a GPU.

func TestEbitenSurface_TransformsComposeLikeCanvas(t *testing.T) {
	s := NewEbitenSurface(nil)
	s.Translate(100, 100)
	s.Rotate(math.Pi / 2)

	// Rotation applies first: (1, 0) becomes (0, 1), then moves by
	// (100, 100).
	x, y := s.Transform().Apply(1, 0)
	assert.InDelta(t, 100.0, x, 1e-9)
	assert.InDelta(t, 101.0, y, 1e-9)

	x, y = s.Transform().Apply(-25, -25)
	assert.InDelta(t, 125.0, x, 1e-9)
	assert.InDelta(t, 75.0, y, 1e-9)
}

func TestEbitenSurface_SaveRestore(t *testing.T) {
	s := NewEbitenSurface(nil)
	assert.Equal(t, 1.0, s.Alpha())

	s.Translate(10, 20)
	s.Save()
	s.Translate(5, 5)
	s.Rotate(1)
	s.SetAlpha(0.3)
	assert.Equal(t, 0.3, s.Alpha())

	s.Restore()
	x, y := s.Transform().Apply(0, 0)
	assert.InDelta(t, 10.0, x, 1e-9)
	assert.InDelta(t, 20.0, y, 1e-9)
	assert.Equal(t, 1.0, s.Alpha())

	// Nothing left to restore, nothing changes.
	s.Restore()
	x, y = s.Transform().Apply(0, 0)
	assert.InDelta(t, 10.0, x, 1e-9)
	assert.InDelta(t, 20.0, y, 1e-9)
}

func TestEbitenSurface_SpriteCornersLandOnCanvas(t *testing.T) {
	// The same calls drawParticle() makes for a particle whose top-left
	// corner is at (75, 75), drawn with a 64x64 sprite in a 50x50 square.
	// The canvas is a sub-image that starts at (10, 20) in its parent.
	sprite := image.Pt(64, 64)
	canvasMin := image.Pt(10, 20)

	s := NewEbitenSurface(nil)
	s.Save()
	s.Translate(100, 100)
	m := s.imageGeoM(sprite, canvasMin, -25, -25, 50, 50)
	corners := map[[2]float64][2]float64{
		{0, 0}:   {85, 95},
		{64, 0}:  {135, 95},
		{64, 64}: {135, 145},
		{0, 64}:  {85, 145},
		{32, 32}: {110, 120},
	}
	for src, dst := range corners {
		x, y := m.Apply(src[0], src[1])
		assert.InDelta(t, dst[0], x, 1e-9)
		assert.InDelta(t, dst[1], y, 1e-9)
	}

	// Rotated by 90 degrees around its center, the sprite's top-left corner
	// ends up at the top-right.
	s.Rotate(math.Pi / 2)
	m = s.imageGeoM(sprite, canvasMin, -25, -25, 50, 50)
	corners = map[[2]float64][2]float64{
		{0, 0}:   {135, 95},
		{64, 0}:  {135, 145},
		{64, 64}: {85, 145},
		{0, 64}:  {85, 95},
		{32, 32}: {110, 120},
	}
	for src, dst := range corners {
		x, y := m.Apply(src[0], src[1])
		assert.InDelta(t, dst[0], x, 1e-9)
		assert.InDelta(t, dst[1], y, 1e-9)
	}

	// Restore() puts the sprite back where nothing but the canvas offset
	// moves it.
	s.Restore()
	m = s.imageGeoM(sprite, canvasMin, 0, 0, 64, 64)
	x, y := m.Apply(64, 64)
	assert.InDelta(t, 74.0, x, 1e-9)
	assert.InDelta(t, 84.0, y, 1e-9)
}

func TestRecordingSurface(t *testing.T) {
	s := NewRecordingSurface(300, 200)
	w, h := s.Size()
	assert.Equal(t, 300.0, w)
	assert.Equal(t, 200.0, h)

	s.Save()
	s.Translate(1, 2)
	s.DrawImage(testSprite(), -25, -25, 50, 50)
	s.Restore()
	assert.Equal(t, []string{"Save", "Translate", "DrawImage", "Restore"},
		s.Ops())
	assert.Equal(t, []float64{-25, -25, 50, 50}, s.Calls[2].Args)

	b1 := s.Bytes()
	s.Reset()
	assert.Empty(t, s.Calls)
	assert.Empty(t, s.Bytes())

	s.Save()
	s.Translate(1, 2)
	s.DrawImage(testSprite(), -25, -25, 50, 50)
	s.Restore()
	assert.Equal(t, b1, s.Bytes())
}

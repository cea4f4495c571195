package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"image"
)

// StateBytes is an array of bytes that represent the current state of the
// ParticleSystem, as perceived by the outside. If two systems have the same
// StateBytes() they are considered "the same", even though they may be
// implemented differently.
//
// The system is "the same" if it has:
// - the same particles, in the same order, with the same position, rotation
// and age
// - the same time left until the next spawn
//
// Velocity and Lifespan are left out on purpose. They come from the config
// and are already covered by the positions and by which particles are still
// alive.
func (ps *ParticleSystem) StateBytes() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, int64(len(ps.Particles)))
	for _, p := range ps.Particles {
		Serialize(buf, p.Position)
		Serialize(buf, p.Rotation)
		Serialize(buf, p.Age)
	}
	Serialize(buf, ps.spawnAccumulator)
	return buf.Bytes()
}

// NewReplay sets up a system that plays back r when its frames are handed
// out with TickAt(), one per recorded timestamp. It runs headless: the sprite
// is a 1x1 image and nothing but surface gets drawn on.
func NewReplay(r *Recording, surface Surface) (*ParticleSystem, *FrameScheduler) {
	scheduler := &FrameScheduler{
		Clock: func() float64 { return r.StartTimestamp },
	}
	sprite := image.NewRGBA(image.Rect(0, 0, 1, 1))
	ps := NewParticleSystem(surface, r.EmissionPoint, scheduler,
		ImmediateLoader{sprite},
		SystemOptions{Particles: r.Particles, Seed: r.Seed})
	ps.Start()
	return ps, scheduler
}

// RegressionId returns a string which uniquely identifies what a recording
// looks like when it is played back. It is a hash of the state of the system
// and of the draw calls it makes, after every frame.
//
// RegressionId is meant to be used this way:
// - Compute the RegressionId for a recording.
// - Refactor the particle system.
// - Compute the RegressionId for the same recording. If it hasn't changed,
// the refactoring didn't change what the user sees.
func RegressionId(r *Recording) string {
	hash := sha256.New()

	surface := NewRecordingSurface(1, 1)
	ps, scheduler := NewReplay(r, surface)

	// Write the initial state to the hash.
	hash.Write(ps.StateBytes())

	for _, ts := range r.Timestamps {
		scheduler.TickAt(ts)

		// Write the current state and what was drawn to the hash.
		hash.Write(ps.StateBytes())
		hash.Write(surface.Bytes())
		surface.Reset()
	}

	return hex.EncodeToString(hash.Sum(nil))
}

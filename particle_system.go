package main

import (
	"math"
)

// SystemOptions are the parts of a ParticleSystem that don't come from the
// caller's layout: which sprite to draw, how particles behave and the seed
// for spawn rotations.
type SystemOptions struct {
	SpritePath string
	Particles  ParticleConfig
	Seed       int64
}

// ParticleSystem emits smoke from a fixed point and draws it on a Surface.
//
// Nothing happens until the sprite has loaded and Start() has been called.
// From then on, each frame the scheduler hands out does the following:
// - Clear the surface.
// - Spawn at most one particle, if enough time has passed since the last one.
// - Move and age every particle.
// - Remove the particles that are too old.
// - Draw what's left, oldest particle first, so newer smoke is drawn on top.
//
// The system touches its state only from inside frame callbacks and loader
// callbacks, which the host runs on one goroutine, one at a time.
type ParticleSystem struct {
	Config    ParticleConfig
	Particles []Particle
	Rand      Rand

	surface            Surface
	scheduler          Scheduler
	emissionPoint      Vec2
	spawnAccumulator   float64
	lastFrameTimestamp float64
	sprite             Image
	running            bool
	startRequested     bool
}

// NewParticleSystem creates the system and starts loading the sprite. The
// surface is drawn on but not owned by the system.
func NewParticleSystem(surface Surface, emissionPoint Vec2,
	scheduler Scheduler, loader AssetLoader,
	opts SystemOptions) *ParticleSystem {
	ps := &ParticleSystem{
		Config:        opts.Particles,
		Rand:          NewRand(opts.Seed),
		surface:       surface,
		scheduler:     scheduler,
		emissionPoint: emissionPoint,
	}
	loader.LoadImage(opts.SpritePath, ps.spriteLoaded)
	return ps
}

func (ps *ParticleSystem) spriteLoaded(img Image) {
	ps.sprite = img
	if ps.startRequested && !ps.running {
		ps.begin()
	}
}

// Start runs the animation. If the sprite is still loading, the first frame
// is requested as soon as the load completes.
func (ps *ParticleSystem) Start() {
	ps.startRequested = true
	if ps.sprite != nil && !ps.running {
		ps.begin()
	}
}

// Stop makes the pending frame, if any, a no-op and ends the loop.
func (ps *ParticleSystem) Stop() {
	ps.startRequested = false
	ps.running = false
}

func (ps *ParticleSystem) begin() {
	ps.running = true
	// Take the time now, not at construction, so the time spent loading the
	// sprite doesn't end up in the first frame's dt.
	ps.lastFrameTimestamp = ps.scheduler.Now()
	ps.scheduler.RequestFrame(ps.OnFrame)
}

// OnFrame is the frame callback. It turns the timestamp into a dt, steps the
// simulation and asks for the next frame.
//
// dt is not limited unless Config.MaxDeltaSeconds is set. A host that stops
// giving out frames for a while (e.g. a minimized window) produces one big dt
// when it resumes, and the smoke jumps ahead accordingly.
func (ps *ParticleSystem) OnFrame(timestampMs float64) {
	if !ps.running {
		return
	}

	dt := (timestampMs - ps.lastFrameTimestamp) / 1000
	ps.lastFrameTimestamp = timestampMs
	if ps.Config.MaxDeltaSeconds > 0 && dt > ps.Config.MaxDeltaSeconds {
		dt = ps.Config.MaxDeltaSeconds
	}

	ps.Step(dt)
	ps.scheduler.RequestFrame(ps.OnFrame)
}

// Step advances the simulation by dt seconds and redraws the surface.
func (ps *ParticleSystem) Step(dt float64) {
	width, height := ps.surface.Size()
	ps.surface.Clear(0, 0, width, height)

	// Spawn at most one particle per frame. A long frame doesn't produce a
	// burst of particles to catch up, and the leftover time is dropped.
	ps.spawnAccumulator += dt
	if ps.spawnAccumulator >= ps.Config.SpawnInterval {
		ps.AddParticle()
		ps.spawnAccumulator = 0
	}

	for i := range ps.Particles {
		ps.Particles[i].Update(dt)
	}

	ps.RemoveDeadParticles()
	ps.DrawParticles()
}

// AddParticle spawns a particle with its sprite centered on the emission
// point, drifting with the configured velocity.
func (ps *ParticleSystem) AddParticle() {
	Assert(ps.Config.Lifespan >= 2*ps.Config.FadeSeconds)

	half := ps.Config.SpriteSize / 2
	p := Particle{
		Position: ps.emissionPoint.Minus(Vec2{half, half}),
		Velocity: ps.Config.Velocity,
		Rotation: float64(ps.Rand.RInt(0, 359)),
		Lifespan: ps.Config.Lifespan,
	}
	ps.Particles = append(ps.Particles, p)
}

// RemoveDeadParticles filters out the particles that are no longer alive,
// keeping the order of the others.
func (ps *ParticleSystem) RemoveDeadParticles() {
	n := 0
	for i := range ps.Particles {
		if ps.Particles[i].Alive() {
			ps.Particles[n] = ps.Particles[i]
			n++
		}
	}
	ps.Particles = ps.Particles[:n]
}

// DrawParticles draws every particle, in order. It doesn't touch the surface
// at all while the sprite is not loaded.
func (ps *ParticleSystem) DrawParticles() {
	if ps.sprite == nil {
		return
	}
	for i := range ps.Particles {
		ps.drawParticle(&ps.Particles[i])
	}
}

func (ps *ParticleSystem) drawParticle(p *Particle) {
	size := ps.Config.SpriteSize
	half := size / 2
	s := ps.surface

	s.Save()
	// Move the origin to the center of the sprite so that the rotation
	// happens around the center and not around the top-left corner.
	s.Translate(p.Position.X+half, p.Position.Y+half)
	s.Rotate(p.Rotation * math.Pi / 180)
	s.SetAlpha(p.Opacity(ps.Config.FadeSeconds))
	s.DrawImage(ps.sprite, -half, -half, size, size)
	s.Restore()
}

func (ps *ParticleSystem) Running() bool {
	return ps.running
}

func (ps *ParticleSystem) SpriteReady() bool {
	return ps.sprite != nil
}

func (ps *ParticleSystem) SpawnAccumulator() float64 {
	return ps.spawnAccumulator
}

func (ps *ParticleSystem) LastFrameTimestamp() float64 {
	return ps.lastFrameTimestamp
}

func (ps *ParticleSystem) EmissionPoint() Vec2 {
	return ps.emissionPoint
}

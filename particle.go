package main

// Particle is a single puff of smoke.
// Velocity, Rotation and Lifespan are decided when the particle is spawned and
// never change afterwards. Only Update() changes Position and Age.
type Particle struct {
	Position Vec2
	Velocity Vec2
	// Rotation is in degrees and only matters when drawing. The smoke doesn't
	// spin, each puff just starts with a different orientation so that puffs
	// don't look identical.
	Rotation float64
	// Age and Lifespan are in seconds.
	Age      float64
	Lifespan float64
}

// Update advances the particle by dt seconds. dt must not be negative.
func (p *Particle) Update(dt float64) {
	p.Position.Add(p.Velocity.Times(dt))
	p.Age += dt
}

// Alive is false as soon as Age reaches Lifespan, not after it passes it.
func (p *Particle) Alive() bool {
	return p.Age < p.Lifespan
}

// Opacity is the fade envelope of the particle: it fades in during the first
// fade seconds of its life, fades out during the last fade seconds and is
// fully opaque in between.
// The result is in [0, 1] only if Lifespan >= 2*fade, otherwise the two
// windows overlap. Config.Validate() makes sure this never happens.
func (p *Particle) Opacity(fade float64) float64 {
	remainingLife := p.Lifespan - p.Age
	if p.Age < fade {
		return p.Age / fade
	}
	if remainingLife < fade {
		return remainingLife / fade
	}
	return 1
}

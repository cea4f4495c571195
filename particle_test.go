package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParticle_UpdateMovesAndAges(t *testing.T) {
	p := Particle{Position: Vec2{75, 75}, Velocity: Vec2{3, -10}, Lifespan: 5}

	p.Update(0.25)
	assert.Equal(t, Vec2{75.75, 72.5}, p.Position)
	assert.Equal(t, 0.25, p.Age)

	p.Update(0.5)
	assert.Equal(t, Vec2{77.25, 67.5}, p.Position)
	assert.Equal(t, 0.75, p.Age)

	// Nothing else changes.
	assert.Equal(t, Vec2{3, -10}, p.Velocity)
	assert.Equal(t, 5.0, p.Lifespan)
}

func TestParticle_UpdateZeroIsNoOp(t *testing.T) {
	p := Particle{Position: Vec2{10, 20}, Velocity: Vec2{0, -10},
		Rotation: 45, Age: 1.5, Lifespan: 5}
	before := p
	p.Update(0)
	assert.Equal(t, before, p)
}

func TestParticle_UpdateRandomDeltas(t *testing.T) {
	r := NewRand(0)
	p := Particle{Position: Vec2{75, 75}, Velocity: Vec2{-2, -10}, Lifespan: 5}
	for range 1000 {
		dt := float64(r.RInt(0, 1000)) / 100
		before := p
		p.Update(dt)
		assert.Equal(t, before.Age+dt, p.Age)
		assert.Equal(t, before.Position.X+before.Velocity.X*dt, p.Position.X)
		assert.Equal(t, before.Position.Y+before.Velocity.Y*dt, p.Position.Y)
	}
}

func TestParticle_Alive(t *testing.T) {
	p := Particle{Lifespan: 5}
	assert.True(t, p.Alive())

	p.Age = 4.999
	assert.True(t, p.Alive())

	// Reaching the lifespan exactly is already dead.
	p.Age = 5
	assert.False(t, p.Alive())

	p.Age = 7
	assert.False(t, p.Alive())
}

func TestParticle_Opacity(t *testing.T) {
	tests := []struct {
		age      float64
		expected float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2.5, 1},
		{4, 1},
		{4.5, 0.5},
		{4.99, 0.01},
	}
	for _, test := range tests {
		p := Particle{Age: test.age, Lifespan: 5}
		assert.InDelta(t, test.expected, p.Opacity(1), 1e-9, "age %f", test.age)
	}
}

func TestParticle_OpacityLongerFade(t *testing.T) {
	p := Particle{Age: 1, Lifespan: 5}
	assert.InDelta(t, 0.5, p.Opacity(2), 1e-9)
	p.Age = 2.5
	assert.InDelta(t, 1, p.Opacity(2), 1e-9)
	p.Age = 4
	assert.InDelta(t, 0.5, p.Opacity(2), 1e-9)
}

func TestParticle_OpacityStaysInRange(t *testing.T) {
	for age := 0.0; age < 5; age += 0.01 {
		p := Particle{Age: age, Lifespan: 5}
		o := p.Opacity(1)
		assert.GreaterOrEqual(t, o, 0.0)
		assert.LessOrEqual(t, o, 1.0)
	}
}

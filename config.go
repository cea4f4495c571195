package main

import (
	"fmt"
	"github.com/goccy/go-yaml"
)

// ParticleConfig describes how the smoke behaves. The defaults are the values
// the effect was designed with, see DefaultParticleConfig().
// All times are in seconds, all distances in pixels.
type ParticleConfig struct {
	SpawnInterval float64 `yaml:"SpawnInterval"`
	Lifespan      float64 `yaml:"Lifespan"`
	Velocity      Vec2    `yaml:"Velocity"`
	// SpriteSize is the width and height at which the sprite is drawn,
	// regardless of the size of the image file.
	SpriteSize  float64 `yaml:"SpriteSize"`
	FadeSeconds float64 `yaml:"FadeSeconds"`
	// MaxDeltaSeconds limits how much time a single frame can simulate.
	// 0 means no limit.
	MaxDeltaSeconds float64 `yaml:"MaxDeltaSeconds"`
}

type Rgb struct {
	R uint8 `yaml:"R"`
	G uint8 `yaml:"G"`
	B uint8 `yaml:"B"`
}

type Config struct {
	WindowWidth     int            `yaml:"WindowWidth"`
	WindowHeight    int            `yaml:"WindowHeight"`
	CanvasWidth     int            `yaml:"CanvasWidth"`
	CanvasHeight    int            `yaml:"CanvasHeight"`
	BackgroundColor Rgb            `yaml:"BackgroundColor"`
	EmissionPoint   Vec2           `yaml:"EmissionPoint"`
	SpritePath      string         `yaml:"SpritePath"`
	Seed            int64          `yaml:"Seed"`
	StartState      string         `yaml:"StartState"`
	RecordToFile    bool           `yaml:"RecordToFile"`
	RecordingFile   string         `yaml:"RecordingFile"`
	PlaybackFile    string         `yaml:"PlaybackFile"`
	UploadUrl       string         `yaml:"UploadUrl"`
	Particles       ParticleConfig `yaml:"Particles"`
}

func DefaultParticleConfig() ParticleConfig {
	return ParticleConfig{
		SpawnInterval:   0.5,
		Lifespan:        5,
		Velocity:        Vec2{0, -10},
		SpriteSize:      50,
		FadeSeconds:     1,
		MaxDeltaSeconds: 0,
	}
}

func DefaultConfig() Config {
	return Config{
		WindowWidth:     600,
		WindowHeight:    600,
		CanvasWidth:     300,
		CanvasHeight:    300,
		BackgroundColor: Rgb{24, 26, 33},
		EmissionPoint:   Vec2{150, 220},
		SpritePath:      "data/smoke_01.png",
		StartState:      "Play",
		Particles:       DefaultParticleConfig(),
	}
}

func (c *ParticleConfig) Validate() error {
	if c.SpawnInterval <= 0 {
		return fmt.Errorf("SpawnInterval must be positive, got %f",
			c.SpawnInterval)
	}
	if c.SpriteSize <= 0 {
		return fmt.Errorf("SpriteSize must be positive, got %f", c.SpriteSize)
	}
	if c.FadeSeconds <= 0 {
		return fmt.Errorf("FadeSeconds must be positive, got %f",
			c.FadeSeconds)
	}
	// The fade-in and fade-out windows must not overlap, or the opacity
	// would go above 1 in the middle of a particle's life.
	if c.Lifespan < 2*c.FadeSeconds {
		return fmt.Errorf("Lifespan (%f) must be at least twice "+
			"FadeSeconds (%f)", c.Lifespan, c.FadeSeconds)
	}
	if c.MaxDeltaSeconds < 0 {
		return fmt.Errorf("MaxDeltaSeconds must not be negative, got %f",
			c.MaxDeltaSeconds)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("invalid canvas size: %dx%d", c.CanvasWidth,
			c.CanvasHeight)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.WindowWidth,
			c.WindowHeight)
	}
	if c.SpritePath == "" {
		return fmt.Errorf("SpritePath is empty")
	}
	if c.StartState != "Play" && c.StartState != "Playback" {
		return fmt.Errorf("invalid StartState: %s", c.StartState)
	}
	if c.StartState == "Playback" && c.PlaybackFile == "" {
		return fmt.Errorf("StartState is Playback but PlaybackFile is empty")
	}
	if c.RecordToFile && c.RecordingFile == "" {
		return fmt.Errorf("RecordToFile is set but RecordingFile is empty")
	}
	return c.Particles.Validate()
}

func LoadYAML(fsys FS, filename string, v any) {
	data, err := fsys.ReadFile(filename)
	Check(err)
	err = yaml.Unmarshal(data, v)
	Check(err)
}

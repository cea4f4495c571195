package main

import (
	"bytes"
	"fmt"
	"github.com/google/uuid"
	"slices"
)

// RecordingVersion is the version of the byte representation of the
// Recording structure. If Serialize() produces different bytes for the same
// Recording, RecordingVersion must change as well.
const RecordingVersion = 1

// SimulationVersion identifies the rules of the simulation: how particles
// spawn, move, die and get drawn. If the same Recording can produce a
// different RegressionId(), SimulationVersion must change.
const SimulationVersion = 1

// Recording is everything needed to play back a run of the smoke exactly as
// it happened. The simulation has no input other than time, so apart from
// the setup, a Recording is just the list of frame timestamps.
type Recording struct {
	RecordingVersion  int64
	SimulationVersion int64
	ReleaseVersion    int64
	Id                uuid.UUID
	Seed              int64
	EmissionPoint     Vec2
	Particles         ParticleConfig
	// StartTimestamp is the time at which the animation started, which is
	// the reference for the first frame's dt.
	StartTimestamp float64
	Timestamps     []float64
}

func NewRecording(seed int64, emissionPoint Vec2, particles ParticleConfig) (r Recording) {
	r.RecordingVersion = RecordingVersion
	r.SimulationVersion = SimulationVersion
	r.ReleaseVersion = ReleaseVersion
	r.Id = uuid.New()
	r.Seed = seed
	r.EmissionPoint = emissionPoint
	r.Particles = particles
	return
}

func (r *Recording) Serialize() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, r.RecordingVersion)
	Serialize(buf, r.SimulationVersion)
	Serialize(buf, r.ReleaseVersion)
	Serialize(buf, r.Id)
	Serialize(buf, r.Seed)
	Serialize(buf, r.EmissionPoint)
	Serialize(buf, r.Particles)
	Serialize(buf, r.StartTimestamp)
	SerializeSlice(buf, r.Timestamps)
	return Zip(buf.Bytes())
}

func (r *Recording) Clone() *Recording {
	clone := *r
	clone.Timestamps = slices.Clone(r.Timestamps)
	return &clone
}

func DeserializeRecording(data []byte) (r Recording) {
	buf := bytes.NewBuffer(Unzip(data))
	Deserialize(buf, &r.RecordingVersion)
	if r.RecordingVersion != RecordingVersion {
		Check(fmt.Errorf("can't deserialize this recording - we are at "+
			"RecordingVersion %d and recording was generated with "+
			"RecordingVersion %d",
			RecordingVersion, r.RecordingVersion))
		return
	}
	Deserialize(buf, &r.SimulationVersion)
	Deserialize(buf, &r.ReleaseVersion)
	Deserialize(buf, &r.Id)
	Deserialize(buf, &r.Seed)
	Deserialize(buf, &r.EmissionPoint)
	Deserialize(buf, &r.Particles)
	Deserialize(buf, &r.StartTimestamp)
	DeserializeSlice(buf, &r.Timestamps)
	return
}

// RecordingScheduler records the timing of the frames that go through it
// while leaving the scheduling to another Scheduler.
type RecordingScheduler struct {
	Scheduler
	Recording *Recording
	// OnFrame, if set, is called after the timestamp is recorded and before
	// the frame runs. If the frame crashes, the recording that caused the
	// crash has already been handed over.
	OnFrame    func(r *Recording)
	startTaken bool
}

func (s *RecordingScheduler) Now() float64 {
	now := s.Scheduler.Now()
	if !s.startTaken {
		s.Recording.StartTimestamp = now
		s.startTaken = true
	}
	return now
}

func (s *RecordingScheduler) RequestFrame(cb FrameCallback) {
	s.Scheduler.RequestFrame(func(timestampMs float64) {
		s.Recording.Timestamps = append(s.Recording.Timestamps, timestampMs)
		if s.OnFrame != nil {
			s.OnFrame(s.Recording)
		}
		cb(timestampMs)
	})
}

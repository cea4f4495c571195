package main

import (
	"log"
	"time"
)

// Update runs at ebitengine's TPS. The smoke itself is stepped from Draw(),
// once per displayed frame, so Update() only does the housekeeping: hand
// over finished image loads and pick up changes to the data folder.
func (g *Gui) Update() error {
	g.loader.Poll()

	if g.folderWatcher.FolderContentsChanged() {
		log.Printf("[Gui] data folder changed, reloading")
		if err := g.LoadGuiData(); err != nil {
			// Keep the smoke that is already running.
			return nil
		}
		if g.state == Play {
			seed := g.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			g.recording = NewRecording(seed, g.EmissionPoint, g.Particles)
		}
		g.NewSystem()
	}
	return nil
}

// stepFrame hands out one frame to the particle system.
func (g *Gui) stepFrame() {
	switch g.state {
	case Play:
		g.scheduler.Tick()
	case Playback:
		if g.frameIdx >= int64(len(g.recording.Timestamps)) {
			// The recording is over, keep showing the last frame.
			return
		}
		// The system doesn't take frames until the sprite loads, don't
		// skip recorded frames while it loads.
		if g.scheduler.TickAt(g.recording.Timestamps[g.frameIdx]) {
			g.frameIdx++
		}
	default:
		panic("unhandled default case")
	}
}

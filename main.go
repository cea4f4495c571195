package main

import (
	"embed"
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	_ "image/png"
	"log"
	"os"
	"time"
)

// ReleaseVersion is the version of an executable built and given to someone,
// either as a native executable or a .wasm for the browser. It changes every
// time a new executable is handed out, including when only the look of the
// smoke changes and the simulation stays the same.
// ReleaseVersion must change when SimulationVersion or RecordingVersion
// change.
const ReleaseVersion = 1

//go:embed data/*
var embeddedFiles embed.FS

type GuiState int64

const (
	Play GuiState = iota
	Playback
)

type Gui struct {
	Config
	FSys           FS
	canvas         *ebiten.Image
	surface        *EbitenSurface
	scheduler      *FrameScheduler
	loader         *FSLoader
	system         *ParticleSystem
	recording      Recording
	folderWatcher  FolderWatcher
	defaultFont    font.Face
	state          GuiState
	frameIdx       int64
	devModeEnabled bool
	configLoaded   bool
	username       string
}

func main() {
	var g Gui
	g.username = getUsername()

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Initialize the watcher with the current timestamps of the files,
		// otherwise the first Update() sees every file as changed and
		// rebuilds the system for nothing.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	if g.StartState == "Playback" {
		g.state = Playback
		g.recording = DeserializeRecording(ReadFile(g.PlaybackFile))
	} else if g.StartState == "Play" {
		g.state = Play
		seed := g.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.recording = NewRecording(seed, g.EmissionPoint, g.Particles)
	} else {
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	g.NewSystem()

	ebiten.SetWindowSize(g.WindowWidth, g.WindowHeight)
	ebiten.SetWindowTitle("teacup smoke")
	err := ebiten.RunGame(&g)
	Check(err)

	if g.state == Play {
		g.uploadRecording()
	}
}

// uploadRecording sends the recording of this run. The window is already
// closed by the time this runs, so a failed upload is only logged.
func (g *Gui) uploadRecording() {
	err := UploadRecordingHttp(g.UploadUrl, g.username, &g.recording)
	if err != nil {
		log.Printf("[Upload] recording %s not sent: %v", g.recording.Id, err)
	}
}

// NewSystem builds a fresh canvas, scheduler and particle system from the
// current config and recording and starts the animation.
func (g *Gui) NewSystem() {
	if g.system != nil {
		g.system.Stop()
	}

	g.canvas = ebiten.NewImage(g.CanvasWidth, g.CanvasHeight)
	g.surface = NewEbitenSurface(g.canvas)
	g.loader = NewFSLoader(g.FSys)
	g.frameIdx = 0

	var scheduler Scheduler
	if g.state == Playback {
		start := g.recording.StartTimestamp
		g.scheduler = &FrameScheduler{Clock: func() float64 { return start }}
		scheduler = g.scheduler
	} else {
		g.scheduler = NewFrameScheduler()
		g.recording.Timestamps = nil
		rs := &RecordingScheduler{Scheduler: g.scheduler, Recording: &g.recording}
		if g.RecordToFile {
			// Save the recording before the frame runs. If the frame
			// crashes, the recording that made it crash is on disk.
			rs.OnFrame = func(r *Recording) {
				WriteFile(g.RecordingFile, r.Serialize())
			}
		}
		scheduler = rs
	}

	g.system = NewParticleSystem(g.surface, g.recording.EmissionPoint,
		scheduler, g.loader,
		SystemOptions{
			SpritePath: g.SpritePath,
			Particles:  g.recording.Particles,
			Seed:       g.recording.Seed,
		})
	g.system.Start()
}

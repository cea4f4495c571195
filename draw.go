package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"image/color"
)

func (g *Gui) Draw(screen *ebiten.Image) {
	// The screen has the aspect ratio of the window, fill all of it with the
	// background and put the canvas in the middle.
	screen.Fill(color.NRGBA{
		R: g.BackgroundColor.R,
		G: g.BackgroundColor.G,
		B: g.BackgroundColor.B,
		A: 255,
	})

	// The particle system clears and redraws the canvas itself.
	g.stepFrame()

	canvasPos := g.CanvasPos(screen.Bounds().Dx(), screen.Bounds().Dy())
	DrawSpriteXY(screen, g.canvas, canvasPos.X, canvasPos.Y)

	if g.devModeEnabled {
		g.DrawText(screen, fmt.Sprintf("particles: %d  next spawn: %.2f  "+
			"frame: %d  TPS: %.0f",
			len(g.system.Particles),
			g.system.Config.SpawnInterval-g.system.SpawnAccumulator(),
			g.hudFrame(),
			ebiten.ActualTPS()),
			color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	}
}

// hudFrame is the frame shown on screen: the last one recorded while playing
// and the next one to be played back during a playback.
func (g *Gui) hudFrame() int64 {
	if g.state == Playback {
		return g.frameIdx
	}
	return int64(len(g.recording.Timestamps))
}

// DrawText draws message in the top-left corner of screen.
func (g *Gui) DrawText(screen *ebiten.Image, message string, color color.Color) {
	// The origin of the text is, roughly, the lower-left corner of its
	// bounds, so most of the text ends up above y. Move it down by the
	// height of the text to keep it all inside screen.
	textSize := text.BoundString(g.defaultFont, message)
	textX := screen.Bounds().Min.X + 4
	textY := screen.Bounds().Min.Y + 4 - textSize.Min.Y
	text.Draw(screen, message, g.defaultFont, textX, textY, color)
}

package main

// Visual areas
// ------------
//
// - The canvas: the surface the particle system draws on. Has a fixed size,
// taken from the config.
// - The screen: contains the canvas and any margins necessary to fill in the
// application window on the OS. Its size is known only at run time.

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// I receive the application window's actual width and height and return
	// the size of the screen bitmap I want. Ebitengine scales the screen to
	// fit the window, preserving its aspect ratio.
	//
	// What I want:
	// - Cover the entire window with the background, even if the smoke is
	// only drawn in the middle.
	// - Have a canvas of a known size, no matter the aspect ratio or the
	// resolution of the window.
	//
	// Solution:
	// - Give the screen the same aspect ratio as the window.
	// - Make the screen as small as possible while still containing the
	// canvas. This means either screenWidth = CanvasWidth or
	// screenHeight = CanvasHeight.
	return ScreenSize(outsideWidth, outsideHeight, g.CanvasWidth, g.CanvasHeight)
}

func ScreenSize(outsideWidth, outsideHeight, canvasWidth, canvasHeight int) (screenWidth, screenHeight int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return canvasWidth, canvasHeight
	}

	// The aspect ratio of a rectangle is width / height. If the window is
	// thinner than the canvas, the canvas fills the width of the screen and
	// there is space left at the top and the bottom.
	outsideAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	canvasAspectRatio := float64(canvasWidth) / float64(canvasHeight)
	if outsideAspectRatio < canvasAspectRatio {
		screenWidth = canvasWidth
		// outsideAspectRatio = screenWidth / screenHeight, which means:
		screenHeight = int(float64(screenWidth) / outsideAspectRatio)
	} else {
		screenHeight = canvasHeight
		// outsideAspectRatio = screenWidth / screenHeight, which means:
		screenWidth = int(float64(screenHeight) * outsideAspectRatio)
	}
	return
}

// CanvasPos is the position of the canvas's top-left corner on a screen of
// the given size. The canvas is centered.
func (g *Gui) CanvasPos(screenWidth, screenHeight int) Vec2 {
	return Vec2{
		X: float64((screenWidth - g.CanvasWidth) / 2),
		Y: float64((screenHeight - g.CanvasHeight) / 2),
	}
}

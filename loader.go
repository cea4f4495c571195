package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"image"
	"log"
)

// AssetLoader loads images in the background. done is called once the image
// is decoded and ready to be drawn. If loading fails, done is never called.
type AssetLoader interface {
	LoadImage(path string, done func(img Image))
}

type loadResult struct {
	path string
	img  image.Image
	done func(img Image)
}

// FSLoader decodes images from an FS on a separate goroutine but hands them
// over on the goroutine that calls Poll(). The Gui calls Poll() from
// Update(), so completion callbacks run on the same goroutine as the frames
// and nothing needs a lock.
type FSLoader struct {
	FSys FS
	// Convert turns a decoded image into something a Surface can draw.
	Convert func(img image.Image) Image
	results chan loadResult
}

func NewFSLoader(fsys FS) *FSLoader {
	return &FSLoader{
		FSys: fsys,
		Convert: func(img image.Image) Image {
			return ebiten.NewImageFromImage(img)
		},
		// Loads finish one at a time and there are very few of them. A
		// goroutine blocks if 10 loads finish between two polls, which is
		// fine.
		results: make(chan loadResult, 10),
	}
}

func (l *FSLoader) LoadImage(path string, done func(img Image)) {
	go func() {
		img, err := DecodeImage(l.FSys, path)
		if err != nil {
			log.Printf("[FSLoader] failed to load %s: %v", path, err)
			return
		}
		l.results <- loadResult{path, img, done}
	}()
}

// Poll runs the callbacks of the loads that finished since the last call and
// returns how many there were. It never blocks.
func (l *FSLoader) Poll() (n int) {
	for {
		select {
		case r := <-l.results:
			log.Printf("[FSLoader] loaded %s (%dx%d)", r.path,
				r.img.Bounds().Dx(), r.img.Bounds().Dy())
			r.done(l.Convert(r.img))
			n++
		default:
			return
		}
	}
}

// ImmediateLoader hands out the same image for every path, before LoadImage
// returns. Headless replays use it.
type ImmediateLoader struct {
	Img Image
}

func (l ImmediateLoader) LoadImage(path string, done func(img Image)) {
	done(l.Img)
}

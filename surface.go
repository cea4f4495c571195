package main

import (
	"bytes"
	"github.com/hajimehoshi/ebiten/v2"
	"image"
	"math"
)

// Image is anything that has pixel bounds. *ebiten.Image satisfies it, and so
// does image.Image, which means the simulation can run and be tested without
// a GPU.
type Image interface {
	Bounds() image.Rectangle
}

// Surface is what the particle system draws on. It works like an HTML canvas:
// there is a current transform and a current alpha, both of which can be
// saved on a stack and restored later. Transforms compose the way a canvas
// composes them: the last call to Translate() or Rotate() is the first one
// applied to the coordinates given to DrawImage().
type Surface interface {
	Size() (width, height float64)
	Clear(x, y, width, height float64)
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(radians float64)
	SetAlpha(alpha float64)
	DrawImage(img Image, x, y, width, height float64)
}

type surfaceState struct {
	geoM  ebiten.GeoM
	alpha float64
}

// EbitenSurface implements Surface on top of an ebiten.Image. The image is
// usually an offscreen canvas which the Gui then draws on the screen.
type EbitenSurface struct {
	Target *ebiten.Image
	state  surfaceState
	saved  []surfaceState
}

func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	s := &EbitenSurface{Target: target}
	s.state.alpha = 1
	return s
}

func (s *EbitenSurface) Size() (width, height float64) {
	sz := s.Target.Bounds().Size()
	return float64(sz.X), float64(sz.Y)
}

func (s *EbitenSurface) Clear(x, y, width, height float64) {
	r := image.Rect(
		int(math.Floor(x)),
		int(math.Floor(y)),
		int(math.Ceil(x+width)),
		int(math.Ceil(y+height)))
	SubImage(s.Target, r).Clear()
}

func (s *EbitenSurface) Save() {
	s.saved = append(s.saved, s.state)
}

// Restore without a matching Save() is ignored, same as on a canvas.
func (s *EbitenSurface) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.state = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *EbitenSurface) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	s.prepend(m)
}

func (s *EbitenSurface) Rotate(radians float64) {
	var m ebiten.GeoM
	m.Rotate(radians)
	s.prepend(m)
}

// prepend makes m the first transformation applied to a point, before the
// ones that are already in the current transform.
func (s *EbitenSurface) prepend(m ebiten.GeoM) {
	m.Concat(s.state.geoM)
	s.state.geoM = m
}

func (s *EbitenSurface) SetAlpha(alpha float64) {
	s.state.alpha = alpha
}

func (s *EbitenSurface) Transform() ebiten.GeoM {
	return s.state.geoM
}

func (s *EbitenSurface) Alpha() float64 {
	return s.state.alpha
}

// DrawImage draws img stretched over the rectangle (x, y, width, height),
// which is expressed in the current transform's coordinates.
// Only ebiten images can be drawn on an EbitenSurface, anything else is
// silently skipped.
func (s *EbitenSurface) DrawImage(img Image, x, y, width, height float64) {
	eimg, ok := img.(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = s.imageGeoM(eimg.Bounds().Size(), s.Target.Bounds().Min,
		x, y, width, height)
	op.ColorScale.ScaleAlpha(float32(s.state.alpha))
	op.Filter = ebiten.FilterLinear
	s.Target.DrawImage(eimg, op)
}

// imageGeoM maps the pixels of an image of size imgSize onto the rectangle
// (x, y, width, height) of the current transform. targetMin is where the
// target starts inside its parent image, non-zero for sub-images.
func (s *EbitenSurface) imageGeoM(imgSize image.Point, targetMin image.Point,
	x, y, width, height float64) (m ebiten.GeoM) {
	m.Scale(width/float64(imgSize.X), height/float64(imgSize.Y))
	m.Translate(x, y)
	m.Concat(s.state.geoM)
	m.Translate(float64(targetMin.X), float64(targetMin.Y))
	return
}

// SurfaceCall is one call made on a RecordingSurface.
type SurfaceCall struct {
	Op   string
	Args []float64
}

// RecordingSurface is a Surface that draws nothing and remembers every call
// made on it. It is what headless replays and tests draw on.
type RecordingSurface struct {
	Width  float64
	Height float64
	Calls  []SurfaceCall
}

func NewRecordingSurface(width, height float64) *RecordingSurface {
	return &RecordingSurface{Width: width, Height: height}
}

func (s *RecordingSurface) record(op string, args ...float64) {
	s.Calls = append(s.Calls, SurfaceCall{op, args})
}

func (s *RecordingSurface) Size() (width, height float64) {
	return s.Width, s.Height
}

func (s *RecordingSurface) Clear(x, y, width, height float64) {
	s.record("Clear", x, y, width, height)
}

func (s *RecordingSurface) Save() {
	s.record("Save")
}

func (s *RecordingSurface) Restore() {
	s.record("Restore")
}

func (s *RecordingSurface) Translate(x, y float64) {
	s.record("Translate", x, y)
}

func (s *RecordingSurface) Rotate(radians float64) {
	s.record("Rotate", radians)
}

func (s *RecordingSurface) SetAlpha(alpha float64) {
	s.record("SetAlpha", alpha)
}

func (s *RecordingSurface) DrawImage(img Image, x, y, width, height float64) {
	s.record("DrawImage", x, y, width, height)
}

// Ops returns just the names of the recorded calls, in order.
func (s *RecordingSurface) Ops() (ops []string) {
	for _, c := range s.Calls {
		ops = append(ops, c.Op)
	}
	return
}

func (s *RecordingSurface) Reset() {
	s.Calls = s.Calls[:0]
}

// Bytes is the recorded calls in a form that can be hashed.
func (s *RecordingSurface) Bytes() []byte {
	buf := new(bytes.Buffer)
	for _, c := range s.Calls {
		buf.WriteString(c.Op)
		SerializeSlice(buf, c.Args)
	}
	return buf.Bytes()
}

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r image.Rectangle) *ebiten.Image {
	// Ebitengine keeps the coordinates of the parent image in sub-images, I
	// prefer to think in coordinates local to the image I'm drawing on.
	minPt := screen.Bounds().Min
	r.Min = r.Min.Add(minPt)
	r.Max = r.Max.Add(minPt)
	return screen.SubImage(r).(*ebiten.Image)
}

// DrawSpriteXY draws img on screen with its top-left corner at (x, y), in
// the coordinates local to screen.
func DrawSpriteXY(screen *ebiten.Image, img *ebiten.Image,
	x float64, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Min.X)+x, float64(screen.Bounds().Min.Y)+y)
	screen.DrawImage(img, op)
}

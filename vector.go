package main

// Vec2 is a point or a displacement on the canvas, in pixels. The Y axis
// points down, like the canvas.
type Vec2 struct {
	X float64 `yaml:"X"`
	Y float64 `yaml:"Y"`
}

func (v *Vec2) Add(other Vec2) {
	v.X = v.X + other.X
	v.Y = v.Y + other.Y
}

func (v Vec2) Plus(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Minus(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

func (v Vec2) Times(multiply float64) Vec2 {
	return Vec2{v.X * multiply, v.Y * multiply}
}

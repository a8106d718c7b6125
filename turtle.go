package turtle

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a renderer converts it to an image/color value.
type Color struct {
	R, G, B, A float64
}

// Common colors used as cursor defaults.
var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
)

// ToRGBA converts c to a premultiplied 8-bit color, clamping out-of-range components.
func (c Color) ToRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// ToNRGBA converts c to a straight-alpha 8-bit color.
func (c Color) ToNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and offsets. World coordinates have
// their origin at the center of the canvas with Y increasing upward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rect is an axis-aligned rectangle in world coordinates. X, Y is the
// minimum corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 && r.Height <= 0
}

// union grows r to include p. The zero Rect is treated as unset when first is true.
func (r Rect) union(p Vec2, first bool) Rect {
	if first {
		return Rect{X: p.X, Y: p.Y}
	}
	minX := math.Min(r.X, p.X)
	minY := math.Min(r.Y, p.Y)
	maxX := math.Max(r.X+r.Width, p.X)
	maxY := math.Max(r.Y+r.Height, p.Y)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Direction selects the turning bias of a recursive drawer.
type Direction uint8

const (
	Left  Direction = iota // turn counterclockwise
	Right                  // turn clockwise
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Left {
		return Right
	}
	return Left
}

// String returns "left" or "right".
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Turn rotates the cursor by deg degrees in direction d.
func (c *Cursor) Turn(d Direction, deg float64) {
	if d == Left {
		c.Left(deg)
		return
	}
	c.Right(deg)
}

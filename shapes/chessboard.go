package shapes

import (
	"math"

	"github.com/phanxgames/turtle"
)

// DefaultBoardLength is the board edge length used when NewChessboard is
// given a non-positive length.
const DefaultBoardLength = 500

// Chessboard tiles an 8x8 board of alternating filled squares whose top-left
// corner is Home.
type Chessboard struct {
	cur    *turtle.Cursor
	length float64
	home   turtle.Vec2
	scale  float64

	Light, Dark turtle.Color
}

// NewChessboard creates a board of the given edge length anchored so the
// board is centered on the origin. The cursor is hidden and set to instant
// speed.
func NewChessboard(cur *turtle.Cursor, length float64, light, dark turtle.Color) *Chessboard {
	if length <= 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		length = DefaultBoardLength
	}
	length = roundHalfUp(length)
	half := roundHalfUp(length / 2)
	cur.Hide()
	cur.Speed(0)
	return &Chessboard{
		cur:    cur,
		length: length,
		home:   turtle.Vec2{X: -half, Y: half},
		scale:  1,
		Light:  light,
		Dark:   dark,
	}
}

// Length returns the rounded board length.
func (b *Chessboard) Length() float64 { return b.length }

// Home returns the board's top-left corner.
func (b *Chessboard) Home() turtle.Vec2 { return b.home }

// Scale returns the current scale factor.
func (b *Chessboard) Scale() float64 { return b.scale }

// CellLength returns the edge of one square. The extra unit makes
// neighboring squares overlap so no hairline gaps show between them.
func (b *Chessboard) CellLength() float64 {
	return roundHalfUp(b.length*b.scale/8) + 1
}

// Draw tiles the board at its current home and scale.
func (b *Chessboard) Draw() {
	b.drawCheckers()
}

// DrawAt moves the board's home to home and, if scale is positive, sets the
// scale before drawing. Both persist for later calls to Draw.
func (b *Chessboard) DrawAt(home turtle.Vec2, scale float64) {
	b.home = home
	if scale > 0 {
		b.scale = scale
	}
	b.drawCheckers()
}

func (b *Chessboard) drawCheckers() {
	b.cur.SafeGoto(b.home.X, b.home.Y)
	b.cur.SetHeading(0)
	cell := b.CellLength()
	coord := b.home
	light := true
	for range 8 {
		for range 8 {
			col := b.Dark
			if light {
				col = b.Light
			}
			light = !light
			b.square(coord, cell, col)
			coord.X += cell
		}
		coord.Y -= cell
		coord.X = b.home.X
		b.cur.SafeGoto(coord.X, coord.Y)
		light = !light
	}
	b.cur.SafeGoto(b.home.X, b.home.Y)
}

// square draws a filled square clockwise from its top-left corner at pos,
// leaving the cursor's colors as it found them.
func (b *Chessboard) square(pos turtle.Vec2, length float64, fill turtle.Color) {
	b.cur.SafeGoto(pos.X, pos.Y)
	pen, _ := b.cur.Colors()
	prevPen, prevFill := b.cur.SetColor(pen, fill)
	b.cur.BeginFill()
	for range 4 {
		b.cur.Forward(length)
		b.cur.Right(90)
	}
	b.cur.EndFill()
	b.cur.SetColor(prevPen, prevFill)
}

// roundHalfUp rounds x to the nearest integer, with halves rounding up.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

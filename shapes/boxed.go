package shapes

import "github.com/phanxgames/turtle"

// Boxed draws the fractal cubes curve: every level turns a quarter turn,
// recurses into the opposite-handed curve, and links the four sub-curves
// with three segments of Line units.
type Boxed struct {
	cur *turtle.Cursor

	Line       float64      // segment length (default 12)
	LeftColor  turtle.Color // color of left-handed levels (default blue)
	RightColor turtle.Color // color of right-handed levels (default red)
	Start      turtle.Vec2  // where the curve begins (default -200, 200)
}

// NewBoxed creates a boxed fractal drawer. A non-positive line means 12.
func NewBoxed(cur *turtle.Cursor, line float64) *Boxed {
	if line <= 0 {
		line = 12
	}
	return &Boxed{
		cur:        cur,
		Line:       line,
		LeftColor:  turtle.MustParseColor("blue"),
		RightColor: turtle.MustParseColor("red"),
		Start:      turtle.Vec2{X: -200, Y: 200},
	}
}

// Draw draws the curve to the given depth, starting right-handed. A depth
// of zero or less draws nothing.
func (b *Boxed) Draw(depth int) {
	if depth <= 0 {
		return
	}
	b.cur.SafeGoto(b.Start.X, b.Start.Y)
	b.branch(turtle.Right, depth)
}

func (b *Boxed) branch(dir turtle.Direction, depth int) {
	if depth < 0 {
		return
	}
	depth--

	col := b.RightColor
	if dir == turtle.Left {
		col = b.LeftColor
	}
	b.cur.SetColor(col, col)

	other := dir.Flip()
	b.cur.Turn(dir, 90)
	b.branch(other, depth)
	b.cur.Forward(b.Line)
	b.cur.Turn(other, 90)
	b.branch(dir, depth)
	b.cur.Forward(b.Line)
	b.branch(dir, depth)
	b.cur.Turn(other, 90)
	b.cur.Forward(b.Line)
	b.branch(other, depth)
	b.cur.Turn(dir, 90)
}

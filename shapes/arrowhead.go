package shapes

import "github.com/phanxgames/turtle"

// Arrowhead draws the Sierpiński arrowhead curve.
type Arrowhead struct {
	cur *turtle.Cursor

	Length float64     // segment length at the deepest level (default 5)
	Angle  float64     // turn angle in degrees (default 60)
	Start  turtle.Vec2 // where the curve begins (default 0, -300)
}

// NewArrowhead creates an arrowhead drawer. A non-positive length means 5.
func NewArrowhead(cur *turtle.Cursor, length float64) *Arrowhead {
	if length <= 0 {
		length = 5
	}
	return &Arrowhead{
		cur:    cur,
		Length: length,
		Angle:  60,
		Start:  turtle.Vec2{X: 0, Y: -300},
	}
}

// Draw draws a curve of the given order: 3^order segments heading off at
// Angle degrees from Start. An order of zero or less draws nothing.
func (a *Arrowhead) Draw(order int) {
	if order <= 0 {
		return
	}
	a.cur.SafeGoto(a.Start.X, a.Start.Y)
	a.cur.SetHeading(a.Angle)
	a.curve(order, turtle.Left)
}

// curve flips its handedness for the outer two sub-curves of every level.
func (a *Arrowhead) curve(order int, dir turtle.Direction) {
	if order <= 0 {
		a.cur.Forward(a.Length)
		return
	}
	order--
	a.curve(order, dir.Flip())
	a.cur.Turn(dir, a.Angle)
	a.curve(order, dir)
	a.cur.Turn(dir, a.Angle)
	a.curve(order, dir.Flip())
}

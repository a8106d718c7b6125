package shapes

import "github.com/phanxgames/turtle"

// Rosette draws Count squares rotated evenly about the cursor's position,
// cycling pen colors through the numbered Logo palette.
type Rosette struct {
	cur *turtle.Cursor

	Count int     // number of squares (default 30)
	Side  float64 // square edge length (default 100)
}

// NewRosette creates a rosette drawer.
func NewRosette(cur *turtle.Cursor) *Rosette {
	return &Rosette{cur: cur, Count: 30, Side: 100}
}

// Draw draws the rosette and leaves the cursor where it started, facing its
// original heading.
func (r *Rosette) Draw() {
	if r.Count <= 0 {
		return
	}
	heading := r.cur.Heading()
	step := 360 / float64(r.Count)
	for i := range r.Count {
		// Skip black and white so every square shows on either background.
		n := 1 + i%(turtle.LogoColorCount-1)
		if n == 7 {
			n = 8
		}
		r.cur.SetPenColor(turtle.LogoColor(n))
		for range 4 {
			r.cur.Forward(r.Side)
			r.cur.Right(90)
		}
		r.cur.Right(step)
	}
	r.cur.SetHeading(heading)
}

package shapes

import (
	"fmt"

	"github.com/phanxgames/turtle"
)

// Mode is the rendering strategy Poly360.Draw used.
type Mode uint8

const (
	// ModeSingle interleaves right- and left-handed polygons in one pass.
	ModeSingle Mode = iota
	// ModeLayered draws every left-handed polygon first, then every
	// right-handed one on top, so the two colors read as separate layers.
	ModeLayered
)

// String returns "single" or "layered".
func (m Mode) String() string {
	if m == ModeLayered {
		return "layered"
	}
	return "single"
}

// Poly360 draws a ring of polygons around a larger polygon of the same side
// count. Each ring position gets a polygon traced clockwise in Even and one
// traced counterclockwise in Odd.
type Poly360 struct {
	cur *turtle.Cursor

	Sides int
	Line  float64
	Even  turtle.Color // clockwise polygons
	Odd   turtle.Color // counterclockwise polygons
}

// NewPoly360 creates a polygon-symmetry drawer.
func NewPoly360(cur *turtle.Cursor, sides int, line float64, even, odd turtle.Color) *Poly360 {
	return &Poly360{cur: cur, Sides: sides, Line: line, Even: even, Odd: odd}
}

// Mode reports which strategy Draw will use: layered when the two colors
// differ, single otherwise.
func (p *Poly360) Mode() Mode {
	if p.Even != p.Odd {
		return ModeLayered
	}
	return ModeSingle
}

// Draw traces the figure starting at pos and returns the mode it used.
// Fewer than one side draws nothing.
func (p *Poly360) Draw(pos turtle.Vec2) Mode {
	mode := p.Mode()
	if p.Sides <= 0 {
		return mode
	}
	p.cur.SafeGoto(pos.X, pos.Y)
	if mode == ModeLayered {
		p.drawLayered()
	} else {
		p.drawSingle()
	}
	return mode
}

func (p *Poly360) frac() float64 {
	return 360 / float64(p.Sides)
}

// polygon traces one full polygon turning in dir and returns depth-1. A
// negative depth draws nothing and is returned unchanged.
func (p *Poly360) polygon(dir turtle.Direction, depth int) int {
	if depth < 0 {
		return depth
	}
	col := p.Even
	if dir == turtle.Left {
		col = p.Odd
	}
	p.cur.SetColor(col, col)
	frac := p.frac()
	for range p.Sides {
		p.cur.Turn(dir, frac)
		p.cur.Forward(p.Line)
	}
	return depth - 1
}

func (p *Poly360) drawSingle() {
	frac := p.frac()
	for depth := p.Sides; depth > 0; {
		p.polygon(turtle.Right, depth)
		depth = p.polygon(turtle.Left, depth)
		p.cur.Forward(p.Line)
		p.cur.Right(frac)
	}
}

func (p *Poly360) drawLayered() {
	frac := p.frac()
	for _, dir := range [2]turtle.Direction{turtle.Left, turtle.Right} {
		for depth := p.Sides; depth > 0; {
			depth = p.polygon(dir, depth)
			p.cur.PenUp()
			p.cur.Forward(p.Line)
			p.cur.Right(frac)
			p.cur.PenDown()
		}
	}
}

// ShowOptions configures ShapeShow.
type ShowOptions struct {
	Speed      int     // cursor speed level
	PenSize    float64 // stroke width (default 3)
	ShowCursor bool    // leave each cursor visible while it draws
	Even, Odd  turtle.Color
}

// ShapeShow draws nine Poly360 figures with 3 to 11 sides in a three by three
// grid, each labeled with its side count, using one cursor per figure. It
// returns the drawers in the order drawn.
func ShapeShow(cv *turtle.Canvas, opts ShowOptions) []*Poly360 {
	if opts.PenSize <= 0 {
		opts.PenSize = 3
	}
	const yStart = 200
	xStart, y, offs := -200.0, float64(yStart), 0

	out := make([]*Poly360, 0, 9)
	for which, sides := 1, 3; sides < 12; which, sides = which+1, sides+1 {
		cur := cv.NewCursor()
		p := NewPoly360(cur, sides, 16, opts.Even, opts.Odd)
		if !opts.ShowCursor {
			cur.Hide()
		}
		cur.Speed(opts.Speed)
		cur.SetPenSize(opts.PenSize)

		x := xStart
		ypos := y - float64(200*offs)
		p.Draw(turtle.Vec2{X: x - 60, Y: ypos + 90})
		cur.Hide()
		cur.PenUp()
		cur.Goto(x-90, ypos-50)
		cur.Label(fmt.Sprintf("%02d sides", sides))
		out = append(out, p)

		if which%3 == 0 {
			xStart += 200
			y = yStart
			offs = 0
		} else {
			offs++
		}
	}
	return out
}

// FastShapeShow is ShapeShow in a single color, which skips layering.
func FastShapeShow(cv *turtle.Canvas, speed int, pen float64) []*Poly360 {
	red := turtle.MustParseColor("red")
	return ShapeShow(cv, ShowOptions{Speed: speed, PenSize: pen, Even: red, Odd: red})
}

// BestOfShow draws a single large blue and purple figure centered near the
// origin and returns its drawer.
func BestOfShow(cv *turtle.Canvas, sides, speed int, pen, seg float64) *Poly360 {
	cur := cv.NewCursor()
	p := NewPoly360(cur, sides, seg, turtle.MustParseColor("blue"), turtle.MustParseColor("purple"))
	cur.Speed(speed)
	cur.SetPenSize(pen)
	cur.Hide()
	p.Draw(turtle.Vec2{X: -seg / 2, Y: seg / 2})
	return p
}

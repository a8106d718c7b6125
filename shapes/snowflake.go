package shapes

import "github.com/phanxgames/turtle"

// Snowflake draws an eight-armed flake of three-pronged spokes. Flakes can
// be erased by redrawing them in the background color with QuickDraw.
type Snowflake struct {
	cur     *turtle.Cursor
	heading float64

	Pos   turtle.Vec2
	Size  float64
	Color turtle.Color
	Speed int
}

// NewSnowflake creates a flake drawn by cur, which is hidden and set to
// speed. Every draw starts from the heading cur has now.
func NewSnowflake(cur *turtle.Cursor, pos turtle.Vec2, size float64, color turtle.Color, speed int) *Snowflake {
	cur.Hide()
	cur.Speed(speed)
	return &Snowflake{
		cur:     cur,
		heading: cur.Heading(),
		Pos:     pos,
		Size:    size,
		Color:   color,
		Speed:   speed,
	}
}

// Cursor returns the flake's cursor.
func (s *Snowflake) Cursor() *turtle.Cursor { return s.cur }

// DrawFlake draws the flake in its color at its own speed. The pen is left up.
func (s *Snowflake) DrawFlake() {
	s.cur.PenUp()
	s.cur.SetHeading(s.heading)
	s.cur.Goto(s.Pos.X, s.Pos.Y)
	s.cur.Forward(10 * s.Size)
	s.cur.Left(45)
	s.cur.PenDown()
	s.cur.SetColor(s.Color, s.Color)
	for range 8 {
		s.arm()
		s.cur.Left(45)
	}
	s.cur.PenUp()
}

// QuickDraw redraws the flake instantly in background, which erases it on a
// canvas of that color. The flake's color and speed are restored afterward.
func (s *Snowflake) QuickDraw(background turtle.Color) {
	hold := s.Color
	s.Color = background
	s.cur.Speed(0)
	s.DrawFlake()
	s.cur.Speed(s.Speed)
	s.Color = hold
}

func (s *Snowflake) arm() {
	slice := 10 * s.Size / 3
	for range 3 {
		for range 3 {
			s.cur.Forward(slice)
			s.cur.Backward(slice)
			s.cur.Right(45)
		}
		s.cur.Left(90)
		s.cur.Backward(slice)
		s.cur.Left(45)
	}
	s.cur.Right(90)
	s.cur.Forward(10 * s.Size)
}

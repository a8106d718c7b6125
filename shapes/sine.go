package shapes

import (
	"math"

	"github.com/phanxgames/turtle"
)

// Sine plots one period of a sine wave over a horizontal axis.
type Sine struct {
	cur *turtle.Cursor

	Line      float64 // half the axis length; the wave spans -Line..360-Line (default 180)
	Amplitude float64 // peak height (default 100)
	AxisColor turtle.Color
	WaveColor turtle.Color
}

// NewSine creates a sine plotter with a red axis and a yellow wave.
func NewSine(cur *turtle.Cursor) *Sine {
	return &Sine{
		cur:       cur,
		Line:      180,
		Amplitude: 100,
		AxisColor: turtle.MustParseColor("red"),
		WaveColor: turtle.MustParseColor("yellow"),
	}
}

// Draw traces the axis from the cursor's position out to (Line, 0) and back
// to (-Line, 0), then plots y = Amplitude*sin(angle) at x = angle-Line for
// each whole degree from 0 to 359.
func (s *Sine) Draw() {
	s.cur.PenDown()
	s.cur.SetColor(s.AxisColor, s.AxisColor)
	s.cur.Goto(s.Line, 0)
	s.cur.Goto(-s.Line, 0)
	s.cur.SetColor(s.WaveColor, s.WaveColor)
	for angle := range 360 {
		y := math.Sin(float64(angle) * math.Pi / 180)
		s.cur.Goto(float64(angle)-s.Line, y*s.Amplitude)
	}
}

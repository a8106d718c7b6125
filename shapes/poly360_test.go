package shapes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phanxgames/turtle"
)

var (
	redColor  = turtle.MustParseColor("red")
	blueColor = turtle.MustParseColor("blue")
)

func TestPoly360LayeredDrawsOddLayerFirst(t *testing.T) {
	cv := turtle.NewCanvas()
	p := NewPoly360(cv.NewCursor(), 4, 12, redColor, blueColor)
	mode := p.Draw(turtle.Vec2{})
	require.Equal(t, ModeLayered, mode)

	strokes := cv.Strokes()
	require.Len(t, strokes, 2*4*4)
	for i, s := range strokes {
		want := blueColor
		if i >= 16 {
			want = redColor
		}
		require.Equal(t, want, s.Color, "stroke %d", i)
	}
}

func TestPoly360SingleInterleaves(t *testing.T) {
	cv := turtle.NewCanvas()
	p := NewPoly360(cv.NewCursor(), 4, 12, redColor, redColor)
	require.Equal(t, ModeSingle, p.Draw(turtle.Vec2{}))
	// Per ring position: a clockwise polygon, a counterclockwise polygon
	// and one link segment.
	require.Equal(t, 4*(2*4+1), cv.Count(turtle.OpStroke))
}

func TestPoly360ReturnsToStart(t *testing.T) {
	for _, odd := range []turtle.Color{redColor, blueColor} {
		cv := turtle.NewCanvas()
		cur := cv.NewCursor()
		start := turtle.Vec2{X: -30, Y: 45}
		NewPoly360(cur, 6, 20, redColor, odd).Draw(start)
		require.InDelta(t, start.X, cur.Position().X, 1e-6)
		require.InDelta(t, start.Y, cur.Position().Y, 1e-6)
	}
}

func TestPoly360NoSidesDrawsNothing(t *testing.T) {
	for _, sides := range []int{0, -3} {
		cv := turtle.NewCanvas()
		NewPoly360(cv.NewCursor(), sides, 12, redColor, blueColor).Draw(turtle.Vec2{X: 5})
		require.Zero(t, cv.Len(), "sides %d", sides)
	}
}

func TestModeString(t *testing.T) {
	require.Equal(t, "single", ModeSingle.String())
	require.Equal(t, "layered", ModeLayered.String())
}

func TestShapeShow(t *testing.T) {
	cv := turtle.NewCanvas()
	figures := ShapeShow(cv, ShowOptions{Even: redColor, Odd: turtle.MustParseColor("green")})
	require.Len(t, figures, 9)

	labels := cv.Labels()
	require.Len(t, labels, 9)
	require.Equal(t, "03 sides", labels[0].Text)
	require.Equal(t, "11 sides", labels[8].Text)
	require.Equal(t, turtle.Vec2{X: -290, Y: 150}, labels[0].At)
	// Three per column, then the next column starts back at the top.
	require.Equal(t, turtle.Vec2{X: -290, Y: -250}, labels[2].At)
	require.Equal(t, turtle.Vec2{X: -90, Y: 150}, labels[3].At)

	total := 0
	for _, p := range figures {
		total += 2 * p.Sides * p.Sides
	}
	for _, c := range cv.Cursors() {
		require.False(t, c.Visible())
	}
	require.Equal(t, total, cv.Count(turtle.OpStroke))
	require.Len(t, cv.Cursors(), 9)
}

func TestFastShapeShowIsSingleColor(t *testing.T) {
	cv := turtle.NewCanvas()
	for _, p := range FastShapeShow(cv, 0, 1) {
		require.Equal(t, ModeSingle, p.Mode())
	}
	for _, s := range cv.Strokes() {
		require.Equal(t, redColor, s.Color)
		require.Equal(t, 1.0, s.Width)
	}
}

func TestBestOfShow(t *testing.T) {
	cv := turtle.NewCanvas()
	p := BestOfShow(cv, 8, 9, 5, 60)
	require.Equal(t, ModeLayered, p.Mode())
	require.Equal(t, 2*8*8, cv.Count(turtle.OpStroke))
	require.Equal(t, turtle.Vec2{X: -30, Y: 30}, cv.Strokes()[0].From)
	require.Equal(t, turtle.Speed(9), cv.Ops()[0].Speed)
}

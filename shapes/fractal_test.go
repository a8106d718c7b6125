package shapes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phanxgames/turtle"
)

func TestFractalsNonPositiveDepthDrawNothing(t *testing.T) {
	for _, depth := range []int{0, -1, -10} {
		cv := turtle.NewCanvas()
		NewBoxed(cv.NewCursor(), 12).Draw(depth)
		NewArrowhead(cv.NewCursor(), 5).Draw(depth)
		NewTree(cv.NewCursor()).Draw(float64(depth))
		require.Zero(t, cv.Len(), "depth %d", depth)
	}
}

func TestBoxedStrokeCount(t *testing.T) {
	// Each level adds three segments around four sub-curves:
	// S(0) = 3, S(k) = 3 + 4*S(k-1).
	tests := []struct {
		depth, want int
	}{
		{1, 15},
		{2, 63},
		{3, 255},
	}
	for _, tt := range tests {
		cv := turtle.NewCanvas()
		NewBoxed(cv.NewCursor(), 12).Draw(tt.depth)
		require.Equal(t, tt.want, cv.Count(turtle.OpStroke), "depth %d", tt.depth)
	}
}

func TestBoxedStartsAtStartAndUsesBothColors(t *testing.T) {
	cv := turtle.NewCanvas()
	b := NewBoxed(cv.NewCursor(), 12)
	b.Draw(2)

	strokes := cv.Strokes()
	require.Equal(t, b.Start, strokes[0].From)

	var left, right int
	for _, s := range strokes {
		switch s.Color {
		case b.LeftColor:
			left++
		case b.RightColor:
			right++
		default:
			t.Fatalf("unexpected color %v", s.Color)
		}
		require.InDelta(t, 12, s.Length(), 1e-9)
	}
	require.NotZero(t, left)
	require.NotZero(t, right)
}

func TestArrowheadStrokeCount(t *testing.T) {
	for order, want := range map[int]int{1: 3, 2: 9, 4: 81, 7: 2187} {
		cv := turtle.NewCanvas()
		NewArrowhead(cv.NewCursor(), 5).Draw(order)
		require.Equal(t, want, cv.Count(turtle.OpStroke), "order %d", order)
	}
}

func TestArrowheadFirstOrderGeometry(t *testing.T) {
	cv := turtle.NewCanvas()
	a := NewArrowhead(cv.NewCursor(), 10)
	a.Start = turtle.Vec2{}
	a.Draw(1)

	// Heading 60, then two left turns of 60: the three segments run at
	// 60, 120 and 180 degrees.
	strokes := cv.Strokes()
	for i, deg := range []float64{60, 120, 180} {
		d := strokes[i].To.Sub(strokes[i].From)
		rad := deg * math.Pi / 180
		require.InDelta(t, 10*math.Cos(rad), d.X, 1e-9, "segment %d", i)
		require.InDelta(t, 10*math.Sin(rad), d.Y, 1e-9, "segment %d", i)
	}
}

func TestTreeStrokeCount(t *testing.T) {
	cv := turtle.NewCanvas()
	cur := cv.NewCursor()
	tr := NewTree(cur)
	tr.Draw(50)

	// Levels 50, 35, ..., 4.1 make eight generations: 255 branches, each
	// drawn out and back.
	require.Equal(t, 510, cv.Count(turtle.OpStroke))
	require.InDelta(t, tr.Start.X, cur.Position().X, 1e-6)
	require.InDelta(t, tr.Start.Y, cur.Position().Y, 1e-6)
	require.InDelta(t, 90, cur.Heading(), 1e-6)
}

func TestTreeTrunk(t *testing.T) {
	cv := turtle.NewCanvas()
	tr := NewTree(cv.NewCursor())
	tr.Draw(50)

	trunk := cv.Strokes()[0]
	require.Equal(t, tr.Start, trunk.From)
	require.Equal(t, turtle.Vec2{X: 0, Y: -250}, trunk.To)
	require.Equal(t, 5.0, trunk.Width)
	// int(50 mod 4) = 2
	require.Equal(t, turtle.MustParseColor("red"), trunk.Color)
}

func TestTreeBadFactorStillTerminates(t *testing.T) {
	cv := turtle.NewCanvas()
	tr := NewTree(cv.NewCursor())
	tr.Factor = 1.5
	tr.Draw(50)
	require.Equal(t, 510, cv.Count(turtle.OpStroke))
}

func TestTreeSmallThresholdFallsBack(t *testing.T) {
	for _, th := range []float64{0, -1, 0.01, math.NaN()} {
		cv := turtle.NewCanvas()
		tr := NewTree(cv.NewCursor())
		tr.Threshold = th
		tr.Draw(50)
		require.Equal(t, 510, cv.Count(turtle.OpStroke), "threshold %v", th)
	}

	cv := turtle.NewCanvas()
	tr := NewTree(cv.NewCursor())
	tr.Threshold = 1
	tr.Draw(50)
	// Levels down to 1.41 make eleven generations.
	require.Equal(t, 4094, cv.Count(turtle.OpStroke))
}

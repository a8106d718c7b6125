package shapes

import (
	"math"

	"github.com/phanxgames/turtle"
)

// Tree draws a binary branching tree. Each branch is as long as its level,
// and both children are drawn at level*Factor until the level falls to
// Threshold or below.
type Tree struct {
	cur *turtle.Cursor

	Palette   []turtle.Color // indexed by int(level) mod len
	Threshold float64        // levels at or below this are not drawn (default 4, minimum 1)
	Factor    float64        // per-level length scale in (0, 1) (default 0.7)
	Angle     float64        // half the spread between children (default 33)
	Start     turtle.Vec2    // trunk base (default 0, -300)
}

// NewTree creates a tree drawer with the teal, green, red, brown palette.
func NewTree(cur *turtle.Cursor) *Tree {
	return &Tree{
		cur: cur,
		Palette: []turtle.Color{
			turtle.MustParseColor("teal"),
			turtle.MustParseColor("green"),
			turtle.MustParseColor("red"),
			turtle.MustParseColor("brown"),
		},
		Threshold: 4,
		Factor:    0.7,
		Angle:     33,
		Start:     turtle.Vec2{X: 0, Y: -300},
	}
}

// Draw grows the tree upward from Start with a trunk of the given level.
// The cursor ends back at Start facing north.
func (t *Tree) Draw(level float64) {
	if level <= 0 || math.IsNaN(level) || math.IsInf(level, 0) {
		return
	}
	t.cur.SetHeading(90)
	t.cur.SafeGoto(t.Start.X, t.Start.Y)
	t.branch(level, t.factor(), t.threshold())
}

// threshold keeps the recursion bounded. Below 1 the branch count grows
// without limit as the level decays toward zero.
func (t *Tree) threshold() float64 {
	if t.Threshold < 1 || math.IsNaN(t.Threshold) {
		return 4
	}
	return t.Threshold
}

// factor guards against factors that would never shrink the level.
func (t *Tree) factor() float64 {
	if t.Factor <= 0 || t.Factor >= 1 {
		return 0.7
	}
	return t.Factor
}

func (t *Tree) branch(level, factor, threshold float64) {
	if level <= threshold {
		return
	}
	t.cur.SetPenSize(level / 10)
	if n := len(t.Palette); n > 0 {
		col := t.Palette[int(math.Mod(level, float64(n)))]
		t.cur.SetColor(col, col)
	}
	t.cur.Forward(level)
	t.cur.Right(t.Angle)
	t.branch(level*factor, factor, threshold)
	t.cur.Left(2 * t.Angle)
	t.branch(level*factor, factor, threshold)
	t.cur.Right(t.Angle)
	t.cur.Backward(level)
}

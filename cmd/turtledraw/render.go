package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/phanxgames/turtle"
	"github.com/phanxgames/turtle/shapes"
)

// ErrUnknownShape is returned for shape names with no drawer.
var ErrUnknownShape = errors.New("unknown shape")

// shapeOptions are the knobs a drawer may read. Zero values pick the
// drawer's own default.
type shapeOptions struct {
	depth int
	sides int
	speed int
}

type drawFunc func(cv *turtle.Canvas, o shapeOptions)

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

var drawers = map[string]drawFunc{
	"chessboard": func(cv *turtle.Canvas, o shapeOptions) {
		b := shapes.NewChessboard(cv.NewCursor(), shapes.DefaultBoardLength,
			turtle.MustParseColor("white"), turtle.MustParseColor("gray"))
		b.Draw()
	},
	"cubes": func(cv *turtle.Canvas, o shapeOptions) {
		cur := cv.NewCursor()
		cur.Speed(o.speed)
		shapes.NewBoxed(cur, 12).Draw(orDefault(o.depth, 3))
	},
	"arrowhead": func(cv *turtle.Canvas, o shapeOptions) {
		cur := cv.NewCursor()
		cur.Speed(o.speed)
		shapes.NewArrowhead(cur, 5).Draw(orDefault(o.depth, 7))
	},
	"tree": func(cv *turtle.Canvas, o shapeOptions) {
		cur := cv.NewCursor()
		cur.Speed(o.speed)
		shapes.NewTree(cur).Draw(float64(orDefault(o.depth, 50)))
	},
	"poly360": func(cv *turtle.Canvas, o shapeOptions) {
		shapes.BestOfShow(cv, orDefault(o.sides, 8), o.speed, 5, 60)
	},
	"gallery": func(cv *turtle.Canvas, o shapeOptions) {
		shapes.ShapeShow(cv, shapes.ShowOptions{
			Speed: o.speed,
			Even:  turtle.MustParseColor("red"),
			Odd:   turtle.MustParseColor("green"),
		})
	},
	"gallery-fast": func(cv *turtle.Canvas, o shapeOptions) {
		shapes.FastShapeShow(cv, o.speed, 1)
	},
	"snowflake": func(cv *turtle.Canvas, o shapeOptions) {
		cv.SetBackground(turtle.ColorBlack)
		shapes.NewSnowflake(cv.NewCursor(), turtle.Vec2{X: -50, Y: 50}, 8, turtle.ColorWhite, o.speed).DrawFlake()
	},
	"sine": func(cv *turtle.Canvas, o shapeOptions) {
		cv.SetBackground(turtle.ColorBlack)
		cur := cv.NewCursor()
		cur.Speed(o.speed)
		shapes.NewSine(cur).Draw()
	},
	"rosette": func(cv *turtle.Canvas, o shapeOptions) {
		cur := cv.NewCursor()
		cur.Speed(o.speed)
		shapes.NewRosette(cur).Draw()
	},
}

// shapeNames returns the registered shape names in sorted order.
func shapeNames() []string {
	names := make([]string, 0, len(drawers))
	for name := range drawers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// drawShape draws the named shape onto a new canvas.
func drawShape(name string, o shapeOptions, debug bool) (*turtle.Canvas, error) {
	draw, ok := drawers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	cv := turtle.NewCanvas()
	cv.SetDebugMode(debug)
	draw(cv, o)
	return cv, nil
}

func newRenderCmd(out *outputFlags) *cobra.Command {
	var o shapeOptions
	cmd := &cobra.Command{
		Use:       "render <shape>",
		Short:     "Draw one of the built-in shapes",
		Args:      cobra.ExactArgs(1),
		ValidArgs: shapeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cv, err := drawShape(args[0], o, out.debug)
			if err != nil {
				return err
			}
			return out.emit(cmd, cv, args[0])
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.depth, "depth", 0, "recursion depth or tree trunk length (0 uses the shape's default)")
	f.IntVar(&o.sides, "sides", 0, "polygon side count for poly360 (0 uses 8)")
	f.IntVar(&o.speed, "speed", 6, "cursor speed 1..10; anything else is instant")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in shapes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range shapeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

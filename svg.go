package turtle

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// RenderSVG writes cv as an SVG document to w using the same viewport as
// RenderPNG. Coordinates are rounded to whole pixels.
func RenderSVG(w io.Writer, cv *Canvas, opts RenderOptions) error {
	opts = opts.withDefaults()
	vp := opts.Viewport(cv)
	ew := &errWriter{w: w}

	doc := svg.New(ew)
	doc.Start(opts.Width, opts.Height)
	doc.Rect(0, 0, opts.Width, opts.Height, "fill:"+svgColor(cv.Background)+svgOpacity("fill", cv.Background))

	for _, op := range opts.ops(cv) {
		switch op.Kind {
		case OpStroke:
			s := op.Stroke
			a, b := vp.ToScreen(s.From), vp.ToScreen(s.To)
			width := math.Max(s.Width*math.Abs(vp.Scale()), minScreenWidth)
			doc.Line(px(a.X), px(a.Y), px(b.X), px(b.Y),
				fmt.Sprintf("stroke:%s%s;stroke-width:%g;stroke-linecap:square",
					svgColor(s.Color), svgOpacity("stroke", s.Color), width))
		case OpFill:
			xs := make([]int, len(op.Fill.Points))
			ys := make([]int, len(op.Fill.Points))
			for i, p := range op.Fill.Points {
				sp := vp.ToScreen(p)
				xs[i], ys[i] = px(sp.X), px(sp.Y)
			}
			doc.Polygon(xs, ys, "fill:"+svgColor(op.Fill.Color)+svgOpacity("fill", op.Fill.Color))
		case OpLabel:
			at := vp.ToScreen(op.Label.At)
			doc.Text(px(at.X), px(at.Y), op.Label.Text,
				"font-family:monospace;font-size:13px;fill:"+svgColor(op.Label.Color))
		}
	}
	doc.End()

	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

func px(v float64) int {
	return int(math.Round(v))
}

func svgColor(c Color) string {
	n := c.ToNRGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B)
}

// svgOpacity returns a ";<prop>-opacity:a" suffix for translucent colors.
func svgOpacity(prop string, c Color) string {
	if c.A >= 1 {
		return ""
	}
	return fmt.Sprintf(";%s-opacity:%.3g", prop, clamp01(c.A))
}

// errWriter records the first write error; svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

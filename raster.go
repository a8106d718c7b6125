package turtle

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Default output size for headless renders.
const (
	defaultRenderWidth  = 800
	defaultRenderHeight = 800
	defaultFitMargin    = 16
)

// RenderOptions controls how a canvas is mapped onto an image.
type RenderOptions struct {
	Width, Height int     // image size in pixels (default 800x800)
	Scale         float64 // pixels per world unit when Fit is false (default 1)
	Fit           bool    // scale and center the canvas bounds into the image
	Margin        float64 // padding in pixels around fitted bounds (default 16)

	// Limit renders only the first Limit ops. Zero renders every op.
	Limit int
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Width <= 0 {
		o.Width = defaultRenderWidth
	}
	if o.Height <= 0 {
		o.Height = defaultRenderHeight
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Margin <= 0 {
		o.Margin = defaultFitMargin
	}
	return o
}

// Viewport returns the world-to-image mapping these options produce for cv.
func (o RenderOptions) Viewport(cv *Canvas) Viewport {
	o = o.withDefaults()
	if o.Fit {
		return FitViewport(cv.Bounds(), o.Width, o.Height, o.Margin)
	}
	return NewViewport(o.Width, o.Height, o.Scale)
}

func (o RenderOptions) ops(cv *Canvas) []Op {
	ops := cv.Ops()
	if o.Limit > 0 && o.Limit < len(ops) {
		return ops[:o.Limit]
	}
	return ops
}

// Rasterize draws cv into a new RGBA image. Ops are painted in draw order
// over the canvas background, so later ops cover earlier ones.
func Rasterize(cv *Canvas, opts RenderOptions) *image.RGBA {
	opts = opts.withDefaults()
	vp := opts.Viewport(cv)

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(cv.Background.ToRGBA()), image.Point{}, draw.Src)

	r := &rasterizer{dst: img, z: vector.NewRasterizer(1, 1)}
	for _, op := range opts.ops(cv) {
		switch op.Kind {
		case OpStroke:
			quad := StrokeQuad(op.Stroke, vp)
			r.fillPolygon(quad[:], op.Stroke.Color)
		case OpFill:
			pts := make([]Vec2, len(op.Fill.Points))
			for i, p := range op.Fill.Points {
				pts[i] = vp.ToScreen(p)
			}
			r.fillPolygon(pts, op.Fill.Color)
		case OpLabel:
			r.label(vp.ToScreen(op.Label.At), op.Label.Text, op.Label.Color)
		}
	}
	return img
}

// RenderPNG rasterizes cv and encodes it as PNG to w.
func RenderPNG(w io.Writer, cv *Canvas, opts RenderOptions) error {
	img := Rasterize(cv, opts)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// rasterizer paints polygons one at a time, sizing the coverage buffer to each
// polygon's clipped bounding box rather than the whole image.
type rasterizer struct {
	dst *image.RGBA
	z   *vector.Rasterizer
}

func (r *rasterizer) fillPolygon(pts []Vec2, c Color) {
	if len(pts) < 3 {
		return
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(r.dst.Bounds())
	if box.Empty() {
		return
	}

	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	r.z.Reset(box.Dx(), box.Dy())
	r.z.DrawOp = draw.Over
	r.z.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, p := range pts[1:] {
		r.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	r.z.ClosePath()
	r.z.Draw(r.dst, box, image.NewUniform(c.ToRGBA()), image.Point{})
}

// label draws text with its baseline starting at p.
func (r *rasterizer) label(p Vec2, text string, c Color) {
	d := font.Drawer{
		Dst:  r.dst,
		Src:  image.NewUniform(c.ToRGBA()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(math.Round(p.X)), int(math.Round(p.Y))),
	}
	d.DrawString(text)
}

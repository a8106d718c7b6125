package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/turtle"
)

// quadIndices splits a four-corner ribbon into two triangles.
var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// triIndices draws a single triangle.
var triIndices = []uint16{0, 1, 2}

// fillNonZero fills self-overlapping turtle polygons once per covered pixel.
var fillNonZero = &vector.FillOptions{FillRule: vector.FillRuleNonZero}

// renderer draws canvas ops onto ebiten images through a fixed viewport.
// Solid shapes are textured from the center pixel of a small white image.
type renderer struct {
	vp    turtle.Viewport
	white *ebiten.Image
	face  text.Face

	verts []ebiten.Vertex
}

func newRenderer(vp turtle.Viewport) *renderer {
	return &renderer{vp: vp, face: text.NewGoXFace(basicfont.Face7x13)}
}

// whitePixel returns the 1x1 white source image, creating it on first use.
func (r *renderer) whitePixel() *ebiten.Image {
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return r.white
}

func (r *renderer) drawOp(dst *ebiten.Image, op *turtle.Op) {
	switch op.Kind {
	case turtle.OpStroke:
		r.stroke(dst, op.Stroke)
	case turtle.OpFill:
		r.fill(dst, op.Fill.Points, op.Fill.Color)
	case turtle.OpLabel:
		r.label(dst, op.Label)
	}
}

func (r *renderer) stroke(dst *ebiten.Image, s turtle.Stroke) {
	q := turtle.StrokeQuad(s, r.vp)
	r.verts = appendSolid(r.verts[:0], q[:], s.Color)
	dst.DrawTriangles(r.verts, quadIndices, r.whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// fill draws a possibly concave or self-intersecting polygon.
func (r *renderer) fill(dst *ebiten.Image, pts []turtle.Vec2, c turtle.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	for i, p := range pts {
		sp := r.vp.ToScreen(p)
		if i == 0 {
			path.MoveTo(float32(sp.X), float32(sp.Y))
		} else {
			path.LineTo(float32(sp.X), float32(sp.Y))
		}
	}
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c.ToNRGBA())
	vector.FillPath(dst, &path, fillNonZero, op)
}

// label draws text with its baseline starting at the label's position.
func (r *renderer) label(dst *ebiten.Image, l turtle.Label) {
	p := r.vp.ToScreen(l.At)
	op := &text.DrawOptions{}
	op.GeoM.Translate(p.X, p.Y-r.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(l.Color.ToNRGBA())
	text.Draw(dst, l.Text, r.face, op)
}

func (r *renderer) cursorHead(dst *ebiten.Image, pos turtle.Vec2, heading, size float64, c turtle.Color) {
	tri := turtle.CursorHead(pos, heading, r.vp, size)
	r.verts = appendSolid(r.verts[:0], tri[:], c)
	dst.DrawTriangles(r.verts, triIndices, r.whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// appendSolid appends one vertex per screen point, sampling the white pixel
// and tinted with c.
func appendSolid(dst []ebiten.Vertex, pts []turtle.Vec2, c turtle.Color) []ebiten.Vertex {
	start := len(dst)
	for _, p := range pts {
		dst = append(dst, ebiten.Vertex{DstX: float32(p.X), DstY: float32(p.Y)})
	}
	colorize(dst[start:], c)
	return dst
}

// colorize points every vertex at the white pixel and sets its color.
// ebiten vertex colors are straight alpha by default.
func colorize(verts []ebiten.Vertex, c turtle.Color) {
	for i := range verts {
		v := &verts[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(c.R)
		v.ColorG = float32(c.G)
		v.ColorB = float32(c.B)
		v.ColorA = float32(c.A)
	}
}

// strokeHeading returns the world heading of s in degrees, or fallback for a
// zero-length stroke.
func strokeHeading(s turtle.Stroke, fallback float64) float64 {
	d := s.To.Sub(s.From)
	if d.X == 0 && d.Y == 0 {
		return fallback
	}
	deg := math.Atan2(d.Y, d.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

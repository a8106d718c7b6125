package turtle

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Viewport maps world coordinates (origin at center, Y up) to the pixel
// coordinates of a Width x Height image (origin top-left, Y down).
type Viewport struct {
	Width, Height int

	m   [6]float64
	inv [6]float64
}

// NewViewport creates a viewport that centers the world origin in a w x h
// image and scales world units by scale. A non-positive scale means 1.
func NewViewport(w, h int, scale float64) Viewport {
	if scale <= 0 || !finite(scale) {
		scale = 1
	}
	return newViewport(w, h, scale, Vec2{})
}

// FitViewport creates a viewport that scales and centers bounds to fit in a
// w x h image with margin pixels of padding on every side. Empty bounds fall
// back to a unit-scale viewport centered on the bounds' corner.
func FitViewport(bounds Rect, w, h int, margin float64) Viewport {
	center := Vec2{X: bounds.X + bounds.Width/2, Y: bounds.Y + bounds.Height/2}
	availW := float64(w) - 2*margin
	availH := float64(h) - 2*margin
	scale := 1.0
	if bounds.Width > 0 && bounds.Height > 0 && availW > 0 && availH > 0 {
		scale = math.Min(availW/bounds.Width, availH/bounds.Height)
	} else if bounds.Width > 0 && availW > 0 {
		scale = availW / bounds.Width
	} else if bounds.Height > 0 && availH > 0 {
		scale = availH / bounds.Height
	}
	return newViewport(w, h, scale, center)
}

func newViewport(w, h int, scale float64, center Vec2) Viewport {
	// Translate(-center) -> Scale(scale, -scale) -> Translate(w/2, h/2)
	toOrigin := [6]float64{1, 0, 0, 1, -center.X, -center.Y}
	flip := [6]float64{scale, 0, 0, -scale, 0, 0}
	toImage := [6]float64{1, 0, 0, 1, float64(w) / 2, float64(h) / 2}
	m := multiplyAffine(toImage, multiplyAffine(flip, toOrigin))
	return Viewport{Width: w, Height: h, m: m, inv: invertAffine(m)}
}

// Scale returns the number of pixels per world unit.
func (v Viewport) Scale() float64 {
	return v.m[0]
}

// Matrix returns the world-to-image affine matrix as [a, b, c, d, tx, ty].
func (v Viewport) Matrix() [6]float64 {
	return v.m
}

// ToScreen converts a world point to image pixel coordinates.
func (v Viewport) ToScreen(p Vec2) Vec2 {
	x, y := transformPoint(v.m, p.X, p.Y)
	return Vec2{X: x, Y: y}
}

// ToWorld converts image pixel coordinates to a world point.
func (v Viewport) ToWorld(p Vec2) Vec2 {
	x, y := transformPoint(v.inv, p.X, p.Y)
	return Vec2{X: x, Y: y}
}

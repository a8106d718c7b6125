package turtle

import "math"

// minScreenWidth keeps hairline strokes visible after scaling down.
const minScreenWidth = 1.0

// StrokeQuad returns the four screen-space corners of s drawn as a
// square-capped ribbon through v. Corners are ordered around the ribbon so
// they can be filled as one convex polygon. A zero-length stroke yields a
// square the size of its width.
func StrokeQuad(s Stroke, v Viewport) [4]Vec2 {
	a := v.ToScreen(s.From)
	b := v.ToScreen(s.To)
	halfW := math.Max(s.Width*math.Abs(v.Scale()), minScreenWidth) / 2

	dx, dy := b.X-a.X, b.Y-a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	var ux, uy float64 // unit direction
	if ln > 1e-10 {
		ux, uy = dx/ln, dy/ln
	} else {
		ux, uy = 1, 0
	}
	nx, ny := perpendicular(ux, uy)

	// Extend both ends by half the width so consecutive strokes overlap at joins.
	ax, ay := a.X-ux*halfW, a.Y-uy*halfW
	bx, by := b.X+ux*halfW, b.Y+uy*halfW

	return [4]Vec2{
		{X: ax + nx*halfW, Y: ay + ny*halfW},
		{X: bx + nx*halfW, Y: by + ny*halfW},
		{X: bx - nx*halfW, Y: by - ny*halfW},
		{X: ax - nx*halfW, Y: ay - ny*halfW},
	}
}

// PartialStroke returns s cut at fraction t of its length, t in [0, 1].
func PartialStroke(s Stroke, t float64) Stroke {
	t = clamp01(t)
	s.To = Vec2{
		X: s.From.X + (s.To.X-s.From.X)*t,
		Y: s.From.Y + (s.To.Y-s.From.Y)*t,
	}
	return s
}

// perpendicular returns the left-perpendicular of the unit vector (ux, uy).
func perpendicular(ux, uy float64) (float64, float64) {
	return -uy, ux
}

// CursorHead returns the screen-space triangle used to draw a cursor head
// at world position pos facing heading degrees, size pixels long.
func CursorHead(pos Vec2, heading float64, v Viewport, size float64) [3]Vec2 {
	tip := v.ToScreen(pos)
	// Screen Y points down, so the world heading is mirrored.
	rad := -heading * math.Pi / 180
	ux, uy := math.Cos(rad), math.Sin(rad)
	nx, ny := perpendicular(ux, uy)
	backX, backY := tip.X-ux*size, tip.Y-uy*size
	half := size / 2
	return [3]Vec2{
		tip,
		{X: backX + nx*half, Y: backY + ny*half},
		{X: backX - nx*half, Y: backY - ny*half},
	}
}

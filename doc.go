// Package turtle is a turtle-style 2D drawing toolkit.
//
// A [Cursor] is a stateful pen with a position, heading, pen state, colors and
// stroke width. Every movement primitive ([Cursor.Forward], [Cursor.Goto],
// [Cursor.Circle], ...) is recorded on the [Canvas] the cursor was created on
// as an append-only sequence of [Op] values: strokes, filled polygons and
// labels. Nothing is drawn to a screen while a routine runs; renderers read the
// finished canvas afterward.
//
// # Quick start
//
//	canvas := turtle.NewCanvas()
//	cur := canvas.NewCursor()
//	cur.SetColor(turtle.MustParseColor("red"), turtle.MustParseColor("gold"))
//	cur.BeginFill()
//	for range 5 {
//		cur.Forward(200)
//		cur.Right(144)
//	}
//	cur.EndFill()
//
//	f, _ := os.Create("star.png")
//	defer f.Close()
//	turtle.RenderPNG(f, canvas, turtle.RenderOptions{Fit: true})
//
// To watch the drawing animate in a window, pass the canvas to window.Run from
// the window subpackage. Each op carries the [Speed] its cursor had when it
// was emitted; the window's [Pacer] uses it to pace the reveal. Speed never
// changes the geometry.
//
// # Coordinates
//
// World coordinates have their origin at the center of the canvas with Y
// increasing upward. Headings are degrees, 0 east and 90 north, normalized to
// [0, 360). A [Viewport] maps world coordinates to image pixels.
//
// # Invariants
//
// Pen-up moves emit no strokes. Pen-down moves emit exactly one stroke per
// primitive move, except zero-length moves, which emit nothing. A fill region
// is committed only when [Cursor.EndFill] closes a span opened by
// [Cursor.BeginFill] with at least three vertices.
//
// # Scripts
//
// [Script] runs a JSON or YAML list of cursor actions, which lets drawings be
// described without writing Go. See the turtledraw command.
package turtle

package turtle

import (
	"math"
)

// Cursor is a stateful 2D drawing pen. Every movement primitive mutates the
// cursor in place and, when the pen is down, appends a stroke to the canvas
// the cursor was created on. Cursors on the same canvas are independent; they
// only share the canvas's draw order.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	canvas *Canvas
	id     uint32

	pos     Vec2
	heading float64 // degrees in [0, 360), 0 = east, counterclockwise positive
	down    bool
	visible bool
	width   float64
	pen     Color
	fill    Color
	speed   Speed

	filling  bool
	fillPath []Vec2
}

// NewCursor creates a cursor at the origin facing east with the pen down,
// black pen and fill colors, pen width 1 and normal speed.
func (cv *Canvas) NewCursor() *Cursor {
	c := &Cursor{
		canvas:  cv,
		id:      cv.nextCursorID(),
		down:    true,
		visible: true,
		width:   1,
		pen:     ColorBlack,
		fill:    ColorBlack,
		speed:   SpeedNormal,
	}
	cv.cursors = append(cv.cursors, c)
	return c
}

// ID returns the cursor's canvas-unique identifier.
func (c *Cursor) ID() uint32 { return c.id }

// Canvas returns the canvas this cursor draws on.
func (c *Cursor) Canvas() *Canvas { return c.canvas }

// Position returns the cursor's current world position.
func (c *Cursor) Position() Vec2 { return c.pos }

// Heading returns the cursor's heading in degrees, in [0, 360).
func (c *Cursor) Heading() float64 { return c.heading }

// IsDown reports whether movement currently emits strokes.
func (c *Cursor) IsDown() bool { return c.down }

// Visible reports whether viewers should draw the cursor head.
func (c *Cursor) Visible() bool { return c.visible }

// Filling reports whether a BeginFill span is open.
func (c *Cursor) Filling() bool { return c.filling }

// --- Movement ---

// Forward moves the cursor distance units along its heading. A negative
// distance moves backward; zero is a no-op.
func (c *Cursor) Forward(distance float64) {
	if distance == 0 || !finite(distance) {
		return
	}
	dx, dy := headingVector(c.heading)
	c.moveTo(Vec2{X: c.pos.X + dx*distance, Y: c.pos.Y + dy*distance})
}

// Backward moves the cursor distance units against its heading.
func (c *Cursor) Backward(distance float64) {
	c.Forward(-distance)
}

// Goto moves the cursor to the absolute position (x, y), drawing a stroke
// if the pen is down. The heading is unchanged.
func (c *Cursor) Goto(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	c.moveTo(Vec2{X: x, Y: y})
}

// GotoVec is Goto for a Vec2.
func (c *Cursor) GotoVec(p Vec2) {
	c.Goto(p.X, p.Y)
}

// SafeGoto lifts the pen, moves to (x, y) and lowers the pen again. It never
// emits a stroke regardless of the pen state before the call.
func (c *Cursor) SafeGoto(x, y float64) {
	c.PenUp()
	c.Goto(x, y)
	c.PenDown()
}

// SetX moves the cursor horizontally to x.
func (c *Cursor) SetX(x float64) {
	c.Goto(x, c.pos.Y)
}

// SetY moves the cursor vertically to y.
func (c *Cursor) SetY(y float64) {
	c.Goto(c.pos.X, y)
}

// Home moves the cursor to the origin and resets the heading to east.
func (c *Cursor) Home() {
	c.Goto(0, 0)
	c.heading = 0
}

// moveTo is the single path by which the cursor changes position.
func (c *Cursor) moveTo(to Vec2) {
	if to == c.pos {
		return
	}
	if c.down {
		c.canvas.emit(Op{
			Kind:   OpStroke,
			Stroke: Stroke{From: c.pos, To: to, Color: c.pen, Width: c.width},
			Speed:  c.speed,
			Cursor: c.id,
		})
	}
	if c.filling {
		c.fillPath = append(c.fillPath, to)
	}
	c.pos = to
}

// --- Heading ---

// Left turns the cursor counterclockwise by deg degrees.
func (c *Cursor) Left(deg float64) {
	if !finite(deg) {
		return
	}
	c.heading = normalizeDegrees(c.heading + deg)
}

// Right turns the cursor clockwise by deg degrees.
func (c *Cursor) Right(deg float64) {
	c.Left(-deg)
}

// SetHeading points the cursor at deg degrees (0 = east, 90 = north).
func (c *Cursor) SetHeading(deg float64) {
	if !finite(deg) {
		return
	}
	c.heading = normalizeDegrees(deg)
}

// Circle draws an arc of the given radius by a sequence of forward moves and
// left turns. The center lies radius units to the left of the cursor; a
// negative radius puts it on the right. extent is the arc angle in degrees
// (0 means a full circle) and steps the number of chords (0 picks a count
// from the radius).
func (c *Cursor) Circle(radius, extent float64, steps int) {
	if radius == 0 || !finite(radius) || !finite(extent) {
		return
	}
	if extent == 0 {
		extent = 360
	}
	if steps <= 0 {
		frac := math.Abs(extent) / 360
		steps = 1 + int(math.Min(11+math.Abs(radius)/6, 59)*frac)
	}
	w := extent / float64(steps)
	w2 := w / 2
	l := 2 * radius * math.Sin(w2*math.Pi/180)
	if radius < 0 {
		l, w, w2 = -l, -w, -w2
	}
	c.Left(w2)
	for range steps {
		c.Forward(l)
		c.Left(w)
	}
	c.Left(-w2)
}

// --- Pen ---

// PenUp stops movement from emitting strokes.
func (c *Cursor) PenUp() { c.down = false }

// PenDown makes subsequent movement emit strokes.
func (c *Cursor) PenDown() { c.down = true }

// SetPenSize sets the stroke width. Non-positive widths are ignored.
func (c *Cursor) SetPenSize(w float64) {
	if w <= 0 || !finite(w) {
		return
	}
	c.width = w
}

// PenSize returns the current stroke width.
func (c *Cursor) PenSize() float64 { return c.width }

// SetColor sets both the stroke and fill colors and returns the previous
// pair so callers can restore them.
func (c *Cursor) SetColor(stroke, fill Color) (prevStroke, prevFill Color) {
	prevStroke, prevFill = c.pen, c.fill
	c.pen, c.fill = stroke, fill
	return prevStroke, prevFill
}

// SetPenColor sets the stroke color and returns the previous one.
func (c *Cursor) SetPenColor(col Color) Color {
	prev := c.pen
	c.pen = col
	return prev
}

// SetFillColor sets the fill color and returns the previous one.
func (c *Cursor) SetFillColor(col Color) Color {
	prev := c.fill
	c.fill = col
	return prev
}

// Colors returns the current stroke and fill colors.
func (c *Cursor) Colors() (stroke, fill Color) {
	return c.pen, c.fill
}

// Hide stops viewers from drawing the cursor head.
func (c *Cursor) Hide() { c.visible = false }

// Show makes viewers draw the cursor head.
func (c *Cursor) Show() { c.visible = true }

// Speed sets the animation speed for subsequent ops. See [Speed].
func (c *Cursor) Speed(level int) {
	c.speed = SpeedLevel(level)
}

// CurrentSpeed returns the speed recorded on the cursor's next ops.
func (c *Cursor) CurrentSpeed() Speed { return c.speed }

// --- Fill ---

// BeginFill opens a fill region at the current position. Every later move
// adds its end point to the region until EndFill. Calling BeginFill while a
// region is open discards the pending region.
func (c *Cursor) BeginFill() {
	if c.filling {
		c.dropFill("begin_fill while a fill is open")
	}
	c.filling = true
	c.fillPath = append(c.fillPath[:0], c.pos)
}

// EndFill closes the open fill region and commits it to the canvas in the
// current fill color. Regions with fewer than three vertices are dropped.
// EndFill without a matching BeginFill does nothing.
func (c *Cursor) EndFill() {
	if !c.filling {
		if c.canvas.debug {
			debugf("cursor %d: end_fill without begin_fill", c.id)
		}
		return
	}
	c.filling = false
	if len(c.fillPath) < 3 {
		c.dropFill("fill with fewer than 3 vertices")
		return
	}
	pts := make([]Vec2, len(c.fillPath))
	copy(pts, c.fillPath)
	c.fillPath = c.fillPath[:0]
	c.canvas.emit(Op{
		Kind:   OpFill,
		Fill:   Fill{Points: pts, Color: c.fill},
		Speed:  c.speed,
		Cursor: c.id,
	})
}

func (c *Cursor) dropFill(reason string) {
	c.canvas.stats.droppedFills++
	if c.canvas.debug {
		debugf("cursor %d: dropped %d-vertex fill: %s", c.id, len(c.fillPath), reason)
	}
	c.fillPath = c.fillPath[:0]
}

// --- Text ---

// Label writes text at the cursor's position in the pen color. The cursor
// does not move.
func (c *Cursor) Label(text string) {
	if text == "" {
		return
	}
	c.canvas.emit(Op{
		Kind:   OpLabel,
		Label:  Label{At: c.pos, Text: text, Color: c.pen},
		Speed:  c.speed,
		Cursor: c.id,
	})
}

// --- Helpers ---

// normalizeDegrees maps deg into [0, 360).
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 || deg == 0 {
		return 0
	}
	return deg
}

// headingVector returns the unit vector for a heading in degrees. Right
// angles are exact so axis-aligned walks land on integer coordinates.
func headingVector(deg float64) (float64, float64) {
	switch deg {
	case 0:
		return 1, 0
	case 90:
		return 0, 1
	case 180:
		return -1, 0
	case 270:
		return 0, -1
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return cos, sin
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package turtle

// OpKind identifies what a canvas operation renders.
type OpKind uint8

const (
	OpStroke OpKind = iota // a line segment
	OpFill                 // a filled polygon
	OpLabel                // a text label
)

// String returns the lowercase name of the kind.
func (k OpKind) String() string {
	switch k {
	case OpStroke:
		return "stroke"
	case OpFill:
		return "fill"
	case OpLabel:
		return "label"
	default:
		return "unknown"
	}
}

// Stroke is a straight segment drawn with the pen down.
type Stroke struct {
	From, To Vec2
	Color    Color
	Width    float64
}

// Length returns the distance between From and To.
func (s Stroke) Length() float64 {
	return s.To.Sub(s.From).Len()
}

// Fill is a closed polygon committed by EndFill.
type Fill struct {
	Points []Vec2
	Color  Color
}

// Label is text written at a world position.
type Label struct {
	At    Vec2
	Text  string
	Color Color
}

// Op is a single append-only canvas entry. Exactly one of Stroke, Fill or
// Label is meaningful, as selected by Kind.
type Op struct {
	Kind   OpKind
	Stroke Stroke
	Fill   Fill
	Label  Label

	// Speed is the emitting cursor's speed at the time of the op. It only
	// affects how a viewer paces the reveal, never the geometry.
	Speed Speed
	// Cursor is the ID of the cursor that emitted the op.
	Cursor uint32
}

// Canvas is the write-only output of a drawing session. Cursors append ops in
// call order; nothing is ever removed or modified, so draw order is exactly
// the order of the primitive calls.
type Canvas struct {
	// Background is the color renderers clear to before drawing ops.
	Background Color

	ops     []Op
	cursors []*Cursor
	nextID  uint32
	stats   canvasStats
	debug   bool
}

// NewCanvas creates an empty canvas with a white background.
func NewCanvas() *Canvas {
	return &Canvas{Background: ColorWhite}
}

// SetBackground sets the canvas background color.
func (cv *Canvas) SetBackground(c Color) {
	cv.Background = c
}

// SetDebugMode enables or disables debug diagnostics. When enabled, dropped
// fill regions and other suspicious cursor usage are reported on stderr.
func (cv *Canvas) SetDebugMode(enabled bool) {
	cv.debug = enabled
}

// Ops returns every op in draw order. The returned slice MUST NOT be mutated.
func (cv *Canvas) Ops() []Op {
	return cv.ops
}

// Len returns the number of ops on the canvas.
func (cv *Canvas) Len() int {
	return len(cv.ops)
}

// Cursors returns every cursor created on this canvas, in creation order.
// The returned slice MUST NOT be mutated.
func (cv *Canvas) Cursors() []*Cursor {
	return cv.cursors
}

// Strokes returns a copy of every stroke in draw order.
func (cv *Canvas) Strokes() []Stroke {
	var out []Stroke
	for i := range cv.ops {
		if cv.ops[i].Kind == OpStroke {
			out = append(out, cv.ops[i].Stroke)
		}
	}
	return out
}

// Fills returns every committed fill region in draw order.
func (cv *Canvas) Fills() []Fill {
	var out []Fill
	for i := range cv.ops {
		if cv.ops[i].Kind == OpFill {
			out = append(out, cv.ops[i].Fill)
		}
	}
	return out
}

// Labels returns every label in draw order.
func (cv *Canvas) Labels() []Label {
	var out []Label
	for i := range cv.ops {
		if cv.ops[i].Kind == OpLabel {
			out = append(out, cv.ops[i].Label)
		}
	}
	return out
}

// Count returns the number of ops of the given kind.
func (cv *Canvas) Count(kind OpKind) int {
	n := 0
	for i := range cv.ops {
		if cv.ops[i].Kind == kind {
			n++
		}
	}
	return n
}

// Bounds returns the world-space bounding box of every op. Stroke widths and
// label extents are not included. An empty canvas returns the zero Rect.
func (cv *Canvas) Bounds() Rect {
	var r Rect
	first := true
	add := func(p Vec2) {
		r = r.union(p, first)
		first = false
	}
	for i := range cv.ops {
		op := &cv.ops[i]
		switch op.Kind {
		case OpStroke:
			add(op.Stroke.From)
			add(op.Stroke.To)
		case OpFill:
			for _, p := range op.Fill.Points {
				add(p)
			}
		case OpLabel:
			add(op.Label.At)
		}
	}
	return r
}

func (cv *Canvas) emit(op Op) {
	cv.ops = append(cv.ops, op)
	switch op.Kind {
	case OpStroke:
		cv.stats.strokes++
	case OpFill:
		cv.stats.fills++
	case OpLabel:
		cv.stats.labels++
	}
}

func (cv *Canvas) nextCursorID() uint32 {
	cv.nextID++
	return cv.nextID
}

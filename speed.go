package turtle

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Speed is a cursor's animation speed hint. It is recorded on every op the
// cursor emits and only controls how fast a viewer reveals that op; the
// geometry is identical at every speed.
//
// Levels 1 (slowest) through 10 (fast) animate strokes proportionally to
// their length. SpeedInstant draws without any delay.
type Speed int

// Named speeds.
const (
	SpeedInstant Speed = 0
	SpeedSlowest Speed = 1
	SpeedSlow    Speed = 3
	SpeedNormal  Speed = 6
	SpeedFast    Speed = 10
)

// pixelsPerLevel is how many world units per second a stroke advances for
// each speed level.
const pixelsPerLevel = 60.0

// SpeedLevel converts a requested level into a Speed. Zero, negative and
// anything above 10 mean instant.
func SpeedLevel(level int) Speed {
	if level < int(SpeedSlowest) || level > int(SpeedFast) {
		return SpeedInstant
	}
	return Speed(level)
}

// Instant reports whether ops at this speed appear without animation.
func (s Speed) Instant() bool {
	return s < SpeedSlowest || s > SpeedFast
}

// opDuration returns how long a viewer spends revealing op, in seconds.
// Fills and labels appear at once; strokes take time proportional to length.
func opDuration(op *Op) float32 {
	if op.Kind != OpStroke || op.Speed.Instant() {
		return 0
	}
	return float32(op.Stroke.Length() / (float64(op.Speed) * pixelsPerLevel))
}

// Pacer reveals a canvas's ops over time according to each op's recorded
// speed. Call Update once per frame with the elapsed time; Visible reports
// how much of the canvas a viewer should draw. Time left over after an op
// finishes carries into the next one, so many short strokes can complete in
// a single frame.
//
// The canvas may keep growing while a Pacer is attached; new ops are picked
// up on the next Update.
type Pacer struct {
	// Ease shapes the progress of the stroke currently being revealed.
	// Defaults to ease.Linear.
	Ease ease.TweenFunc

	canvas   *Canvas
	done     int
	tween    *gween.Tween
	duration float32
	elapsed  float32
	partial  float64
}

// NewPacer creates a pacer for cv with nothing revealed yet.
func NewPacer(cv *Canvas) *Pacer {
	return &Pacer{canvas: cv, Ease: ease.Linear}
}

// Update advances the reveal by dt seconds.
func (p *Pacer) Update(dt float32) {
	if dt < 0 {
		dt = 0
	}
	ops := p.canvas.ops
	for p.done < len(ops) {
		if p.tween == nil {
			d := opDuration(&ops[p.done])
			if d <= 0 {
				p.done++
				continue
			}
			fn := p.Ease
			if fn == nil {
				fn = ease.Linear
			}
			p.tween = gween.New(0, 1, d, fn)
			p.duration = d
			p.elapsed = 0
			p.partial = 0
		}

		remaining := p.duration - p.elapsed
		if dt < remaining {
			v, _ := p.tween.Update(dt)
			p.elapsed += dt
			p.partial = float64(v)
			return
		}
		dt -= remaining
		p.tween = nil
		p.partial = 0
		p.done++
	}
}

// Visible returns the number of fully revealed ops and the progress in
// [0, 1) of the op after them, which is always a stroke when non-zero.
func (p *Pacer) Visible() (count int, partial float64) {
	return p.done, p.partial
}

// Done reports whether every op currently on the canvas is revealed.
func (p *Pacer) Done() bool {
	return p.done >= len(p.canvas.ops)
}

// Finish reveals everything on the canvas immediately.
func (p *Pacer) Finish() {
	p.done = len(p.canvas.ops)
	p.tween = nil
	p.partial = 0
}

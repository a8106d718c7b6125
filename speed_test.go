package turtle

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestSpeedLevel(t *testing.T) {
	tests := []struct {
		level int
		want  Speed
	}{
		{0, SpeedInstant},
		{-3, SpeedInstant},
		{11, SpeedInstant},
		{1, SpeedSlowest},
		{3, SpeedSlow},
		{6, SpeedNormal},
		{10, SpeedFast},
		{7, Speed(7)},
	}
	for _, tt := range tests {
		if got := SpeedLevel(tt.level); got != tt.want {
			t.Errorf("SpeedLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
	if !SpeedInstant.Instant() || SpeedFast.Instant() {
		t.Error("Instant() misclassifies named speeds")
	}
}

func TestOpDuration(t *testing.T) {
	op := Op{Kind: OpStroke, Stroke: Stroke{To: Vec2{X: 120}}, Speed: SpeedSlowest}
	if d := opDuration(&op); math.Abs(float64(d)-2) > 1e-6 {
		t.Errorf("duration = %v, want 2", d)
	}
	op.Speed = SpeedInstant
	if d := opDuration(&op); d != 0 {
		t.Errorf("instant duration = %v, want 0", d)
	}
	fill := Op{Kind: OpFill, Speed: SpeedSlowest}
	if d := opDuration(&fill); d != 0 {
		t.Errorf("fill duration = %v, want 0", d)
	}
}

func TestPacerRevealsStrokeOverTime(t *testing.T) {
	cv := NewCanvas()
	c := cv.NewCursor()
	c.Speed(1)
	c.Forward(120) // two seconds at 60 units per second

	p := NewPacer(cv)
	p.Update(1)
	n, partial := p.Visible()
	if n != 0 {
		t.Fatalf("count = %d, want 0", n)
	}
	if math.Abs(partial-0.5) > 1e-6 {
		t.Errorf("partial = %v, want 0.5", partial)
	}
	if p.Done() {
		t.Error("Done() = true mid-stroke")
	}

	p.Update(1.5)
	n, partial = p.Visible()
	if n != 1 || partial != 0 {
		t.Errorf("Visible() = (%d, %v), want (1, 0)", n, partial)
	}
	if !p.Done() {
		t.Error("Done() = false after stroke finished")
	}
}

func TestPacerCarriesLeftoverTime(t *testing.T) {
	cv := NewCanvas()
	c := cv.NewCursor()
	c.Speed(1)
	for range 3 {
		c.Forward(30) // half a second each
		c.Left(90)
	}

	p := NewPacer(cv)
	p.Update(1.25)
	n, partial := p.Visible()
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
	if math.Abs(partial-0.5) > 1e-5 {
		t.Errorf("partial = %v, want 0.5", partial)
	}
}

func TestPacerInstantOpsCompleteImmediately(t *testing.T) {
	cv := NewCanvas()
	c := cv.NewCursor()
	c.Speed(0)
	c.BeginFill()
	for range 4 {
		c.Forward(200)
		c.Right(90)
	}
	c.EndFill()
	c.Label("done")

	p := NewPacer(cv)
	p.Update(0)
	if !p.Done() {
		t.Fatal("instant canvas not done after Update(0)")
	}
	if n, _ := p.Visible(); n != cv.Len() {
		t.Errorf("count = %d, want %d", n, cv.Len())
	}
}

func TestPacerPicksUpNewOps(t *testing.T) {
	cv := NewCanvas()
	c := cv.NewCursor()
	c.Speed(0)
	p := NewPacer(cv)
	p.Update(0)
	if !p.Done() {
		t.Fatal("empty canvas should be done")
	}
	c.Forward(10)
	if p.Done() {
		t.Fatal("new op should be pending")
	}
	p.Update(0)
	if !p.Done() {
		t.Error("new instant op not revealed")
	}
}

func TestPacerCustomEase(t *testing.T) {
	cv := NewCanvas()
	c := cv.NewCursor()
	c.Speed(1)
	c.Forward(120)

	p := NewPacer(cv)
	p.Ease = ease.InQuad
	p.Update(1)
	if _, partial := p.Visible(); math.Abs(partial-0.25) > 1e-6 {
		t.Errorf("partial = %v, want 0.25", partial)
	}
}

func TestPacerFinish(t *testing.T) {
	cv := NewCanvas()
	c := cv.NewCursor()
	c.Speed(1)
	c.Forward(600)
	c.Forward(600)

	p := NewPacer(cv)
	p.Update(0.1)
	p.Finish()
	if n, partial := p.Visible(); n != 2 || partial != 0 {
		t.Errorf("Visible() = (%d, %v), want (2, 0)", n, partial)
	}
}

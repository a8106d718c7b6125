package turtle

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

var (
	red  = Color{R: 1, A: 1}
	blue = Color{B: 1, A: 1}
)

func filledSquare(cv *Canvas, x, y, side float64, fill Color) {
	c := cv.NewCursor()
	c.SafeGoto(x, y)
	c.SetColor(fill, fill)
	c.BeginFill()
	for range 4 {
		c.Forward(side)
		c.Right(90)
	}
	c.EndFill()
}

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestRasterizeBackground(t *testing.T) {
	cv := NewCanvas()
	cv.SetBackground(blue)
	img := Rasterize(cv, RenderOptions{Width: 20, Height: 10})
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Fatalf("size = %v, want 20x10", b)
	}
	if got := rgbaAt(img, 3, 3); got != blue.ToRGBA() {
		t.Errorf("background = %v, want %v", got, blue.ToRGBA())
	}
}

func TestRasterizeFill(t *testing.T) {
	cv := NewCanvas()
	filledSquare(cv, -50, 50, 100, red)
	img := Rasterize(cv, RenderOptions{Width: 200, Height: 200})

	if got := rgbaAt(img, 100, 100); got != red.ToRGBA() {
		t.Errorf("center = %v, want red", got)
	}
	if got := rgbaAt(img, 5, 5); got != ColorWhite.ToRGBA() {
		t.Errorf("corner = %v, want white", got)
	}
}

func TestRasterizeStroke(t *testing.T) {
	cv := NewCanvas()
	c := cv.NewCursor()
	c.SetPenColor(blue)
	c.SetPenSize(4)
	c.SafeGoto(-40, 60)
	c.Forward(80)
	img := Rasterize(cv, RenderOptions{Width: 200, Height: 200})

	// World y=60 is screen y=40; the stroke covers rows 38..41.
	if got := rgbaAt(img, 100, 39); got != blue.ToRGBA() {
		t.Errorf("stroke pixel = %v, want blue", got)
	}
	if got := rgbaAt(img, 100, 50); got != ColorWhite.ToRGBA() {
		t.Errorf("off-stroke pixel = %v, want white", got)
	}
}

func TestRasterizeDrawOrder(t *testing.T) {
	cv := NewCanvas()
	filledSquare(cv, -50, 50, 100, red)
	filledSquare(cv, -25, 25, 50, blue)
	img := Rasterize(cv, RenderOptions{Width: 200, Height: 200})

	if got := rgbaAt(img, 100, 100); got != blue.ToRGBA() {
		t.Errorf("inner = %v, want blue on top", got)
	}
	if got := rgbaAt(img, 60, 60); got != red.ToRGBA() {
		t.Errorf("outer = %v, want red", got)
	}
}

func TestRasterizeLimit(t *testing.T) {
	cv := NewCanvas()
	filledSquare(cv, -50, 50, 100, red)
	filledSquare(cv, -25, 25, 50, blue)
	// The first square is 4 strokes and a fill.
	img := Rasterize(cv, RenderOptions{Width: 200, Height: 200, Limit: 5})
	if got := rgbaAt(img, 100, 100); got != red.ToRGBA() {
		t.Errorf("center = %v, want red with the second square cut off", got)
	}
}

func TestRasterizeFit(t *testing.T) {
	cv := NewCanvas()
	filledSquare(cv, 1000, 1000, 10, red)
	img := Rasterize(cv, RenderOptions{Width: 100, Height: 100, Fit: true, Margin: 10})
	if got := rgbaAt(img, 50, 50); got != red.ToRGBA() {
		t.Errorf("fitted center = %v, want red", got)
	}
	if got := rgbaAt(img, 2, 2); got != ColorWhite.ToRGBA() {
		t.Errorf("margin = %v, want white", got)
	}
}

func TestRasterizeLabel(t *testing.T) {
	cv := NewCanvas()
	c := cv.NewCursor()
	c.SafeGoto(-20, 0)
	c.Label("HELLO")
	img := Rasterize(cv, RenderOptions{Width: 100, Height: 100})

	inked := 0
	for y := 37; y < 51; y++ {
		for x := 30; x < 70; x++ {
			if rgbaAt(img, x, y) != ColorWhite.ToRGBA() {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("label drew no pixels")
	}
}

func TestRenderPNG(t *testing.T) {
	cv := NewCanvas()
	filledSquare(cv, -5, 5, 10, red)
	var buf bytes.Buffer
	if err := RenderPNG(&buf, cv, RenderOptions{Width: 32, Height: 16}); err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("size = %v, want 32x16", b)
	}
}

func TestRenderSVG(t *testing.T) {
	cv := NewCanvas()
	filledSquare(cv, -5, 5, 10, red)
	lc := cv.NewCursor()
	lc.Label("note")

	var buf bytes.Buffer
	if err := RenderSVG(&buf, cv, RenderOptions{Width: 64, Height: 64}); err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", "<line", "<polygon", "<text", "note", "rgb(255,0,0)", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if n := strings.Count(out, "<line"); n != 4 {
		t.Errorf("line count = %d, want 4", n)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errTestWrite }

var errTestWrite = errors.New("write failed")

func TestRenderSVGReportsWriteError(t *testing.T) {
	cv := NewCanvas()
	if err := RenderSVG(failWriter{}, cv, RenderOptions{}); !errors.Is(err, errTestWrite) {
		t.Errorf("err = %v, want errTestWrite", err)
	}
}

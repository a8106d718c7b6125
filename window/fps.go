package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/turtle"
)

// fpsOverlay shows FPS, TPS and reveal progress in the top-left corner.
// The text is redrawn every ~0.5 seconds.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	dirty      bool
	text       string
}

func newFPSOverlay() *fpsOverlay {
	return &fpsOverlay{lastUpdate: 0.5}
}

func (f *fpsOverlay) update(dt float64, p *turtle.Pacer, total int) {
	f.lastUpdate += dt
	if f.lastUpdate < 0.5 {
		return
	}
	f.lastUpdate = 0
	n, _ := p.Visible()
	f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nOps: %d/%d", ebiten.ActualFPS(), ebiten.ActualTPS(), n, total)
	f.dirty = true
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	if f.img == nil {
		// 120x48 is enough for three lines of debug text.
		f.img = ebiten.NewImage(120, 48)
	}
	if f.dirty {
		f.dirty = false
		f.img.Clear()
		// Semi-transparent background for readability
		f.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(f.img, f.text)
	}
	screen.DrawImage(f.img, nil)
}

// Package window shows a turtle canvas in an ebiten window, revealing its ops
// at the pace each cursor's speed asked for.
package window

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/turtle"
)

// Defaults applied by RunConfig for zero fields.
const (
	DefaultTitle      = "turtle"
	DefaultWidth      = 800
	DefaultHeight     = 800
	DefaultMargin     = 16
	DefaultCursorSize = 12
)

// RunConfig configures Run and NewGame.
type RunConfig struct {
	Title         string
	Width, Height int
	// Scale is pixels per world unit with the origin centered. Zero or less
	// fits the finished drawing into the window instead.
	Scale float64
	// Margin pads a fitted drawing, in pixels.
	Margin     float64
	ShowFPS    bool
	CursorSize float64 // cursor head length in pixels
	// ScreenshotDir is where the S key saves PNGs. Empty means
	// turtle.DefaultScreenshotDir.
	ScreenshotDir string
	// Debug prints reveal progress and canvas stats to stderr.
	Debug bool
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Margin <= 0 {
		c.Margin = DefaultMargin
	}
	if c.CursorSize <= 0 {
		c.CursorSize = DefaultCursorSize
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = turtle.DefaultScreenshotDir
	}
	return c
}

// renderOptions maps the window's framing onto headless render options so
// screenshots match what is on screen.
func (c RunConfig) renderOptions() turtle.RenderOptions {
	opts := turtle.RenderOptions{Width: c.Width, Height: c.Height, Margin: c.Margin}
	if c.Scale > 0 {
		opts.Scale = c.Scale
	} else {
		opts.Fit = true
	}
	return opts
}

// Run opens a window showing cv and blocks until it is closed. The canvas
// should be fully drawn before Run is called.
func Run(cv *turtle.Canvas, cfg RunConfig) error {
	g := NewGame(cv, cfg)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Game is the ebiten.Game behind Run, exposed for embedding in a larger
// ebiten program.
//
// Keys: S saves a screenshot, Space reveals everything at once, Escape quits.
type Game struct {
	cfg    RunConfig
	canvas *turtle.Canvas
	pacer  *turtle.Pacer
	r      *renderer

	ink     *ebiten.Image
	inked   int
	heads   map[uint32]head
	fps     *fpsOverlay
	elapsed float64
	logged  bool
}

// head is where a cursor's head is drawn while its ops are being revealed.
type head struct {
	pos     turtle.Vec2
	heading float64
}

// NewGame creates the game loop for cv.
func NewGame(cv *turtle.Canvas, cfg RunConfig) *Game {
	cfg = cfg.withDefaults()
	g := &Game{
		cfg:    cfg,
		canvas: cv,
		pacer:  turtle.NewPacer(cv),
		r:      newRenderer(cfg.renderOptions().Viewport(cv)),
		heads:  make(map[uint32]head),
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g
}

// Pacer returns the pacer driving the reveal.
func (g *Game) Pacer() *turtle.Pacer { return g.pacer }

// Update advances the reveal by one tick and handles keys.
func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())
	g.pacer.Update(float32(dt))

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.pacer.Finish()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.screenshot()
	}
	if g.fps != nil {
		g.fps.update(dt, g.pacer, g.canvas.Len())
	}
	if g.cfg.Debug {
		g.debugTick(dt)
	}
	return nil
}

// Draw paints the revealed ops, the stroke in progress and the cursor heads.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.ink == nil {
		g.ink = ebiten.NewImage(g.cfg.Width, g.cfg.Height)
	}
	ops := g.canvas.Ops()
	n, partial := g.pacer.Visible()
	for ; g.inked < n && g.inked < len(ops); g.inked++ {
		op := &ops[g.inked]
		g.r.drawOp(g.ink, op)
		g.track(op)
	}

	screen.Fill(g.canvas.Background.ToRGBA())
	screen.DrawImage(g.ink, nil)

	if partial > 0 && n < len(ops) && ops[n].Kind == turtle.OpStroke {
		s := turtle.PartialStroke(ops[n].Stroke, partial)
		g.r.stroke(screen, s)
		id := ops[n].Cursor
		g.heads[id] = head{pos: s.To, heading: strokeHeading(s, g.heads[id].heading)}
	}

	done := g.pacer.Done()
	for _, c := range g.canvas.Cursors() {
		if !c.Visible() {
			continue
		}
		h := g.headFor(c, done)
		pen, _ := c.Colors()
		g.r.cursorHead(screen, h.pos, h.heading, g.cfg.CursorSize, pen)
	}

	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout keeps the logical screen at the configured size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// headFor returns where to draw c's head. Until the reveal finishes that is
// the end of its last revealed stroke; a cursor with nothing revealed yet
// sits at the origin facing east, where every cursor starts.
func (g *Game) headFor(c *turtle.Cursor, done bool) head {
	if done {
		return head{pos: c.Position(), heading: c.Heading()}
	}
	return g.heads[c.ID()]
}

// track moves the cursor head to the end of a fully revealed stroke.
func (g *Game) track(op *turtle.Op) {
	if op.Kind != turtle.OpStroke {
		return
	}
	prev := g.heads[op.Cursor]
	g.heads[op.Cursor] = head{pos: op.Stroke.To, heading: strokeHeading(op.Stroke, prev.heading)}
}

func (g *Game) screenshot() {
	path, err := turtle.SavePNG(g.cfg.ScreenshotDir, g.cfg.Title, g.canvas, g.cfg.renderOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "[turtle] screenshot failed: %v\n", err)
		return
	}
	if g.cfg.Debug {
		fmt.Fprintf(os.Stderr, "[turtle] screenshot saved: %s\n", path)
	}
}

func (g *Game) debugTick(dt float64) {
	g.elapsed += dt
	if g.pacer.Done() {
		if !g.logged {
			g.logged = true
			fmt.Fprintf(os.Stderr, "[turtle] reveal done after %.1fs\n", g.elapsed)
			fmt.Fprintf(os.Stderr, "[turtle] %s\n", g.canvas.Stats())
		}
		return
	}
	g.logged = false
	if int(g.elapsed) != int(g.elapsed-dt) {
		n, _ := g.pacer.Visible()
		fmt.Fprintf(os.Stderr, "[turtle] revealed %d/%d ops\n", n, g.canvas.Len())
	}
}

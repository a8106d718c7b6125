package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/turtle"
	"github.com/phanxgames/turtle/window"
)

// outputFlags are shared by every subcommand that produces a drawing.
type outputFlags struct {
	out           string
	width, height int
	scale         float64
	show          bool
	fps           bool
	debug         bool
}

func newRootCmd() *cobra.Command {
	var o outputFlags
	root := &cobra.Command{
		Use:          "turtledraw",
		Short:        "Render turtle drawings to PNG or SVG, or watch them in a window",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&o.out, "out", "o", "", "output file; .svg writes SVG, anything else PNG")
	pf.IntVar(&o.width, "width", 800, "image or window width in pixels")
	pf.IntVar(&o.height, "height", 800, "image or window height in pixels")
	pf.Float64Var(&o.scale, "scale", 0, "pixels per world unit; 0 fits the drawing")
	pf.BoolVar(&o.show, "show", false, "open a window instead of writing a file")
	pf.BoolVar(&o.fps, "fps", false, "show the FPS overlay in the window")
	pf.BoolVar(&o.debug, "debug", false, "print canvas diagnostics to stderr")

	root.AddCommand(newRenderCmd(&o), newScriptCmd(&o), newListCmd())
	return root
}

// emit writes or shows cv according to the output flags. name is used for
// the default file name and the window title.
func (o *outputFlags) emit(cmd *cobra.Command, cv *turtle.Canvas, name string) error {
	cv.DebugLog()
	if o.show {
		return window.Run(cv, window.RunConfig{
			Title:   "turtledraw: " + name,
			Width:   o.width,
			Height:  o.height,
			Scale:   o.scale,
			ShowFPS: o.fps,
			Debug:   o.debug,
		})
	}

	path := o.out
	if path == "" {
		path = name + ".png"
	}
	if err := writeFile(path, cv, o.renderOptions()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", path, cv.Stats())
	return nil
}

func (o *outputFlags) renderOptions() turtle.RenderOptions {
	opts := turtle.RenderOptions{Width: o.width, Height: o.height}
	if o.scale > 0 {
		opts.Scale = o.scale
	} else {
		opts.Fit = true
	}
	return opts
}

func writeFile(path string, cv *turtle.Canvas, opts turtle.RenderOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		err = turtle.RenderSVG(f, cv, opts)
	} else {
		err = turtle.RenderPNG(f, cv, opts)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

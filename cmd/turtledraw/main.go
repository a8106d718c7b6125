// Command turtledraw renders the turtle shape drawers and turtle scripts to
// PNG or SVG files, or shows them animating in a window.
//
//	turtledraw render tree --out tree.png
//	turtledraw render arrowhead --depth 5 --out arrow.svg
//	turtledraw render poly360 --sides 6 --show
//	turtledraw script star.yaml --out star.png
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

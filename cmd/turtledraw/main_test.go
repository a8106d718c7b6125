package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phanxgames/turtle"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDrawShapeEveryRegisteredShape(t *testing.T) {
	for _, name := range shapeNames() {
		cv, err := drawShape(name, shapeOptions{}, false)
		require.NoError(t, err, name)
		require.NotZero(t, cv.Len(), name)
	}
}

func TestDrawShapeUnknown(t *testing.T) {
	_, err := drawShape("hexapus", shapeOptions{}, false)
	require.True(t, errors.Is(err, ErrUnknownShape))
}

func TestDrawShapeOptions(t *testing.T) {
	cv, err := drawShape("arrowhead", shapeOptions{depth: 2, speed: 3}, false)
	require.NoError(t, err)
	require.Equal(t, 9, cv.Count(turtle.OpStroke))
	require.Equal(t, turtle.SpeedSlow, cv.Ops()[0].Speed)

	cv, err = drawShape("poly360", shapeOptions{sides: 5}, false)
	require.NoError(t, err)
	require.Equal(t, 2*5*5, cv.Count(turtle.OpStroke))
}

func TestRenderWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.png")
	out, err := execute(t, "render", "tree", "--out", path, "--width", "120", "--height", "90")
	require.NoError(t, err)
	require.Contains(t, out, "wrote "+path)
	require.Contains(t, out, "strokes: 510")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 120, img.Bounds().Dx())
	require.Equal(t, 90, img.Bounds().Dy())
}

func TestRenderWritesSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.svg")
	_, err := execute(t, "render", "chessboard", "-o", path, "--scale", "1")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 64, strings.Count(string(data), "<polygon"))
}

func TestRenderRejectsUnknownShape(t *testing.T) {
	_, err := execute(t, "render", "hexapus", "-o", filepath.Join(t.TempDir(), "x.png"))
	require.ErrorIs(t, err, ErrUnknownShape)
}

func TestScriptCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tri.yaml")
	require.NoError(t, os.WriteFile(src, []byte(`
steps:
  - action: repeat
    count: 3
    steps:
      - {action: forward, value: 50}
      - {action: left, value: 120}
`), 0o644))

	path := filepath.Join(dir, "tri.png")
	out, err := execute(t, "script", src, "--out", path)
	require.NoError(t, err)
	require.Contains(t, out, "strokes: 3")
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestScriptCommandReportsErrors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"steps": [{"action": "moonwalk"}]}`), 0o644))
	_, err := execute(t, "script", src, "--out", filepath.Join(dir, "bad.png"))
	require.ErrorIs(t, err, turtle.ErrUnknownAction)
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	for _, name := range []string{"arrowhead", "chessboard", "sine", "tree"} {
		require.Contains(t, out, name+"\n")
	}
}

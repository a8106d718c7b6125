// Package shapes holds turtle drawing routines: a chessboard tiler, recursive
// fractals (boxed cubes, the Sierpiński arrowhead, a branching tree), a
// polygon-symmetry drawer, snowflakes, a sine plot and a Logo-style rosette.
//
// Every drawer holds a *turtle.Cursor and a few numeric knobs. Drawing only
// moves that cursor, so the result lands on the cursor's canvas and can be
// rendered or animated like any other turtle output.
//
// The recursive drawers use a single routine parameterized by a
// [turtle.Direction] rather than a pair of mutually recursive left and right
// procedures. A depth of zero or less draws nothing.
package shapes

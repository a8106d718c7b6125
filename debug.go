package turtle

import (
	"fmt"
	"os"
)

// canvasStats counts what cursors have emitted and discarded.
type canvasStats struct {
	strokes      int
	fills        int
	labels       int
	droppedFills int
}

// Stats is a snapshot of a canvas's op counters.
type Stats struct {
	Strokes      int
	Fills        int
	Labels       int
	DroppedFills int // fill regions discarded without being committed
	Cursors      int
}

// Stats returns the canvas's current counters.
func (cv *Canvas) Stats() Stats {
	return Stats{
		Strokes:      cv.stats.strokes,
		Fills:        cv.stats.fills,
		Labels:       cv.stats.labels,
		DroppedFills: cv.stats.droppedFills,
		Cursors:      len(cv.cursors),
	}
}

// String formats the stats on one line.
func (s Stats) String() string {
	return fmt.Sprintf("strokes: %d | fills: %d | labels: %d | dropped fills: %d | cursors: %d",
		s.Strokes, s.Fills, s.Labels, s.DroppedFills, s.Cursors)
}

// debugf prints a diagnostic line to stderr.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[turtle] "+format+"\n", args...)
}

// DebugLog prints the canvas stats to stderr when debug mode is on.
func (cv *Canvas) DebugLog() {
	if !cv.debug {
		return
	}
	debugf("%s", cv.Stats())
}

// Debug reports whether debug mode is enabled.
func (cv *Canvas) Debug() bool {
	return cv.debug
}

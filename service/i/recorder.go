package i

import (
	"time"

	"github.com/beka-birhanu/vinom-mazegen/maze"
)

// StepRecorder collects generation statistics.
type StepRecorder interface {
	// RecordStep counts one step of the given kind.
	RecordStep(kind maze.EventKind)

	// RecordMaze is called once per finished maze.
	RecordMaze(rows, columns int, elapsed time.Duration)
}

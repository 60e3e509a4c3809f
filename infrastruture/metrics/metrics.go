// Package metrics exposes maze generation statistics to Prometheus.
package metrics

import (
	"time"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mazegen"

var _ i.StepRecorder = &Metrics{}

// Metrics implements i.StepRecorder with Prometheus collectors.
type Metrics struct {
	steps    *prometheus.CounterVec
	mazes    prometheus.Counter
	cells    prometheus.Histogram
	duration prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "steps_total",
				Help:      "Generation steps by kind (advance, backtrack, finish).",
			},
			[]string{"kind"},
		),
		mazes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mazes_generated_total",
			Help:      "Mazes generated to completion.",
		}),
		cells: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "maze_cells",
			Help:      "Number of cells per generated maze.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Wall time spent generating one maze.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	for _, c := range []prometheus.Collector{m.steps, m.mazes, m.cells, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RecordStep implements i.StepRecorder.
func (m *Metrics) RecordStep(kind maze.EventKind) {
	m.steps.WithLabelValues(kind.String()).Inc()
}

// RecordMaze implements i.StepRecorder.
func (m *Metrics) RecordMaze(rows, columns int, elapsed time.Duration) {
	m.mazes.Inc()
	m.cells.Observe(float64(rows * columns))
	m.duration.Observe(elapsed.Seconds())
}

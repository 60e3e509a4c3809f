package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(grid *maze.Grid, current maze.CellPosition, status maze.Status) error {
	args := m.Called(current, status)
	return args.Error(0)
}

// funcRenderer adapts a function to i.Renderer.
type funcRenderer func(*maze.Grid, maze.CellPosition, maze.Status) error

func (f funcRenderer) Render(g *maze.Grid, c maze.CellPosition, s maze.Status) error {
	return f(g, c, s)
}

type countingRecorder struct {
	steps map[maze.EventKind]int
	mazes int
}

func (r *countingRecorder) RecordStep(kind maze.EventKind) {
	if r.steps == nil {
		r.steps = make(map[maze.EventKind]int)
	}
	r.steps[kind]++
}

func (r *countingRecorder) RecordMaze(rows, columns int, elapsed time.Duration) {
	r.mazes++
}

// manualTicker fires once per value pushed into c.
type manualTicker struct {
	c       chan time.Time
	stopped bool
}

func newManualTicker(capacity int) *manualTicker {
	return &manualTicker{c: make(chan time.Time, capacity)}
}

func (t *manualTicker) fire(n int) {
	for k := 0; k < n; k++ {
		t.c <- time.Time{}
	}
}

func (t *manualTicker) Tick() <-chan time.Time { return t.c }
func (t *manualTicker) Stop()                  { t.stopped = true }

func TestNewDriver(t *testing.T) {
	_, err := NewDriver(DriverConfig{})
	assert.ErrorIs(t, err, ErrNilGenerator)
}

func TestDriverRun(t *testing.T) {
	gen, err := maze.NewGenerator(4, 5, maze.WithSeed(17))
	require.NoError(t, err)

	var frames []maze.CellPosition
	var statuses []maze.Status
	renderer := funcRenderer(func(g *maze.Grid, c maze.CellPosition, s maze.Status) error {
		assert.Same(t, gen.Grid(), g)
		frames = append(frames, c)
		statuses = append(statuses, s)
		return nil
	})
	recorder := &countingRecorder{}

	d, err := NewDriver(DriverConfig{
		Generator: gen,
		Renderers: []i.Renderer{renderer},
		Recorder:  recorder,
	})
	require.NoError(t, err)

	summary, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, maze.Finished, gen.Status())
	assert.Equal(t, 19, summary.Advances)
	assert.Equal(t, 19, summary.Backtracks)
	assert.Equal(t, 38, summary.Steps)

	// One frame for the initial state plus one per step.
	require.Len(t, frames, summary.Steps+1)
	assert.Equal(t, maze.CellPosition{}, frames[0])
	assert.Equal(t, maze.Ready, statuses[0])
	assert.Equal(t, maze.Finished, statuses[len(statuses)-1])

	assert.Equal(t, 19, recorder.steps[maze.EventAdvance])
	assert.Equal(t, 19, recorder.steps[maze.EventBacktrack])
	assert.Equal(t, 1, recorder.mazes)

	// Running a finished maze is a no-op.
	again, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, summary.Steps, again.Steps)
	assert.Len(t, frames, summary.Steps+1)
}

func TestDriverRendererError(t *testing.T) {
	gen, err := maze.NewGenerator(3, 3, maze.WithSeed(5))
	require.NoError(t, err)

	errBoom := errors.New("canvas lost")
	r := &mockRenderer{}
	r.On("Render", mock.Anything, mock.Anything).Return(nil).Times(3)
	r.On("Render", mock.Anything, mock.Anything).Return(errBoom).Once()

	d, err := NewDriver(DriverConfig{Generator: gen, Renderers: []i.Renderer{r}})
	require.NoError(t, err)

	summary, err := d.Run(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 3, summary.Steps)
	assert.Equal(t, maze.Running, gen.Status())
	r.AssertNumberOfCalls(t, "Render", 4)
}

func TestDriverCancellation(t *testing.T) {
	gen, err := maze.NewGenerator(3, 4, maze.WithSeed(8))
	require.NoError(t, err)

	total := 2 * (3*4 - 1)
	ticker := newManualTicker(total)
	ticker.fire(total)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	steps := 0
	renderer := funcRenderer(func(*maze.Grid, maze.CellPosition, maze.Status) error {
		if gen.Status() != maze.Ready {
			steps++
		}
		if steps == 5 {
			cancel()
		}
		return nil
	})

	d, err := NewDriver(DriverConfig{Generator: gen, Ticker: ticker, Renderers: []i.Renderer{renderer}})
	require.NoError(t, err)

	summary, err := d.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 5, summary.Steps)
	assert.Equal(t, maze.Running, gen.Status())

	// Resuming with a live context finishes the same maze.
	summary, err = d.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, total, summary.Steps)
	assert.Equal(t, maze.Finished, gen.Status())
	assert.NoError(t, maze.Verify(gen.Grid()))

	d.Stop()
	assert.True(t, ticker.stopped)
}

func TestDriverWaitsForTicks(t *testing.T) {
	gen, err := maze.NewGenerator(2, 2, maze.WithSeed(1))
	require.NoError(t, err)

	ticker := newManualTicker(2)
	ticker.fire(2)
	d, err := NewDriver(DriverConfig{Generator: gen, Ticker: ticker})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	summary, err := d.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 2, summary.Steps)
}

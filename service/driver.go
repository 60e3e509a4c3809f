package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	logger "github.com/beka-birhanu/vinom-mazegen/infrastruture/log"
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
)

var (
	ErrNilGenerator = errors.New("generator is required")
)

// DriverConfig holds the collaborators of a Driver.
type DriverConfig struct {
	Generator *maze.Generator // Required. The traversal to drive.
	Ticker    i.Ticker        // Paces the steps. Defaults to an ImmediateTicker.
	Renderers []i.Renderer    // Called after every step, in order.
	Recorder  i.StepRecorder  // Optional statistics sink.
	Logger    *logger.Logger  // Defaults to a discarding logger.
}

// Summary counts what a run did.
type Summary struct {
	Steps      int           `json:"steps" yaml:"steps"`
	Advances   int           `json:"advances" yaml:"advances"`
	Backtracks int           `json:"backtracks" yaml:"backtracks"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
}

// Driver runs a Generator one step per tick and hands every intermediate
// state to the renderers.
type Driver struct {
	generator *maze.Generator
	ticker    i.Ticker
	renderers []i.Renderer
	recorder  i.StepRecorder
	logger    *logger.Logger
	summary   Summary
	started   bool
	runStart  time.Time
}

// NewDriver validates the configuration and applies defaults.
func NewDriver(c DriverConfig) (*Driver, error) {
	if c.Generator == nil {
		return nil, ErrNilGenerator
	}

	d := &Driver{
		generator: c.Generator,
		ticker:    c.Ticker,
		renderers: c.Renderers,
		recorder:  c.Recorder,
		logger:    c.Logger,
	}

	if d.ticker == nil {
		d.ticker = NewImmediateTicker()
	}
	if d.logger == nil {
		// Discard logging if no logger is set
		d.logger = logger.Nop()
	}

	return d, nil
}

// Run steps the generator until it finishes or ctx is done. An interrupted
// run leaves the generator consistent; calling Run again resumes it.
func (d *Driver) Run(ctx context.Context) (*Summary, error) {
	d.runStart = time.Now()

	if !d.started {
		d.started = true
		d.logger.Info(fmt.Sprintf("generating %dx%d maze (seed %d)", d.generator.Rows(), d.generator.Columns(), d.generator.Seed()))
		if err := d.render(); err != nil {
			return d.result(), err
		}
	}

	for d.generator.Status() != maze.Finished {
		if err := ctx.Err(); err != nil {
			return d.result(), d.interrupted(err)
		}

		select {
		case <-ctx.Done():
			return d.result(), d.interrupted(ctx.Err())
		case <-d.ticker.Tick():
		}

		if err := d.step(); err != nil {
			return d.result(), err
		}
	}

	return d.result(), nil
}

// elapsed is the time spent in Run across all calls.
func (d *Driver) elapsed() time.Duration {
	return d.summary.Duration + time.Since(d.runStart)
}

// step performs one generator step and publishes its outcome.
func (d *Driver) step() error {
	status, _, err := d.generator.Step()
	if err != nil {
		d.logger.Error(fmt.Sprintf("step %d: %v", d.summary.Steps+1, err))
		return err
	}

	d.summary.Steps++
	event := d.generator.LastEvent()
	switch event.Kind {
	case maze.EventAdvance:
		d.summary.Advances++
	case maze.EventBacktrack:
		d.summary.Backtracks++
	}
	if d.recorder != nil {
		d.recorder.RecordStep(event.Kind)
	}

	if err := d.render(); err != nil {
		return err
	}

	if status == maze.Finished {
		if d.recorder != nil {
			d.recorder.RecordMaze(d.generator.Rows(), d.generator.Columns(), d.elapsed())
		}
		d.logger.Info(fmt.Sprintf("maze finished after %d steps (%d advances, %d backtracks)",
			d.summary.Steps, d.summary.Advances, d.summary.Backtracks))
	}
	return nil
}

func (d *Driver) render() error {
	for _, r := range d.renderers {
		if err := r.Render(d.generator.Grid(), d.generator.Current(), d.generator.Status()); err != nil {
			d.logger.Error(fmt.Sprintf("render after step %d: %v", d.summary.Steps, err))
			return fmt.Errorf("render after step %d: %w", d.summary.Steps, err)
		}
	}
	return nil
}

func (d *Driver) interrupted(err error) error {
	d.logger.Warning(fmt.Sprintf("generation interrupted after %d steps: %v", d.summary.Steps, err))
	return fmt.Errorf("generation interrupted: %w", err)
}

// result closes the current Run call's timing and returns a copy of the
// summary so far.
func (d *Driver) result() *Summary {
	d.summary.Duration = d.elapsed()
	d.runStart = time.Now()
	s := d.summary
	return &s
}

// Stop releases the ticker.
func (d *Driver) Stop() {
	d.ticker.Stop()
}

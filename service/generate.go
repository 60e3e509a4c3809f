package service

import (
	"context"

	logger "github.com/beka-birhanu/vinom-mazegen/infrastruture/log"
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/dto"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/google/uuid"
)

// Request describes one generation run.
type Request struct {
	Rows      int
	Columns   int
	Seed      int64 // Non-positive seeds are replaced with a time-based one.
	Ticker    i.Ticker
	Renderers []i.Renderer
	Recorder  i.StepRecorder
	Logger    *logger.Logger
}

// Result is a finished (or interrupted) generation run.
type Result struct {
	ID        uuid.UUID
	Generator *maze.Generator
	Summary   *Summary
}

// Generate builds a generator for the request and drives it to completion.
// On interruption the partial Result is returned along with the error.
func Generate(ctx context.Context, r Request) (*Result, error) {
	var opts []maze.Option
	if r.Seed > 0 {
		opts = append(opts, maze.WithSeed(r.Seed))
	}

	gen, err := maze.NewGenerator(r.Rows, r.Columns, opts...)
	if err != nil {
		return nil, err
	}

	driver, err := NewDriver(DriverConfig{
		Generator: gen,
		Ticker:    r.Ticker,
		Renderers: r.Renderers,
		Recorder:  r.Recorder,
		Logger:    r.Logger,
	})
	if err != nil {
		return nil, err
	}
	defer driver.Stop()

	summary, err := driver.Run(ctx)
	result := &Result{
		ID:        uuid.New(),
		Generator: gen,
		Summary:   summary,
	}
	return result, err
}

// Snapshot returns the serializable view of the run.
func (r *Result) Snapshot() *dto.Snapshot {
	return NewSnapshot(r.ID, r.Generator, r.Summary)
}

// NewSnapshot captures the generator's current state. summary may be nil.
func NewSnapshot(id uuid.UUID, gen *maze.Generator, summary *Summary) *dto.Snapshot {
	grid := gen.Grid()
	current := gen.Current()

	s := &dto.Snapshot{
		ID:      id.String(),
		Rows:    grid.Rows(),
		Columns: grid.Columns(),
		Seed:    gen.Seed(),
		Status:  gen.Status().String(),
		Current: dto.Position{Row: current.Row, Col: current.Col},
		Perfect: gen.Status() == maze.Finished && maze.Verify(grid) == nil,
		Cells:   make([]dto.CellView, 0, grid.Size()),
	}
	if summary != nil {
		s.Steps = summary.Steps
		s.Advances = summary.Advances
		s.Backtracks = summary.Backtracks
	}

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Columns(); col++ {
			cell, _ := grid.Cell(maze.CellPosition{Row: row, Col: col})
			s.Cells = append(s.Cells, dto.CellView{
				Row:       row,
				Col:       col,
				Visited:   cell.Visited(),
				NorthWall: cell.HasNorthWall(),
				EastWall:  cell.HasEastWall(),
				SouthWall: cell.HasSouthWall(),
				WestWall:  cell.HasWestWall(),
			})
		}
	}
	return s
}

/*
Package maze provides tools for generating perfect rectangular mazes one step at a time.

A Grid owns the cells of the maze, each with four walls and a visited flag. A Generator
carves passages through the grid with a randomized depth-first traversal, keeping an
explicit backtracking stack so the traversal can be paused after any Step and resumed later.
Callers observe the grid between steps; the package never draws anything itself.

Verify checks that a finished grid is a spanning tree of its cells.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	ErrInvalidConfiguration = errors.New("invalid maze configuration")
	ErrInvalidState         = errors.New("maze generation already finished")
	ErrNotAdjacent          = errors.New("cells are not adjacent")
	ErrNotPerfect           = errors.New("maze is not perfect")
)

// Status is the lifecycle stage of a Generator.
type Status int

const (
	Ready    Status = iota // Ready means no step has run yet.
	Running                // Running means the traversal has started.
	Finished               // Finished means every reachable cell was visited.
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// EventKind describes what a single step did.
type EventKind int

const (
	EventNone      EventKind = iota // No step has run.
	EventAdvance                    // Moved to a frontier cell and removed a wall pair.
	EventBacktrack                  // Popped the stack without mutating any cell.
	EventFinish                     // Detected termination without moving.
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventAdvance:
		return "advance"
	case EventBacktrack:
		return "backtrack"
	case EventFinish:
		return "finish"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event records the outcome of one Step.
type Event struct {
	Kind EventKind    // What the step did
	From CellPosition // Current cell before the step
	To   CellPosition // Current cell after the step
	Wall Direction    // Side of From that was opened; only meaningful for EventAdvance
}

// Rand is the source of randomness used to pick among frontier cells.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed seeds a math/rand source so the generated maze is reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a custom random source. Seed reports 0 for such generators.
func WithRand(r Rand) Option {
	return func(g *Generator) {
		g.seed = 0
		g.rng = r
	}
}

// Generator is the step-driven depth-first maze generator.
// It is not safe for concurrent use; one traversal owns it exclusively.
type Generator struct {
	grid    *Grid          // Cells being carved
	current CellPosition   // Cell the traversal is positioned at
	stack   []CellPosition // Previously visited cells, used for backtracking
	status  Status         // Lifecycle stage
	rng     Rand           // Picks among frontier cells
	seed    int64          // Seed behind rng, 0 when injected
	last    Event          // Outcome of the latest step
}

// NewGenerator creates a generator for a rows x columns grid positioned at (0,0).
// Without WithSeed or WithRand a time-based seed is used.
func NewGenerator(rows, columns int, opts ...Option) (*Generator, error) {
	grid, err := NewGrid(rows, columns)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		grid:    grid,
		current: CellPosition{Row: 0, Col: 0},
		stack:   make([]CellPosition, 0, grid.Size()),
		status:  Ready,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		WithSeed(time.Now().UnixNano())(g)
	}

	return g, nil
}

// Step performs one traversal step: advance to a random frontier neighbor,
// backtrack to the previous cell, or finish. It returns the resulting status
// and current cell. Calling Step after Finished returns ErrInvalidState and
// leaves the generator untouched.
func (g *Generator) Step() (Status, CellPosition, error) {
	if g.status == Finished {
		return g.status, g.current, ErrInvalidState
	}

	if g.status == Ready {
		g.grid.visit(g.current)
		g.status = Running
	}

	from := g.current
	frontier := g.grid.unvisitedNeighbors(from)
	switch {
	case len(frontier) > 0:
		next := frontier[g.rng.Intn(len(frontier))]
		wall, err := g.grid.openWall(from, next)
		if err != nil {
			return g.status, g.current, err
		}
		g.grid.visit(next)
		g.stack = append(g.stack, from)
		g.current = next
		g.last = Event{Kind: EventAdvance, From: from, To: next, Wall: wall}

	case len(g.stack) > 0:
		g.current = pop(&g.stack)
		g.last = Event{Kind: EventBacktrack, From: from, To: g.current}
		// Back at the origin: the stack can only be empty here once the
		// traversal has nowhere left to go.
		if len(g.stack) == 0 && len(g.grid.unvisitedNeighbors(g.current)) == 0 {
			g.status = Finished
		}

	default:
		g.status = Finished
		g.last = Event{Kind: EventFinish, From: from, To: from}
	}

	return g.status, g.current, nil
}

// Run steps until the generator finishes.
func (g *Generator) Run() error {
	for g.status != Finished {
		if _, _, err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// pop removes and returns the last element of a stack of CellPositions.
func pop(s *[]CellPosition) CellPosition {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}

// Grid returns the grid being carved. Its state can only be changed by Step.
func (g *Generator) Grid() *Grid {
	return g.grid
}

// Rows returns the number of rows of the grid.
func (g *Generator) Rows() int {
	return g.grid.rows
}

// Columns returns the number of columns of the grid.
func (g *Generator) Columns() int {
	return g.grid.columns
}

// Current returns the cell the traversal is positioned at.
func (g *Generator) Current() CellPosition {
	return g.current
}

// Status returns the lifecycle stage.
func (g *Generator) Status() Status {
	return g.status
}

// Depth returns the size of the backtracking stack.
func (g *Generator) Depth() int {
	return len(g.stack)
}

// Path returns a copy of the backtracking stack, origin first.
func (g *Generator) Path() []CellPosition {
	path := make([]CellPosition, len(g.stack))
	copy(path, g.stack)
	return path
}

// LastEvent returns what the latest step did.
func (g *Generator) LastEvent() Event {
	return g.last
}

// Seed returns the seed of the random source, or 0 if one was injected.
func (g *Generator) Seed() int64 {
	return g.seed
}

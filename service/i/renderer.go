package i

import (
	"github.com/beka-birhanu/vinom-mazegen/maze"
)

// Renderer draws the maze after each generation step. It must only read the grid.
type Renderer interface {
	// Render receives the grid, the cell to highlight, and the generator status.
	Render(grid *maze.Grid, current maze.CellPosition, status maze.Status) error
}

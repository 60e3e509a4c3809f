package maze

import (
	"fmt"
)

// Direction names one side of a cell. The declaration order is the order in
// which neighbors are enumerated.
type Direction int

const (
	North Direction = iota // North is the top side of a cell.
	East                   // East is the right side of a cell.
	South                  // South is the bottom side of a cell.
	West                   // West is the left side of a cell.
)

// Directions lists every direction in enumeration order.
var Directions = [...]Direction{North, East, South, West}

var directionDeltas = [...]CellPosition{
	North: {Row: -1, Col: 0},
	East:  {Row: 0, Col: 1},
	South: {Row: 1, Col: 0},
	West:  {Row: 0, Col: -1},
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Opposite returns the direction facing d from the neighboring cell.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the row and column offset of a step in direction d.
func (d Direction) Delta() CellPosition {
	return directionDeltas[d]
}

// directionBetween returns the direction leading from one cell to an
// adjacent one. Positions that are not exactly one step apart along a single
// axis yield ErrNotAdjacent.
func directionBetween(from, to CellPosition) (Direction, error) {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	for _, d := range Directions {
		if delta := d.Delta(); delta.Row == dr && delta.Col == dc {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %v -> %v", ErrNotAdjacent, from, to)
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row" yaml:"row"` // Row index of the cell
	Col int `json:"col" yaml:"col"` // Column index of the cell
}

// GetRow returns the row index of the cell.
func (cp CellPosition) GetRow() int {
	return cp.Row
}

// GetCol returns the column index of the cell.
func (cp CellPosition) GetCol() int {
	return cp.Col
}

// Step returns the position one cell away in direction d. The result may be
// outside of any grid.
func (cp CellPosition) Step(d Direction) CellPosition {
	delta := d.Delta()
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}

func (cp CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", cp.Row, cp.Col)
}

// Cell represents a single cell in a maze grid.
// It includes its fixed position, whether the traversal has reached it, and
// the presence of a wall on each side. Cells handed out by a Grid are copies.
type Cell struct {
	pos     CellPosition
	visited bool
	walls   [4]bool // indexed by Direction; true while the wall stands
}

func newCell(row, col int) Cell {
	return Cell{
		pos:   CellPosition{Row: row, Col: col},
		walls: [4]bool{true, true, true, true},
	}
}

// Position returns the cell's coordinates.
func (c Cell) Position() CellPosition {
	return c.pos
}

// Row returns the row index of the cell.
func (c Cell) Row() int {
	return c.pos.Row
}

// Col returns the column index of the cell.
func (c Cell) Col() int {
	return c.pos.Col
}

// Visited reports whether the traversal has reached the cell.
func (c Cell) Visited() bool {
	return c.visited
}

// HasWall reports whether the wall on side d is still standing.
func (c Cell) HasWall(d Direction) bool {
	return c.walls[d]
}

// HasNorthWall returns true if there is a wall on the north side of the cell.
func (c Cell) HasNorthWall() bool {
	return c.walls[North]
}

// HasSouthWall returns true if there is a wall on the south side of the cell.
func (c Cell) HasSouthWall() bool {
	return c.walls[South]
}

// HasEastWall returns true if there is a wall on the east side of the cell.
func (c Cell) HasEastWall() bool {
	return c.walls[East]
}

// HasWestWall returns true if there is a wall on the west side of the cell.
func (c Cell) HasWestWall() bool {
	return c.walls[West]
}

// Walls returns the wall flags in Direction order.
func (c Cell) Walls() [4]bool {
	return c.walls
}

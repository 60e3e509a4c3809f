package maze

import (
	"fmt"
	"strings"
)

// Grid is a rectangular arena of cells addressed by row and column.
// It is the only owner of its cells; callers receive copies.
type Grid struct {
	rows    int    // Number of rows (height)
	columns int    // Number of columns (width)
	cells   []Cell // Row-major cells, index row*columns + col
}

// NewGrid allocates a grid with every wall standing and no cell visited.
func NewGrid(rows, columns int) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: rows=%d columns=%d", ErrInvalidConfiguration, rows, columns)
	}
	cellCount := rows * columns
	// Check for overflow.
	if cellCount/rows != columns {
		return nil, fmt.Errorf("%w: %dx%d grid is too big", ErrInvalidConfiguration, rows, columns)
	}

	cells := make([]Cell, cellCount)
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			cells[r*columns+c] = newCell(r, c)
		}
	}

	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   cells,
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns.
func (g *Grid) Columns() int {
	return g.columns
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return len(g.cells)
}

// InBound reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.columns
}

func (g *Grid) index(pos CellPosition) int {
	return pos.Row*g.columns + pos.Col
}

// Cell returns a copy of the cell at pos. The boolean is false when pos is
// outside the grid.
func (g *Grid) Cell(pos CellPosition) (Cell, bool) {
	if !g.InBound(pos.Row, pos.Col) {
		return Cell{}, false
	}
	return g.cells[g.index(pos)], true
}

// NeighborsOf returns the positions adjacent to pos in North, East, South,
// West order. Directions that fall outside the grid are omitted.
func (g *Grid) NeighborsOf(pos CellPosition) []CellPosition {
	if !g.InBound(pos.Row, pos.Col) {
		return nil
	}
	result := make([]CellPosition, 0, len(Directions))
	for _, d := range Directions {
		n := pos.Step(d)
		if g.InBound(n.Row, n.Col) {
			result = append(result, n)
		}
	}
	return result
}

// unvisitedNeighbors is NeighborsOf filtered to frontier cells.
func (g *Grid) unvisitedNeighbors(pos CellPosition) []CellPosition {
	neighbors := g.NeighborsOf(pos)
	frontier := neighbors[:0]
	for _, n := range neighbors {
		if !g.cells[g.index(n)].visited {
			frontier = append(frontier, n)
		}
	}
	return frontier
}

// VisitedCount returns the number of visited cells.
func (g *Grid) VisitedCount() int {
	count := 0
	for i := range g.cells {
		if g.cells[i].visited {
			count++
		}
	}
	return count
}

// OpenPassages counts the removed wall pairs between neighboring cells.
func (g *Grid) OpenPassages() int {
	count := 0
	for i := range g.cells {
		c := &g.cells[i]
		if c.pos.Col < g.columns-1 && !c.walls[East] {
			count++
		}
		if c.pos.Row < g.rows-1 && !c.walls[South] {
			count++
		}
	}
	return count
}

// visit marks the cell at pos as visited.
func (g *Grid) visit(pos CellPosition) {
	g.cells[g.index(pos)].visited = true
}

// openWall removes the wall pair between two adjacent cells and returns the
// side of from that was opened.
func (g *Grid) openWall(from, to CellPosition) (Direction, error) {
	if !g.InBound(from.Row, from.Col) || !g.InBound(to.Row, to.Col) {
		return 0, fmt.Errorf("%w: %v -> %v is out of bounds", ErrNotAdjacent, from, to)
	}
	d, err := directionBetween(from, to)
	if err != nil {
		return 0, err
	}
	g.cells[g.index(from)].walls[d] = false
	g.cells[g.index(to)].walls[d.Opposite()] = false
	return d, nil
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	return g.Format(nil)
}

// Format renders the grid as ASCII art. mark, when non-nil, returns the three
// characters drawn inside a cell; otherwise unvisited cells are shaded.
func (g *Grid) Format(mark func(Cell) string) string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+")
	for col := 0; col < g.columns; col++ {
		if g.cells[col].walls[North] {
			output.WriteString("---+")
		} else {
			output.WriteString("   +")
		}
	}
	output.WriteString("\n")

	for row := 0; row < g.rows; row++ {
		// Cell rows
		if g.cells[row*g.columns].walls[West] {
			output.WriteString("|")
		} else {
			output.WriteString(" ")
		}
		for col := 0; col < g.columns; col++ {
			cell := g.cells[row*g.columns+col]
			switch {
			case mark != nil:
				output.WriteString(mark(cell))
			case cell.visited:
				output.WriteString("   ")
			default:
				output.WriteString(":::")
			}

			if cell.walls[East] {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for col := 0; col < g.columns; col++ {
			if g.cells[row*g.columns+col].walls[South] {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}

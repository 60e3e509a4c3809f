package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	t.Run("valid dimensions", func(t *testing.T) {
		g, err := NewGrid(3, 4)
		require.NoError(t, err)
		assert.Equal(t, 3, g.Rows())
		assert.Equal(t, 4, g.Columns())
		assert.Equal(t, 12, g.Size())
		assert.Equal(t, 0, g.VisitedCount())
		assert.Equal(t, 0, g.OpenPassages())

		for r := 0; r < 3; r++ {
			for c := 0; c < 4; c++ {
				cell, ok := g.Cell(CellPosition{Row: r, Col: c})
				require.True(t, ok)
				assert.Equal(t, r, cell.Row())
				assert.Equal(t, c, cell.Col())
				assert.False(t, cell.Visited())
				assert.Equal(t, [4]bool{true, true, true, true}, cell.Walls())
			}
		}
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 5}, {5, -3}, {0, 0}} {
			g, err := NewGrid(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Nil(t, g)
		}
	})
}

func TestNeighborsOf(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	tests := []struct {
		name string
		pos  CellPosition
		want []CellPosition
	}{
		{"top left corner", CellPosition{0, 0}, []CellPosition{{0, 1}, {1, 0}}},
		{"top edge", CellPosition{0, 1}, []CellPosition{{0, 2}, {1, 1}, {0, 0}}},
		{"center", CellPosition{1, 1}, []CellPosition{{0, 1}, {1, 2}, {2, 1}, {1, 0}}},
		{"bottom right corner", CellPosition{2, 2}, []CellPosition{{1, 2}, {2, 1}}},
		{"left edge", CellPosition{1, 0}, []CellPosition{{0, 0}, {1, 1}, {2, 0}}},
		{"outside", CellPosition{3, 0}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.NeighborsOf(tt.pos))
		})
	}

	t.Run("repeated queries are identical", func(t *testing.T) {
		pos := CellPosition{Row: 1, Col: 1}
		assert.Equal(t, g.NeighborsOf(pos), g.NeighborsOf(pos))
	})

	t.Run("single cell has no neighbors", func(t *testing.T) {
		single, err := NewGrid(1, 1)
		require.NoError(t, err)
		assert.Empty(t, single.NeighborsOf(CellPosition{}))
	})
}

func TestOpenWall(t *testing.T) {
	tests := []struct {
		name     string
		from, to CellPosition
		want     Direction
	}{
		{"to the right", CellPosition{0, 0}, CellPosition{0, 1}, East},
		{"to the left", CellPosition{0, 1}, CellPosition{0, 0}, West},
		{"below", CellPosition{0, 0}, CellPosition{1, 0}, South},
		{"above", CellPosition{1, 1}, CellPosition{0, 1}, North},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(2, 2)
			require.NoError(t, err)

			d, err := g.openWall(tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)

			from, _ := g.Cell(tt.from)
			to, _ := g.Cell(tt.to)
			assert.False(t, from.HasWall(tt.want))
			assert.False(t, to.HasWall(tt.want.Opposite()))
			assert.Equal(t, 1, g.OpenPassages())
		})
	}

	t.Run("rejects cells that are not adjacent", func(t *testing.T) {
		g, err := NewGrid(3, 3)
		require.NoError(t, err)

		for _, to := range []CellPosition{{1, 1}, {0, 2}, {0, 0}, {0, 3}} {
			_, err := g.openWall(CellPosition{0, 0}, to)
			assert.ErrorIs(t, err, ErrNotAdjacent)
		}
		assert.Equal(t, 0, g.OpenPassages())
	})
}

func TestDirection(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, North, South.Opposite())
	assert.Equal(t, East, West.Opposite())
	assert.Equal(t, "East", East.String())
	assert.Equal(t, CellPosition{Row: 2, Col: 4}, CellPosition{Row: 2, Col: 3}.Step(East))
}

func TestGridString(t *testing.T) {
	g, err := NewGrid(1, 2)
	require.NoError(t, err)
	g.visit(CellPosition{0, 0})
	g.visit(CellPosition{0, 1})
	_, err = g.openWall(CellPosition{0, 0}, CellPosition{0, 1})
	require.NoError(t, err)

	want := "" +
		"+---+---+\n" +
		"|       |\n" +
		"+---+---+\n"
	assert.Equal(t, want, g.String())
}

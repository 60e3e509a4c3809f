// Package picture rasterizes maze grids to images.
package picture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/yalue/image_utils"
)

const DefaultCellPixels = 9

var (
	ErrInvalidCellSize = errors.New("cell size must be at least 3 pixels")

	wallColor      = color.RGBA{0, 0, 0, 255}
	visitedColor   = color.RGBA{255, 255, 255, 255}
	unvisitedColor = color.RGBA{150, 150, 150, 255}
	currentColor   = color.RGBA{250, 204, 21, 255}
	markerColor    = color.RGBA{100, 120, 255, 255}
)

// gridImage implements image.Image over a Grid. Every cell occupies
// cellPixels square pixels with a one pixel wall line shared between
// neighbors.
type gridImage struct {
	grid       *maze.Grid
	current    maze.CellPosition
	highlight  bool
	cellPixels int
}

func (m *gridImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *gridImage) Bounds() image.Rectangle {
	pitch := m.cellPixels + 1
	return image.Rect(0, 0, m.grid.Columns()*pitch+1, m.grid.Rows()*pitch+1)
}

func (m *gridImage) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.Bounds()) {
		return visitedColor
	}

	pitch := m.cellPixels + 1
	col, ox := x/pitch, x%pitch
	row, oy := y/pitch, y%pitch

	if ox == 0 && oy == 0 {
		return wallColor
	}

	if ox == 0 {
		if col == m.grid.Columns() {
			return m.edge(row, col-1, maze.East)
		}
		return m.edge(row, col, maze.West)
	}
	if oy == 0 {
		if row == m.grid.Rows() {
			return m.edge(row-1, col, maze.South)
		}
		return m.edge(row, col, maze.North)
	}
	return m.fill(row, col)
}

// edge colours the wall line on side d of the cell at (row, col).
func (m *gridImage) edge(row, col int, d maze.Direction) color.Color {
	cell, ok := m.grid.Cell(maze.CellPosition{Row: row, Col: col})
	if !ok || cell.HasWall(d) {
		return wallColor
	}
	return m.fill(row, col)
}

func (m *gridImage) fill(row, col int) color.Color {
	pos := maze.CellPosition{Row: row, Col: col}
	cell, ok := m.grid.Cell(pos)
	switch {
	case !ok:
		return wallColor
	case m.highlight && pos == m.current:
		return currentColor
	case cell.Visited():
		return visitedColor
	default:
		return unvisitedColor
	}
}

// Options control how a grid is drawn.
type Options struct {
	CellPixels int  // Side of one cell in pixels. Defaults to DefaultCellPixels.
	Highlight  bool // Paint the current cell and mark it with an arrow.
}

// Image draws grid with the traversal positioned at current.
func Image(grid *maze.Grid, current maze.CellPosition, opts Options) (*image.RGBA, error) {
	if opts.CellPixels == 0 {
		opts.CellPixels = DefaultCellPixels
	}
	if opts.CellPixels < 3 {
		return nil, ErrInvalidCellSize
	}

	base := &gridImage{
		grid:       grid,
		current:    current,
		highlight:  opts.Highlight,
		cellPixels: opts.CellPixels,
	}

	composite := image_utils.NewCompositeImage()
	if e := composite.AddImage(image_utils.ToRGBA(base), image.Pt(0, 0)); e != nil {
		return nil, fmt.Errorf("error setting base maze image: %w", e)
	}

	if opts.Highlight && grid.InBound(current.Row, current.Col) {
		pitch := opts.CellPixels + 1
		side := opts.CellPixels - 2
		marker := image_utils.ResizeImage(image_utils.DownArrow(markerColor), side, side)
		at := image.Pt(current.Col*pitch+2, current.Row*pitch+2)
		if e := composite.AddImage(marker, at); e != nil {
			return nil, fmt.Errorf("error adding current cell marker: %w", e)
		}
	}

	return image_utils.ToRGBA(composite), nil
}

// EncodePNG writes img to w as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("error encoding png: %w", err)
	}
	return nil
}

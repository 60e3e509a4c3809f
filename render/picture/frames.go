package picture

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
)

var _ i.Renderer = &FrameRenderer{}

// FrameRenderer rasterizes every frame it is given. The latest frame is kept
// in memory; when Dir is set each frame is also written there as
// frame-NNNNN.png.
type FrameRenderer struct {
	Dir        string
	CellPixels int

	frames int
	last   *image.RGBA
}

// Render implements i.Renderer.
func (r *FrameRenderer) Render(grid *maze.Grid, current maze.CellPosition, status maze.Status) error {
	img, err := Image(grid, current, Options{
		CellPixels: r.CellPixels,
		Highlight:  status != maze.Finished,
	})
	if err != nil {
		return err
	}

	r.last = img
	r.frames++
	if r.Dir == "" {
		return nil
	}

	path := filepath.Join(r.Dir, fmt.Sprintf("frame-%05d.png", r.frames))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Last returns the most recent frame, or nil before the first Render.
func (r *FrameRenderer) Last() *image.RGBA {
	return r.last
}

// Frames returns how many frames were rendered.
func (r *FrameRenderer) Frames() int {
	return r.frames
}

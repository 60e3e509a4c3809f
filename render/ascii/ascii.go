// Package ascii draws maze frames as text.
package ascii

import (
	"fmt"
	"io"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/muesli/termenv"
)

const (
	currentMark   = " @ "
	visitedMark   = "   "
	unvisitedMark = ":::"

	highlightColor = "#facc15"
)

var _ i.Renderer = &Renderer{}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClearScreen redraws every frame in place instead of appending it.
func WithClearScreen() Option {
	return func(r *Renderer) {
		r.clear = true
	}
}

// WithProfile forces a colour profile, e.g. termenv.Ascii for plain text.
func WithProfile(p termenv.Profile) Option {
	return func(r *Renderer) {
		r.profile = &p
	}
}

// Renderer writes one ASCII frame per call to Render.
type Renderer struct {
	w       io.Writer
	out     *termenv.Output
	profile *termenv.Profile
	clear   bool
	frames  int
}

// New creates a renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w}
	for _, opt := range opts {
		opt(r)
	}

	if r.profile != nil {
		r.out = termenv.NewOutput(w, termenv.WithProfile(*r.profile))
	} else {
		r.out = termenv.NewOutput(w)
	}
	return r
}

// Render implements i.Renderer.
func (r *Renderer) Render(grid *maze.Grid, current maze.CellPosition, status maze.Status) error {
	if r.clear {
		r.out.ClearScreen()
		r.out.MoveCursor(1, 1)
	}

	highlight := r.out.String(currentMark).Reverse().Foreground(r.out.Color(highlightColor)).String()
	frame := grid.Format(func(c maze.Cell) string {
		switch {
		case c.Position() == current && status != maze.Finished:
			return highlight
		case c.Visited():
			return visitedMark
		default:
			return unvisitedMark
		}
	})

	r.frames++
	_, err := fmt.Fprintf(r.w, "%sframe %d, %s, visited %d/%d\n", frame, r.frames, status, grid.VisitedCount(), grid.Size())
	return err
}

// Frames returns the number of frames written so far.
func (r *Renderer) Frames() int {
	return r.frames
}

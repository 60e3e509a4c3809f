package maze

import "fmt"

// Verify checks that g is a perfect maze: every cell visited, wall pairs
// consistent, the outer boundary closed, and the open passages forming a
// spanning tree. Violations wrap ErrNotPerfect.
func Verify(g *Grid) error {
	reaches := newRegions(len(g.cells))

	passages := 0
	for i := range g.cells {
		cell := &g.cells[i]
		if !cell.visited {
			return fmt.Errorf("%w: cell %v was never visited", ErrNotPerfect, cell.pos)
		}

		for _, d := range Directions {
			n := cell.pos.Step(d)
			if !g.InBound(n.Row, n.Col) {
				if !cell.walls[d] {
					return fmt.Errorf("%w: boundary wall %s of %v is open", ErrNotPerfect, d, cell.pos)
				}
				continue
			}

			neighbor := &g.cells[g.index(n)]
			if cell.walls[d] != neighbor.walls[d.Opposite()] {
				return fmt.Errorf("%w: wall pair %v %s is inconsistent", ErrNotPerfect, cell.pos, d)
			}

			// Each pair is inspected from its north-west cell only.
			if (d != East && d != South) || cell.walls[d] {
				continue
			}
			passages++
			if !reaches.join(i, g.index(n)) {
				return fmt.Errorf("%w: passage %v %s closes a loop", ErrNotPerfect, cell.pos, d)
			}
		}
	}

	// n-1 edges without a loop connect all n cells.
	if want := len(g.cells) - 1; passages != want {
		return fmt.Errorf("%w: %d open passages, want %d", ErrNotPerfect, passages, want)
	}
	return nil
}

package maze

// regions is a union-find over cell indices with path compression and
// union by rank.
type regions struct {
	parent []int
	rank   []int
}

func newRegions(n int) *regions {
	r := &regions{parent: make([]int, n), rank: make([]int, n)}
	for i := range r.parent {
		r.parent[i] = i
	}
	return r
}

// find returns the representative of the region holding i.
func (r *regions) find(i int) int {
	if r.parent[i] != i {
		r.parent[i] = r.find(r.parent[i])
	}
	return r.parent[i]
}

// join merges the regions of a and b. It reports false when they were
// already one region.
func (r *regions) join(a, b int) bool {
	x, y := r.find(a), r.find(b)
	if x == y {
		return false
	}
	if r.rank[x] > r.rank[y] {
		x, y = y, x
	}
	r.parent[x] = y
	if r.rank[x] == r.rank[y] {
		r.rank[y]++
	}
	return true
}

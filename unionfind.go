package soccertrack

// UnionFind is a disjoint-set forest over the integers [0, n). Each
// root additionally carries a running size and a scalar sum, used by
// the green-mask merge (component size and mean row) and the
// component extractor (pixel counts).
type UnionFind struct {
	parent []int
	size   []int
	sum    []float64
}

// NewUnionFind creates a UnionFind over n singleton sets, each with
// size 1 and sum 0.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		sum:    make([]float64, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

// Add adds value to the accumulator of x's set. x must already exist (from
// NewUnionFind); this does not grow the forest.
func (uf *UnionFind) Add(x int, value float64) {
	uf.sum[uf.Find(x)] += value
}

// Find returns x's root, compressing the path traversed.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		uf.parent[x], x = root, uf.parent[x]
	}
	return root
}

// Union merges the sets containing x and y. If sizePriority is true,
// the larger set's root survives (ties keep x's root); otherwise the
// numerically lesser root survives. The surviving root accumulates
// both size and sum. Returns the surviving root.
func (uf *UnionFind) Union(x, y int, sizePriority bool) int {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return rx
	}

	var survivor, absorbed int
	if sizePriority {
		if uf.size[rx] >= uf.size[ry] {
			survivor, absorbed = rx, ry
		} else {
			survivor, absorbed = ry, rx
		}
	} else {
		if rx < ry {
			survivor, absorbed = rx, ry
		} else {
			survivor, absorbed = ry, rx
		}
	}

	uf.parent[absorbed] = survivor
	uf.size[survivor] += uf.size[absorbed]
	uf.sum[survivor] += uf.sum[absorbed]
	return survivor
}

// Size returns the size of x's set.
func (uf *UnionFind) Size(x int) int {
	return uf.size[uf.Find(x)]
}

// Sum returns the accumulator of x's set.
func (uf *UnionFind) Sum(x int) float64 {
	return uf.sum[uf.Find(x)]
}

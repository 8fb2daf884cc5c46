package soccertrack

// FieldColorModel holds the adaptive chromaticity bounds used to
// classify a pixel as "field-green", plus the green-channel threshold
// ForegroundSegmenter uses to veto spurious low-green foreground.
//
// Chromaticity is r = R/(R+G+B), g = G/(R+G+B); a pixel is field-green
// iff RLo <= r <= RHi && GLo <= g <= GHi. Bounds are inclusive.
type FieldColorModel struct {
	RLo, RHi float64
	GLo, GHi float64

	GreenThreshold float64
}

// chromaticity computes the normalized (r, g) pair for a BGR pixel. A
// pure-black pixel (R+G+B == 0) has no defined chromaticity; it is
// reported as (-1, -1), which lies outside any valid bounds and so is
// never classified as field-green.
func chromaticity(b, g, r uint8) (float64, float64) {
	sum := float64(b) + float64(g) + float64(r)
	if sum == 0 {
		return -1, -1
	}
	return float64(r) / sum, float64(g) / sum
}

// IsFieldGreen reports whether a BGR pixel falls inside the model's
// chromaticity bounds.
func (m FieldColorModel) IsFieldGreen(b, g, r uint8) bool {
	rc, gc := chromaticity(b, g, r)
	return rc >= m.RLo && rc <= m.RHi && gc >= m.GLo && gc <= m.GHi
}

// candidateGrid marks every pixel whose chromaticity falls inside the
// model's bounds.
func candidateGrid(frame Frame, model FieldColorModel) [][]bool {
	rows, cols := frame.Rows(), frame.Cols()
	grid := make([][]bool, rows)
	for i := 0; i < rows; i++ {
		grid[i] = make([]bool, cols)
		for j := 0; j < cols; j++ {
			px := frame.GetVecbAt(i, j)
			grid[i][j] = model.IsFieldGreen(px[0], px[1], px[2])
		}
	}
	return grid
}

// GreenMask implements the §4.2 green-mask extraction: candidates are
// unioned 4-connectedly (up, left), the largest component is found,
// and any other component within previousSizeThreshold of its size
// (and, if yAligned, within 0.1*rows of its mean row) is merged into
// it. The mask is true only where a pixel's root equals the merged
// super-root.
func GreenMask(frame Frame, model FieldColorModel, previousSizeThreshold float64, yAligned bool) [][]bool {
	rows, cols := frame.Rows(), frame.Cols()
	candidates := candidateGrid(frame, model)

	idx := func(i, j int) int { return i*cols + j }
	uf := NewUnionFind(rows * cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if !candidates[i][j] {
				continue
			}
			uf.Add(idx(i, j), float64(i))
			if i > 0 && candidates[i-1][j] {
				uf.Union(idx(i, j), idx(i-1, j), false)
			}
			if j > 0 && candidates[i][j-1] {
				uf.Union(idx(i, j), idx(i, j-1), false)
			}
		}
	}

	sizeOf := map[int]int{}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if candidates[i][j] {
				sizeOf[uf.Find(idx(i, j))] = uf.Size(idx(i, j))
			}
		}
	}
	if len(sizeOf) == 0 {
		empty := make([][]bool, rows)
		for i := range empty {
			empty[i] = make([]bool, cols)
		}
		return empty
	}

	starRoot, starSize := -1, -1
	for root, size := range sizeOf {
		if size > starSize {
			starRoot, starSize = root, size
		}
	}
	starMeanRow := uf.Sum(starRoot) / float64(starSize)

	superRoot := starRoot
	for root, size := range sizeOf {
		if root == starRoot {
			continue
		}
		if float64(size)*previousSizeThreshold <= float64(starSize) {
			continue
		}
		if yAligned {
			meanRow := uf.Sum(root) / float64(size)
			if abs(meanRow-starMeanRow) >= 0.1*float64(rows) {
				continue
			}
		}
		superRoot = uf.Union(superRoot, root, false)
	}
	// Re-resolve in case the super-root's identity moved during merges.
	superRoot = uf.Find(superRoot)

	mask := make([][]bool, rows)
	for i := 0; i < rows; i++ {
		mask[i] = make([]bool, cols)
		for j := 0; j < cols; j++ {
			if candidates[i][j] && uf.Find(idx(i, j)) == superRoot {
				mask[i][j] = true
			}
		}
	}
	return mask
}

// FilledGreenMask complements mask and unions the false region
// 4-connectedly with a sentinel "border" node; any false region that
// never reaches the image border (an enclosed hole inside the field)
// is flipped back to true in the returned copy.
func FilledGreenMask(mask [][]bool) [][]bool {
	rows := len(mask)
	if rows == 0 {
		return mask
	}
	cols := len(mask[0])

	idx := func(i, j int) int { return i*cols + j }
	border := rows * cols
	uf := NewUnionFind(rows*cols + 1)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if mask[i][j] {
				continue
			}
			if i == 0 || j == 0 || i == rows-1 || j == cols-1 {
				uf.Union(idx(i, j), border, false)
			}
			if i > 0 && !mask[i-1][j] {
				uf.Union(idx(i, j), idx(i-1, j), false)
			}
			if j > 0 && !mask[i][j-1] {
				uf.Union(idx(i, j), idx(i, j-1), false)
			}
		}
	}

	borderRoot := uf.Find(border)
	filled := make([][]bool, rows)
	for i := 0; i < rows; i++ {
		filled[i] = make([]bool, cols)
		for j := 0; j < cols; j++ {
			if mask[i][j] {
				filled[i][j] = true
				continue
			}
			filled[i][j] = uf.Find(idx(i, j)) != borderRoot
		}
	}
	return filled
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// RecomputeBounds re-derives RLo/RHi/GLo/GHi from the chromaticity
// spread observed over the model's own current green-mask region of
// background, widened by margin on each side. GreenThreshold is left
// unchanged. Used by the driver every chromaticityBoundsCalculationStep
// frames to adapt to lighting drift; if background has no green-mask
// pixels yet, m is returned unchanged.
func (m FieldColorModel) RecomputeBounds(background Frame, margin float64) FieldColorModel {
	mask := GreenMask(background, m, 2.0, false)
	rows, cols := background.Rows(), background.Cols()

	first := true
	var rLo, rHi, gLo, gHi float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if !mask[i][j] {
				continue
			}
			px := background.GetVecbAt(i, j)
			rc, gc := chromaticity(px[0], px[1], px[2])
			if first {
				rLo, rHi, gLo, gHi = rc, rc, gc, gc
				first = false
				continue
			}
			if rc < rLo {
				rLo = rc
			}
			if rc > rHi {
				rHi = rc
			}
			if gc < gLo {
				gLo = gc
			}
			if gc > gHi {
				gHi = gc
			}
		}
	}
	if first {
		return m
	}

	out := m
	out.RLo = rLo - margin
	out.RHi = rHi + margin
	out.GLo = gLo - margin
	out.GHi = gHi + margin
	return out
}

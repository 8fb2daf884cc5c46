package soccertrack

// Component is one 4-connected group of foreground pixels produced by
// ExtractComponents.
type Component struct {
	Positions     []Position
	TouchesBorder bool
}

// ExtractComponents runs 4-connectivity union-find over flags
// restricted to [minRow,maxRow]x[minCol,maxCol], unioning rectangle-
// border pixels with a sentinel "border" root so callers can identify
// (and optionally exclude) groups that touch the scan rectangle's
// edge. Groups are returned as lists of pixel positions.
func ExtractComponents(flags [][]bool, minRow, maxRow, minCol, maxCol int, excludeBorderTouching bool) []Component {
	if maxRow < minRow || maxCol < minCol {
		return nil
	}
	height := maxRow - minRow + 1
	width := maxCol - minCol + 1

	idx := func(i, j int) int { return (i-minRow)*width + (j - minCol) }
	border := height * width
	uf := NewUnionFind(height*width + 1)

	for i := minRow; i <= maxRow; i++ {
		for j := minCol; j <= maxCol; j++ {
			if !flags[i][j] {
				continue
			}
			if i == minRow || i == maxRow || j == minCol || j == maxCol {
				uf.Union(idx(i, j), border, false)
			}
			if i > minRow && flags[i-1][j] {
				uf.Union(idx(i, j), idx(i-1, j), false)
			}
			if j > minCol && flags[i][j-1] {
				uf.Union(idx(i, j), idx(i, j-1), false)
			}
		}
	}

	borderRoot := uf.Find(border)
	groups := map[int]*Component{}
	for i := minRow; i <= maxRow; i++ {
		for j := minCol; j <= maxCol; j++ {
			if !flags[i][j] {
				continue
			}
			root := uf.Find(idx(i, j))
			comp, ok := groups[root]
			if !ok {
				comp = &Component{TouchesBorder: root == borderRoot}
				groups[root] = comp
			}
			comp.Positions = append(comp.Positions, Position{Row: i, Col: j})
		}
	}

	result := make([]Component, 0, len(groups))
	for _, comp := range groups {
		if excludeBorderTouching && comp.TouchesBorder {
			continue
		}
		result = append(result, *comp)
	}
	return result
}

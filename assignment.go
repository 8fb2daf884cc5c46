package soccertrack

import "github.com/tkeesh/soccertrack/internal/scipy"

// Assignment is a matched (candidate row, target column) pair from an
// AssignmentSolver.
type Assignment struct {
	Row, Col int
}

// AssignmentSolver resolves a candidates x targets cost matrix into a
// set of pairs at or below maxCost, plus the rows/cols left unmatched. It is
// the typed stand-in for the "Hungarian solver" spec.md §1 lists as an
// out-of-scope collaborator.
type AssignmentSolver interface {
	Solve(cost [][]float64, maxCost float64) (pairs []Assignment, unmatchedRows, unmatchedCols []int)
}

// GreedySolver repeatedly takes the global minimum cost at or below maxCost
// and invalidates its row/col, mirroring the original's per-candidate,
// first-match-wins processing order. It is the tracker's default.
type GreedySolver struct{}

func (GreedySolver) Solve(cost [][]float64, maxCost float64) ([]Assignment, []int, []int) {
	rows := len(cost)
	if rows == 0 {
		return nil, nil, nil
	}
	cols := len(cost[0])

	rowDone := make([]bool, rows)
	colDone := make([]bool, cols)
	var pairs []Assignment

	for {
		bestRow, bestCol, bestCost := -1, -1, maxCost
		for i := 0; i < rows; i++ {
			if rowDone[i] {
				continue
			}
			for j := 0; j < cols; j++ {
				if colDone[j] {
					continue
				}
				if cost[i][j] <= bestCost {
					bestRow, bestCol, bestCost = i, j, cost[i][j]
				}
			}
		}
		if bestRow < 0 {
			break
		}
		pairs = append(pairs, Assignment{Row: bestRow, Col: bestCol})
		rowDone[bestRow] = true
		colDone[bestCol] = true
	}

	var unmatchedRows, unmatchedCols []int
	for i := 0; i < rows; i++ {
		if !rowDone[i] {
			unmatchedRows = append(unmatchedRows, i)
		}
	}
	for j := 0; j < cols; j++ {
		if !colDone[j] {
			unmatchedCols = append(unmatchedCols, j)
		}
	}
	return pairs, unmatchedRows, unmatchedCols
}

// HungarianSolver wraps internal/scipy's LinearSumAssignment for an
// optimal assignment. NewRegistry stores it when
// RegistryConfig.UseOptimalAssignment is set; Phase F reconnection
// does not call it, so several newcomers qualifying for the same
// disposed/tracked target are not solved jointly.
type HungarianSolver struct{}

func (HungarianSolver) Solve(cost [][]float64, maxCost float64) ([]Assignment, []int, []int) {
	assignments, unmatchedRows, unmatchedCols := scipy.LinearSumAssignment(cost, maxCost)
	pairs := make([]Assignment, len(assignments))
	for i, a := range assignments {
		pairs[i] = Assignment{Row: a.RowIdx, Col: a.ColIdx}
	}
	return pairs, unmatchedRows, unmatchedCols
}

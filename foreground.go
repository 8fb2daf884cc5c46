package soccertrack

import "gocv.io/x/gocv"

// ForegroundSegmenter converts a new frame, the current background and
// terrain mask into a binary foreground flag map, combining a
// background-difference test with a previous-frame-difference test and
// a low-green veto. See squaredDistance for the per-pixel metric.
type ForegroundSegmenter struct {
	Model          FieldColorModel
	TauBg          float64
	TauPrev        float64
	GreenThreshold float64
}

// NewForegroundSegmenter applies the documented defaults
// (thresholdFactor=0.8, TauBg=800, TauPrev=200) scaled by factor.
func NewForegroundSegmenter(model FieldColorModel, factor float64) ForegroundSegmenter {
	if factor <= 0 {
		factor = 0.8
	}
	return ForegroundSegmenter{
		Model:          model,
		TauBg:          800 * factor,
		TauPrev:        200 * factor,
		GreenThreshold: model.GreenThreshold,
	}
}

// squaredDistance is the per-pixel BGR distance used by both the
// background and previous-frame comparisons: squared Euclidean
// distance, plus (greenThreshold-G)^2 when the pixel's green channel
// falls below greenThreshold.
func squaredDistance(px, ref gocv.Vecb, greenThreshold float64) float64 {
	db := float64(px[0]) - float64(ref[0])
	dg := float64(px[1]) - float64(ref[1])
	dr := float64(px[2]) - float64(ref[2])
	dist := db*db + dg*dg + dr*dr
	if float64(px[1]) < greenThreshold {
		diff := greenThreshold - float64(px[1])
		dist += diff * diff
	}
	return dist
}

// IsForeground evaluates the §4.4 criterion at a single pixel: it must
// exceed the background-difference threshold, and then either exceed
// the previous-frame-difference threshold (suddenlyChanged) or fail
// the field-green chromaticity test (nonField). thresholdMultiplier
// scales TauBg/TauPrev, used both by Segment and by the registry's
// per-pixel BFS expansion (Phase A's scanning-attempt retries each
// lower it by 20%). prev may be nil when no previous frame exists.
func (fs ForegroundSegmenter) IsForeground(frame Frame, prev *Frame, background Frame, row, col int, thresholdMultiplier float64) bool {
	px := frame.GetVecbAt(row, col)
	bgPx := background.GetVecbAt(row, col)
	if squaredDistance(px, bgPx, fs.GreenThreshold) <= fs.TauBg*thresholdMultiplier {
		return false
	}

	suddenlyChanged := false
	if prev != nil {
		prevPx := prev.GetVecbAt(row, col)
		if squaredDistance(px, prevPx, fs.GreenThreshold) > fs.TauPrev*thresholdMultiplier {
			suddenlyChanged = true
		}
	}
	nonField := !fs.Model.IsFieldGreen(px[0], px[1], px[2])
	return suddenlyChanged || nonField
}

// Segment computes the foreground flag map for frame, restricted to
// [minRow,maxRow]x[minCol,maxCol] and to terrain.
func (fs ForegroundSegmenter) Segment(
	frame Frame, prev *Frame, background Frame, terrain TerrainMask,
	minRow, maxRow, minCol, maxCol int, thresholdMultiplier float64,
) ([][]bool, error) {
	rows, cols := frame.Rows(), frame.Cols()
	flags := make([][]bool, rows)
	for i := range flags {
		flags[i] = make([]bool, cols)
	}

	if minRow < 0 {
		minRow = 0
	}
	if minCol < 0 {
		minCol = 0
	}
	if maxRow >= rows {
		maxRow = rows - 1
	}
	if maxCol >= cols {
		maxCol = cols - 1
	}

	found := false
	for i := minRow; i <= maxRow; i++ {
		for j := minCol; j <= maxCol; j++ {
			if !terrain.Contains(i, j) {
				continue
			}
			if fs.IsForeground(frame, prev, background, i, j, thresholdMultiplier) {
				flags[i][j] = true
				found = true
			}
		}
	}

	if !found {
		return flags, ErrNoForeground
	}
	return flags, nil
}

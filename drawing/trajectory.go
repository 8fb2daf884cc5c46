package drawing

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/tkeesh/soccertrack"
)

// TrajectoryEntry is one tracked object's recent history for polyline
// rendering: History holds its BoundingBox observations in chronological
// order (oldest first), mirroring a TrackedObject's "previous" log.
type TrajectoryEntry struct {
	ID      int
	History []soccertrack.BoundingBox
}

// DrawTrajectories draws, for each entry, a connected polyline through
// the TopCenter() of its last length history points — grounded on the
// original's DrawTrajectories, which walks previous[] backward from the
// newest entry until either it runs out or length frames have been
// drawn. length <= 0 draws the full history.
func DrawTrajectories(frame *gocv.Mat, entries []TrajectoryEntry, palette *Palette, length int, thickness int) *gocv.Mat {
	if len(entries) == 0 {
		return frame
	}
	if palette == nil {
		palette = NewPalette(nil)
	}
	if thickness == 0 {
		thickness = 1
	}

	drawer := NewDrawer()

	for _, e := range entries {
		n := len(e.History)
		if n < 2 {
			continue
		}

		stop := 0
		if length > 0 && n-length > stop {
			stop = n - length
		}

		col := palette.ChooseColor(e.ID)
		for i := n - 1; i > stop; i-- {
			cur := e.History[i].TopCenter()
			prev := e.History[i-1].TopCenter()
			start := image.Point{X: cur.Col, Y: cur.Row}
			end := image.Point{X: prev.Col, Y: prev.Row}
			drawer.Line(frame, start, end, col, thickness)
		}
	}

	return frame
}

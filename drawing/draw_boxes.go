package drawing

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/tkeesh/soccertrack"
	colorpkg "github.com/tkeesh/soccertrack/color"
)

// Entry is one tracked object's rendering input for a single frame: its
// id (used for palette color and label), its current bounding box, and
// its team tag once TeamClassifier has produced one.
type Entry struct {
	ID        int
	Box       soccertrack.BoundingBox
	Team      int
	TeamKnown bool
}

// boxStyle resolves the line color and thickness variation from a
// box's TypeFlags: PushedOut always draws red regardless of palette
// color, Pusher draws bold, Filled (interpolated, never observed) draws
// thin. Normal uses the palette color at the configured thickness.
func boxStyle(base Color, flags soccertrack.TypeFlags, thickness int) (Color, int) {
	switch {
	case flags.Has(soccertrack.PushedOut):
		return colorpkg.Red, maxInt(thickness-1, 1)
	case flags.Has(soccertrack.Pusher):
		return base, thickness + 1
	case flags.Has(soccertrack.Filled):
		return base, maxInt(thickness-1, 1)
	default:
		return base, thickness
	}
}

// DrawBoundingBoxes renders every entry's box, id and (once classified)
// team tag onto frame in place. thickness <= 0 auto-scales from frame
// size, matching Drawer's auto-scaling convention.
func DrawBoundingBoxes(frame *gocv.Mat, entries []Entry, palette *Palette, thickness int) *gocv.Mat {
	if len(entries) == 0 {
		return frame
	}

	if thickness <= 0 {
		maxDim := max(frame.Rows(), frame.Cols())
		thickness = maxInt(maxDim/500, 1)
	}
	if palette == nil {
		palette = NewPalette(nil)
	}

	drawer := NewDrawer()

	for _, e := range entries {
		base := palette.ChooseColor(e.ID)
		col, th := boxStyle(base, e.Box.TypeFlags, thickness)

		pt1 := image.Point{X: e.Box.MinCol, Y: e.Box.MinRow}
		pt2 := image.Point{X: e.Box.MaxCol, Y: e.Box.MaxRow}
		drawer.Rectangle(frame, pt1, pt2, col, th)

		text := fmt.Sprintf("#%d", e.ID)
		if e.TeamKnown {
			text = fmt.Sprintf("#%d team %d", e.ID, e.Team)
		}
		anchor := image.Point{X: e.Box.MinCol - th/2, Y: e.Box.MinRow - th/2 - 1}
		drawer.Text(frame, text, anchor, 0, col, 0, true, colorpkg.Black, 2)
	}

	return frame
}

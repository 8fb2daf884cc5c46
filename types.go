package soccertrack

import (
	"gocv.io/x/gocv"

	"github.com/tkeesh/soccertrack/color"
)

// Frame is a rows x cols 8-bit BGR image. All per-pixel buffers in this
// package share a frame's shape.
type Frame = gocv.Mat

// Position is a (row, col) pixel coordinate, optionally decorated with
// a frame index and an owning object id by callers that need history.
type Position struct {
	Row, Col int
}

// TypeFlags is a bitset of the qualifiers a BoundingBox can carry.
// Multiple flags combine by set union (e.g. a tracked object that has
// pushed others out is tagged Normal|Pusher in Phase G).
type TypeFlags uint8

const (
	Normal TypeFlags = 1 << iota
	PushedOut
	Pusher
	Filled
)

func (f TypeFlags) Has(flag TypeFlags) bool { return f&flag != 0 }

func (f TypeFlags) String() string {
	if f == 0 {
		return "none"
	}
	s := ""
	add := func(name string, bit TypeFlags) {
		if f.Has(bit) {
			if s != "" {
				s += "|"
			}
			s += name
		}
	}
	add("Normal", Normal)
	add("PushedOut", PushedOut)
	add("Pusher", Pusher)
	add("Filled", Filled)
	return s
}

// BoundingBox is one historical (or current) observation of a tracked
// object: its pixel extent on a given frame, the qualifiers that
// applied, and the mean color sampled from its positions at the time.
type BoundingBox struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
	FrameIndex     int
	TypeFlags      TypeFlags
	MeanColor      color.Color
}

// Width returns the bounding box's column extent.
func (b BoundingBox) Width() int { return b.MaxCol - b.MinCol + 1 }

// Height returns the bounding box's row extent.
func (b BoundingBox) Height() int { return b.MaxRow - b.MinRow + 1 }

// Area returns Width()*Height(); used by Phase G's pruning comparator
// and by the shrink-detection rule of Phase F.
func (b BoundingBox) Area() int { return b.Width() * b.Height() }

// TopCenter returns the point used by trajectory drawing: the midpoint
// of the box's MaxRow edge, which is its lower edge in image
// coordinates (mainNB.cpp's DrawTrajectories anchors lines to
// (maxCol+minCol)/2, maxRow).
func (b BoundingBox) TopCenter() Position {
	return Position{Row: b.MaxRow, Col: (b.MinCol + b.MaxCol) / 2}
}

// boundingBoxOf computes the tight enclosure of a set of positions. It
// is the Go equivalent of mainNB.cpp's GetBoundingBox, used throughout
// the registry (Phase B's wider-area retry, Phase F's shrink checks).
func boundingBoxOf(positions []Position) (minRow, maxRow, minCol, maxCol int) {
	if len(positions) == 0 {
		return 0, -1, 0, -1
	}
	minRow, maxRow = positions[0].Row, positions[0].Row
	minCol, maxCol = positions[0].Col, positions[0].Col
	for _, p := range positions[1:] {
		if p.Row < minRow {
			minRow = p.Row
		}
		if p.Row > maxRow {
			maxRow = p.Row
		}
		if p.Col < minCol {
			minCol = p.Col
		}
		if p.Col > maxCol {
			maxCol = p.Col
		}
	}
	return
}

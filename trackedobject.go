package soccertrack

import (
	"math"

	"github.com/tkeesh/soccertrack/color"
)

// TrackedObject is one player (or cluster) under tracking. Registry
// exclusively owns every TrackedObject reachable from its tracked/
// disposed collections; PushedOutBy and PushedOutGroups are weak
// relations for lookup only and must never be used to transfer
// ownership or kept alive past Registry forgetting an object.
type TrackedObject struct {
	ID        int
	Positions []Position
	History   []BoundingBox

	LastFrame               int
	IsTracked               bool
	PushedOut               bool
	PushedOutBy             *TrackedObject
	PushedOutGroups         map[*TrackedObject]bool
	FramesOutsideOfTerrain  int

	MeanColor    color.Color
	MeanPosition Position
}

// NewTrackedObject creates a fresh object from an initial pixel group.
func NewTrackedObject(id int, positions []Position, lastFrame int) *TrackedObject {
	return &TrackedObject{
		ID:           id,
		Positions:    positions,
		LastFrame:    lastFrame,
		IsTracked:    true,
		MeanPosition: Position{Row: -1, Col: -1},
	}
}

// BoundingRect returns the tight enclosure of t's current positions.
func (t *TrackedObject) BoundingRect() (minRow, maxRow, minCol, maxCol int) {
	return boundingBoxOf(t.Positions)
}

// ComputeMeanPositionAndColor recomputes MeanPosition/MeanColor from
// Positions against frame. An object with zero positions reports
// MeanPosition (-1,-1) and MeanColor (0,0,0), per the boundary case.
func (t *TrackedObject) ComputeMeanPositionAndColor(frame Frame) {
	if len(t.Positions) == 0 {
		t.MeanPosition = Position{Row: -1, Col: -1}
		t.MeanColor = color.Color{}
		return
	}

	var sumRow, sumCol int
	var sumB, sumG, sumR float64
	for _, p := range t.Positions {
		sumRow += p.Row
		sumCol += p.Col
		px := frame.GetVecbAt(p.Row, p.Col)
		sumB += float64(px[0])
		sumG += float64(px[1])
		sumR += float64(px[2])
	}
	n := len(t.Positions)
	t.MeanPosition = Position{Row: sumRow / n, Col: sumCol / n}
	t.MeanColor = color.Color{
		B: uint8(sumB / float64(n)),
		G: uint8(sumG / float64(n)),
		R: uint8(sumR / float64(n)),
	}
}

// SetPushedOutBySmartly sets t's pusher, keeping the reverse edge
// (pusher.PushedOutGroups) consistent: t.PushedOutBy == u iff
// t is a member of u.PushedOutGroups. pusher == nil clears the
// relation.
func (t *TrackedObject) SetPushedOutBySmartly(pusher *TrackedObject) {
	if t.PushedOutBy == pusher {
		return
	}
	if t.PushedOutBy != nil {
		delete(t.PushedOutBy.PushedOutGroups, t)
	}
	t.PushedOutBy = pusher
	if pusher != nil {
		if pusher.PushedOutGroups == nil {
			pusher.PushedOutGroups = map[*TrackedObject]bool{}
		}
		pusher.PushedOutGroups[t] = true
	}
}

// ClearPushedOutGroupsSmartly severs t's forward edge to every object
// it has pushed out, clearing their back-reference to t.
func (t *TrackedObject) ClearPushedOutGroupsSmartly() {
	for other := range t.PushedOutGroups {
		if other.PushedOutBy == t {
			other.PushedOutBy = nil
		}
	}
	t.PushedOutGroups = nil
}

// topCenterDistance is the Euclidean distance between two history
// entries' TopCenter() points.
func topCenterDistance(a, b BoundingBox) float64 {
	dr := float64(a.TopCenter().Row - b.TopCenter().Row)
	dc := float64(a.TopCenter().Col - b.TopCenter().Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// EstimatedSpeed is the mean inter-frame top-center displacement over
// the last framesBack history transitions (Phase F's per-frame speed
// estimate used to admit disposed-object candidates by distance).
func (t *TrackedObject) EstimatedSpeed(framesBack int) float64 {
	n := len(t.History)
	if n < 2 {
		return 0
	}
	take := framesBack
	if take > n-1 {
		take = n - 1
	}
	if take < 1 {
		return 0
	}

	start := n - 1 - take
	total := 0.0
	for i := start + 1; i < n; i++ {
		total += topCenterDistance(t.History[i-1], t.History[i])
	}
	return total / float64(take)
}

// SizeShrinkedLately reports whether, over the last framesBack history
// entries, any prior area reached >= 1.5x the current area (Phase F's
// push-out-release admission test).
func (t *TrackedObject) SizeShrinkedLately(framesBack int) bool {
	n := len(t.History)
	if n == 0 {
		return false
	}
	currentArea := t.History[n-1].Area()
	start := n - framesBack
	if start < 0 {
		start = 0
	}
	for i := start; i < n; i++ {
		if float64(t.History[i].Area()) >= 1.5*float64(currentArea) {
			return true
		}
	}
	return false
}

func distance(a, b Position) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

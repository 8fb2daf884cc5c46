package soccertrack

import (
	"github.com/tkeesh/soccertrack/internal/numpy"
)

// ownerStamp records which object claimed a pixel on which frame. A
// stamp is only meaningful when Gen == the registry's current frame
// index; this avoids clearing the whole grid every frame.
type ownerStamp struct {
	owner *TrackedObject
	gen   int
}

type delta struct{ dr, dc int }

var eightNeighbors = []delta{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Registry is the per-frame TrackedObjectRegistry: it runs Phases A-G
// of the update over a fixed set of TrackedObjects, maintaining
// identity across occlusion (PushedOut/Pusher), re-detecting new
// objects, and reconnecting disposed ones.
type Registry struct {
	cfg       RegistryConfig
	segmenter ForegroundSegmenter
	solver    AssignmentSolver

	Tracked  []*TrackedObject
	Disposed []*TrackedObject

	nextID     int
	frameIndex int

	rows, cols int
	owners     [][]ownerStamp
	visited    [][]int
	visitGen   int
}

// NewRegistry constructs an empty Registry. solver may be nil, in
// which case GreedySolver or HungarianSolver is chosen per
// cfg.UseOptimalAssignment.
func NewRegistry(cfg RegistryConfig, segmenter ForegroundSegmenter, solver AssignmentSolver) *Registry {
	if solver == nil {
		if cfg.UseOptimalAssignment {
			solver = HungarianSolver{}
		} else {
			solver = GreedySolver{}
		}
	}
	return &Registry{cfg: cfg, segmenter: segmenter, solver: solver}
}

func (r *Registry) ensureGrids(rows, cols int) {
	if r.rows == rows && r.cols == cols && r.owners != nil {
		return
	}
	r.rows, r.cols = rows, cols
	r.owners = make([][]ownerStamp, rows)
	r.visited = make([][]int, rows)
	for i := range r.owners {
		r.owners[i] = make([]ownerStamp, cols)
		r.visited[i] = make([]int, cols)
	}
}

func (r *Registry) claim(p Position, owner *TrackedObject) {
	r.owners[p.Row][p.Col] = ownerStamp{owner: owner, gen: r.frameIndex}
}

func (r *Registry) ownerAt(row, col int) (*TrackedObject, bool) {
	st := r.owners[row][col]
	if st.gen != r.frameIndex {
		return nil, false
	}
	return st.owner, true
}

func distAt(frame, background Frame, row, col int, greenThreshold float64) float64 {
	return squaredDistance(frame.GetVecbAt(row, col), background.GetVecbAt(row, col), greenThreshold)
}

// selectSeed picks, among candidates, the position maximizing its own
// plus its 8-neighbors' squared background distance — the pixel most
// likely to sit at the center of the moving object rather than at its
// fringe.
func (r *Registry) selectSeed(candidates []Position, frame, background Frame) Position {
	best := candidates[0]
	bestScore := -1.0
	for _, p := range candidates {
		score := distAt(frame, background, p.Row, p.Col, r.cfg.GreenThreshold)
		for _, d := range eightNeighbors {
			ni, nj := p.Row+d.dr, p.Col+d.dc
			if ni < 0 || nj < 0 || ni >= r.rows || nj >= r.cols {
				continue
			}
			score += distAt(frame, background, ni, nj, r.cfg.GreenThreshold)
		}
		if score > bestScore {
			bestScore = score
			best = p
		}
	}
	return best
}

// bfsVisit expands outward from seed by 8-connectivity, accepting a
// neighbor iff it passes the foreground criterion, is not already
// claimed by another object this frame, and keeps the running bounding
// box within maxWidth/maxHeight and the accepted count within cap. It
// reports the first other object it finds itself touching (per
// cfg.StrictDiagonalTouch), used to decide a push-out.
func (r *Registry) bfsVisit(
	seed Position, owner *TrackedObject,
	frame Frame, prev *Frame, background Frame,
	thresholdMultiplier float64, maxWidth, maxHeight, cap int,
) (accepted []Position, touchedOwner *TrackedObject) {
	r.visitGen++
	gen := r.visitGen

	queue := []Position{seed}
	r.visited[seed.Row][seed.Col] = gen
	accepted = append(accepted, seed)
	minRow, maxRow, minCol, maxCol := seed.Row, seed.Row, seed.Col, seed.Col

	head := 0
	for head < len(queue) {
		cur := queue[head]
		head++
		for _, d := range eightNeighbors {
			ni, nj := cur.Row+d.dr, cur.Col+d.dc
			if ni < 0 || nj < 0 || ni >= r.rows || nj >= r.cols {
				continue
			}
			if r.visited[ni][nj] == gen {
				continue
			}
			r.visited[ni][nj] = gen

			if other, claimed := r.ownerAt(ni, nj); claimed && other != owner {
				touching := true
				if r.cfg.StrictDiagonalTouch {
					touching = ni != seed.Row && nj != seed.Col
				}
				if touching && touchedOwner == nil {
					touchedOwner = other
				}
				continue
			}

			if !r.segmenter.IsForeground(frame, prev, background, ni, nj, thresholdMultiplier) {
				continue
			}

			newMinRow, newMaxRow, newMinCol, newMaxCol := minRow, maxRow, minCol, maxCol
			if ni < newMinRow {
				newMinRow = ni
			}
			if ni > newMaxRow {
				newMaxRow = ni
			}
			if nj < newMinCol {
				newMinCol = nj
			}
			if nj > newMaxCol {
				newMaxCol = nj
			}
			if newMaxRow-newMinRow+1 > maxHeight || newMaxCol-newMinCol+1 > maxWidth {
				continue
			}
			if len(accepted) >= cap {
				continue
			}

			minRow, maxRow, minCol, maxCol = newMinRow, newMaxRow, newMinCol, newMaxCol
			pos := Position{Row: ni, Col: nj}
			accepted = append(accepted, pos)
			queue = append(queue, pos)
		}
	}
	return accepted, touchedOwner
}

// attemptTrack runs Phase A's scanning attempts for a single tracked
// object, lowering the threshold multiplier by 20% on each retry.
func (r *Registry) attemptTrack(t *TrackedObject, frame Frame, prev *Frame, background Frame) (accepted []Position, touchedOwner *TrackedObject, ok bool) {
	if len(t.Positions) == 0 {
		return nil, nil, false
	}
	seed := r.selectSeed(t.Positions, frame, background)
	cap := int(float64(len(t.Positions)) * r.cfg.RemainingFactor)
	if cap < r.cfg.MinimumGroupSize {
		cap = r.cfg.MinimumGroupSize
	}

	multiplier := 1.0
	for attempt := 0; attempt < r.cfg.ScanningAttempts; attempt++ {
		got, other := r.bfsVisit(seed, t, frame, prev, background, multiplier, r.cfg.MaxWidth, r.cfg.MaxHeight, cap)
		if len(got) >= r.cfg.MinimumGroupSize {
			return got, other, true
		}
		if other != nil {
			touchedOwner = other
		}
		multiplier *= 0.8
	}
	return nil, touchedOwner, false
}

// attemptTrackWider runs Phase B: an enlarged search rectangle around
// t's recent trajectory, re-seeding from the rectangle's highest
// background-distance pixel instead of t's last known positions.
func (r *Registry) attemptTrackWider(t *TrackedObject, frame Frame, prev *Frame, background Frame) (accepted []Position, touchedOwner *TrackedObject, ok bool) {
	minRow, maxRow, minCol, maxCol := t.BoundingRect()
	if maxRow < minRow {
		return nil, nil, false
	}
	width := maxCol - minCol + 1
	height := maxRow - minRow + 1
	lookback := r.cfg.PreviousLookSize
	if n := len(t.History); n > 0 {
		start := n - lookback
		if start < 0 {
			start = 0
		}
		for i := start; i < n; i++ {
			if w := t.History[i].Width(); w > width {
				width = w
			}
			if h := t.History[i].Height(); h > height {
				height = h
			}
		}
	}

	padRow := int(float64(height) * (r.cfg.EnlargementFactor - 1) / 2)
	padCol := int(float64(width) * (r.cfg.EnlargementFactor - 1) / 2)
	rMinRow := clampInt(minRow-padRow, 0, r.rows-1)
	rMaxRow := clampInt(maxRow+padRow, 0, r.rows-1)
	rMinCol := clampInt(minCol-padCol, 0, r.cols-1)
	rMaxCol := clampInt(maxCol+padCol, 0, r.cols-1)

	var candidates []Position
	for i := rMinRow; i <= rMaxRow; i++ {
		for j := rMinCol; j <= rMaxCol; j++ {
			if _, claimed := r.ownerAt(i, j); claimed {
				continue
			}
			if r.segmenter.IsForeground(frame, prev, background, i, j, 1.0) {
				candidates = append(candidates, Position{Row: i, Col: j})
			}
		}
	}
	if len(candidates) == 0 {
		return nil, nil, false
	}

	seed := r.selectSeed(candidates, frame, background)
	cap := int(float64(len(t.Positions)) * r.cfg.RemainingFactor)
	if cap < r.cfg.MinimumGroupSize {
		cap = r.cfg.MinimumGroupSize
	}
	got, other := r.bfsVisit(seed, t, frame, prev, background, 1.0, r.cfg.MaxWidth, r.cfg.MaxHeight, cap)
	if len(got) >= r.cfg.MinimumGroupSize {
		return got, other, true
	}
	return nil, other, false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// interpolateFilledHistory builds the linear-interpolation "Filled"
// boxes bridging an object's last real box and its revived box across
// the frames it was missing, per the disposed-object revival rule.
func interpolateFilledHistory(last, revived BoundingBox, fromFrame, toFrame int) []BoundingBox {
	gap := toFrame - fromFrame
	if gap <= 1 {
		return nil
	}
	minRows := numpy.Linspace(float64(last.MinRow), float64(revived.MinRow), gap+1)
	maxRows := numpy.Linspace(float64(last.MaxRow), float64(revived.MaxRow), gap+1)
	minCols := numpy.Linspace(float64(last.MinCol), float64(revived.MinCol), gap+1)
	maxCols := numpy.Linspace(float64(last.MaxCol), float64(revived.MaxCol), gap+1)

	out := make([]BoundingBox, 0, gap-1)
	for i := 1; i < gap; i++ {
		out = append(out, BoundingBox{
			MinRow:     int(minRows[i]),
			MaxRow:     int(maxRows[i]),
			MinCol:     int(minCols[i]),
			MaxCol:     int(maxCols[i]),
			FrameIndex: fromFrame + i,
			TypeFlags:  Filled,
		})
	}
	return out
}

// Step advances the registry by one frame: Phases A-G of the tracking
// update. It returns no tracking result directly (its error is always
// nil); callers read r.Tracked and r.Disposed for the rendering/export
// layer.
func (r *Registry) Step(frame Frame, prev *Frame, background Frame, terrain TerrainMask) error {
	rows, cols := frame.Rows(), frame.Cols()
	r.ensureGrids(rows, cols)
	r.frameIndex++

	// Phase A: re-acquire each currently tracked object in place.
	for _, t := range r.Tracked {
		accepted, touchedOwner, ok := r.attemptTrack(t, frame, prev, background)
		if ok {
			r.commitTrack(t, accepted, frame)
			continue
		}
		if touchedOwner != nil {
			t.IsTracked = false
			t.PushedOut = true
			t.SetPushedOutBySmartly(touchedOwner)
			continue
		}

		// Phase B: retry over a wider search rectangle.
		accepted, touchedOwner, ok = r.attemptTrackWider(t, frame, prev, background)
		if ok {
			r.commitTrack(t, accepted, frame)
			continue
		}
		if touchedOwner != nil {
			t.IsTracked = false
			t.PushedOut = true
			t.SetPushedOutBySmartly(touchedOwner)
			continue
		}
		t.IsTracked = false
	}

	// Phase C: terrain persistence.
	for _, t := range r.Tracked {
		if !t.IsTracked {
			continue
		}
		inside := false
		for _, p := range t.Positions {
			if terrain.Contains(p.Row, p.Col) {
				inside = true
				break
			}
		}
		if inside {
			t.FramesOutsideOfTerrain = 0
			continue
		}
		t.FramesOutsideOfTerrain++
		if t.FramesOutsideOfTerrain > r.cfg.AllowedFramesOutsideOfTerrain {
			t.IsTracked = false
		}
	}

	// Phase D: move the frame's failures into the disposed pool.
	var stillTracked []*TrackedObject
	var currentlyDisposed []*TrackedObject
	for _, t := range r.Tracked {
		if t.IsTracked {
			stillTracked = append(stillTracked, t)
		} else {
			currentlyDisposed = append(currentlyDisposed, t)
		}
	}
	r.Tracked = stillTracked

	// Phase E: re-detect new candidates periodically.
	var candidates []Component
	if r.cfg.RedetectStep <= 0 || r.frameIndex%r.cfg.RedetectStep == 0 {
		flags, err := r.segmenter.Segment(frame, prev, background, terrain, 0, rows-1, 0, cols-1, 1.0)
		if err == nil {
			comps := ExtractComponents(flags, 0, rows-1, 0, cols-1, false)
			for _, c := range comps {
				if len(c.Positions) < r.cfg.MinimumGroupSizeAtFirstDetection {
					continue
				}
				unclaimed := true
				for _, p := range c.Positions {
					if _, claimed := r.ownerAt(p.Row, p.Col); claimed {
						unclaimed = false
						break
					}
				}
				if unclaimed {
					candidates = append(candidates, c)
				}
			}
		}
	}

	// Phase F: reconnect each candidate to a pushed-out release,
	// a disposed object, a pusher's release, or start a fresh track.
	for _, c := range candidates {
		r.reconnect(c, currentlyDisposed, frame, background)
	}

	// currentlyDisposed not reconnected this frame join the global pool.
	for _, t := range currentlyDisposed {
		if !t.IsTracked {
			r.Disposed = append(r.Disposed, t)
		}
	}

	// Phase G: enforce the object cap and append this frame's history.
	r.enforceCap()
	for _, t := range r.Tracked {
		flags := Normal
		if t.PushedOut {
			flags = PushedOut
		}
		if len(t.PushedOutGroups) > 0 {
			flags |= Pusher
		}
		minRow, maxRow, minCol, maxCol := t.BoundingRect()
		t.History = append(t.History, BoundingBox{
			MinRow: minRow, MaxRow: maxRow, MinCol: minCol, MaxCol: maxCol,
			FrameIndex: r.frameIndex, TypeFlags: flags, MeanColor: t.MeanColor,
		})
	}

	return nil
}

func (r *Registry) commitTrack(t *TrackedObject, accepted []Position, frame Frame) {
	t.Positions = accepted
	t.IsTracked = true
	t.PushedOut = false
	t.SetPushedOutBySmartly(nil)
	t.LastFrame = r.frameIndex
	t.ComputeMeanPositionAndColor(frame)
	for _, p := range accepted {
		r.claim(p, t)
	}
}

// reconnect implements Phase F's four ordered rules for one Phase E
// candidate: release from a push-out, return from disposal, release
// via a pusher's own disposal, or a brand-new track.
func (r *Registry) reconnect(c Component, currentlyDisposed []*TrackedObject, frame Frame, background Frame) {
	tmp := NewTrackedObject(-1, c.Positions, r.frameIndex)
	tmp.ComputeMeanPositionAndColor(frame)

	sameGroupDistance := float64(r.cols) * 0.007 * float64(r.cfg.BackFramesToCheckForStrongClosePushedOut)

	type scored struct {
		obj  *TrackedObject
		dist float64
	}
	var closeTracked []scored
	for _, t := range r.Tracked {
		if t.MeanPosition.Row < 0 {
			continue
		}
		d := distance(t.MeanPosition, tmp.MeanPosition)
		if d <= sameGroupDistance {
			closeTracked = append(closeTracked, scored{t, d})
		}
	}
	var closeDisposed []scored
	considerDisposed := func(pool []*TrackedObject) {
		for _, t := range pool {
			framesElapsed := r.frameIndex - t.LastFrame
			if framesElapsed > r.cfg.BackFramesToCheckForStrongClosePushedOut {
				continue
			}
			if len(t.History) == 0 {
				continue
			}
			last := t.History[len(t.History)-1].TopCenter()
			d := distance(last, tmp.MeanPosition)
			estimatedMaximalDistance := t.EstimatedSpeed(r.cfg.SameGroupBackFramesForSpeed) * float64(framesElapsed)
			if d <= 1.5*estimatedMaximalDistance {
				closeDisposed = append(closeDisposed, scored{t, d})
			}
		}
	}
	considerDisposed(currentlyDisposed)
	considerDisposed(r.Disposed)

	sortScored := func(s []scored) {
		for i := 1; i < len(s); i++ {
			for j := i; j > 0 && s[j].dist < s[j-1].dist; j-- {
				s[j], s[j-1] = s[j-1], s[j]
			}
		}
	}
	sortScored(closeTracked)
	sortScored(closeDisposed)

	// Rule 1: push-out release — the nearest disposed object was pushed
	// out by the nearest tracked object, which has since shrunk.
	if len(closeDisposed) > 0 && len(closeTracked) > 0 {
		d := closeDisposed[0].obj
		pusher := closeTracked[0].obj
		if d.PushedOut && d.PushedOutBy == pusher && pusher.SizeShrinkedLately(r.cfg.BackFramesToCheckForCloseTracked) {
			r.revive(d, c.Positions, frame)
			return
		}
	}

	// Rule 2: unambiguous disposed return.
	if len(closeDisposed) > 0 {
		unambiguous := len(closeDisposed) == 1 || closeDisposed[1].dist >= 5*closeDisposed[0].dist
		if unambiguous && !closeDisposed[0].obj.PushedOut {
			r.revive(closeDisposed[0].obj, c.Positions, frame)
			return
		}
	}

	// Rule 3: unambiguous pusher's own released partner.
	if len(closeTracked) > 0 {
		unambiguous := len(closeTracked) == 1 || closeTracked[1].dist >= 3*closeTracked[0].dist
		if unambiguous {
			pusher := closeTracked[0].obj
			var best *TrackedObject
			for other := range pusher.PushedOutGroups {
				if r.frameIndex-other.LastFrame > r.cfg.BackFramesToCheckForClosePushedOut {
					continue
				}
				if best == nil || other.LastFrame < best.LastFrame {
					best = other
				}
			}
			if best != nil {
				r.revive(best, c.Positions, frame)
				return
			}
		}
	}

	// Rule 4: fresh track.
	r.nextID++
	fresh := NewTrackedObject(r.nextID, c.Positions, r.frameIndex)
	fresh.ComputeMeanPositionAndColor(frame)
	for _, p := range c.Positions {
		r.claim(p, fresh)
	}
	r.Tracked = append(r.Tracked, fresh)
}

// revive moves a disposed object back into Tracked, bridging the gap
// with linearly interpolated Filled history entries.
func (r *Registry) revive(t *TrackedObject, positions []Position, frame Frame) {
	r.removeDisposed(t)

	lastFrame := t.LastFrame
	var lastBox BoundingBox
	if len(t.History) > 0 {
		lastBox = t.History[len(t.History)-1]
	}

	t.Positions = positions
	t.IsTracked = true
	t.PushedOut = false
	t.SetPushedOutBySmartly(nil)
	t.LastFrame = r.frameIndex
	t.FramesOutsideOfTerrain = 0
	t.ComputeMeanPositionAndColor(frame)

	minRow, maxRow, minCol, maxCol := t.BoundingRect()
	revivedBox := BoundingBox{MinRow: minRow, MaxRow: maxRow, MinCol: minCol, MaxCol: maxCol}
	t.History = append(t.History, interpolateFilledHistory(lastBox, revivedBox, lastFrame, r.frameIndex)...)

	for _, p := range positions {
		r.claim(p, t)
	}
	r.Tracked = append(r.Tracked, t)
}

func (r *Registry) removeDisposed(t *TrackedObject) {
	for i, d := range r.Disposed {
		if d == t {
			r.Disposed = append(r.Disposed[:i], r.Disposed[i+1:]...)
			return
		}
	}
}

// enforceCap drops the least-established tracked objects (smallest
// |Positions|*|History|) once MaxObjects is exceeded, moving them to
// Disposed rather than discarding them outright.
func (r *Registry) enforceCap() {
	for len(r.Tracked) > r.cfg.MaxObjects {
		worst := 0
		worstScore := len(r.Tracked[0].Positions) * len(r.Tracked[0].History)
		for i, t := range r.Tracked {
			score := len(t.Positions) * len(t.History)
			if score < worstScore {
				worst, worstScore = i, score
			}
		}
		dropped := r.Tracked[worst]
		dropped.IsTracked = false
		r.Tracked = append(r.Tracked[:worst], r.Tracked[worst+1:]...)
		r.Disposed = append(r.Disposed, dropped)
	}
}

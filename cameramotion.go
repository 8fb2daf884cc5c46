package soccertrack

// CameraMotionDetector samples pixels on a fixed step grid inside
// terrain and compares them against the previous frame, asserting
// motion when the fraction of substantially-changed samples crosses
// movedThreshold. It is an edge-triggered state machine: JustStopped
// fires only on the moving->still transition, and carries whether the
// settled scene differs enough from the last stable frame to warrant a
// terrain reselect + background reset.
type CameraMotionDetector struct {
	Step               int
	PixelChangedThresh float64
	MovedThreshold      float64

	wasMoving  bool
	lastStable Frame
	hasStable  bool
}

// NewCameraMotionDetector applies the documented defaults when step,
// pixelChangedThresh or movedThreshold are non-positive/zero.
func NewCameraMotionDetector(step int, pixelChangedThresh, movedThreshold float64) *CameraMotionDetector {
	if step <= 0 {
		step = 20
	}
	if pixelChangedThresh <= 0 {
		pixelChangedThresh = 5.0
	}
	if movedThreshold <= 0 {
		movedThreshold = 0.2
	}
	return &CameraMotionDetector{Step: step, PixelChangedThresh: pixelChangedThresh, MovedThreshold: movedThreshold}
}

// MotionResult is the per-frame outcome of CameraMotionDetector.Observe.
type MotionResult struct {
	Moving           bool
	JustStopped      bool
	SceneChanged     bool
	RequestsReselect bool
}

// Observe samples frame against prev on the configured grid, restricted
// to terrain, and advances the edge-triggered state machine.
func (d *CameraMotionDetector) Observe(frame Frame, prev *Frame, terrain TerrainMask) MotionResult {
	if prev == nil {
		d.wasMoving = false
		return MotionResult{}
	}

	sampled, changed := 0, 0
	rows, cols := frame.Rows(), frame.Cols()
	for i := 0; i < rows; i += d.Step {
		for j := 0; j < cols; j += d.Step {
			if !terrain.Contains(i, j) {
				continue
			}
			sampled++
			px := frame.GetVecbAt(i, j)
			prevPx := prev.GetVecbAt(i, j)
			db := absInt(int(px[0]) - int(prevPx[0]))
			dg := absInt(int(px[1]) - int(prevPx[1]))
			dr := absInt(int(px[2]) - int(prevPx[2]))
			if float64(maxInt(db, dg, dr)) > d.PixelChangedThresh {
				changed++
			}
		}
	}

	moving := sampled > 0 && float64(changed)/float64(sampled) > d.MovedThreshold

	result := MotionResult{Moving: moving}
	if d.wasMoving && !moving {
		result.JustStopped = true
		result.SceneChanged = d.sceneDiffersFromStable(frame, terrain)
		result.RequestsReselect = result.SceneChanged
	}
	d.wasMoving = moving

	if !moving {
		d.setStable(frame)
	}
	return result
}

// sceneDiffersFromStable compares frame against the last frame recorded
// as stable (pre-motion), using the same grid criterion as Observe.
func (d *CameraMotionDetector) sceneDiffersFromStable(frame Frame, terrain TerrainMask) bool {
	if !d.hasStable {
		return false
	}
	sampled, changed := 0, 0
	rows, cols := frame.Rows(), frame.Cols()
	for i := 0; i < rows; i += d.Step {
		for j := 0; j < cols; j += d.Step {
			if !terrain.Contains(i, j) {
				continue
			}
			sampled++
			px := frame.GetVecbAt(i, j)
			stablePx := d.lastStable.GetVecbAt(i, j)
			db := absInt(int(px[0]) - int(stablePx[0]))
			dg := absInt(int(px[1]) - int(stablePx[1]))
			dr := absInt(int(px[2]) - int(stablePx[2]))
			if float64(maxInt(db, dg, dr)) > d.PixelChangedThresh {
				changed++
			}
		}
	}
	return sampled > 0 && float64(changed)/float64(sampled) > d.MovedThreshold
}

func (d *CameraMotionDetector) setStable(frame Frame) {
	if d.hasStable {
		d.lastStable.Close()
	}
	d.lastStable = frame.Clone()
	d.hasStable = true
}

// Close releases the detector's retained stable-frame clone.
func (d *CameraMotionDetector) Close() {
	if d.hasStable {
		d.lastStable.Close()
		d.hasStable = false
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// maxInt returns the largest of a, b, c, matching the original
// per-channel difference test (any single channel crossing the
// threshold flags the pixel, not the sum across channels).
func maxInt(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

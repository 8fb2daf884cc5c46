package soccertrack

import "gocv.io/x/gocv"

type bgPixel = [3]uint8

// BackgroundModel is a sliding ring buffer of the last N green-mask
// classifications, with per-pixel running sums, counts and
// "untouched" streaks, producing a pixel-wise mean background of the
// field. See Add/remove for the eviction-salvage policy that keeps
// stable-but-rare field pixels in the model.
type BackgroundModel struct {
	capacity     int
	model        FieldColorModel
	prevSizeThr  float64
	yAligned     bool
	minimumSize  int
	untouchedTTL int

	rows, cols int
	images     [][][]bgPixel // ring slot -> rows x cols BGR
	flags      [][][]bool    // ring slot -> rows x cols green-mask

	sum            [][][3]float64
	count          [][]int
	untouchedCount [][]int

	size        int
	start       int
	newPosition int

	minRow, maxRow, minCol, maxCol int
}

// NewBackgroundModel creates an empty ring buffer of capacity slots.
// minimumSize and untouchedTTL default to 3 and 30 when <= 0, matching
// the driver's documented defaults.
func NewBackgroundModel(capacity int, model FieldColorModel, previousSizeThreshold float64, yAligned bool, minimumSize, untouchedTTL int) *BackgroundModel {
	if minimumSize <= 0 {
		minimumSize = 3
	}
	if untouchedTTL <= 0 {
		untouchedTTL = 30
	}
	return &BackgroundModel{
		capacity:     capacity,
		model:        model,
		prevSizeThr:  previousSizeThreshold,
		yAligned:     yAligned,
		minimumSize:  minimumSize,
		untouchedTTL: untouchedTTL,
		minRow:       -1, maxRow: -1, minCol: -1, maxCol: -1,
	}
}

// Ready reports whether the model has at least one contribution.
// Pipeline consults this before running segmentation
// (ErrModelNotReady otherwise).
func (bm *BackgroundModel) Ready() bool { return bm.size > 0 }

// Bounds returns the tight bounding rectangle enclosing every pixel
// with count > 0, or ok=false if the model has no contributions yet.
func (bm *BackgroundModel) Bounds() (minRow, maxRow, minCol, maxCol int, ok bool) {
	if bm.minRow < 0 {
		return 0, 0, 0, 0, false
	}
	return bm.minRow, bm.maxRow, bm.minCol, bm.maxCol, true
}

func (bm *BackgroundModel) ensureAllocated(rows, cols int) {
	if bm.rows != 0 {
		return
	}
	bm.rows, bm.cols = rows, cols
	bm.images = make([][][]bgPixel, bm.capacity)
	bm.flags = make([][][]bool, bm.capacity)
	bm.sum = make([][][3]float64, rows)
	bm.count = make([][]int, rows)
	bm.untouchedCount = make([][]int, rows)
	for i := 0; i < rows; i++ {
		bm.sum[i] = make([][3]float64, cols)
		bm.count[i] = make([]int, cols)
		bm.untouchedCount[i] = make([]int, cols)
	}
}

func newPixelGrid(rows, cols int) [][]bgPixel {
	grid := make([][]bgPixel, rows)
	for i := range grid {
		grid[i] = make([]bgPixel, cols)
	}
	return grid
}

// Add copies frame into the ring, evicting the oldest slot first if
// the buffer is full, then folds frame's green-mask into the running
// sums, counts and untouched streaks.
func (bm *BackgroundModel) Add(frame Frame) {
	rows, cols := frame.Rows(), frame.Cols()
	bm.ensureAllocated(rows, cols)

	if bm.size == bm.capacity {
		bm.remove()
	}

	bm.minRow, bm.maxRow, bm.minCol, bm.maxCol = -1, -1, -1, -1

	slot := bm.newPosition
	img := newPixelGrid(rows, cols)
	mask := GreenMask(frame, bm.model, bm.prevSizeThr, bm.yAligned)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			px := frame.GetVecbAt(i, j)
			img[i][j] = bgPixel{px[0], px[1], px[2]}
			if mask[i][j] {
				bm.count[i][j]++
				bm.untouchedCount[i][j] = 0
				bm.sum[i][j][0] += float64(px[0])
				bm.sum[i][j][1] += float64(px[1])
				bm.sum[i][j][2] += float64(px[2])
			} else {
				bm.untouchedCount[i][j]++
			}
			bm.touchBounds(i, j, bm.count[i][j])
		}
	}

	bm.images[slot] = img
	bm.flags[slot] = mask
	bm.newPosition = (bm.newPosition + 1) % bm.capacity
	bm.size++
}

// remove evicts the oldest ring slot. A pixel the slot marked
// field-green is either truly removed (its contribution subtracted)
// or, if it is both rarely-counted and long-untouched elsewhere,
// migrated ("salvaged") into the first newer slot that did not mark
// it, preserving its contribution to count/sum.
func (bm *BackgroundModel) remove() {
	if bm.size == 0 {
		return
	}

	bm.minRow, bm.maxRow, bm.minCol, bm.maxCol = -1, -1, -1, -1
	oldest := bm.start
	oldImg := bm.images[oldest]
	oldFlag := bm.flags[oldest]

	for i := 0; i < bm.rows; i++ {
		for j := 0; j < bm.cols; j++ {
			if oldFlag[i][j] {
				doRemove := true
				if bm.count[i][j] <= bm.minimumSize && bm.untouchedCount[i][j] > bm.untouchedTTL {
					for fi := 0; fi < bm.size; fi++ {
						slot := (bm.newPosition + bm.capacity - fi - 1) % bm.capacity
						if slot == oldest {
							break
						}
						if !bm.flags[slot][i][j] {
							bm.images[slot][i][j] = oldImg[i][j]
							bm.flags[slot][i][j] = true
							doRemove = false
							break
						}
					}
				}
				if doRemove {
					bm.count[i][j]--
					bm.sum[i][j][0] -= float64(oldImg[i][j][0])
					bm.sum[i][j][1] -= float64(oldImg[i][j][1])
					bm.sum[i][j][2] -= float64(oldImg[i][j][2])
				}
			}
			bm.touchBounds(i, j, bm.count[i][j])
		}
	}

	bm.images[oldest] = nil
	bm.flags[oldest] = nil
	bm.start = (bm.start + 1) % bm.capacity
	bm.size--
}

func (bm *BackgroundModel) touchBounds(row, col, count int) {
	if count <= 0 {
		return
	}
	if bm.minRow < 0 {
		bm.minRow, bm.maxRow, bm.minCol, bm.maxCol = row, row, col, col
		return
	}
	if row < bm.minRow {
		bm.minRow = row
	}
	if row > bm.maxRow {
		bm.maxRow = row
	}
	if col < bm.minCol {
		bm.minCol = col
	}
	if col > bm.maxCol {
		bm.maxCol = col
	}
}

// Background emits sum[i,j]/count[i,j] where count > 0, black
// elsewhere.
func (bm *BackgroundModel) Background() Frame {
	out := gocv.NewMatWithSize(bm.rows, bm.cols, gocv.MatTypeCV8UC3)
	for i := 0; i < bm.rows; i++ {
		for j := 0; j < bm.cols; j++ {
			if bm.count[i][j] <= 0 {
				continue
			}
			c := float64(bm.count[i][j])
			out.SetUCharAt(i, j*3, uint8(bm.sum[i][j][0]/c))
			out.SetUCharAt(i, j*3+1, uint8(bm.sum[i][j][1]/c))
			out.SetUCharAt(i, j*3+2, uint8(bm.sum[i][j][2]/c))
		}
	}
	return out
}

// Clear zeros sums, counts and untouched counters and marks the
// buffer empty. clear(); clear() is idempotent.
func (bm *BackgroundModel) Clear() {
	bm.size = 0
	bm.start = 0
	bm.newPosition = 0
	bm.minRow, bm.maxRow, bm.minCol, bm.maxCol = -1, -1, -1, -1
	for i := 0; i < bm.rows; i++ {
		for j := 0; j < bm.cols; j++ {
			bm.count[i][j] = 0
			bm.untouchedCount[i][j] = 0
			bm.sum[i][j] = [3]float64{}
		}
	}
	for s := range bm.images {
		bm.images[s] = nil
		bm.flags[s] = nil
	}
}

// Size returns the number of frames currently held in the ring.
func (bm *BackgroundModel) Size() int { return bm.size }

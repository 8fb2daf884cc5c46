package soccertrack

import (
	"testing"

	"gocv.io/x/gocv"
)

func greenFrame(rows, cols int) Frame {
	frame := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC3)
	fillFrame(&frame, 30, 60, 30)
	return frame
}

func TestBackgroundModel_SizeGrowsToCapacity(t *testing.T) {
	bm := NewBackgroundModel(5, defaultFieldModel(), 2.0, false, 3, 30)
	for i := 0; i < 5; i++ {
		f := greenFrame(10, 10)
		bm.Add(f)
		f.Close()
	}
	if bm.Size() != 5 {
		t.Errorf("expected size 5 after 5 adds into a capacity-5 ring, got %d", bm.Size())
	}

	f := greenFrame(10, 10)
	bm.Add(f)
	f.Close()
	if bm.Size() != 5 {
		t.Errorf("expected size capped at capacity, got %d", bm.Size())
	}
}

func TestBackgroundModel_UniformFieldCountMatchesAdds(t *testing.T) {
	bm := NewBackgroundModel(3, defaultFieldModel(), 2.0, false, 3, 30)
	for i := 0; i < 3; i++ {
		f := greenFrame(5, 5)
		bm.Add(f)
		f.Close()
	}
	if bm.count[2][2] != 3 {
		t.Errorf("expected count 3 for a pixel classified green in all 3 adds, got %d", bm.count[2][2])
	}
}

func TestBackgroundModel_BackgroundConvergesToUniformColor(t *testing.T) {
	bm := NewBackgroundModel(5, defaultFieldModel(), 2.0, false, 3, 30)
	for i := 0; i < 5; i++ {
		f := greenFrame(10, 10)
		bm.Add(f)
		f.Close()
	}

	bg := bm.Background()
	defer bg.Close()
	px := bg.GetVecbAt(5, 5)
	if px[0] != 30 || px[1] != 60 || px[2] != 30 {
		t.Errorf("expected background to converge to (30,60,30), got %v", px)
	}
}

func TestBackgroundModel_ClearResetsCountsAndSize(t *testing.T) {
	bm := NewBackgroundModel(3, defaultFieldModel(), 2.0, false, 3, 30)
	for i := 0; i < 3; i++ {
		f := greenFrame(5, 5)
		bm.Add(f)
		f.Close()
	}
	bm.Clear()

	if bm.Size() != 0 {
		t.Errorf("expected size 0 after Clear, got %d", bm.Size())
	}
	for i := 0; i < bm.rows; i++ {
		for j := 0; j < bm.cols; j++ {
			if bm.count[i][j] != 0 {
				t.Fatalf("expected count to be zeroed at (%d,%d), got %d", i, j, bm.count[i][j])
			}
		}
	}
	if bm.Ready() {
		t.Errorf("expected Ready() to be false immediately after Clear")
	}
}

func TestBackgroundModel_ClearIsIdempotent(t *testing.T) {
	bm := NewBackgroundModel(3, defaultFieldModel(), 2.0, false, 3, 30)
	f := greenFrame(5, 5)
	bm.Add(f)
	f.Close()

	bm.Clear()
	bm.Clear()
	if bm.Size() != 0 {
		t.Errorf("expected repeated Clear to remain at size 0")
	}
}

func TestBackgroundModel_NotReadyBeforeFirstAdd(t *testing.T) {
	bm := NewBackgroundModel(3, defaultFieldModel(), 2.0, false, 3, 30)
	if bm.Ready() {
		t.Errorf("expected a fresh model to not be ready")
	}
}

func TestBackgroundModel_BoundsTightlyEnclosesCountedPixels(t *testing.T) {
	bm := NewBackgroundModel(2, defaultFieldModel(), 2.0, false, 3, 30)
	f := gocv.NewMatWithSize(10, 10, gocv.MatTypeCV8UC3)
	fillFrame(&f, 200, 200, 200) // non-field everywhere
	// A single green patch away from the edges.
	for i := 3; i <= 5; i++ {
		for j := 3; j <= 5; j++ {
			setPixel(&f, i, j, 30, 60, 30)
		}
	}
	bm.Add(f)
	f.Close()

	minRow, maxRow, minCol, maxCol, ok := bm.Bounds()
	if !ok {
		t.Fatalf("expected bounds to be valid after a contributing add")
	}
	if minRow > 3 || maxRow < 5 || minCol > 3 || maxCol < 5 {
		t.Errorf("expected bounds to enclose the green patch, got (%d,%d,%d,%d)", minRow, maxRow, minCol, maxCol)
	}
}

package drawing

import (
	"testing"

	"gocv.io/x/gocv"

	"github.com/tkeesh/soccertrack"
	"github.com/tkeesh/soccertrack/color"
)

func box(minRow, minCol, maxRow, maxCol int, flags soccertrack.TypeFlags) soccertrack.BoundingBox {
	return soccertrack.BoundingBox{
		MinRow: minRow, MaxRow: maxRow,
		MinCol: minCol, MaxCol: maxCol,
		TypeFlags: flags,
	}
}

func TestDrawBoundingBoxes_EmptyIsNoop(t *testing.T) {
	frame := gocv.NewMatWithSize(100, 100, gocv.MatTypeCV8UC3)
	defer frame.Close()

	result := DrawBoundingBoxes(&frame, nil, nil, 0)
	if result != &frame {
		t.Fatalf("expected the same frame pointer back")
	}
	px := frame.GetVecbAt(50, 50)
	if px[0] != 0 || px[1] != 0 || px[2] != 0 {
		t.Errorf("expected untouched frame, found drawn pixel %v", px)
	}
}

func TestDrawBoundingBoxes_DrawsPixels(t *testing.T) {
	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	entries := []Entry{
		{ID: 1, Box: box(100, 100, 200, 200, soccertrack.Normal)},
		{ID: 2, Box: box(50, 50, 90, 90, soccertrack.PushedOut)},
	}

	DrawBoundingBoxes(&frame, entries, nil, 2)

	px := frame.GetVecbAt(100, 100)
	if px[0] == 0 && px[1] == 0 && px[2] == 0 {
		t.Errorf("expected box outline pixel at the top-left corner to be drawn")
	}
}

func TestDrawBoundingBoxes_AutoThickness(t *testing.T) {
	frame := gocv.NewMatWithSize(1080, 1920, gocv.MatTypeCV8UC3)
	defer frame.Close()

	entries := []Entry{{ID: 7, Box: box(10, 10, 60, 60, soccertrack.Normal)}}

	// thickness <= 0 should auto-scale rather than panic
	DrawBoundingBoxes(&frame, entries, nil, 0)

	px := frame.GetVecbAt(10, 10)
	if px[0] == 0 && px[1] == 0 && px[2] == 0 {
		t.Errorf("expected auto-scaled thickness to still draw something")
	}
}

func TestDrawBoundingBoxes_TeamLabelDoesNotPanic(t *testing.T) {
	frame := gocv.NewMatWithSize(200, 200, gocv.MatTypeCV8UC3)
	defer frame.Close()

	entries := []Entry{
		{ID: 3, Box: box(20, 20, 80, 80, soccertrack.Normal), Team: 1, TeamKnown: true},
	}

	DrawBoundingBoxes(&frame, entries, NewPalette(nil), 1)
}

func TestBoxStyle_PushedOutAlwaysRed(t *testing.T) {
	col, _ := boxStyle(color.Green, soccertrack.PushedOut, 3)
	if col != color.Red {
		t.Errorf("expected PushedOut to force red, got %+v", col)
	}
}

func TestBoxStyle_PusherIsBolder(t *testing.T) {
	base := color.Green
	_, th := boxStyle(base, soccertrack.Pusher, 3)
	if th <= 3 {
		t.Errorf("expected Pusher thickness to exceed base, got %d", th)
	}
}

func TestBoxStyle_FilledIsThinner(t *testing.T) {
	base := color.Green
	_, th := boxStyle(base, soccertrack.Filled, 3)
	if th >= 3 {
		t.Errorf("expected Filled thickness to be reduced, got %d", th)
	}
}

func TestBoxStyle_NormalUnchanged(t *testing.T) {
	base := color.Green
	col, th := boxStyle(base, soccertrack.Normal, 3)
	if col != base || th != 3 {
		t.Errorf("expected Normal to pass base color/thickness through unchanged, got %+v/%d", col, th)
	}
}

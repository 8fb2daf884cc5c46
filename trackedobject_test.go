package soccertrack

import "testing"

func TestTrackedObject_MeanPositionBoundaryCaseWhenEmpty(t *testing.T) {
	obj := NewTrackedObject(1, nil, 0)
	frame := greenFrame(5, 5)
	defer frame.Close()

	obj.ComputeMeanPositionAndColor(frame)

	if obj.MeanPosition != (Position{Row: -1, Col: -1}) {
		t.Errorf("expected mean position (-1,-1) for an empty object, got %+v", obj.MeanPosition)
	}
	if obj.MeanColor.B != 0 || obj.MeanColor.G != 0 || obj.MeanColor.R != 0 {
		t.Errorf("expected mean color (0,0,0) for an empty object, got %+v", obj.MeanColor)
	}
}

func TestTrackedObject_ComputeMeanPositionAndColor(t *testing.T) {
	frame := greenFrame(10, 10)
	defer frame.Close()

	obj := NewTrackedObject(1, []Position{{Row: 2, Col: 2}, {Row: 4, Col: 4}}, 0)
	obj.ComputeMeanPositionAndColor(frame)

	if obj.MeanPosition != (Position{Row: 3, Col: 3}) {
		t.Errorf("expected mean position (3,3), got %+v", obj.MeanPosition)
	}
	if obj.MeanColor.B != 30 || obj.MeanColor.G != 60 || obj.MeanColor.R != 30 {
		t.Errorf("expected mean color (30,60,30), got %+v", obj.MeanColor)
	}
}

func TestTrackedObject_PushOutConsistency(t *testing.T) {
	a := NewTrackedObject(1, nil, 0)
	b := NewTrackedObject(2, nil, 0)

	a.SetPushedOutBySmartly(b)

	if a.PushedOutBy != b {
		t.Fatalf("expected a.PushedOutBy == b")
	}
	if !b.PushedOutGroups[a] {
		t.Fatalf("expected b.PushedOutGroups to contain a")
	}
}

func TestTrackedObject_PushOutReassignmentSeversOldEdge(t *testing.T) {
	a := NewTrackedObject(1, nil, 0)
	b := NewTrackedObject(2, nil, 0)
	c := NewTrackedObject(3, nil, 0)

	a.SetPushedOutBySmartly(b)
	a.SetPushedOutBySmartly(c)

	if b.PushedOutGroups[a] {
		t.Errorf("expected b's reverse edge to a to be severed after reassignment")
	}
	if !c.PushedOutGroups[a] {
		t.Errorf("expected c's reverse edge to a to be set")
	}
}

func TestTrackedObject_ClearPushedOutGroupsSmartlySeversBothSides(t *testing.T) {
	a := NewTrackedObject(1, nil, 0)
	b := NewTrackedObject(2, nil, 0)
	a.SetPushedOutBySmartly(b)

	b.ClearPushedOutGroupsSmartly()

	if a.PushedOutBy != nil {
		t.Errorf("expected a.PushedOutBy to be cleared")
	}
	if len(b.PushedOutGroups) != 0 {
		t.Errorf("expected b.PushedOutGroups to be empty")
	}
}

func TestTrackedObject_SizeShrinkedLatelyDetectsPastLargerArea(t *testing.T) {
	obj := NewTrackedObject(1, nil, 0)
	obj.History = []BoundingBox{
		{MinRow: 0, MaxRow: 19, MinCol: 0, MaxCol: 19}, // area 400
		{MinRow: 0, MaxRow: 9, MinCol: 0, MaxCol: 9},   // area 100 (current)
	}
	if !obj.SizeShrinkedLately(50) {
		t.Errorf("expected shrink detection when a past area is >= 1.5x current")
	}
}

func TestTrackedObject_SizeShrinkedLatelyFalseWhenStable(t *testing.T) {
	obj := NewTrackedObject(1, nil, 0)
	obj.History = []BoundingBox{
		{MinRow: 0, MaxRow: 9, MinCol: 0, MaxCol: 9},
		{MinRow: 0, MaxRow: 9, MinCol: 0, MaxCol: 9},
	}
	if obj.SizeShrinkedLately(50) {
		t.Errorf("expected no shrink detection for a stable-size history")
	}
}

func TestTrackedObject_EstimatedSpeedAveragesDisplacement(t *testing.T) {
	obj := NewTrackedObject(1, nil, 0)
	obj.History = []BoundingBox{
		{MinRow: 0, MaxRow: 9, MinCol: 0, MaxCol: 9},   // top-center (9,4)
		{MinRow: 0, MaxRow: 9, MinCol: 4, MaxCol: 13},  // top-center (9,8)
		{MinRow: 0, MaxRow: 9, MinCol: 8, MaxCol: 17},  // top-center (9,12)
	}
	speed := obj.EstimatedSpeed(10)
	if speed < 3.9 || speed > 4.1 {
		t.Errorf("expected speed ~4.0, got %v", speed)
	}
}

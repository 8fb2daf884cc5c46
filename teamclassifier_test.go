package soccertrack

import (
	"testing"

	colorpkg "github.com/tkeesh/soccertrack/color"
)

func TestTeamClassifier_DiscardsSmallContours(t *testing.T) {
	tc := NewTeamClassifier(TeamSeeds{})
	big := Component{Positions: []Position{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}, {1, 3}}}
	tiny := Component{Positions: []Position{{5, 5}}}

	frame := greenFrame(10, 10)
	defer frame.Close()

	teams := tc.Classify([]Component{big, tiny}, frame)
	if teams[1] != -1 {
		t.Errorf("expected the tiny contour to be discarded, got team %d", teams[1])
	}
}

func TestTeamClassifier_CornerSeedsAssignByContainment(t *testing.T) {
	seeds := TeamSeeds{
		Team0ContourSeed: Position{Row: 1, Col: 1},
		Team3ContourSeed: Position{Row: 5, Col: 5},
	}
	tc := NewTeamClassifier(seeds)

	comp0 := Component{Positions: []Position{{1, 1}, {1, 2}, {2, 1}, {2, 2}}}
	comp3 := Component{Positions: []Position{{5, 5}, {5, 6}, {6, 5}, {6, 6}}}

	frame := greenFrame(10, 10)
	defer frame.Close()

	teams := tc.Classify([]Component{comp0, comp3}, frame)
	if teams[0] != 0 {
		t.Errorf("expected team0 seed's contour to be assigned team 0, got %d", teams[0])
	}
	if teams[1] != 3 {
		t.Errorf("expected team3 seed's contour to be assigned team 3, got %d", teams[1])
	}
}

func TestTeamClassifier_MiddleTeamsVoteByColorMatch(t *testing.T) {
	seeds := TeamSeeds{
		Team1ColorSeed: colorpkg.Color{B: 200, G: 0, R: 0},
		Team2ColorSeed: colorpkg.Color{B: 0, G: 0, R: 200},
	}
	tc := NewTeamClassifier(seeds)

	frame := greenFrame(10, 10)
	defer frame.Close()
	for _, p := range []Position{{3, 3}, {3, 4}, {4, 3}, {4, 4}} {
		setPixel(&frame, p.Row, p.Col, 200, 0, 0)
	}
	comp := Component{Positions: []Position{{3, 3}, {3, 4}, {4, 3}, {4, 4}}}

	teams := tc.Classify([]Component{comp}, frame)
	if teams[0] != 1 {
		t.Errorf("expected the blue-matching contour to be assigned team 1, got %d", teams[0])
	}
}

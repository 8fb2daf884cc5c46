package soccertrack

import (
	colorpkg "github.com/tkeesh/soccertrack/color"
)

// TeamSeeds is the 4-point team selection from §6's external interface:
// order [team0_contour_seed, team1_color_seed, team2_color_seed,
// team3_contour_seed].
type TeamSeeds struct {
	Team0ContourSeed Position
	Team1ColorSeed   colorpkg.Color
	Team2ColorSeed   colorpkg.Color
	Team3ContourSeed Position
}

// TeamClassifier assigns one of four team ids (0-3) to each of a set
// of components, per spec §4.8.
type TeamClassifier struct {
	Seeds TeamSeeds
}

// NewTeamClassifier constructs a TeamClassifier from seeds.
func NewTeamClassifier(seeds TeamSeeds) TeamClassifier {
	return TeamClassifier{Seeds: seeds}
}

func componentArea(c Component) int {
	return len(c.Positions)
}

func containsPosition(c Component, p Position) bool {
	for _, q := range c.Positions {
		if q == p {
			return true
		}
	}
	return false
}

func channelMatch(px [3]uint8, ref colorpkg.Color) bool {
	within := func(v, r uint8) bool {
		lo, hi := int(r)-1, int(r)+1
		return int(v) >= lo && int(v) <= hi
	}
	return within(px[0], ref.B) && within(px[1], ref.G) && within(px[2], ref.R)
}

// Classify returns one team id per component in components (-1 for
// components discarded as too small, per step 1). Components not
// containing either contour seed are assigned by step 4's color vote
// between Team1ColorSeed and Team2ColorSeed.
func (tc TeamClassifier) Classify(components []Component, frame Frame) []int {
	teams := make([]int, len(components))
	if len(components) == 0 {
		return teams
	}

	totalArea := 0
	for _, c := range components {
		totalArea += componentArea(c)
	}
	meanArea := float64(totalArea) / float64(len(components))
	threshold := 0.5 * meanArea

	for i, c := range components {
		if float64(componentArea(c)) < threshold {
			teams[i] = -1
			continue
		}

		if containsPosition(c, tc.Seeds.Team0ContourSeed) {
			teams[i] = 0
			continue
		}
		if containsPosition(c, tc.Seeds.Team3ContourSeed) {
			teams[i] = 3
			continue
		}

		count1, count2 := 0, 0
		for _, p := range c.Positions {
			px := frame.GetVecbAt(p.Row, p.Col)
			bgr := [3]uint8{px[0], px[1], px[2]}
			if channelMatch(bgr, tc.Seeds.Team1ColorSeed) {
				count1++
			}
			if channelMatch(bgr, tc.Seeds.Team2ColorSeed) {
				count2++
			}
		}
		if count1 >= count2 {
			teams[i] = 1
		} else {
			teams[i] = 2
		}
	}
	return teams
}

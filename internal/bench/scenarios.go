// Package bench holds the standard regression scenarios: opening,
// midgame, and late_midgame board positions used by both the benchmark
// driver and the engine's own tests.
package bench

import (
	"github.com/distantforge/gomoku/internal/board"
	"github.com/distantforge/gomoku/internal/rules"
)

// Scenario is a named, fully-specified starting position for a
// benchmark run or a regression test.
type Scenario struct {
	Key                string
	Description        string
	NextPlayer         board.Player
	Goal               int
	EnableCapture      bool
	EnableDoubleThree  bool
	Player1Stones      []board.Coord
	Player2Stones      []board.Coord
}

// Scenarios returns the three standard scenarios in a fixed order:
// opening, midgame, late_midgame.
func Scenarios() []Scenario {
	return []Scenario{openingScenario(), midgameScenario(), lateMidgameScenario()}
}

// Board constructs a fresh, rules-wired Board for s, with every stone
// placed via SetCell and the hash recomputed from scratch (mirroring how
// a session handler would reconstruct a Board from a wire snapshot).
func (s Scenario) Board() *board.Board {
	b := board.NewBoard(rules.New())
	b.Goal = s.Goal
	b.CaptureEnabled = s.EnableCapture
	b.DoubleThreeEnabled = s.EnableDoubleThree

	for _, c := range s.Player1Stones {
		b.SetCell(c.X, c.Y, board.Player1)
	}
	for _, c := range s.Player2Stones {
		b.SetCell(c.X, c.Y, board.Player2)
	}

	b.NextPlayer = s.NextPlayer
	b.LastPlayer = s.NextPlayer.Other()
	b.RecomputeHash()
	return b
}

func openingScenario() Scenario {
	return Scenario{
		Key:               "opening",
		Description:       "Opening/mildly tactical center fight",
		NextPlayer:        board.Player1,
		Goal:              5,
		EnableCapture:     true,
		EnableDoubleThree: true,
		Player1Stones: []board.Coord{
			{X: 9, Y: 9}, {X: 12, Y: 11}, {X: 7, Y: 13},
			{X: 5, Y: 8}, {X: 14, Y: 6}, {X: 10, Y: 4},
		},
		Player2Stones: []board.Coord{
			{X: 10, Y: 10}, {X: 8, Y: 12}, {X: 13, Y: 7},
			{X: 6, Y: 9}, {X: 11, Y: 5}, {X: 4, Y: 11},
		},
	}
}

func midgameScenario() Scenario {
	return Scenario{
		Key:               "midgame",
		Description:       "Midgame with overlapping attack/block lines",
		NextPlayer:        board.Player1,
		Goal:              5,
		EnableCapture:     true,
		EnableDoubleThree: true,
		Player1Stones: []board.Coord{
			{X: 9, Y: 9}, {X: 11, Y: 10}, {X: 7, Y: 11}, {X: 13, Y: 8},
			{X: 6, Y: 6}, {X: 10, Y: 13}, {X: 14, Y: 12}, {X: 5, Y: 10},
			{X: 12, Y: 6}, {X: 8, Y: 14}, {X: 3, Y: 8}, {X: 16, Y: 9},
		},
		Player2Stones: []board.Coord{
			{X: 10, Y: 9}, {X: 12, Y: 10}, {X: 8, Y: 11}, {X: 14, Y: 8},
			{X: 7, Y: 6}, {X: 11, Y: 13}, {X: 15, Y: 12}, {X: 6, Y: 10},
			{X: 13, Y: 6}, {X: 9, Y: 14}, {X: 4, Y: 8}, {X: 15, Y: 9},
		},
	}
}

func lateMidgameScenario() Scenario {
	return Scenario{
		Key:               "late_midgame",
		Description:       "Dense late-midgame board for deeper pruning pressure",
		NextPlayer:        board.Player1,
		Goal:              5,
		EnableCapture:     true,
		EnableDoubleThree: true,
		Player1Stones: []board.Coord{
			{X: 9, Y: 9}, {X: 11, Y: 10}, {X: 7, Y: 11}, {X: 13, Y: 8},
			{X: 6, Y: 6}, {X: 10, Y: 13}, {X: 14, Y: 12}, {X: 5, Y: 10},
			{X: 12, Y: 6}, {X: 8, Y: 14}, {X: 3, Y: 8}, {X: 16, Y: 9},
			{X: 1, Y: 1}, {X: 3, Y: 3}, {X: 5, Y: 5}, {X: 17, Y: 3},
			{X: 15, Y: 5}, {X: 13, Y: 3}, {X: 2, Y: 16}, {X: 4, Y: 14},
			{X: 6, Y: 16}, {X: 14, Y: 16}, {X: 16, Y: 14}, {X: 12, Y: 17},
		},
		Player2Stones: []board.Coord{
			{X: 10, Y: 9}, {X: 12, Y: 10}, {X: 8, Y: 11}, {X: 14, Y: 8},
			{X: 7, Y: 6}, {X: 11, Y: 13}, {X: 15, Y: 12}, {X: 6, Y: 10},
			{X: 13, Y: 6}, {X: 9, Y: 14}, {X: 4, Y: 8}, {X: 15, Y: 9},
			{X: 2, Y: 1}, {X: 4, Y: 3}, {X: 6, Y: 5}, {X: 16, Y: 3},
			{X: 14, Y: 5}, {X: 12, Y: 3}, {X: 3, Y: 16}, {X: 5, Y: 14},
			{X: 7, Y: 16}, {X: 13, Y: 16}, {X: 15, Y: 14}, {X: 11, Y: 17},
		},
	}
}

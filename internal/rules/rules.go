// Package rules implements win/five detection, capture detection, and
// double-three detection for the board package's Rules contract.
//
// The search core treats this package purely as a black box behind
// board.Rules: it is wired in once, at board construction, and never
// inspected directly by the evaluator, move generator, or search.
package rules

import "github.com/distantforge/gomoku/internal/board"

// axes are the four distinct lines through a cell: horizontal,
// vertical, and the two diagonals. Each axis is walked in both the
// positive and negative direction from the placement.
var axes = [4]board.Coord{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
	{X: 1, Y: -1},
}

// Default is the standard rule set: five-in-a-row (or board.Goal-in-a-row)
// wins, captures are pincer-based, and double-three restricts free
// threes unless the move also captures.
type Default struct{}

// New returns the standard rules implementation.
func New() *Default {
	return &Default{}
}

var _ board.Rules = (*Default)(nil)

// DetectWin reports whether player has a run of at least b.Goal stones
// through (x,y), which is assumed to already hold player's stone.
func (Default) DetectWin(b *board.Board, x, y int, player board.Player) bool {
	goal := b.Goal
	if goal <= 0 {
		goal = 5
	}
	for _, a := range axes {
		count := 1
		cx, cy := x+a.X, y+a.Y
		for b.GetCell(cx, cy) == player {
			count++
			cx += a.X
			cy += a.Y
		}
		cx, cy = x-a.X, y-a.Y
		for b.GetCell(cx, cy) == player {
			count++
			cx -= a.X
			cy -= a.Y
		}
		if count >= goal {
			return true
		}
	}
	return false
}

// DetectCaptureStones applies and returns the pincer captures triggered
// by player placing at (x,y): along each of the 8 compass directions, a
// pattern reading own, opp, opp, own from the placement removes the two
// opponent stones. Captured stones are cleared from the board and also
// staged on it for callers that want to report them later.
func (Default) DetectCaptureStones(b *board.Board, x, y int, player board.Player) []board.CapturedStone {
	captured := capturedPairs(b, x, y, player)
	for _, cs := range captured {
		b.SetCell(cs.X, cs.Y, board.Empty)
	}
	if len(captured) > 0 {
		b.StageCaptures(captured)
	}
	return captured
}

// DetectCaptureStonesNotStore is the non-mutating predicate form, used
// by the move generator to test candidates without committing them.
func (Default) DetectCaptureStonesNotStore(b *board.Board, x, y int, player board.Player) bool {
	return len(capturedPairs(b, x, y, player)) > 0
}

func capturedPairs(b *board.Board, x, y int, player board.Player) []board.CapturedStone {
	opp := player.Other()
	var captured []board.CapturedStone

	for _, d := range board.Directions {
		x1, y1 := x+d.X, y+d.Y
		x2, y2 := x+2*d.X, y+2*d.Y
		x3, y3 := x+3*d.X, y+3*d.Y

		if b.GetCell(x1, y1) != opp || b.GetCell(x2, y2) != opp || b.GetCell(x3, y3) != player {
			continue
		}

		captured = append(captured,
			board.CapturedStone{Coord: board.Coord{X: x1, Y: y1}, Owner: opp},
			board.CapturedStone{Coord: board.Coord{X: x2, Y: y2}, Owner: opp},
		)
	}

	return captured
}

// DetectDoubleThree reports whether placing player at (x,y) would
// create two or more simultaneous open (free) threes: a three that can
// extend to an open four on either side next move.
func (Default) DetectDoubleThree(b *board.Board, x, y int, player board.Player) bool {
	if b.GetCell(x, y) != board.Empty {
		return false
	}

	b.SetCell(x, y, player)
	defer b.SetCell(x, y, board.Empty)

	openThrees := 0
	for _, a := range axes {
		cells := extractAxisWindow(b, x, y, a, player)
		if hasOpenThree(cells) {
			openThrees++
		}
	}
	return openThrees >= 2
}

// extractAxisWindow returns a 7-cell window centered on (x,y) along
// axis a, encoded as 0=empty, 1=own, 2=blocked (opponent or out-of-bounds).
func extractAxisWindow(b *board.Board, x, y int, a board.Coord, player board.Player) [7]int {
	var cells [7]int
	for i := -3; i <= 3; i++ {
		cx, cy := x+a.X*i, y+a.Y*i
		switch b.GetCell(cx, cy) {
		case board.Empty:
			cells[i+3] = 0
		case player:
			cells[i+3] = 1
		default:
			cells[i+3] = 2
		}
	}
	return cells
}

// hasOpenThree matches the window against the canonical free-three
// shapes: a contiguous "_ooo_" or one of the two single-gap shapes
// "_oo_o_" / "_o_oo_", each of which can become an open four in one move.
func hasOpenThree(cells [7]int) bool {
	for s := 0; s <= 2; s++ {
		if matches(cells[:], s, "_ooo_") {
			return true
		}
	}
	for s := 0; s <= 1; s++ {
		if matches(cells[:], s, "_oo_o_") || matches(cells[:], s, "_o_oo_") {
			return true
		}
	}
	return false
}

func matches(cells []int, start int, tmpl string) bool {
	for i := 0; i < len(tmpl); i++ {
		want := 0
		if tmpl[i] == 'o' {
			want = 1
		}
		if cells[start+i] != want {
			return false
		}
	}
	return true
}

package eval

import "github.com/distantforge/gomoku/internal/board"

// Func is the evaluator capability the search is parameterized by,
// the Go equivalent of a pointer-to-function evaluator.
type Func func(b *board.Board, player board.Player, x, y int) int32

// axes are the four line directions the evaluator sums contributions
// across: horizontal, vertical, and the two diagonals.
var axes = [4]board.Coord{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
	{X: 1, Y: -1},
}

// Evaluate is the fast/easy evaluator.
func Evaluate(b *board.Board, player board.Player, x, y int) int32 {
	return evaluate(b, player, x, y, patternScoreTable[:])
}

// EvaluateHard is the slow/strong evaluator.
func EvaluateHard(b *board.Board, player board.Player, x, y int) int32 {
	return evaluate(b, player, x, y, patternScoreTableHard[:])
}

func evaluate(b *board.Board, player board.Player, x, y int, table []int32) int32 {
	var total int32
	centerRel := relativize(b.GetCell(x, y), player)

	for _, a := range axes {
		left := relativizeWindow(b.ExtractLineBits(x, y, -a.X, -a.Y, windowSize), player)
		right := relativizeWindow(b.ExtractLineBits(x, y, a.X, a.Y, windowSize), player)
		pattern := packPattern(left, right, centerRel)
		total += table[pattern]
	}

	return total
}

// relativize translates an absolute board cell value into the
// own/opp/empty/out-of-bounds encoding the pattern table is built over.
func relativize(cell board.Player, player board.Player) int {
	switch cell {
	case board.Empty:
		return relEmpty
	case board.OutOfBounds:
		return relOOB
	case player:
		return relOwn
	default:
		return relOpp
	}
}

// relativizeWindow re-maps a 4-cell packed window (board's absolute
// PLAYER1/PLAYER2/OOB encoding) into the own/opp/empty/OOB encoding.
func relativizeWindow(bits uint32, player board.Player) uint32 {
	var out uint32
	for i := 0; i < windowSize; i++ {
		shift := uint(2 * i)
		cell := board.Player((bits >> shift) & 0x3)
		out |= uint32(relativize(cell, player)) << shift
	}
	return out
}

// ScoreToPercentage maps a raw evaluator score onto [0,100] for display,
// monotonic and saturating at MinimaxTermination.
func ScoreToPercentage(score int32) int {
	if score <= 0 {
		return 0
	}
	if int(score) >= MinimaxTermination {
		return 100
	}
	pct := int(score) * 100 / MinimaxTermination
	if pct > 100 {
		pct = 100
	}
	return pct
}

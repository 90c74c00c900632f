// Package board implements the 19x19 Gomoku-variant board representation
// using per-player bitboards.
package board

import "fmt"

// Size is the edge length of the playing grid.
const Size = 19

// Player identifies a side. Player values double as array indices minus
// one, so Player1 and Player2 are always 1 and 2.
type Player int8

const (
	Empty       Player = 0
	Player1     Player = 1
	Player2     Player = 2
	OutOfBounds Player = 3
)

// Other returns the opposing player. Only valid for Player1/Player2.
func (p Player) Other() Player {
	if p == Player1 {
		return Player2
	}
	if p == Player2 {
		return Player1
	}
	return Empty
}

// idx returns the 0-based index used to address per-player arrays.
func (p Player) idx() int {
	return int(p) - 1
}

// String renders the player using the wire cell encoding.
func (p Player) String() string {
	switch p {
	case Empty:
		return "."
	case Player1:
		return "X"
	case Player2:
		return "O"
	default:
		return "#"
	}
}

// Coord is a zero-based (column, row) position on the grid.
type Coord struct {
	X, Y int
}

// InBounds reports whether c lies on the board.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// CapturedStone records a stone removed from the board by a capture,
// along with the player that owned it.
type CapturedStone struct {
	Coord
	Owner Player
}

// MaxCaptureScore is the highest capture-pair count the Zobrist table
// tracks distinctly; scores are clamped to this for hashing purposes.
const MaxCaptureScore = 7

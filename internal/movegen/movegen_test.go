package movegen

import (
	"testing"

	"github.com/distantforge/gomoku/internal/board"
	"github.com/distantforge/gomoku/internal/rules"
)

func TestCandidatesEmptyBoard(t *testing.T) {
	b := board.NewBoard(rules.New())
	if got := Candidates(b); got != nil {
		t.Fatalf("expected nil candidates on an empty board, got %v", got)
	}
}

func TestCandidatesAreWithinKingMoveAndEmpty(t *testing.T) {
	b := board.NewBoard(rules.New())
	b.SetCell(9, 9, board.Player1)

	cands := Candidates(b)
	if len(cands) == 0 {
		t.Fatalf("expected candidates around a single stone")
	}
	for _, c := range cands {
		if b.GetCell(c.X, c.Y) != board.Empty {
			t.Fatalf("candidate %v is not empty", c)
		}
		dx, dy := c.X-9, c.Y-9
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("candidate %v is not within king-move distance of (9,9)", c)
		}
	}
	// 8 neighbors, all empty.
	if len(cands) != 8 {
		t.Fatalf("expected 8 candidates, got %d", len(cands))
	}
}

func TestCandidatesNeverOccupied(t *testing.T) {
	b := board.NewBoard(rules.New())
	b.SetCell(9, 9, board.Player1)
	b.SetCell(10, 9, board.Player2)

	for _, c := range Candidates(b) {
		if c.X == 9 && c.Y == 9 {
			t.Fatalf("candidate set includes the occupied cell (9,9)")
		}
		if c.X == 10 && c.Y == 9 {
			t.Fatalf("candidate set includes the occupied cell (10,9)")
		}
	}
}

func TestCaptureCandidatesFindsCapturingMove(t *testing.T) {
	b := board.NewBoard(rules.New())
	b.CaptureEnabled = true
	b.SetCell(5, 5, board.Player1)
	b.SetCell(6, 5, board.Player2)
	b.SetCell(7, 5, board.Player2)

	caps := CaptureCandidates(b, board.Player1)
	found := false
	for _, c := range caps {
		if c.X == 8 && c.Y == 5 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected (8,5) among capture candidates, got %v", caps)
	}
}

// walkCount recursively counts leaf positions reached by exhausting
// Candidates at each ply, a move-count sanity walk adapted from "legal
// chess moves" to "king-move candidates". It also asserts the board is
// bit-identical after each subtree.
func walkCount(t *testing.T, b *board.Board, depth int) int64 {
	t.Helper()
	if depth == 0 {
		return 1
	}

	cands := CandidatesFiltered(b, b.NextPlayer, b.DoubleThreeEnabled)
	var nodes int64
	for _, c := range cands {
		beforeHash := b.GetHash()
		beforeScores := b.Scores
		undo := b.MakeMove(c.X, c.Y)
		nodes += walkCount(t, b, depth-1)
		b.UndoMove(undo)
		if b.GetHash() != beforeHash || b.Scores != beforeScores {
			t.Fatalf("board not bit-identical after make/undo at %v, depth %d", c, depth)
		}
	}
	return nodes
}

func TestWalkCountRoundTripsBoardState(t *testing.T) {
	b := board.NewBoard(rules.New())
	b.CaptureEnabled = true
	b.SetCell(9, 9, board.Player1)
	b.SetCell(10, 10, board.Player2)
	b.RecomputeHash()

	nodes := walkCount(t, b, 2)
	if nodes == 0 {
		t.Fatalf("expected at least one reachable leaf from a non-empty board")
	}
}

func TestCandidatesFilteredDropsDoubleThreeUnlessCapturing(t *testing.T) {
	b := board.NewBoard(rules.New())
	b.DoubleThreeEnabled = true
	b.SetCell(8, 9, board.Player1)
	b.SetCell(10, 9, board.Player1)
	b.SetCell(9, 8, board.Player1)
	b.SetCell(9, 10, board.Player1)

	filtered := CandidatesFiltered(b, board.Player1, true)
	for _, c := range filtered {
		if c.X == 9 && c.Y == 9 {
			t.Fatalf("expected (9,9) to be filtered out as a double-three with no capture")
		}
	}

	unfiltered := CandidatesFiltered(b, board.Player1, false)
	found := false
	for _, c := range unfiltered {
		if c.X == 9 && c.Y == 9 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected (9,9) present when double-three restriction is disabled")
	}
}

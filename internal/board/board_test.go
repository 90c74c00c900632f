package board

import "testing"

// pincerRules is a minimal Rules stub exercising only the capture
// pincer pattern, so board_test.go can verify MakeMove/UndoMove without
// importing the rules package (which imports board, and would cycle).
type pincerRules struct{}

func (pincerRules) DetectWin(*Board, int, int, Player) bool { return false }

func (pincerRules) DetectCaptureStones(b *Board, x, y int, player Player) []CapturedStone {
	opp := player.Other()
	var captured []CapturedStone
	for _, d := range Directions {
		x1, y1 := x+d.X, y+d.Y
		x2, y2 := x+2*d.X, y+2*d.Y
		x3, y3 := x+3*d.X, y+3*d.Y
		if b.GetCell(x1, y1) != opp || b.GetCell(x2, y2) != opp || b.GetCell(x3, y3) != player {
			continue
		}
		captured = append(captured,
			CapturedStone{Coord: Coord{X: x1, Y: y1}, Owner: opp},
			CapturedStone{Coord: Coord{X: x2, Y: y2}, Owner: opp},
		)
		b.SetCell(x1, y1, Empty)
		b.SetCell(x2, y2, Empty)
	}
	return captured
}

func (r pincerRules) DetectCaptureStonesNotStore(b *Board, x, y int, player Player) bool {
	opp := player.Other()
	for _, d := range Directions {
		x1, y1 := x+d.X, y+d.Y
		x2, y2 := x+2*d.X, y+2*d.Y
		x3, y3 := x+3*d.X, y+3*d.Y
		if b.GetCell(x1, y1) == opp && b.GetCell(x2, y2) == opp && b.GetCell(x3, y3) == player {
			return true
		}
	}
	return false
}

func (pincerRules) DetectDoubleThree(*Board, int, int, Player) bool { return false }

func newTestBoard() *Board {
	b := NewBoard(pincerRules{})
	b.CaptureEnabled = true
	b.RecomputeHash()
	return b
}

func TestMakeUndoRoundTrip(t *testing.T) {
	b := newTestBoard()

	before := *b
	beforeHash := b.GetHash()

	undo := b.MakeMove(9, 9)
	if b.GetHash() == beforeHash {
		t.Fatalf("hash did not change after MakeMove")
	}

	b.UndoMove(undo)

	if b.rows != before.rows {
		t.Fatalf("bitboards not restored after undo")
	}
	if b.GetHash() != beforeHash {
		t.Fatalf("hash not restored after undo: got %x want %x", b.GetHash(), beforeHash)
	}
	if b.Scores != before.Scores {
		t.Fatalf("scores not restored after undo")
	}
	if b.LastPlayer != before.LastPlayer || b.NextPlayer != before.NextPlayer {
		t.Fatalf("turn not restored after undo")
	}
}

func TestMakeUndoRoundTripWithCapture(t *testing.T) {
	b := newTestBoard()
	b.SetCell(5, 5, Player1)
	b.SetCell(6, 5, Player2)
	b.SetCell(7, 5, Player2)
	b.NextPlayer = Player1
	b.LastPlayer = Player2
	b.RecomputeHash()

	before := *b
	beforeHash := b.GetHash()

	undo := b.MakeMove(8, 5)
	if len(undo.Captured) != 2 {
		t.Fatalf("expected 2 captured stones, got %d", len(undo.Captured))
	}
	if b.GetCell(6, 5) != Empty || b.GetCell(7, 5) != Empty {
		t.Fatalf("captured stones still present on board")
	}
	if b.Scores[Player1.idx()] != 1 {
		t.Fatalf("capture score not incremented: %+v", b.Scores)
	}

	b.UndoMove(undo)

	if b.rows != before.rows {
		t.Fatalf("bitboards not restored after undo with capture")
	}
	if b.GetHash() != beforeHash {
		t.Fatalf("hash not restored after undo with capture: got %x want %x", b.GetHash(), beforeHash)
	}
	if b.Scores != before.Scores {
		t.Fatalf("scores not restored after undo with capture")
	}
}

func TestHashMatchesRecompute(t *testing.T) {
	b := newTestBoard()

	moves := []Coord{{9, 9}, {10, 9}, {9, 10}, {10, 10}, {8, 9}}
	var undos []UndoInfo
	for _, m := range moves {
		undos = append(undos, b.MakeMove(m.X, m.Y))
	}

	incremental := b.GetHash()
	b.RecomputeHash()
	if b.GetHash() != incremental {
		t.Fatalf("incremental hash %x does not match recomputed hash %x", incremental, b.GetHash())
	}

	for i := len(undos) - 1; i >= 0; i-- {
		b.UndoMove(undos[i])
	}
	if b.GetHash() != 0 {
		// Hash after undoing every move from an empty starting board with
		// default scores should equal the empty board's own recomputed hash.
		empty := newTestBoard()
		if b.GetHash() != empty.GetHash() {
			t.Fatalf("hash after full undo %x does not match empty board hash %x", b.GetHash(), empty.GetHash())
		}
	}
}

func TestGetCellReflectsSetCell(t *testing.T) {
	b := NewBoard(nil)
	b.SetCell(3, 4, Player1)

	if b.GetCell(3, 4) != Player1 {
		t.Fatalf("expected Player1 at (3,4)")
	}
	if b.GetCell(4, 3) != Empty {
		t.Fatalf("unexpected stone at (4,3)")
	}
}

func TestGetCellOutOfBounds(t *testing.T) {
	b := NewBoard(nil)
	cases := []Coord{{-1, 0}, {0, -1}, {Size, 0}, {0, Size}}
	for _, c := range cases {
		if got := b.GetCell(c.X, c.Y); got != OutOfBounds {
			t.Errorf("GetCell%v = %v, want OutOfBounds", c, got)
		}
	}
}

func TestExtractLineBitsMSBFirst(t *testing.T) {
	b := NewBoard(nil)
	b.SetCell(10, 9, Player1) // nearest step
	b.SetCell(11, 9, Player2) // second step

	bits := b.ExtractLineBits(9, 9, 1, 0, 2)
	want := uint32(Player1)<<2 | uint32(Player2)
	if bits != want {
		t.Fatalf("ExtractLineBits = %04b, want %04b", bits, want)
	}
}

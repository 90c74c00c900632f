package board

// Rules is the contract the search core consumes from the win/capture/
// double-three detector. This module is an external collaborator: the
// core depends only on these four operations and never on how they are
// implemented.
type Rules interface {
	// DetectWin reports whether player has a run of at least b.Goal
	// stones through the most recently examined placement.
	DetectWin(b *Board, x, y int, player Player) bool

	// DetectCaptureStones applies and stages any captures triggered by
	// player placing at (x,y), returning the stones removed.
	DetectCaptureStones(b *Board, x, y int, player Player) []CapturedStone

	// DetectCaptureStonesNotStore is the pure predicate form: true iff
	// placing player at (x,y) would capture at least one pair, without
	// mutating the board.
	DetectCaptureStonesNotStore(b *Board, x, y int, player Player) bool

	// DetectDoubleThree reports whether placing player at (x,y) would
	// create two or more simultaneous open threes.
	DetectDoubleThree(b *Board, x, y int, player Player) bool
}

package engine

import "github.com/distantforge/gomoku/internal/board"

// MaxDepth bounds the killer table and the depths the engine searches to.
const MaxDepth = 10

// noKiller is the sentinel stored in empty killer slots; -1 can never be
// a valid board coordinate.
var noKiller = board.Coord{X: -1, Y: -1}

// KillerTable holds, per depth, the two most recent moves that caused a
// beta cutoff at a sibling node. It is owned by a single search tree and
// reset at the start of each top-level search.
type KillerTable struct {
	moves [MaxDepth + 1][2]board.Coord
}

// NewKillerTable returns a table with every slot cleared.
func NewKillerTable() *KillerTable {
	kt := &KillerTable{}
	kt.Reset()
	return kt
}

// Reset clears every slot, called once per top-level search entry.
func (kt *KillerTable) Reset() {
	for d := range kt.moves {
		kt.moves[d][0] = noKiller
		kt.moves[d][1] = noKiller
	}
}

// IsKiller reports whether c is one of depth's two killer moves.
func (kt *KillerTable) IsKiller(depth int, c board.Coord) bool {
	if depth < 0 || depth > MaxDepth {
		return false
	}
	return kt.moves[depth][0] == c || kt.moves[depth][1] == c
}

// Record shifts c into slot 0 at depth, demoting the previous slot 0 to
// slot 1, unless c is already a killer at this depth.
func (kt *KillerTable) Record(depth int, c board.Coord) {
	if depth < 0 || depth > MaxDepth || kt.IsKiller(depth, c) {
		return
	}
	kt.moves[depth][1] = kt.moves[depth][0]
	kt.moves[depth][0] = c
}

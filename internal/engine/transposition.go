package engine

import "github.com/distantforge/gomoku/internal/board"

// Flag indicates the type of bound stored in a transposition table entry.
type Flag uint8

const (
	Exact      Flag = iota // exact score
	LowerBound             // failed high (beta cutoff)
	UpperBound             // failed low
)

// TTEntry is a transposition table value.
type TTEntry struct {
	Score    int
	Depth    int
	BestMove board.Coord
	HasMove  bool
	Flag     Flag
}

// TranspositionTable is a process-wide hash -> entry map, unbounded for
// the lifetime of a session (no eviction, no replacement scheme): it is
// never persisted across sessions, so there is no reason to trade
// correctness for a fixed-size array the way a long-lived chess engine
// would.
type TranspositionTable struct {
	entries map[uint64]TTEntry

	hits   uint64
	probes uint64
}

// NewTranspositionTable returns an empty table.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{entries: make(map[uint64]TTEntry)}
}

// Probe looks up hash, reporting whether an entry exists.
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	tt.probes++
	e, ok := tt.entries[hash]
	if ok {
		tt.hits++
	}
	return e, ok
}

// Store records an entry, following the standard alpha-beta flag rules:
// the caller is responsible for computing flag from the original
// (alpha, beta) window and the returned score.
func (tt *TranspositionTable) Store(hash uint64, depth, score int, flag Flag, best board.Coord, hasMove bool) {
	tt.entries[hash] = TTEntry{
		Score:    score,
		Depth:    depth,
		BestMove: best,
		HasMove:  hasMove,
		Flag:     flag,
	}
}

// Clear empties the table and resets statistics; called at session start
// and, optionally, between benchmark runs.
func (tt *TranspositionTable) Clear() {
	tt.entries = make(map[uint64]TTEntry)
	tt.hits = 0
	tt.probes = 0
}

// Len returns the number of stored entries.
func (tt *TranspositionTable) Len() int {
	return len(tt.entries)
}

// HitRate returns the probe hit rate as a percentage, for diagnostics.
func (tt *TranspositionTable) HitRate() float64 {
	if tt.probes == 0 {
		return 0
	}
	return float64(tt.hits) / float64(tt.probes) * 100
}

// HashFull returns a permille (parts-per-thousand) fill estimate against
// a notional 1,000,000-entry table, the same presentation chess UIs use
// even though this table has no fixed capacity of its own.
func (tt *TranspositionTable) HashFull() int {
	const notionalCapacity = 1_000_000
	full := (len(tt.entries) * 1000) / notionalCapacity
	if full > 1000 {
		full = 1000
	}
	return full
}

// Resolve applies a probed entry against the current (alpha, beta)
// window: if depth is at least as deep as requested, tighten alpha/beta
// against the bound, and report a usable score when either the bound is
// exact or tightening already closed the window.
func Resolve(e TTEntry, depth, alpha, beta int) (score int, alphaOut, betaOut int, usable bool) {
	if e.Depth < depth {
		return 0, alpha, beta, false
	}
	switch e.Flag {
	case Exact:
		return e.Score, alpha, beta, true
	case LowerBound:
		if e.Score > alpha {
			alpha = e.Score
		}
	case UpperBound:
		if e.Score < beta {
			beta = e.Score
		}
	}
	if alpha >= beta {
		return e.Score, alpha, beta, true
	}
	return 0, alpha, beta, false
}

// Package movegen enumerates candidate moves for the search: cells
// within a king-move of some occupied stone, with optional filtering
// for capture-only generation and the double-three restriction.
package movegen

import (
	"math/bits"

	"github.com/distantforge/gomoku/internal/board"
)

// Candidates returns every empty cell within king-move distance of an
// occupied cell, row-major and column-ascending. On an empty board it
// returns nil: callers must seed the opening move themselves.
func Candidates(b *board.Board) []board.Coord {
	occ := b.Occupancy()
	var anyStone bool
	for _, row := range occ {
		if row != 0 {
			anyStone = true
			break
		}
	}
	if !anyStone {
		return nil
	}

	var out []board.Coord
	for r := 0; r < board.Size; r++ {
		mask := neighborMask(occ, r) &^ occ[r]
		for mask != 0 {
			c := bits.TrailingZeros64(mask)
			out = append(out, board.Coord{X: c, Y: r})
			mask &^= 1 << uint(c)
		}
	}
	return out
}

// CandidatesFiltered returns Candidates with the double-three restriction
// applied: a move that creates a double-three is dropped unless it also
// captures at least one pair, which overrides the restriction. When
// doubleThreeEnabled is false this is identical to Candidates.
func CandidatesFiltered(b *board.Board, player board.Player, doubleThreeEnabled bool) []board.Coord {
	all := Candidates(b)
	if !doubleThreeEnabled || b.Rules() == nil {
		return all
	}

	rules := b.Rules()
	out := all[:0:0]
	for _, c := range all {
		if rules.DetectDoubleThree(b, c.X, c.Y, player) && !rules.DetectCaptureStonesNotStore(b, c.X, c.Y, player) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// CaptureCandidates returns the subset of Candidates that would capture
// at least one pair if player moved there.
func CaptureCandidates(b *board.Board, player board.Player) []board.Coord {
	if b.Rules() == nil {
		return nil
	}
	rules := b.Rules()
	var out []board.Coord
	for _, c := range Candidates(b) {
		if rules.DetectCaptureStonesNotStore(b, c.X, c.Y, player) {
			out = append(out, c)
		}
	}
	return out
}

const rowMask = (1 << board.Size) - 1

// neighborMask ORs row r's own shifted self together with rows r-1 and
// r+1 (each with their own left/right shifts), a
// shift_left | shift_right | row_i | row_{i-1} | row_{i+1} | ...
// construction, masked down to the 19 valid columns.
func neighborMask(occ [board.Size]uint64, r int) uint64 {
	var mask uint64
	for _, rr := range [3]int{r - 1, r, r + 1} {
		if rr < 0 || rr >= board.Size {
			continue
		}
		row := occ[rr]
		mask |= row | (row << 1) | (row >> 1)
	}
	return mask & rowMask
}

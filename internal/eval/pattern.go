// Package eval implements the heuristic evaluator: two precomputed
// lookup tables over 9-cell packed line windows, one "easy" (fast) and
// one "hard" (slower, more discriminating), indexed by a combined
// pattern built from the board's own packed-line encoding.
package eval

// Score magnitudes. Relative ordering is what matters; the absolute
// scale only has to keep MinimaxTermination below FiveInRow and above
// every non-winning shape.
const (
	ScoreFiveInRow      = 10_000_000
	ScoreOpenFour       = 100_000
	ScoreBlockedFive    = 99_900 // five-in-a-row with an exploitable internal pair
	ScoreBlockedFour    = 10_000
	ScoreOpenThree      = 1_000
	ScoreBlockedThree   = 100
	ScoreOpenTwo        = 100
	ScoreBlockedTwo     = 10
	ScoreOpenSingle     = 10
	ScoreBlockedOne     = 1
	ScoreCapturePerPair = 500
)

// MinimaxTermination is the magnitude at or above which a static
// evaluation is treated as a terminal cut by the search.
const MinimaxTermination = ScoreOpenFour

// windowSize is SIDE_WINDOW_SIZE: cells examined on each side of center.
const windowSize = 4

// combinedWindowSize is COMBINED_WINDOW_SIZE: side+center+side.
const combinedWindowSize = 2*windowSize + 1

// lookupTableSize is LOOKUP_TABLE_SIZE = 2^18: one 2-bit slot per cell
// of the 9-cell combined window.
const lookupTableSize = 1 << (2 * combinedWindowSize)

// own/opp/empty/oob are the relative (player-agnostic) cell encodings
// used inside a combined pattern: own and opp are always from the
// evaluating player's point of view, regardless of which concrete
// Player occupies the cell on the real board.
const (
	relEmpty = 0
	relOwn   = 1
	relOpp   = 2
	relOOB   = 3
)

var (
	patternScoreTable     [lookupTableSize]int32
	patternScoreTableHard [lookupTableSize]int32
)

func init() {
	buildPatternTable(patternScoreTable[:], false)
	buildPatternTable(patternScoreTableHard[:], true)
}

// cellsOf decodes an 18-bit combined pattern into 9 relative cell
// values, index 4 being the center.
func cellsOf(pattern uint32) [combinedWindowSize]int {
	var cells [combinedWindowSize]int
	for i := combinedWindowSize - 1; i >= 0; i-- {
		cells[i] = int(pattern & 0x3)
		pattern >>= 2
	}
	return cells
}

// packPattern builds the 18-bit index from a left window (nearest-first,
// MSB-first per ExtractLineBits), a center cell, and a right window.
func packPattern(left, right uint32, center int) uint32 {
	// left/right each hold 4 cells, nearest-to-farthest, MSB-first: bits
	// 7..6 = nearest, 1..0 = farthest. We want the combined 9-cell array
	// ordered farthest-left .. center .. farthest-right, matching
	// cellsOf's left-to-right decode.
	var leftOrdered uint32
	for i := 0; i < windowSize; i++ {
		cell := (left >> uint(2*i)) & 0x3 // i=0 -> farthest (lowest 2 bits)
		leftOrdered |= cell << uint(2*(windowSize-1-i))
	}
	return (leftOrdered << uint(2*(windowSize+1))) | (uint32(center) << uint(2*windowSize)) | right
}

// buildPatternTable populates table by enumerating all 2^18 patterns
// and scoring each from the perspective of the player occupying the
// center ("own"). hard selects the more discriminating (slower)
// scoring pass, which additionally rewards broken runs (a gap inside an
// otherwise-live shape) that the easy table ignores.
func buildPatternTable(table []int32, hard bool) {
	for p := uint32(0); p < lookupTableSize; p++ {
		table[p] = int32(scorePattern(cellsOf(p), hard))
	}
}

// scorePattern computes the heuristic score for a decoded 9-cell window,
// assuming the center is the candidate placement (own).
func scorePattern(cells [combinedWindowSize]int, hard bool) int {
	const center = windowSize
	if cells[center] != relOwn {
		return 0
	}

	leftRun, leftOpen := runAndOpen(cells, center, -1)
	rightRun, rightOpen := runAndOpen(cells, center, 1)
	run := 1 + leftRun + rightRun

	captureCount := captureOpportunities(cells)
	captureScore := captureCount * ScoreCapturePerPair

	base := shapeScore(run, leftOpen, rightOpen, cells)

	if hard {
		base += brokenRunBonus(cells)
	}

	return base + captureScore
}

// runAndOpen walks from center in direction dir (+1 or -1) counting
// contiguous own cells, and reports whether the cell immediately past
// the run is empty ("open"). A run that consumes the entire 4-cell
// window without meeting a blocker is treated as open: the window
// cannot see further, and a run that long is already in winning
// territory regardless.
func runAndOpen(cells [combinedWindowSize]int, center, dir int) (run int, open bool) {
	i := center + dir
	for run < windowSize && i >= 0 && i < combinedWindowSize && cells[i] == relOwn {
		run++
		i += dir
	}
	if run == windowSize {
		return run, true
	}
	if i < 0 || i >= combinedWindowSize {
		return run, false
	}
	return run, cells[i] == relEmpty
}

// captureOpportunities counts how many of the two directions along this
// axis read own, opp, opp, own starting at the center, the pincer
// capture pattern, checked directly on the window.
func captureOpportunities(cells [combinedWindowSize]int) int {
	const center = windowSize
	count := 0
	if center+3 < combinedWindowSize &&
		cells[center+1] == relOpp && cells[center+2] == relOpp && cells[center+3] == relOwn {
		count++
	}
	if center-3 >= 0 &&
		cells[center-1] == relOpp && cells[center-2] == relOpp && cells[center-3] == relOwn {
		count++
	}
	return count
}

// hasVulnerablePair reports whether the window contains an own-own pair
// flanked on both sides by opponent stones, a pair the opponent could
// remove by capture, undermining an otherwise-complete five.
func hasVulnerablePair(cells [combinedWindowSize]int) bool {
	for i := 0; i < combinedWindowSize-1; i++ {
		if cells[i] != relOwn || cells[i+1] != relOwn {
			continue
		}
		if i-1 >= 0 && cells[i-1] == relOpp && i+2 < combinedWindowSize && cells[i+2] == relOpp {
			return true
		}
	}
	return false
}

func shapeScore(run int, leftOpen, rightOpen bool, cells [combinedWindowSize]int) int {
	bothOpen := leftOpen && rightOpen
	oneOpen := leftOpen || rightOpen

	switch {
	case run >= 5:
		if hasVulnerablePair(cells) {
			return ScoreBlockedFive
		}
		return ScoreFiveInRow
	case run == 4:
		if bothOpen {
			return ScoreOpenFour
		}
		if oneOpen {
			return ScoreBlockedFour
		}
		return 0
	case run == 3:
		if bothOpen {
			return ScoreOpenThree
		}
		if oneOpen {
			return ScoreBlockedThree
		}
		return 0
	case run == 2:
		if bothOpen {
			return ScoreOpenTwo
		}
		if oneOpen {
			return ScoreBlockedTwo
		}
		return 0
	case run == 1:
		if bothOpen {
			return ScoreOpenSingle
		}
		if oneOpen {
			return ScoreBlockedOne
		}
		return 0
	default:
		return 0
	}
}

// brokenRunBonus gives the hard evaluator partial credit for a run with
// a single gap that the easy evaluator's contiguous-run scan ignores
// entirely (e.g. own,own,empty,own), scaled well below a genuine
// contiguous shape of the same span.
func brokenRunBonus(cells [combinedWindowSize]int) int {
	const center = windowSize
	bonus := 0
	for _, dir := range [2]int{-1, 1} {
		own, gapUsed, blocked := 0, false, false
	walk:
		for i := center + dir; i >= 0 && i < combinedWindowSize; i += dir {
			switch cells[i] {
			case relOwn:
				own++
			case relEmpty:
				if gapUsed {
					break walk
				}
				gapUsed = true
			default:
				blocked = true
			}
			if blocked {
				break
			}
		}
		if gapUsed && !blocked && own >= 2 {
			bonus += ScoreOpenTwo / 2
		}
	}
	return bonus
}

// Package engine implements the search core: alpha-beta minimax with a
// transposition table and killer moves, principal-variation search,
// quiescence over captures, and iterative deepening with aspiration
// windows.
package engine

import (
	"log"
	"sort"
	"time"

	"github.com/distantforge/gomoku/internal/board"
	"github.com/distantforge/gomoku/internal/eval"
	"github.com/distantforge/gomoku/internal/movegen"
)

// ScoredMove pairs a candidate with its move-ordering score and whether
// it is a killer move at the depth being ordered.
type ScoredMove struct {
	Coord    board.Coord
	Score    int32
	IsKiller bool
}

// Infinity bounds the aspiration window and the root's initial alpha/beta.
const Infinity = 1 << 30

// Search owns one search tree: its transposition table, killer table,
// node counter, and the board it mutates in place via MakeMove/UndoMove.
// A Search is not safe for concurrent use; search calls must be
// serialized by the host in any multi-threaded embedding.
type Search struct {
	b       *board.Board
	tt      *TranspositionTable
	killers *KillerTable
	evalFn  eval.Func

	nodes uint64

	deadline    time.Time
	hasDeadline bool
	timedOut    bool

	// OnIteration reports progress after each completed iterative-deepening
	// depth. Logging/emitting progress is permitted as long as it never
	// feeds back into the search's own decisions.
	OnIteration func(IterationInfo)
}

// IterationInfo is reported once per completed iterative-deepening depth.
type IterationInfo struct {
	Depth int
	Score int32
	Nodes uint64
	Time  time.Duration
}

// NewSearch builds a Search over b, sharing tt across calls (it is
// process-wide) and owning a fresh killer table.
func NewSearch(b *board.Board, tt *TranspositionTable, evalFn eval.Func) *Search {
	return &Search{
		b:       b,
		tt:      tt,
		killers: NewKillerTable(),
		evalFn:  evalFn,
	}
}

// Nodes returns the number of nodes visited by the most recent search.
func (s *Search) Nodes() uint64 {
	return s.nodes
}

// GetBestMove is a single fixed-depth alpha-beta root search.
func (s *Search) GetBestMove(depth int) (board.Coord, int32, bool) {
	s.killers.Reset()
	s.nodes = 0
	s.hasDeadline = false
	s.timedOut = false
	return s.rootSearch(depth, -Infinity, Infinity)
}

// GetBestMovePVS is a root search whose children are each searched by
// principal-variation search instead of plain alpha-beta.
func (s *Search) GetBestMovePVS(depth int) (board.Coord, int32, bool) {
	s.killers.Reset()
	s.nodes = 0
	s.hasDeadline = false
	s.timedOut = false
	return s.rootSearchPVS(depth, -Infinity, Infinity)
}

// IterativeDeepening searches depths 1..maxDepth within timeLimit,
// widening a failed aspiration window with a full re-search, and
// returns the best move from the deepest fully completed iteration.
func (s *Search) IterativeDeepening(maxDepth int, timeLimit time.Duration) (board.Coord, int32, bool) {
	s.killers.Reset()
	s.nodes = 0
	s.deadline = time.Now().Add(timeLimit)
	s.hasDeadline = true
	s.timedOut = false

	alpha, beta := -Infinity, Infinity
	var bestMove board.Coord
	var bestScore int32
	haveResult := false

	for depth := 1; depth <= maxDepth; depth++ {
		start := time.Now()
		move, score, found := s.rootSearch(depth, alpha, beta)
		if s.timedOut {
			log.Printf("[engine] iterative deepening timed out during depth %d, returning depth %d result", depth, depth-1)
			break
		}
		if !found {
			break
		}

		if score <= int32(alpha) || score >= int32(beta) {
			move, score, found = s.rootSearch(depth, -Infinity, Infinity)
			if s.timedOut || !found {
				break
			}
		}

		bestMove, bestScore, haveResult = move, score, true
		if s.OnIteration != nil {
			s.OnIteration(IterationInfo{Depth: depth, Score: score, Nodes: s.nodes, Time: time.Since(start)})
		}

		// An immediate heuristic win is a terminal cutoff: further
		// deepening cannot improve on it, so return right away.
		if int(score) >= eval.MinimaxTermination {
			return move, score, true
		}

		window := int32(50)
		alpha, beta = int(score-window), int(score+window)
	}

	return bestMove, bestScore, haveResult
}

// deadlineExceeded reports, and latches, whether the search's wall-clock
// budget has been spent. Only iterative deepening sets a deadline; fixed
// depth and PVS root searches always run to completion.
func (s *Search) deadlineExceeded() bool {
	if !s.hasDeadline {
		return false
	}
	if s.timedOut {
		return true
	}
	if time.Now().After(s.deadline) {
		s.timedOut = true
	}
	return s.timedOut
}

// rootSearch is minimax's root: it differs from an internal node by
// honoring the wall-clock deadline and by returning immediately on an
// immediate heuristic win in the first ordered candidate.
func (s *Search) rootSearch(depth int, alpha, beta int) (board.Coord, int32, bool) {
	if s.deadlineExceeded() {
		return board.Coord{}, 0, false
	}

	mover := s.b.NextPlayer
	hash := s.b.GetHash()
	var ttMove board.Coord
	hasTTMove := false
	if entry, ok := s.tt.Probe(hash); ok && entry.HasMove {
		ttMove, hasTTMove = entry.BestMove, true
	}
	if s.deadlineExceeded() {
		return board.Coord{}, 0, false
	}

	candidates := movegen.CandidatesFiltered(s.b, mover, s.b.DoubleThreeEnabled)
	if len(candidates) == 0 {
		return board.Coord{}, 0, false
	}

	ordered := orderMoves(s.orderingScores(candidates, mover), MaxDepth, s.killers, ttMove, hasTTMove, true)

	bestScore := int32(-Infinity)
	var bestMove board.Coord
	haveBest := false

	for i, c := range ordered {
		if i > 0 && s.deadlineExceeded() {
			break
		}

		undo := s.b.MakeMove(c.Coord.X, c.Coord.Y)
		placedMover := s.b.LastPlayer
		score := int32(s.evalFn(s.b, placedMover, c.Coord.X, c.Coord.Y))
		if i == 0 && int(score) >= eval.MinimaxTermination {
			s.b.FlushCaptures()
			s.b.UndoMove(undo)
			return c.Coord, score, true
		}

		childScore := s.minimax(depth-1, alpha, beta, c.Coord.X, c.Coord.Y, false)
		s.b.FlushCaptures()
		s.b.UndoMove(undo)

		if !haveBest || childScore > bestScore {
			bestScore, bestMove, haveBest = childScore, c.Coord, true
		}
		if int(bestScore) > alpha {
			alpha = int(bestScore)
		}
		if alpha >= beta {
			break
		}
	}

	if !haveBest {
		return board.Coord{}, 0, false
	}
	s.tt.Store(hash, depth, int(bestScore), Exact, bestMove, true)
	return bestMove, bestScore, true
}

// rootSearchPVS mirrors rootSearch but searches every non-first child
// with PVS's null-window-then-re-search discipline.
func (s *Search) rootSearchPVS(depth int, alpha, beta int) (board.Coord, int32, bool) {
	mover := s.b.NextPlayer
	hash := s.b.GetHash()
	var ttMove board.Coord
	hasTTMove := false
	if entry, ok := s.tt.Probe(hash); ok && entry.HasMove {
		ttMove, hasTTMove = entry.BestMove, true
	}

	candidates := movegen.CandidatesFiltered(s.b, mover, s.b.DoubleThreeEnabled)
	if len(candidates) == 0 {
		return board.Coord{}, 0, false
	}

	ordered := orderMoves(s.orderingScores(candidates, mover), MaxDepth, s.killers, ttMove, hasTTMove, true)

	bestScore := int32(-Infinity)
	var bestMove board.Coord
	haveBest := false

	for i, c := range ordered {
		undo := s.b.MakeMove(c.Coord.X, c.Coord.Y)

		var childScore int32
		if i == 0 {
			childScore = s.pvs(depth-1, alpha, beta, c.Coord.X, c.Coord.Y, false)
		} else {
			childScore = s.pvs(depth-1, alpha, alpha+1, c.Coord.X, c.Coord.Y, false)
			if int(childScore) > alpha && int(childScore) < beta {
				childScore = s.pvs(depth-1, alpha, beta, c.Coord.X, c.Coord.Y, false)
			}
		}
		s.b.FlushCaptures()
		s.b.UndoMove(undo)

		if !haveBest || childScore > bestScore {
			bestScore, bestMove, haveBest = childScore, c.Coord, true
		}
		if int(bestScore) > alpha {
			alpha = int(bestScore)
		}
		if alpha >= beta {
			break
		}
	}

	if !haveBest {
		return board.Coord{}, 0, false
	}
	s.tt.Store(hash, depth, int(bestScore), Exact, bestMove, true)
	return bestMove, bestScore, true
}

// minimax is the internal alpha-beta node.
func (s *Search) minimax(depth, alpha, beta, lastX, lastY int, isMax bool) int32 {
	s.nodes++
	hash := s.b.GetHash()

	var ttMove board.Coord
	hasTTMove := false
	if entry, ok := s.tt.Probe(hash); ok {
		if entry.HasMove {
			ttMove, hasTTMove = entry.BestMove, true
		}
		if score, a, b2, usable := Resolve(entry, depth, alpha, beta); usable {
			return int32(score)
		} else {
			alpha, beta = a, b2
		}
	}

	mover := s.b.LastPlayer
	staticEval := int32(s.evalFn(s.b, mover, lastX, lastY))
	if lastX != -1 && int(staticEval) >= eval.MinimaxTermination {
		s.b.FlushCaptures()
		return staticEval
	}

	if depth == 0 {
		if s.b.CaptureEnabled {
			return s.quiescence(alpha, beta, lastX, lastY, isMax)
		}
		return staticEval
	}

	candidates := movegen.CandidatesFiltered(s.b, s.b.NextPlayer, s.b.DoubleThreeEnabled)
	if len(candidates) == 0 {
		s.tt.Store(hash, depth, int(staticEval), Exact, board.Coord{}, false)
		return staticEval
	}

	ordered := orderMoves(s.orderingScores(candidates, s.b.NextPlayer), depth, s.killers, ttMove, hasTTMove, isMax)

	origAlpha, origBeta := alpha, beta
	best := int32(-Infinity)
	if !isMax {
		best = Infinity
	}
	var bestMove board.Coord
	haveBest := false

	for _, c := range ordered {
		undo := s.b.MakeMove(c.Coord.X, c.Coord.Y)
		child := s.minimax(depth-1, alpha, beta, c.Coord.X, c.Coord.Y, !isMax)
		s.b.FlushCaptures()
		s.b.UndoMove(undo)

		improved := !haveBest
		if isMax && child > best {
			improved = true
		}
		if !isMax && child < best {
			improved = true
		}
		if improved {
			best, bestMove, haveBest = child, c.Coord, true
		}

		if isMax {
			if int(best) > alpha {
				alpha = int(best)
			}
		} else {
			if int(best) < beta {
				beta = int(best)
			}
		}

		if alpha >= beta {
			s.killers.Record(depth, bestMove)
			s.tt.Store(hash, depth, int(best), flagFor(int(best), origAlpha, origBeta), bestMove, true)
			return best
		}
	}

	s.tt.Store(hash, depth, int(best), flagFor(int(best), origAlpha, origBeta), bestMove, haveBest)
	return best
}

// pvs is the principal-variation-search node.
func (s *Search) pvs(depth, alpha, beta, lastX, lastY int, isMax bool) int32 {
	s.nodes++
	hash := s.b.GetHash()

	var ttMove board.Coord
	hasTTMove := false
	if entry, ok := s.tt.Probe(hash); ok {
		if entry.HasMove {
			ttMove, hasTTMove = entry.BestMove, true
		}
		if score, a, b2, usable := Resolve(entry, depth, alpha, beta); usable {
			return int32(score)
		} else {
			alpha, beta = a, b2
		}
	}

	mover := s.b.LastPlayer
	staticEval := int32(s.evalFn(s.b, mover, lastX, lastY))
	if lastX != -1 && int(staticEval) >= eval.MinimaxTermination {
		s.b.FlushCaptures()
		return staticEval
	}
	if depth == 0 {
		if s.b.CaptureEnabled {
			return s.quiescence(alpha, beta, lastX, lastY, isMax)
		}
		return staticEval
	}

	candidates := movegen.CandidatesFiltered(s.b, s.b.NextPlayer, s.b.DoubleThreeEnabled)
	if len(candidates) == 0 {
		s.tt.Store(hash, depth, int(staticEval), Exact, board.Coord{}, false)
		return staticEval
	}

	ordered := orderMoves(s.orderingScores(candidates, s.b.NextPlayer), depth, s.killers, ttMove, hasTTMove, isMax)

	origAlpha, origBeta := alpha, beta
	best := int32(-Infinity)
	if !isMax {
		best = Infinity
	}
	var bestMove board.Coord
	haveBest := false

	for i, c := range ordered {
		undo := s.b.MakeMove(c.Coord.X, c.Coord.Y)

		var child int32
		if i == 0 {
			child = s.pvs(depth-1, alpha, beta, c.Coord.X, c.Coord.Y, !isMax)
		} else {
			child = s.pvs(depth-1, alpha, alpha+1, c.Coord.X, c.Coord.Y, !isMax)
			if int(child) > alpha && int(child) < beta {
				child = s.pvs(depth-1, alpha, beta, c.Coord.X, c.Coord.Y, !isMax)
			}
		}
		s.b.FlushCaptures()
		s.b.UndoMove(undo)

		improved := !haveBest
		if isMax && child > best {
			improved = true
		}
		if !isMax && child < best {
			improved = true
		}
		if improved {
			best, bestMove, haveBest = child, c.Coord, true
		}

		if isMax {
			if int(best) > alpha {
				alpha = int(best)
			}
		} else {
			if int(best) < beta {
				beta = int(best)
			}
		}

		if alpha >= beta {
			s.killers.Record(depth, bestMove)
			s.tt.Store(hash, depth, int(best), flagFor(int(best), origAlpha, origBeta), bestMove, true)
			return best
		}
	}

	s.tt.Store(hash, depth, int(best), flagFor(int(best), origAlpha, origBeta), bestMove, haveBest)
	return best
}

// quiescence extends the search over capture moves only, past the
// horizon, stand-pat bounded by fail-hard alpha-beta pruning.
func (s *Search) quiescence(alpha, beta, lastX, lastY int, isMax bool) int32 {
	s.nodes++
	mover := s.b.LastPlayer
	standPat := int32(s.evalFn(s.b, mover, lastX, lastY))

	if isMax {
		if int(standPat) >= beta {
			return int32(beta)
		}
		if int(standPat) > alpha {
			alpha = int(standPat)
		}
	} else {
		if int(standPat) <= alpha {
			return int32(alpha)
		}
		if int(standPat) < beta {
			beta = int(standPat)
		}
	}

	captures := movegen.CaptureCandidates(s.b, s.b.NextPlayer)
	if len(captures) == 0 {
		return standPat
	}

	best := standPat
	for _, c := range captures {
		undo := s.b.MakeMove(c.X, c.Y)
		score := s.quiescence(alpha, beta, c.X, c.Y, !isMax)
		s.b.FlushCaptures()
		s.b.UndoMove(undo)

		if isMax {
			if score > best {
				best = score
			}
			if int(best) > alpha {
				alpha = int(best)
			}
		} else {
			if score < best {
				best = score
			}
			if int(best) < beta {
				beta = int(best)
			}
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// orderingScores evaluates each candidate as if placed, for ordering
// purposes only: the stone is set and immediately cleared directly
// (bypassing hash/capture bookkeeping), since only the relative score
// matters here.
func (s *Search) orderingScores(candidates []board.Coord, mover board.Player) []ScoredMove {
	scored := make([]ScoredMove, len(candidates))
	for i, c := range candidates {
		s.b.SetCell(c.X, c.Y, mover)
		score := int32(s.evalFn(s.b, mover, c.X, c.Y))
		s.b.SetCell(c.X, c.Y, board.Empty)
		scored[i] = ScoredMove{Coord: c, Score: score}
	}
	return scored
}

// orderMoves sorts scored moves for search: the transposition table's
// hash-move hint first, then killer moves, then by score (descending
// for a maximizing node, ascending for a minimizing one).
func orderMoves(scored []ScoredMove, depth int, killers *KillerTable, ttMove board.Coord, hasTTMove bool, isMax bool) []ScoredMove {
	for i := range scored {
		scored[i].IsKiller = killers.IsKiller(depth, scored[i].Coord)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if hasTTMove {
			if scored[i].Coord == ttMove {
				return true
			}
			if scored[j].Coord == ttMove {
				return false
			}
		}
		if scored[i].IsKiller != scored[j].IsKiller {
			return scored[i].IsKiller
		}
		if isMax {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Score < scored[j].Score
	})
	return scored
}

// flagFor derives the transposition-table bound flag from a returned
// score against the window it was searched with.
func flagFor(score, origAlpha, origBeta int) Flag {
	if score <= origAlpha {
		return UpperBound
	}
	if score >= origBeta {
		return LowerBound
	}
	return Exact
}

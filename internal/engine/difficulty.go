package engine

import (
	"time"

	"github.com/distantforge/gomoku/internal/board"
	"github.com/distantforge/gomoku/internal/eval"
)

// Difficulty selects a search variant and evaluator.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// SearchConfig is the resolved depth/time/evaluator triple for a difficulty.
type SearchConfig struct {
	Depth     int
	TimeLimit time.Duration // zero means no deadline (fixed-depth/PVS variants)
	EvalFn    eval.Func
}

// DifficultySettings is the difficulty -> search-variant mapping: easy
// is fixed-depth alpha-beta, medium is iterative deepening under a
// tight time budget, hard is PVS with the strong evaluator.
var DifficultySettings = map[Difficulty]SearchConfig{
	Easy:   {Depth: 5, EvalFn: eval.Evaluate},
	Medium: {Depth: MaxDepth, TimeLimit: 400 * time.Millisecond, EvalFn: eval.Evaluate},
	Hard:   {Depth: MaxDepth, EvalFn: eval.EvaluateHard},
}

// Outcome is the result of running one difficulty-selected search.
type Outcome struct {
	Move    board.Coord
	Score   int32
	Nodes   uint64
	Elapsed time.Duration
}

// Run dispatches b to the search variant difficulty maps to in
// DifficultySettings.
func Run(b *board.Board, difficulty Difficulty, tt *TranspositionTable) (Outcome, bool) {
	cfg, ok := DifficultySettings[difficulty]
	if !ok {
		return Outcome{}, false
	}

	s := NewSearch(b, tt, cfg.EvalFn)
	start := time.Now()

	var move board.Coord
	var score int32
	var found bool

	switch difficulty {
	case Medium:
		move, score, found = s.IterativeDeepening(cfg.Depth, cfg.TimeLimit)
	case Hard:
		move, score, found = s.GetBestMovePVS(cfg.Depth)
	default:
		move, score, found = s.GetBestMove(cfg.Depth)
	}

	return Outcome{Move: move, Score: score, Nodes: s.Nodes(), Elapsed: time.Since(start)}, found
}

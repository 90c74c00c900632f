// Command gomoku-bench runs the standard regression scenarios
// (opening, midgame, late_midgame) against the three difficulty-selected
// search variants and reports nodes searched, elapsed time, and the
// chosen move (flag-parsed options plus an optional CPU profile).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/distantforge/gomoku/internal/bench"
	"github.com/distantforge/gomoku/internal/engine"
	"github.com/distantforge/gomoku/internal/store"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	scenario   = flag.String("scenario", "all", "scenario key to run (opening, midgame, late_midgame, or all)")
	difficulty = flag.String("difficulty", "all", "difficulty to run (easy, medium, hard, or all)")
	record     = flag.Bool("record", true, "persist run results to the benchmark history store")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", *cpuprofile)
	}

	var st *store.Store
	if *record {
		var err error
		st, err = store.Open()
		if err != nil {
			log.Fatalf("could not open benchmark history store: %v", err)
		}
		defer st.Close()
	}

	scenarios := selectScenarios(*scenario)
	if len(scenarios) == 0 {
		log.Fatalf("unknown scenario %q", *scenario)
	}
	difficulties := selectDifficulties(*difficulty)
	if len(difficulties) == 0 {
		log.Fatalf("unknown difficulty %q", *difficulty)
	}

	for _, s := range scenarios {
		fmt.Printf("\nScenario: %s (%s)\n", s.Key, s.Description)
		for _, d := range difficulties {
			runOne(st, s, d)
		}
	}
}

func selectScenarios(key string) []bench.Scenario {
	all := bench.Scenarios()
	if key == "all" {
		return all
	}
	for _, s := range all {
		if s.Key == key {
			return []bench.Scenario{s}
		}
	}
	return nil
}

func selectDifficulties(key string) []engine.Difficulty {
	all := []engine.Difficulty{engine.Easy, engine.Medium, engine.Hard}
	if key == "all" {
		return all
	}
	for _, d := range all {
		if string(d) == key {
			return []engine.Difficulty{d}
		}
	}
	return nil
}

func runOne(st *store.Store, s bench.Scenario, diff engine.Difficulty) {
	b := s.Board()
	tt := engine.NewTranspositionTable()

	start := time.Now()
	outcome, found := engine.Run(b, diff, tt)
	elapsed := time.Since(start)

	if !found {
		fmt.Printf("  %-6s: no move found\n", diff)
		return
	}

	fmt.Printf("  %-6s: move=%s score=%d nodes=%d elapsed=%s\n",
		diff, outcome.Move, outcome.Score, outcome.Nodes, elapsed)

	if st == nil {
		return
	}
	run := store.BenchmarkRun{
		Scenario:   s.Key,
		Difficulty: string(diff),
		Move:       outcome.Move,
		Score:      outcome.Score,
		Nodes:      outcome.Nodes,
		Elapsed:    elapsed,
		RanAt:      time.Now(),
	}
	if err := st.RecordRun(run); err != nil {
		log.Printf("could not record run for %s/%s: %v", s.Key, diff, err)
	}
}

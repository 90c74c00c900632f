package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/distantforge/gomoku/internal/board"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	tmpDir := t.TempDir()
	s, err := OpenAt(filepath.Join(tmpDir, "db"))
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return s
}

func TestRecordAndLoadHistory(t *testing.T) {
	s := openTestStore(t)

	run := BenchmarkRun{
		Scenario:   "opening",
		Difficulty: "easy",
		Move:       board.Coord{X: 9, Y: 9},
		Score:      1000,
		Nodes:      4321,
		Elapsed:    12 * time.Millisecond,
		RanAt:      time.Unix(1700000000, 0).UTC(),
	}

	if err := s.RecordRun(run); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	history, err := s.History("opening")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(history))
	}
	if history[0] != run {
		t.Fatalf("recorded run does not round-trip: got %+v want %+v", history[0], run)
	}
}

func TestHistoryUnknownScenarioIsEmpty(t *testing.T) {
	s := openTestStore(t)

	history, err := s.History("midgame")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected no history for an unrecorded scenario, got %d entries", len(history))
	}
}

func TestBestPicksLowestElapsed(t *testing.T) {
	s := openTestStore(t)

	runs := []BenchmarkRun{
		{Scenario: "late_midgame", Difficulty: "hard", Elapsed: 80 * time.Millisecond},
		{Scenario: "late_midgame", Difficulty: "hard", Elapsed: 30 * time.Millisecond},
		{Scenario: "late_midgame", Difficulty: "hard", Elapsed: 55 * time.Millisecond},
	}
	for _, r := range runs {
		if err := s.RecordRun(r); err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}

	best, ok, err := s.Best("late_midgame")
	if err != nil {
		t.Fatalf("Best failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected Best to report a recorded run")
	}
	if best.Elapsed != 30*time.Millisecond {
		t.Fatalf("expected fastest run (30ms), got %v", best.Elapsed)
	}
}

func TestBestOnEmptyScenario(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Best("opening")
	if err != nil {
		t.Fatalf("Best failed: %v", err)
	}
	if ok {
		t.Fatalf("expected Best to report no run for an empty scenario")
	}
}

func TestClearScenario(t *testing.T) {
	s := openTestStore(t)

	if err := s.RecordRun(BenchmarkRun{Scenario: "opening", Elapsed: time.Millisecond}); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if err := s.ClearScenario("opening"); err != nil {
		t.Fatalf("ClearScenario failed: %v", err)
	}

	history, err := s.History("opening")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected history to be cleared, got %d entries", len(history))
	}
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Fatal("GetDataDir returned empty path")
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("data directory was not created: %s", dataDir)
	}
}

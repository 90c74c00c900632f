package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/distantforge/gomoku/internal/board"
)

// historyKeyPrefix namespaces per-scenario run history in the keyspace.
const historyKeyPrefix = "history:"

// BenchmarkRun is one recorded execution of a benchmark scenario against
// a search difficulty: the move chosen, its score, how many nodes the
// search visited, and how long it took.
type BenchmarkRun struct {
	Scenario   string        `json:"scenario"`
	Difficulty string        `json:"difficulty"`
	Move       board.Coord   `json:"move"`
	Score      int32         `json:"score"`
	Nodes      uint64        `json:"nodes"`
	Elapsed    time.Duration `json:"elapsed"`
	RanAt      time.Time     `json:"ran_at"`
}

// Store wraps BadgerDB for persisting benchmark run history across
// process invocations. This is deliberately separate from the search's
// transposition table: the TT is never persisted across sessions, but
// the benchmark driver's own run history is an ordinary app-local fact
// with no such restriction.
type Store struct {
	db *badger.DB
}

// Open opens (creating if absent) the benchmark history database at the
// platform-specific data directory.
func Open() (*Store, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, fmt.Errorf("store: resolve database dir: %w", err)
	}
	return openAt(dbDir)
}

// OpenAt opens (creating if absent) the benchmark history database at an
// explicit directory, bypassing the platform-specific data dir. Used by
// tests that want an isolated, disposable database.
func OpenAt(dbDir string) (*Store, error) {
	return openAt(dbDir)
}

func openAt(dbDir string) (*Store, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordRun appends run to the history for its scenario.
func (s *Store) RecordRun(run BenchmarkRun) error {
	history, err := s.History(run.Scenario)
	if err != nil {
		return err
	}
	history = append(history, run)

	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("store: marshal history: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(historyKeyPrefix+run.Scenario), data)
	})
}

// History returns every recorded run for scenario, oldest first, or an
// empty slice if none have been recorded yet.
func (s *Store) History(scenario string) ([]BenchmarkRun, error) {
	var history []BenchmarkRun

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(historyKeyPrefix + scenario))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &history)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("store: load history for %s: %w", scenario, err)
	}
	return history, nil
}

// Best returns the fastest (lowest-elapsed) recorded run for scenario,
// and whether any run has been recorded at all.
func (s *Store) Best(scenario string) (BenchmarkRun, bool, error) {
	history, err := s.History(scenario)
	if err != nil {
		return BenchmarkRun{}, false, err
	}
	if len(history) == 0 {
		return BenchmarkRun{}, false, nil
	}

	best := history[0]
	for _, run := range history[1:] {
		if run.Elapsed < best.Elapsed {
			best = run
		}
	}
	return best, true, nil
}

// ClearScenario removes recorded history for a single scenario, for a
// benchmark driver that wants a clean slate between runs.
func (s *Store) ClearScenario(scenario string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(historyKeyPrefix + scenario))
	})
}

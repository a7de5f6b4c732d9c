// Package cache stores solved puzzles in an embedded BadgerDB keyed by a
// digest of the grid and its weights, so repeated solves of the same
// warehouse skip the search entirely.
package cache

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"

	"sokoban/internal/puzzle"
	"sokoban/internal/warehouse"
)

// Config holds the store configuration.
type Config struct {
	// Path is the directory for database files. Required unless InMemory.
	Path string
	// InMemory skips disk persistence; used by tests.
	InMemory bool
	// Logger receives BadgerDB's internal logging. Nil disables it.
	Logger *slog.Logger
}

// Store is a solution cache. Safe for concurrent use.
type Store struct {
	db *badger.DB
}

// Entry is a cached solution.
type Entry struct {
	Actions []puzzle.Action `json:"actions"`
	Cost    int             `json:"cost"`
}

// Open creates the store, creating the directory when needed.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("cache: path is required for a persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("cache: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cache: open badger database: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a throwaway in-memory store.
func OpenInMemory() (*Store, error) {
	return Open(Config{InMemory: true})
}

func (s *Store) Close() error { return s.db.Close() }

// Key digests the canonical grid text plus the weight sequence. The render
// alone is not enough: weights change costs without changing the picture.
func Key(w *warehouse.Warehouse) []byte {
	h := sha256.New()
	h.Write([]byte(w.String()))
	fmt.Fprintf(h, "\n%v", w.Weights)
	return h.Sum(nil)
}

// Get looks up a cached solution. The second return is false on a miss.
func (s *Store) Get(w *warehouse.Warehouse) (*Entry, bool, error) {
	var entry Entry
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(Key(w))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get: %w", err)
	}
	return &entry, true, nil
}

// Put stores a solution.
func (s *Store) Put(w *warehouse.Warehouse, e *Entry) error {
	val, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache: encode entry: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(Key(w), val)
	})
	if err != nil {
		return fmt.Errorf("cache: put: %w", err)
	}
	return nil
}

// badgerLogger adapts slog to BadgerDB's logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

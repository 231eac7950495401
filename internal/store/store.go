// Package store persists the todo list as a pretty-printed JSON snapshot.
//
// Persistence is deliberately best-effort: the snapshot is rewritten in
// full after every mutation, load falls back to the tutorial defaults on
// any failure, and neither path surfaces errors to the interactive UI.
// Outcomes are reported through an optional Observer so callers can add
// diagnostics without changing that default behavior.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/timvw/todo-tui/internal/model"
	"github.com/timvw/todo-tui/internal/todo"
)

// DefaultPath is the snapshot filename, relative to the working
// directory. Kept in the project directory (not hidden, not under
// ~/.config) so each directory gets its own list and the file is easy
// to find and back up.
const DefaultPath = "todos.json"

// Op identifies a store operation in an Outcome.
type Op string

const (
	OpSave Op = "save"
	OpLoad Op = "load"
)

// Outcome describes one completed store operation.
type Outcome struct {
	Op       Op
	Items    int  // items written, or items in effect after a load
	Fallback bool // load only: defaults were used instead of the snapshot
	Err      error
	Duration time.Duration
}

// Observer receives the outcome of every save and load. Must not block;
// it runs synchronously on the mutation path.
type Observer func(Outcome)

// Store reads and writes the snapshot file at a fixed path.
type Store struct {
	path    string
	observe Observer
}

// Option configures a Store.
type Option func(*Store)

// WithObserver registers an outcome observer.
func WithObserver(o Observer) Option {
	return func(s *Store) { s.observe = o }
}

// New creates a store for the given snapshot path. An empty path uses
// DefaultPath.
func New(path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultPath
	}
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the snapshot path.
func (s *Store) Path() string { return s.path }

// Save overwrites the snapshot with the given items, pretty-printed so
// the file stays human-diffable. Selection, mode and input buffer are
// session state and are never written.
//
// The returned error exists for non-interactive callers; the TUI ignores
// it — the mutation already succeeded in memory and the next successful
// save reconciles the file.
func (s *Store) Save(items []model.Item) error {
	start := time.Now()
	err := s.write(items)
	s.notify(Outcome{Op: OpSave, Items: len(items), Err: err, Duration: time.Since(start)})
	return err
}

func (s *Store) write(items []model.Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Load reads and decodes the snapshot. Missing file, unreadable file and
// malformed content all return an error; an existing but empty list
// returns an empty slice and no error. Most callers want LoadOrDefault.
func (s *Store) Load() ([]model.Item, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	var items []model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return items, nil
}

// LoadOrDefault returns the persisted list, or the tutorial defaults
// when the snapshot is absent, unreadable, malformed, or empty. Failures
// are never surfaced: corruption or a first run must not block startup.
func (s *Store) LoadOrDefault() *todo.List {
	start := time.Now()
	items, err := s.Load()
	if err != nil || len(items) == 0 {
		l := todo.NewList()
		s.notify(Outcome{Op: OpLoad, Items: l.Len(), Fallback: true, Err: err, Duration: time.Since(start)})
		return l
	}
	s.notify(Outcome{Op: OpLoad, Items: len(items), Duration: time.Since(start)})
	return todo.FromItems(items)
}

func (s *Store) notify(o Outcome) {
	if s.observe != nil {
		s.observe(o)
	}
}

// Package store keeps live games keyed by id and serializes all mutation
// per game: every update runs with that table's own lock held, so
// concurrent action submissions for one game cannot interleave while
// different games proceed in parallel.
package store

import (
	"fmt"
	"sync"

	"github.com/sinjp/pokerd/internal/engine"
)

type entry struct {
	mu   sync.Mutex
	game *engine.Game
}

// Store is a key-addressed registry of live games.
type Store struct {
	mu     sync.RWMutex
	tables map[string]*entry
}

// New creates an empty store.
func New() *Store {
	return &Store{tables: make(map[string]*entry)}
}

// Add registers a new game under its id.
func (s *Store) Add(g *engine.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tables[g.ID]; exists {
		return fmt.Errorf("%w: game %q already exists", engine.ErrInvalidArgument, g.ID)
	}
	s.tables[g.ID] = &entry{game: g}
	return nil
}

// Get returns a snapshot of the game's current state.
func (s *Store) Get(id string) (*engine.Game, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Snapshot(), nil
}

// Update runs fn against the live game with the table's lock held and
// returns a snapshot of the resulting state. If fn returns an error the
// error is passed through; fn must not have mutated in that case (the
// engine validates before mutating).
func (s *Store) Update(id string, fn func(g *engine.Game) error) (*engine.Game, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := fn(e.game); err != nil {
		return nil, err
	}
	return e.game.Snapshot(), nil
}

// Remove drops a finished game from the registry.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tables, id)
}

// Len returns the number of live games.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables)
}

func (s *Store) lookup(id string) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.tables[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", engine.ErrGameNotFound, id)
	}
	return e, nil
}

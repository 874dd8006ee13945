package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/minaorangina/agricola/game"
	"github.com/minaorangina/agricola/internal/state"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrNilGame       = errors.New("cannot store a nil game")
)

type GameStore interface {
	AddGame(g *game.Game) error
	FindGame(gameID string) *game.Game
	FindActiveGame(gameID string) *game.Game
	FindFinishedGame(gameID string) *game.Game
	RemoveGame(gameID string) error
	IDs() []string
}

// InMemoryGameStore maps game id to game. Games are only stored when the
// host adds them.
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]*game.Game
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]*game.Game{},
	}
}

func (s *InMemoryGameStore) AddGame(g *game.Game) error {
	if g == nil {
		return ErrNilGame
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[g.ID()]; exists {
		return fmt.Errorf("game with id %s already exists", g.ID())
	}
	s.games[g.ID()] = g
	return nil
}

func (s *InMemoryGameStore) FindGame(ID string) *game.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.games[ID]
}

// FindActiveGame returns the game only while it can still be played or stopped
func (s *InMemoryGameStore) FindActiveGame(ID string) *game.Game {
	g := s.FindGame(ID)
	if g == nil || !state.Active.Contains(g.State()) {
		return nil
	}
	return g
}

func (s *InMemoryGameStore) FindFinishedGame(ID string) *game.Game {
	g := s.FindGame(ID)
	if g == nil || g.State() != state.Finished {
		return nil
	}
	return g
}

func (s *InMemoryGameStore) RemoveGame(ID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[ID]; !ok {
		return ErrUnknownGameID
	}
	delete(s.games, ID)
	return nil
}

// IDs lists the stored game ids in sorted order
func (s *InMemoryGameStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.games))
	for id := range s.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

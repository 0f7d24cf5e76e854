package player

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

const maxSessionIDLength = 64

// Store hands out one Player per listener session. Players are restored from
// the repository on first access and every mutation is saved and published.
type Store struct {
	mu          sync.Mutex
	players     map[string]*Player
	repo        Repository
	publisher   Publisher
	playerOpts  []Option
	saveTimeout time.Duration

	// detachMu is held for writing while players leave the store, so a
	// change saved concurrently never outlives the session
	detachMu sync.RWMutex
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithRepository persists every player mutation
func WithRepository(repo Repository) StoreOption {
	return func(s *Store) {
		s.repo = repo
	}
}

// WithPublisher forwards every player mutation, usually to a Hub
func WithPublisher(pub Publisher) StoreOption {
	return func(s *Store) {
		s.publisher = pub
	}
}

// WithPlayerOptions applies opts to every player the store creates
func WithPlayerOptions(opts ...Option) StoreOption {
	return func(s *Store) {
		s.playerOpts = append(s.playerOpts, opts...)
	}
}

// WithSaveTimeout bounds each repository write
func WithSaveTimeout(d time.Duration) StoreOption {
	return func(s *Store) {
		s.saveTimeout = d
	}
}

// NewStore creates an empty session store
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		players:     make(map[string]*Player),
		saveTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the player of sessionID, creating it when the session is new
func (s *Store) Get(ctx context.Context, sessionID string) (*Player, error) {
	if sessionID == "" || len(sessionID) > maxSessionIDLength {
		return nil, ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.players[sessionID]; ok {
		return p, nil
	}

	opts := append([]Option{}, s.playerOpts...)
	if s.repo != nil {
		saved, err := s.repo.Load(ctx, sessionID)
		switch {
		case err == nil:
			opts = append(opts, WithState(saved))
		case errors.Is(err, ErrSessionNotFound):
		default:
			return nil, fmt.Errorf("restoring player: %w", err)
		}
	}
	var p *Player
	opts = append(opts, WithObserver(s.observer(sessionID, func() *Player { return p })))

	p = New(opts...)
	s.players[sessionID] = p
	return p, nil
}

// Forget drops the session from memory and storage
func (s *Store) Forget(ctx context.Context, sessionID string) error {
	s.detach(sessionID)

	if s.repo == nil {
		return nil
	}
	if err := s.repo.Delete(ctx, sessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

// Len returns the number of sessions held in memory
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}

// PruneIdle removes sessions whose saved state has not changed since before,
// from storage and from memory. Stores without a pruning repository keep
// everything.
func (s *Store) PruneIdle(ctx context.Context, before time.Time) (int, error) {
	pruner, ok := s.repo.(IdlePruner)
	if !ok {
		return 0, nil
	}

	ids, err := pruner.PruneIdle(ctx, before)
	if err != nil {
		return 0, err
	}

	s.detach(ids...)
	return len(ids), nil
}

// detach removes sessions from memory. Players already handed out keep
// working but their changes are no longer saved or published.
func (s *Store) detach(sessionIDs ...string) {
	s.detachMu.Lock()
	defer s.detachMu.Unlock()

	s.mu.Lock()
	for _, id := range sessionIDs {
		delete(s.players, id)
	}
	s.mu.Unlock()
}

func (s *Store) holds(sessionID string, p *Player) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return p != nil && s.players[sessionID] == p
}

func (s *Store) observer(sessionID string, self func() *Player) Observer {
	return func(state State) {
		s.detachMu.RLock()
		defer s.detachMu.RUnlock()

		if !s.holds(sessionID, self()) {
			log.Printf("[DEBUG] Ignoring change to detached player session %s", sessionID)
			return
		}

		if s.repo != nil {
			ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
			if err := s.repo.Save(ctx, sessionID, state); err != nil {
				log.Printf("[WARN] Failed to persist player session %s: %v", sessionID, err)
			}
			cancel()
		}
		if s.publisher != nil {
			s.publisher.Publish(sessionID, state)
		}
	}
}

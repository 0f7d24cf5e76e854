package cleanup

import (
	"context"
	"log"
	"sync"
	"time"
)

// Pruner removes state that has been idle since before the given time and
// reports how much it removed
type Pruner interface {
	PruneIdle(ctx context.Context, before time.Time) (int, error)
}

// Service periodically prunes idle listener sessions
type Service struct {
	pruner          Pruner
	maxAge          time.Duration
	cleanupInterval time.Duration
	now             func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service
func NewService(pruner Pruner, maxAge, cleanupInterval time.Duration) *Service {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Hour
	}
	return &Service{
		pruner:          pruner,
		maxAge:          maxAge,
		cleanupInterval: cleanupInterval,
		now:             time.Now,
	}
}

// Start runs one cleanup and then keeps cleaning every interval until ctx
// is cancelled or Stop is called
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	// Run initial cleanup
	s.RunOnce(ctx)

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.RunOnce(ctx)
			case <-ctx.Done():
				log.Println("[INFO] Cleanup service stopped")
				return
			}
		}
	}()

	log.Printf("[INFO] Cleanup service started (interval: %v, max age: %v)", s.cleanupInterval, s.maxAge)
}

// Stop stops the cleanup service and waits for a running cleanup to finish
func (s *Service) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// RunOnce prunes everything idle for longer than maxAge
func (s *Service) RunOnce(ctx context.Context) int {
	if s.maxAge <= 0 {
		return 0
	}

	removed, err := s.pruner.PruneIdle(ctx, s.now().Add(-s.maxAge))
	if err != nil {
		log.Printf("[ERROR] Cleanup failed: %v", err)
		return removed
	}
	if removed > 0 {
		log.Printf("[INFO] Removed %d idle player session(s)", removed)
	}
	return removed
}

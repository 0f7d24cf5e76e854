package player

import (
	"context"
	"time"
)

// Repository persists player snapshots per listener session
type Repository interface {
	Load(ctx context.Context, sessionID string) (State, error)
	Save(ctx context.Context, sessionID string, state State) error
	Delete(ctx context.Context, sessionID string) error
}

// Publisher receives every snapshot produced by a session's player
type Publisher interface {
	Publish(sessionID string, state State)
}

// IdlePruner is implemented by repositories that can drop stale sessions
type IdlePruner interface {
	PruneIdle(ctx context.Context, before time.Time) ([]string, error)
}

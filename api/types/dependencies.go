package types

import (
	"context"

	"github.com/killallgit/podcastr/internal/database"
	"github.com/killallgit/podcastr/internal/services/auth"
	"github.com/killallgit/podcastr/internal/services/cache"
	"github.com/killallgit/podcastr/internal/services/episodes"
	"github.com/killallgit/podcastr/internal/services/pages"
	"github.com/killallgit/podcastr/internal/services/player"
	"github.com/killallgit/podcastr/pkg/validator"
)

// PageRenderer serves generated HTML pages
type PageRenderer interface {
	Home(ctx context.Context) (*pages.RenderedPage, error)
	Page(ctx context.Context, slug string) (*pages.RenderedPage, error)
	RenderError(status int, message string) ([]byte, error)
}

// PageRevalidator regenerates pages on demand
type PageRevalidator interface {
	Revalidate(ctx context.Context, slug string) (*pages.RenderedPage, error)
}

// PlayerStore hands out the player of a listener session
type PlayerStore interface {
	Get(ctx context.Context, sessionID string) (*player.Player, error)
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	EpisodeService episodes.EpisodeService
	Pages          PageRenderer
	PlayerStore    PlayerStore
	PlayerHub      *player.Hub
	Validator      *validator.Validator
	ResponseCache  cache.Cache
	Revalidator    PageRevalidator
	Auth           *auth.Service

	// Number of episodes in listings and in the "latest" playlist
	ListLimit int

	// Origins allowed to open the player websocket besides the server's own
	AllowedOrigins []string
}

package episodes

import (
	"context"

	"github.com/killallgit/podcastr/internal/models"
	"github.com/killallgit/podcastr/internal/services/player"
)

// EpisodeFetcher defines the interface for fetching episodes from the upstream API
type EpisodeFetcher interface {
	ListEpisodes(ctx context.Context, params ListParams) ([]APIEpisode, error)
	GetEpisode(ctx context.Context, id string) (*APIEpisode, error)
}

// EpisodeCache defines the interface for caching episode data
type EpisodeCache interface {
	// Single episode operations
	GetEpisode(ctx context.Context, key string) (*models.Episode, bool)
	SetEpisode(ctx context.Context, key string, episode *models.Episode)

	// Episode list operations
	GetEpisodeList(ctx context.Context, key string) ([]models.Episode, bool)
	SetEpisodeList(ctx context.Context, key string, episodes []models.Episode)

	// Cache management
	Invalidate(ctx context.Context, key string)
}

// EpisodeService defines the business logic interface for episode operations
type EpisodeService interface {
	// Cached reads, used by the JSON API
	LatestEpisodes(ctx context.Context, limit int) ([]models.Episode, error)
	GetEpisode(ctx context.Context, id string) (*models.Episode, error)

	// Uncached reads that refresh the cache, used by page generation
	FetchLatestEpisodes(ctx context.Context, limit int) ([]models.Episode, error)
	FetchEpisode(ctx context.Context, id string) (*models.Episode, error)

	Transformer() EpisodeTransformer
}

// EpisodeTransformer defines the interface for transforming between different episode formats
type EpisodeTransformer interface {
	APIToModel(raw APIEpisode) (*models.Episode, error)
	ModelToDetail(episode *models.Episode) models.EpisodeDetail
	ModelToPlayer(episode *models.Episode) player.Episode
	ModelsToPlayer(list []models.Episode) []player.Episode
}

// CacheKeyGenerator defines the interface for generating cache keys
type CacheKeyGenerator interface {
	EpisodeByID(id string) string
	LatestEpisodes(limit int) string
}

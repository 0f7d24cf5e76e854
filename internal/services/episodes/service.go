package episodes

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/killallgit/podcastr/internal/models"
)

// Service implements the EpisodeService interface with business logic
type Service struct {
	fetcher     EpisodeFetcher
	cache       EpisodeCache
	transformer EpisodeTransformer
	keyGen      CacheKeyGenerator
}

// Ensure Service implements EpisodeService interface
var _ EpisodeService = (*Service)(nil)

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithCache enables caching of upstream reads
func WithCache(cache EpisodeCache) ServiceOption {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithTransformer replaces the default pt-BR transformer
func WithTransformer(t EpisodeTransformer) ServiceOption {
	return func(s *Service) {
		if t != nil {
			s.transformer = t
		}
	}
}

// WithKeyGenerator sets the cache key format
func WithKeyGenerator(keyGen CacheKeyGenerator) ServiceOption {
	return func(s *Service) {
		if keyGen != nil {
			s.keyGen = keyGen
		}
	}
}

// NewService creates a new episode service with optional configuration
func NewService(fetcher EpisodeFetcher, opts ...ServiceOption) *Service {
	s := &Service{
		fetcher:     fetcher,
		transformer: NewTransformer(""),
		keyGen:      NewKeyGenerator("episode"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Transformer returns the transformer used to build display values
func (s *Service) Transformer() EpisodeTransformer {
	return s.transformer
}

// LatestEpisodes returns the newest episodes, served from cache when possible
func (s *Service) LatestEpisodes(ctx context.Context, limit int) ([]models.Episode, error) {
	if limit <= 0 {
		return nil, NewValidationError("limit", "must be positive")
	}

	if s.cache != nil {
		if list, ok := s.cache.GetEpisodeList(ctx, s.keyGen.LatestEpisodes(limit)); ok {
			log.Printf("[DEBUG] Cache hit for latest %d episodes", limit)
			return list, nil
		}
	}

	return s.FetchLatestEpisodes(ctx, limit)
}

// GetEpisode returns one episode, served from cache when possible
func (s *Service) GetEpisode(ctx context.Context, id string) (*models.Episode, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, NewValidationError("id", "episode id cannot be empty")
	}

	if s.cache != nil {
		if episode, ok := s.cache.GetEpisode(ctx, s.keyGen.EpisodeByID(id)); ok {
			log.Printf("[DEBUG] Cache hit for episode %s", id)
			return episode, nil
		}
	}

	return s.FetchEpisode(ctx, id)
}

// FetchLatestEpisodes always asks the upstream API and refreshes the cache
func (s *Service) FetchLatestEpisodes(ctx context.Context, limit int) ([]models.Episode, error) {
	if limit <= 0 {
		return nil, NewValidationError("limit", "must be positive")
	}

	raw, err := s.fetcher.ListEpisodes(ctx, DefaultListParams(limit))
	if err != nil {
		return nil, fmt.Errorf("listing episodes: %w", err)
	}

	list := make([]models.Episode, 0, len(raw))
	for _, r := range raw {
		episode, err := s.transformer.APIToModel(r)
		if err != nil {
			return nil, fmt.Errorf("transforming episode %s: %w", r.ID, err)
		}
		list = append(list, *episode)
	}

	if s.cache != nil {
		s.cache.SetEpisodeList(ctx, s.keyGen.LatestEpisodes(limit), list)
		for i := range list {
			s.cache.SetEpisode(ctx, s.keyGen.EpisodeByID(list[i].ID), &list[i])
		}
	}

	return list, nil
}

// FetchEpisode always asks the upstream API and refreshes the cache
func (s *Service) FetchEpisode(ctx context.Context, id string) (*models.Episode, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, NewValidationError("id", "episode id cannot be empty")
	}

	raw, err := s.fetcher.GetEpisode(ctx, id)
	if err != nil {
		if IsNotFound(err) && s.cache != nil {
			s.cache.Invalidate(ctx, s.keyGen.EpisodeByID(id))
		}
		return nil, fmt.Errorf("fetching episode %s: %w", id, err)
	}

	episode, err := s.transformer.APIToModel(*raw)
	if err != nil {
		return nil, fmt.Errorf("transforming episode %s: %w", id, err)
	}

	if s.cache != nil {
		s.cache.SetEpisode(ctx, s.keyGen.EpisodeByID(id), episode)
	}

	return episode, nil
}

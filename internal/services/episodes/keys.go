package episodes

import "fmt"

// DefaultKeyGenerator implements CacheKeyGenerator with a consistent key format
type DefaultKeyGenerator struct {
	prefix string
}

// NewKeyGenerator creates a new key generator with an optional prefix
func NewKeyGenerator(prefix string) CacheKeyGenerator {
	if prefix == "" {
		prefix = "episode"
	}
	return &DefaultKeyGenerator{prefix: prefix}
}

// EpisodeByID generates a cache key for an episode by ID
func (g *DefaultKeyGenerator) EpisodeByID(id string) string {
	return fmt.Sprintf("%s:id:%s", g.prefix, id)
}

// LatestEpisodes generates a cache key for the newest-first listing
func (g *DefaultKeyGenerator) LatestEpisodes(limit int) string {
	return fmt.Sprintf("%s:latest:limit:%d", g.prefix, limit)
}

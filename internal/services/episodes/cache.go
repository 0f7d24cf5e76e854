package episodes

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/killallgit/podcastr/internal/models"
	"github.com/killallgit/podcastr/internal/services/cache"
)

// Cache stores episodes as JSON in a shared cache.Cache backend
type Cache struct {
	backend cache.Cache
	ttl     time.Duration
	listTTL time.Duration
}

// Ensure Cache implements EpisodeCache interface
var _ EpisodeCache = (*Cache)(nil)

// NewCache creates an episode cache. listTTL applies to listings, ttl to
// single episodes.
func NewCache(backend cache.Cache, ttl, listTTL time.Duration) *Cache {
	if listTTL <= 0 {
		listTTL = ttl
	}
	return &Cache{
		backend: backend,
		ttl:     ttl,
		listTTL: listTTL,
	}
}

func (c *Cache) GetEpisode(ctx context.Context, key string) (*models.Episode, bool) {
	var episode models.Episode
	if !c.get(ctx, key, &episode) {
		return nil, false
	}
	return &episode, true
}

func (c *Cache) SetEpisode(ctx context.Context, key string, episode *models.Episode) {
	c.set(ctx, key, episode, c.ttl)
}

func (c *Cache) GetEpisodeList(ctx context.Context, key string) ([]models.Episode, bool) {
	var list []models.Episode
	if !c.get(ctx, key, &list) {
		return nil, false
	}
	return list, true
}

func (c *Cache) SetEpisodeList(ctx context.Context, key string, episodes []models.Episode) {
	c.set(ctx, key, episodes, c.listTTL)
}

func (c *Cache) Invalidate(ctx context.Context, key string) {
	if err := c.backend.Delete(ctx, key); err != nil {
		log.Printf("[WARN] Failed to invalidate cache key %s: %v", key, err)
	}
}

func (c *Cache) get(ctx context.Context, key string, dst any) bool {
	data, ok := c.backend.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("[WARN] Dropping undecodable cache entry %s: %v", key, err)
		c.Invalidate(ctx, key)
		return false
	}
	return true
}

func (c *Cache) set(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("[ERROR] Failed to encode cache entry %s: %v", key, err)
		return
	}
	if err := c.backend.Set(ctx, key, data, ttl); err != nil {
		log.Printf("[WARN] Failed to store cache entry %s: %v", key, err)
	}
}

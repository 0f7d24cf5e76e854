package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/podcastr/internal/services/cache"
	"github.com/killallgit/podcastr/internal/services/player"
	"github.com/killallgit/podcastr/pkg/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Server:      config.ServerConfig{Host: "127.0.0.1", Port: 8080},
		EpisodesAPI: config.EpisodesAPIConfig{BaseURL: baseURL, Timeout: 5 * time.Second},
		Pages: config.PagesConfig{
			SiteName:       "Podcastr",
			Locale:         "pt-BR",
			PrerenderLimit: 12,
			Revalidate:     time.Hour,
			Retention:      24 * time.Hour,
		},
		Database: config.DatabaseConfig{Path: ":memory:"},
		Cache: config.CacheConfig{
			Backend: "memory",
			Memory:  config.MemoryCacheConfig{MaxSizeMB: 8},
			API:     config.APICacheConfig{Enabled: true, EpisodeTTL: time.Hour, ListTTL: time.Minute},
		},
	}
}

func TestNewApplication_WebsocketOrigins(t *testing.T) {
	upstream := newUpstream(t)
	cfg := testConfig(upstream.URL)
	cfg.Security = config.SecurityConfig{EnableCORS: true, CORSOrigins: []string{"https://app.example"}}

	app, err := newApplication(context.Background(), cfg)
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, []string{"https://app.example"}, app.deps.AllowedOrigins)
}

func TestNewCacheBackend(t *testing.T) {
	cfg := testConfig("http://localhost:3333")

	backend, err := newCacheBackend(context.Background(), cfg)
	require.NoError(t, err)
	defer stopCache(backend)
	assert.IsType(t, &cache.MemoryCache{}, backend)

	cfg.Cache.Backend = "disk"
	_, err = newCacheBackend(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNewApplication(t *testing.T) {
	upstream := newUpstream(t)
	ctx := context.Background()

	app, err := newApplication(ctx, testConfig(upstream.URL))
	require.NoError(t, err)
	defer app.Close()

	require.NotNil(t, app.deps)
	assert.NotNil(t, app.deps.DB)
	assert.NotNil(t, app.deps.EpisodeService)
	assert.NotNil(t, app.deps.Pages)
	assert.NotNil(t, app.deps.Validator)
	assert.Equal(t, 12, app.deps.ListLimit)
	assert.Empty(t, app.deps.AllowedOrigins, "CORS disabled keeps the websocket same-origin")

	t.Run("player sessions are persisted and published", func(t *testing.T) {
		sub := app.hub.Subscribe("listener-1")
		defer sub.Close()

		p, err := app.store.Get(ctx, "listener-1")
		require.NoError(t, err)
		p.Play(player.Episode{Title: "Faladev", URL: "https://example.com/a.m4a"})

		select {
		case state := <-sub.C:
			assert.True(t, state.IsPlaying)
			assert.Len(t, state.EpisodeList, 1)
		case <-time.After(time.Second):
			t.Fatal("no state published")
		}

		var count int64
		require.NoError(t, app.db.Table("player_sessions").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("pages render from the upstream API", func(t *testing.T) {
		page, err := app.pages.Page(ctx, "a-importancia-da-contribuicao-em-open-source")
		require.NoError(t, err)
		assert.Contains(t, string(page.HTML), "A importância da contribuição em Open Source")
	})
}

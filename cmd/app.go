package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/killallgit/podcastr/api/types"
	"github.com/killallgit/podcastr/internal/database"
	"github.com/killallgit/podcastr/internal/models"
	"github.com/killallgit/podcastr/internal/services/auth"
	"github.com/killallgit/podcastr/internal/services/cache"
	"github.com/killallgit/podcastr/internal/services/cleanup"
	"github.com/killallgit/podcastr/internal/services/episodes"
	"github.com/killallgit/podcastr/internal/services/pages"
	"github.com/killallgit/podcastr/internal/services/player"
	"github.com/killallgit/podcastr/pkg/config"
	"github.com/killallgit/podcastr/pkg/redisclient"
	"github.com/killallgit/podcastr/pkg/validator"
)

// site bundles the services shared by the serve and build commands
type site struct {
	backend  cache.Cache
	episodes *episodes.Service
	pages    *pages.Generator
}

// application is a fully wired server process
type application struct {
	*site
	db      *database.DB
	store   *player.Store
	hub     *player.Hub
	janitor *cleanup.Service
	deps    *types.Dependencies
}

// newCacheBackend opens the configured byte cache
func newCacheBackend(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "redis":
		rc, err := redisclient.NewRedisClient(ctx, &redisclient.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		log.Printf("[INFO] Using redis cache at %s:%d", cfg.Redis.Host, cfg.Redis.Port)
		return cache.NewRedisCache(rc, "podcastr"), nil
	case "memory", "":
		log.Printf("[INFO] Using in-memory cache (max %d MB)", cfg.Cache.Memory.MaxSizeMB)
		return cache.NewMemoryCache(cfg.Cache.Memory.MaxSizeMB), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Cache.Backend)
	}
}

// newSite wires the episodes API client, its cache and the page generator
func newSite(ctx context.Context, cfg *config.Config) (*site, error) {
	backend, err := newCacheBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client := episodes.NewClient(episodes.Config{
		BaseURL:   cfg.EpisodesAPI.BaseURL,
		UserAgent: cfg.EpisodesAPI.UserAgent,
		Timeout:   cfg.EpisodesAPI.Timeout,
	})

	service := episodes.NewService(client,
		episodes.WithCache(episodes.NewCache(backend, cfg.Cache.API.EpisodeTTL, cfg.Cache.API.ListTTL)),
		episodes.WithTransformer(episodes.NewTransformer(cfg.Pages.Locale)),
	)

	generator, err := pages.NewGenerator(service, backend, pages.Options{
		SiteName:       cfg.Pages.SiteName,
		PrerenderLimit: cfg.Pages.PrerenderLimit,
		Revalidate:     cfg.Pages.Revalidate,
		Retention:      cfg.Pages.Retention,
		FetchTimeout:   cfg.EpisodesAPI.Timeout,
	})
	if err != nil {
		stopCache(backend)
		return nil, fmt.Errorf("failed to create page generator: %w", err)
	}

	return &site{backend: backend, episodes: service, pages: generator}, nil
}

// Close waits for background regenerations and releases the cache
func (s *site) Close() {
	s.pages.Wait()
	stopCache(s.backend)
}

// newApplication wires the site, the database and the player sessions
func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	var tokens *auth.Service
	if cfg.Security.RevalidateSecret != "" {
		var err error
		if tokens, err = auth.NewService(cfg.Security.RevalidateSecret); err != nil {
			return nil, err
		}
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	s, err := newSite(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	hub := player.NewHub()
	store := player.NewStore(
		player.WithRepository(player.NewRepository(db.DB)),
		player.WithPublisher(hub),
	)

	deps := &types.Dependencies{
		DB:             db,
		EpisodeService: s.episodes,
		Pages:          s.pages,
		PlayerStore:    store,
		PlayerHub:      hub,
		Validator:      validator.New(),
		ResponseCache:  s.backend,
		ListLimit:      cfg.Pages.PrerenderLimit,
	}

	if cfg.Security.EnableCORS {
		deps.AllowedOrigins = cfg.Security.CORSOrigins
	}

	if tokens != nil {
		deps.Auth = tokens
		deps.Revalidator = s.pages
	} else {
		log.Println("[INFO] No revalidate secret configured, on-demand revalidation disabled")
	}

	janitor := cleanup.NewService(store, cfg.Player.SessionMaxAge, cfg.Player.CleanupInterval)

	return &application{site: s, db: db, store: store, hub: hub, janitor: janitor, deps: deps}, nil
}

// Close releases everything the application opened
func (a *application) Close() {
	a.janitor.Stop()
	a.hub.Close()
	a.site.Close()
	if err := a.db.Close(); err != nil {
		log.Printf("[WARN] Failed to close database: %v", err)
	}
}

func stopCache(backend cache.Cache) {
	if stopper, ok := backend.(cache.Stopper); ok {
		stopper.Stop()
	}
}

package api

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/podcastr/api/auth"
	"github.com/killallgit/podcastr/api/episodes"
	"github.com/killallgit/podcastr/api/health"
	"github.com/killallgit/podcastr/api/middleware"
	"github.com/killallgit/podcastr/api/pages"
	"github.com/killallgit/podcastr/api/player"
	"github.com/killallgit/podcastr/api/types"
	"github.com/killallgit/podcastr/api/version"
	_ "github.com/killallgit/podcastr/docs/swagger"
	authService "github.com/killallgit/podcastr/internal/services/auth"
	"github.com/killallgit/podcastr/pkg/config"
)

// RegisterRoutes registers all routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, cfg *config.Config, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler(deps))

	if deps.Pages != nil {
		pages.RegisterRoutes(engine, deps)
	}

	v1 := engine.Group("/api/v1")

	if deps.EpisodeService != nil {
		episodeGroup := v1.Group("/episodes")
		if cfg.RateLimiting.Enabled {
			episodeGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, "episodes", cfg.RateLimiting.RPS, cfg.RateLimiting.Burst))
		}
		if deps.ResponseCache != nil {
			episodeGroup.Use(middleware.CacheMiddleware(middleware.CacheConfig{
				Cache:      deps.ResponseCache,
				Enabled:    cfg.Cache.API.Enabled,
				DefaultTTL: cfg.Cache.API.ListTTL,
				TTLByPath: map[string]time.Duration{
					"/api/v1/episodes/": cfg.Cache.API.EpisodeTTL,
				},
			}))
		}
		episodes.RegisterRoutes(episodeGroup, deps)
	}

	if deps.Revalidator != nil && deps.Auth != nil {
		pagesGroup := v1.Group("/pages")
		pagesGroup.Use(auth.RequireScope(deps.Auth, authService.ScopeRevalidate))
		pages.RegisterAPIRoutes(pagesGroup, deps)
	}

	if deps.PlayerStore != nil {
		playerGroup := v1.Group("/player")
		playerGroup.Use(PlayerSession(cfg.Player.SessionCookie, cfg.Player.SessionMaxAge))
		if cfg.RateLimiting.Enabled {
			// player controls are clicked in bursts, allow twice the general rate
			playerGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, "player", cfg.RateLimiting.RPS*2, cfg.RateLimiting.Burst*2))
		}
		player.RegisterRoutes(playerGroup, deps)
	}

	return nil
}

// NotFoundHandler answers JSON for API paths and an HTML page otherwise
func NotFoundHandler(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "The requested endpoint was not found",
				Error:   "NOT_FOUND",
				Details: gin.H{"path": c.Request.URL.Path},
			})
			return
		}
		pages.RenderError(c, deps, http.StatusNotFound, "Página não encontrada.")
	}
}

package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		setDefaults()

		viper.SetEnvPrefix("PODCASTR")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !os.IsNotExist(err) && !errors.As(err, &notFound) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	baseURL := viper.GetString("episodes_api.base_url")
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return fmt.Errorf("invalid episodes API base URL %q: %w", baseURL, err)
	}

	switch viper.GetString("cache.backend") {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown cache backend: %s", viper.GetString("cache.backend"))
	}

	if viper.GetString("database.path") == "" {
		log.Println("[WARN] No database path configured, player sessions will not survive restarts")
	}

	// Auto-correct invalid prerender limit
	if viper.GetInt("pages.prerender_limit") <= 0 {
		viper.Set("pages.prerender_limit", 12)
	}

	if viper.GetDuration("pages.revalidate") <= 0 {
		viper.Set("pages.revalidate", 24*time.Hour)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if _, err := url.ParseRequestURI(c.EpisodesAPI.BaseURL); err != nil {
		return fmt.Errorf("invalid episodes API base URL %q: %w", c.EpisodesAPI.BaseURL, err)
	}

	if c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("unknown cache backend: %s", c.Cache.Backend)
	}

	if c.Pages.PrerenderLimit <= 0 {
		c.Pages.PrerenderLimit = 12
	}

	if c.Pages.Revalidate <= 0 {
		c.Pages.Revalidate = 24 * time.Hour
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Upstream episodes API defaults
	viper.SetDefault("episodes_api.base_url", "http://localhost:3333")
	viper.SetDefault("episodes_api.timeout", 10*time.Second)
	viper.SetDefault("episodes_api.user_agent", "Podcastr/1.0")

	// Static generation defaults
	viper.SetDefault("pages.site_name", "Podcastr")
	viper.SetDefault("pages.locale", "pt-BR")
	viper.SetDefault("pages.prerender_limit", 12)
	viper.SetDefault("pages.revalidate", 24*time.Hour)
	viper.SetDefault("pages.retention", 7*24*time.Hour)
	viper.SetDefault("pages.output_dir", "./out")
	viper.SetDefault("pages.prerender_on_boot", true)

	// Database defaults
	viper.SetDefault("database.path", "./data/podcastr.db")
	viper.SetDefault("database.verbose", false)

	// Cache defaults
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.memory.max_size_mb", 64)
	viper.SetDefault("cache.api.enabled", true)
	viper.SetDefault("cache.api.episode_ttl", 24*time.Hour)
	viper.SetDefault("cache.api.list_ttl", 10*time.Minute)

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Player defaults
	viper.SetDefault("player.session_cookie", "podcastr_session")
	viper.SetDefault("player.session_max_age", 30*24*time.Hour)
	viper.SetDefault("player.cleanup_interval", time.Hour)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.rps", 10)
	viper.SetDefault("rate_limiting.burst", 20)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.revalidate_secret", "")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
}

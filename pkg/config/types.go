package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string            `mapstructure:"environment"`
	Server       ServerConfig      `mapstructure:"server"`
	EpisodesAPI  EpisodesAPIConfig `mapstructure:"episodes_api"`
	Pages        PagesConfig       `mapstructure:"pages"`
	Database     DatabaseConfig    `mapstructure:"database"`
	Cache        CacheConfig       `mapstructure:"cache"`
	Redis        RedisConfig       `mapstructure:"redis"`
	Player       PlayerConfig      `mapstructure:"player"`
	RateLimiting RateLimitConfig   `mapstructure:"rate_limiting"`
	Security     SecurityConfig    `mapstructure:"security"`
	Logging      LoggingConfig     `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// EpisodesAPIConfig contains settings for the upstream episodes REST API
type EpisodesAPIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// PagesConfig contains static generation settings
type PagesConfig struct {
	SiteName        string        `mapstructure:"site_name"`
	Locale          string        `mapstructure:"locale"`
	PrerenderLimit  int           `mapstructure:"prerender_limit"`
	Revalidate      time.Duration `mapstructure:"revalidate"`
	Retention       time.Duration `mapstructure:"retention"`
	OutputDir       string        `mapstructure:"output_dir"`
	PrerenderOnBoot bool          `mapstructure:"prerender_on_boot"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// CacheConfig contains cache settings
type CacheConfig struct {
	Backend string            `mapstructure:"backend"`
	Memory  MemoryCacheConfig `mapstructure:"memory"`
	API     APICacheConfig    `mapstructure:"api"`
}

// MemoryCacheConfig contains in-memory cache settings
type MemoryCacheConfig struct {
	MaxSizeMB int64 `mapstructure:"max_size_mb"`
}

// APICacheConfig contains API response cache settings
type APICacheConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	EpisodeTTL time.Duration `mapstructure:"episode_ttl"`
	ListTTL    time.Duration `mapstructure:"list_ttl"`
}

// RedisConfig contains redis connection settings
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// PlayerConfig contains listener session settings
type PlayerConfig struct {
	SessionCookie string        `mapstructure:"session_cookie"`
	SessionMaxAge time.Duration `mapstructure:"session_max_age"`

	// CleanupInterval is how often sessions idle for SessionMaxAge are pruned
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	RPS     int  `mapstructure:"rps"`
	Burst   int  `mapstructure:"burst"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`

	// RevalidateSecret signs operator tokens; empty disables on-demand revalidation
	RevalidateSecret string `mapstructure:"revalidate_secret"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

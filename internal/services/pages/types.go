package pages

import (
	"context"
	"errors"
	"time"

	"github.com/killallgit/podcastr/internal/models"
	"github.com/killallgit/podcastr/internal/services/episodes"
)

const (
	// DefaultPrerenderLimit is the number of newest episodes rendered ahead of time
	DefaultPrerenderLimit = 12

	// DefaultRevalidate is how long a rendered page is considered fresh
	DefaultRevalidate = 24 * time.Hour

	// DefaultRetention is how long a stale page is kept around to be served
	DefaultRetention = 7 * 24 * time.Hour

	// DefaultFetchTimeout bounds background regeneration
	DefaultFetchTimeout = 15 * time.Second

	// DefaultConcurrency bounds concurrent renders during Prerender and Export
	DefaultConcurrency = 4

	// homeSlug identifies the episode list page, never a valid episode slug
	homeSlug = ""
)

var (
	ErrPageNotFound = errors.New("page not found")
	ErrInvalidSlug  = errors.New("invalid slug")
)

// EpisodeSource is what page generation needs from the episode catalog
type EpisodeSource interface {
	FetchLatestEpisodes(ctx context.Context, limit int) ([]models.Episode, error)
	FetchEpisode(ctx context.Context, id string) (*models.Episode, error)
	Transformer() episodes.EpisodeTransformer
}

// RenderedPage is a generated HTML document plus its freshness window
type RenderedPage struct {
	Slug         string    `json:"slug"`
	HTML         []byte    `json:"html"`
	GeneratedAt  time.Time `json:"generated_at"`
	RevalidateAt time.Time `json:"revalidate_at"`
}

// Stale reports whether the page should be regenerated
func (p *RenderedPage) Stale(now time.Time) bool {
	return !now.Before(p.RevalidateAt)
}

// Props are the values an episode page is rendered from
type Props struct {
	Episode    models.EpisodeDetail `json:"episode"`
	Revalidate time.Duration        `json:"revalidate"`
}

// Options configures a Generator
type Options struct {
	SiteName       string
	PrerenderLimit int
	Revalidate     time.Duration
	Retention      time.Duration
	FetchTimeout   time.Duration
	Concurrency    int
}

func (o Options) withDefaults() Options {
	if o.SiteName == "" {
		o.SiteName = "Podcastr"
	}
	if o.PrerenderLimit <= 0 {
		o.PrerenderLimit = DefaultPrerenderLimit
	}
	if o.Revalidate <= 0 {
		o.Revalidate = DefaultRevalidate
	}
	if o.Retention < o.Revalidate {
		o.Retention = max(DefaultRetention, o.Revalidate)
	}
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = DefaultFetchTimeout
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	return o
}

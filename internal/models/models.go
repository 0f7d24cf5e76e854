package models

import (
	"time"
)

// Episode is a single episode record as served by the upstream episodes API
type Episode struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Members     string    `json:"members"`
	PublishedAt time.Time `json:"published_at"`
	Thumbnail   string    `json:"thumbnail"`
	Description string    `json:"description"`

	// Media information
	Duration int    `json:"duration"` // Duration in seconds
	URL      string `json:"url"`
	FileType string `json:"file_type,omitempty"`
}

// EpisodeDetail holds the display-ready values rendered on an episode page
type EpisodeDetail struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Members          string `json:"members"`
	PublishedAt      string `json:"published_at"` // Formatted for the configured locale
	Thumbnail        string `json:"thumbnail"`
	Duration         int    `json:"duration"`
	DurationAsString string `json:"durationAsString"`
	URL              string `json:"url"`
	Description      string `json:"description"`
}

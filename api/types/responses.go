package types

import (
	"time"

	"github.com/killallgit/podcastr/internal/models"
	"github.com/killallgit/podcastr/internal/services/player"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// EpisodesResponse for episode lists
type EpisodesResponse struct {
	BaseResponse
	Episodes []models.EpisodeDetail `json:"episodes"`
	Count    int                    `json:"count"` // Number of results in this response
}

// SingleEpisodeResponse for getting a single episode
type SingleEpisodeResponse struct {
	BaseResponse
	Episode *models.EpisodeDetail `json:"episode"`
}

// PlayerStateResponse carries a player snapshot
type PlayerStateResponse struct {
	BaseResponse
	SessionID string       `json:"sessionId"`
	State     player.State `json:"state"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`   // Error code/type
	Details any    `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Timestamp string         `json:"timestamp"`
	Services  map[string]any `json:"services,omitempty"`
}

// RevalidateResponse describes a freshly generated page
type RevalidateResponse struct {
	BaseResponse
	Slug         string    `json:"slug"`
	GeneratedAt  time.Time `json:"generatedAt"`
	RevalidateAt time.Time `json:"revalidateAt"`
}

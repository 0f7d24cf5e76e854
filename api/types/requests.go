package types

import "github.com/killallgit/podcastr/internal/services/player"

// PlayRequest replaces the playlist with a single episode
type PlayRequest struct {
	Episode player.Episode `json:"episode" validate:"required"`
}

// PlayListRequest replaces the playlist and starts at Index
type PlayListRequest struct {
	Episodes []player.Episode `json:"episodes" validate:"max=500,dive"`
	Index    int              `json:"index" validate:"gte=0" example:"0"`
}

// PlayLatestRequest starts the newest-episodes playlist at Index
type PlayLatestRequest struct {
	Index int `json:"index" validate:"gte=0" example:"0"`
}

// SetPlayingRequest reports the media element state
type SetPlayingRequest struct {
	IsPlaying *bool `json:"isPlaying" validate:"required"`
}

// RevalidateRequest names the page to regenerate, empty for the home page
type RevalidateRequest struct {
	Slug string `json:"slug" validate:"max=256" example:"a-importancia-da-contribuicao-em-open-source"`
}

package episodes

import (
	"github.com/killallgit/podcastr/internal/models"
	"github.com/killallgit/podcastr/internal/services/player"
)

// Transformer converts upstream records into the shapes used by pages,
// the JSON API and the player
type Transformer struct {
	locale string
}

// Ensure Transformer implements EpisodeTransformer interface
var _ EpisodeTransformer = (*Transformer)(nil)

// NewTransformer creates a transformer formatting dates for locale
func NewTransformer(locale string) *Transformer {
	if locale == "" {
		locale = "pt-BR"
	}
	return &Transformer{locale: locale}
}

// APIToModel converts an upstream record. A missing or malformed
// published_at is an error since every page shows it.
func (t *Transformer) APIToModel(raw APIEpisode) (*models.Episode, error) {
	if raw.ID == "" {
		return nil, NewValidationError("id", "episode id is missing")
	}

	publishedAt, err := ParsePublishedAt(raw.PublishedAt)
	if err != nil {
		return nil, err
	}

	return &models.Episode{
		ID:          string(raw.ID),
		Title:       raw.Title,
		Members:     raw.Members,
		PublishedAt: publishedAt,
		Thumbnail:   raw.Thumbnail,
		Description: raw.Description,
		Duration:    int(raw.File.Duration),
		URL:         raw.File.URL,
		FileType:    raw.File.Type,
	}, nil
}

// ModelToDetail produces the display values of an episode page
func (t *Transformer) ModelToDetail(episode *models.Episode) models.EpisodeDetail {
	return models.EpisodeDetail{
		ID:               episode.ID,
		Title:            episode.Title,
		Members:          episode.Members,
		PublishedAt:      FormatPublishedAt(episode.PublishedAt, t.locale),
		Thumbnail:        episode.Thumbnail,
		Duration:         episode.Duration,
		DurationAsString: FormatDuration(episode.Duration),
		URL:              episode.URL,
		Description:      episode.Description,
	}
}

// ModelToPlayer produces the value handed to the player
func (t *Transformer) ModelToPlayer(episode *models.Episode) player.Episode {
	return player.Episode{
		ID:        episode.ID,
		Title:     episode.Title,
		Members:   episode.Members,
		Thumbnail: episode.Thumbnail,
		Duration:  episode.Duration,
		URL:       episode.URL,
	}
}

// ModelsToPlayer converts a whole listing, preserving order
func (t *Transformer) ModelsToPlayer(list []models.Episode) []player.Episode {
	out := make([]player.Episode, 0, len(list))
	for i := range list {
		out = append(out, t.ModelToPlayer(&list[i]))
	}
	return out
}

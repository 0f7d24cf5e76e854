package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/killallgit/podcastr/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepository stores player sessions in the player_sessions table
type GormRepository struct {
	db *gorm.DB
}

// NewRepository creates a new gorm backed player repository
func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Load returns the saved state for sessionID or ErrSessionNotFound
func (r *GormRepository) Load(ctx context.Context, sessionID string) (State, error) {
	var row models.PlayerSession
	err := r.db.WithContext(ctx).First(&row, "id = ?", sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return State{}, ErrSessionNotFound
		}
		return State{}, fmt.Errorf("loading player session %s: %w", sessionID, err)
	}

	var episodes []Episode
	if len(row.EpisodeList) > 0 {
		if err := json.Unmarshal(row.EpisodeList, &episodes); err != nil {
			return State{}, fmt.Errorf("decoding episode list of session %s: %w", sessionID, err)
		}
	}

	return State{
		EpisodeList:         episodes,
		CurrentEpisodeIndex: row.CurrentEpisodeIndex,
		IsPlaying:           row.IsPlaying,
		IsPlayingOne:        row.IsPlayingOne,
		IsLooping:           row.IsLooping,
		IsShuffling:         row.IsShuffling,
	}.normalize(), nil
}

// Save upserts the state of sessionID
func (r *GormRepository) Save(ctx context.Context, sessionID string, state State) error {
	episodes := state.EpisodeList
	if episodes == nil {
		episodes = []Episode{}
	}
	encoded, err := json.Marshal(episodes)
	if err != nil {
		return fmt.Errorf("encoding episode list: %w", err)
	}

	row := models.PlayerSession{
		ID:                  sessionID,
		EpisodeList:         datatypes.JSON(encoded),
		CurrentEpisodeIndex: state.CurrentEpisodeIndex,
		IsPlaying:           state.IsPlaying,
		IsPlayingOne:        state.IsPlayingOne,
		IsLooping:           state.IsLooping,
		IsShuffling:         state.IsShuffling,
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"episode_list", "current_episode_index", "is_playing",
			"is_playing_one", "is_looping", "is_shuffling", "updated_at",
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("saving player session %s: %w", sessionID, err)
	}
	return nil
}

// Delete removes the saved state of sessionID
func (r *GormRepository) Delete(ctx context.Context, sessionID string) error {
	result := r.db.WithContext(ctx).Delete(&models.PlayerSession{}, "id = ?", sessionID)
	if result.Error != nil {
		return fmt.Errorf("deleting player session %s: %w", sessionID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// PruneIdle deletes sessions not updated since before and returns their ids
func (r *GormRepository) PruneIdle(ctx context.Context, before time.Time) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PlayerSession{}).
			Where("updated_at < ?", before.UTC()).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		return tx.Delete(&models.PlayerSession{}, "id IN ?", ids).Error
	})
	if err != nil {
		return nil, fmt.Errorf("pruning idle player sessions: %w", err)
	}
	return ids, nil
}

package player

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcastr/api/types"
	playerService "github.com/killallgit/podcastr/internal/services/player"
	apperrors "github.com/killallgit/podcastr/pkg/errors"
)

// loadPlayer resolves the player of the request's session
func loadPlayer(c *gin.Context, deps *types.Dependencies) (*playerService.Player, string, bool) {
	if deps == nil || deps.PlayerStore == nil {
		types.SendError(c, apperrors.ServiceUnavailable("player store"))
		return nil, "", false
	}

	sessionID := types.SessionID(c)
	p, err := deps.PlayerStore.Get(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, playerService.ErrInvalidSession) {
			types.SendBadRequest(c, "Invalid player session")
			return nil, "", false
		}
		types.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeDatabaseQuery, "Failed to load player session"))
		return nil, "", false
	}
	return p, sessionID, true
}

func sendState(c *gin.Context, sessionID, message string, state playerService.State) {
	c.JSON(http.StatusOK, types.PlayerStateResponse{
		BaseResponse: types.BaseResponse{
			Status:  types.StatusOK,
			Message: message,
		},
		SessionID: sessionID,
		State:     state,
	})
}

// mutation wraps a player operation that cannot fail
func mutation(deps *types.Dependencies, message string, op func(p *playerService.Player) playerService.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, sessionID, ok := loadPlayer(c, deps)
		if !ok {
			return
		}
		sendState(c, sessionID, message, op(p))
	}
}

func sendIndexError(c *gin.Context, err error) {
	var indexErr playerService.IndexError
	appErr := apperrors.InvalidInput("Episode index out of range")
	if errors.As(err, &indexErr) {
		appErr.WithDetail("index", indexErr.Index).WithDetail("length", indexErr.Length)
	}
	types.SendError(c, appErr)
}

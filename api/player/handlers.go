package player

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcastr/api/types"
	playerService "github.com/killallgit/podcastr/internal/services/player"
	apperrors "github.com/killallgit/podcastr/pkg/errors"
)

// Get returns the player state of the session
// @Summary      Get player state
// @Description  Current playlist, index and playback flags of the listener session
// @Tags         player
// @Produce      json
// @Param        X-Player-Session header string false "Session id, defaults to the session cookie"
// @Success      200 {object} types.PlayerStateResponse "Player state"
// @Router       /api/v1/player [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return mutation(deps, "Player state", func(p *playerService.Player) playerService.State {
		return p.State()
	})
}

// Play replaces the playlist with one episode and starts it
// @Summary      Play episode
// @Tags         player
// @Accept       json
// @Produce      json
// @Param        request body types.PlayRequest true "Episode to play"
// @Success      200 {object} types.PlayerStateResponse "Player state"
// @Failure      400 {object} types.ErrorResponse "Invalid episode"
// @Router       /api/v1/player/play [post]
func Play(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PlayRequest
		if !types.BindJSONOrError(c, deps.Validator, &req) {
			return
		}

		p, sessionID, ok := loadPlayer(c, deps)
		if !ok {
			return
		}

		log.Printf("[DEBUG] Session %s playing episode %q", sessionID, req.Episode.Title)
		sendState(c, sessionID, "Playing episode", p.Play(req.Episode))
	}
}

// PlayList replaces the playlist and starts at the given index
// @Summary      Play list
// @Tags         player
// @Accept       json
// @Produce      json
// @Param        request body types.PlayListRequest true "Playlist and start index"
// @Success      200 {object} types.PlayerStateResponse "Player state"
// @Failure      400 {object} types.ErrorResponse "Invalid playlist or index out of range"
// @Router       /api/v1/player/playlist [post]
func PlayList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PlayListRequest
		if !types.BindJSONOrError(c, deps.Validator, &req) {
			return
		}

		p, sessionID, ok := loadPlayer(c, deps)
		if !ok {
			return
		}

		state, err := p.PlayList(req.Episodes, req.Index)
		if err != nil {
			sendIndexError(c, err)
			return
		}
		sendState(c, sessionID, "Playing list", state)
	}
}

// PlayLatest plays the newest episodes starting at the given index
// @Summary      Play latest episodes
// @Tags         player
// @Accept       json
// @Produce      json
// @Param        request body types.PlayLatestRequest true "Start index"
// @Success      200 {object} types.PlayerStateResponse "Player state"
// @Failure      400 {object} types.ErrorResponse "Index out of range"
// @Failure      502 {object} types.ErrorResponse "Episodes API unavailable"
// @Failure      504 {object} types.ErrorResponse "Episodes API timed out"
// @Router       /api/v1/player/playlist/latest [post]
func PlayLatest(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PlayLatestRequest
		if !types.BindJSONOrError(c, deps.Validator, &req) {
			return
		}

		if deps.EpisodeService == nil {
			types.SendError(c, apperrors.ServiceUnavailable("episode service"))
			return
		}

		p, sessionID, ok := loadPlayer(c, deps)
		if !ok {
			return
		}

		limit := deps.ListLimit
		if limit <= 0 {
			limit = 12
		}
		latest, err := deps.EpisodeService.LatestEpisodes(c.Request.Context(), limit)
		if err != nil {
			types.SendError(c, apperrors.ExternalServiceError("episodes-api", err))
			return
		}

		list := deps.EpisodeService.Transformer().ModelsToPlayer(latest)
		state, err := p.PlayList(list, req.Index)
		if err != nil {
			sendIndexError(c, err)
			return
		}
		sendState(c, sessionID, "Playing latest episodes", state)
	}
}

// TogglePlay flips isPlaying
// @Summary      Toggle play
// @Tags         player
// @Produce      json
// @Success      200 {object} types.PlayerStateResponse "Player state"
// @Router       /api/v1/player/toggle/play [post]
func TogglePlay(deps *types.Dependencies) gin.HandlerFunc {
	return mutation(deps, "Toggled play", (*playerService.Player).TogglePlay)
}

// ToggleLoop flips isLooping
// @Summary      Toggle loop
// @Tags         player
// @Produce      json
// @Success      200 {object} types.PlayerStateResponse "Player state"
// @Router       /api/v1/player/toggle/loop [post]
func ToggleLoop(deps *types.Dependencies) gin.HandlerFunc {
	return mutation(deps, "Toggled loop", (*playerService.Player).ToggleLoop)
}

// ToggleShuffle flips isShuffling
// @Summary      Toggle shuffle
// @Tags         player
// @Produce      json
// @Success      200 {object} types.PlayerStateResponse "Player state"
// @Router       /api/v1/player/toggle/shuffle [post]
func ToggleShuffle(deps *types.Dependencies) gin.HandlerFunc {
	return mutation(deps, "Toggled shuffle", (*playerService.Player).ToggleShuffle)
}

// SetPlaying records whether the media element is playing
// @Summary      Set playing state
// @Tags         player
// @Accept       json
// @Produce      json
// @Param        request body types.SetPlayingRequest true "Playing flag"
// @Success      200 {object} types.PlayerStateResponse "Player state"
// @Failure      400 {object} types.ErrorResponse "Missing isPlaying"
// @Router       /api/v1/player/playing [put]
func SetPlaying(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SetPlayingRequest
		if !types.BindJSONOrError(c, deps.Validator, &req) {
			return
		}
		if req.IsPlaying == nil {
			types.SendError(c, apperrors.ValidationFailed([]string{"isPlaying"}))
			return
		}

		p, sessionID, ok := loadPlayer(c, deps)
		if !ok {
			return
		}
		sendState(c, sessionID, "Playing state updated", p.SetPlayingState(*req.IsPlaying))
	}
}

// Next moves to the next episode, or a random one when shuffling
// @Summary      Next episode
// @Tags         player
// @Produce      json
// @Success      200 {object} types.PlayerStateResponse "Player state"
// @Router       /api/v1/player/next [post]
func Next(deps *types.Dependencies) gin.HandlerFunc {
	return mutation(deps, "Next episode", (*playerService.Player).PlayNext)
}

// Previous moves to the previous episode
// @Summary      Previous episode
// @Tags         player
// @Produce      json
// @Success      200 {object} types.PlayerStateResponse "Player state"
// @Router       /api/v1/player/previous [post]
func Previous(deps *types.Dependencies) gin.HandlerFunc {
	return mutation(deps, "Previous episode", (*playerService.Player).PlayPrevious)
}


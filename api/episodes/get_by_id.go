package episodes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcastr/api/types"
	episodesService "github.com/killallgit/podcastr/internal/services/episodes"
	apperrors "github.com/killallgit/podcastr/pkg/errors"
)

// GetByID returns a single episode
// @Summary      Get episode
// @Description  Episode details with formatted date and duration
// @Tags         episodes
// @Produce      json
// @Param        id path string true "Episode ID"
// @Success      200 {object} types.SingleEpisodeResponse "Episode"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Failure      502 {object} types.ErrorResponse "Episodes API unavailable"
// @Failure      504 {object} types.ErrorResponse "Episodes API timed out"
// @Router       /api/v1/episodes/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		log.Printf("[DEBUG] GetByID called with episode ID: %s", id)

		episode, err := deps.EpisodeService.GetEpisode(c.Request.Context(), id)
		if err != nil {
			if episodesService.IsNotFound(err) {
				log.Printf("[WARN] Episode not found - ID: %s", id)
				types.SendNotFound(c, "episode", id)
				return
			}
			types.SendError(c, apperrors.ExternalServiceError("episodes-api", err))
			return
		}

		detail := deps.EpisodeService.Transformer().ModelToDetail(episode)
		c.JSON(http.StatusOK, types.SingleEpisodeResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Episode retrieved",
			},
			Episode: &detail,
		})
	}
}

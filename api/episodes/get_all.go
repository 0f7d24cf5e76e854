package episodes

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcastr/api/types"
	"github.com/killallgit/podcastr/internal/models"
	apperrors "github.com/killallgit/podcastr/pkg/errors"
)

const maxListLimit = 100

// GetAll returns the latest episodes
// @Summary      List latest episodes
// @Description  Newest episodes first, formatted for display
// @Tags         episodes
// @Produce      json
// @Param        limit query int false "Number of episodes (1-100)" default(12)
// @Success      200 {object} types.EpisodesResponse "Latest episodes"
// @Failure      400 {object} types.ErrorResponse "Invalid limit"
// @Failure      502 {object} types.ErrorResponse "Episodes API unavailable"
// @Failure      504 {object} types.ErrorResponse "Episodes API timed out"
// @Router       /api/v1/episodes [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := deps.ListLimit
		if limit <= 0 {
			limit = 12
		}
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > maxListLimit {
				types.SendBadRequest(c, fmt.Sprintf("limit must be between 1 and %d", maxListLimit))
				return
			}
			limit = parsed
		}

		list, err := deps.EpisodeService.LatestEpisodes(c.Request.Context(), limit)
		if err != nil {
			types.SendError(c, apperrors.ExternalServiceError("episodes-api", err))
			return
		}

		transformer := deps.EpisodeService.Transformer()
		details := make([]models.EpisodeDetail, 0, len(list))
		for i := range list {
			details = append(details, transformer.ModelToDetail(&list[i]))
		}

		c.JSON(http.StatusOK, types.EpisodesResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Latest episodes",
			},
			Episodes: details,
			Count:    len(details),
		})
	}
}

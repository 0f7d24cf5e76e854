package pages

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcastr/api/types"
	pagesService "github.com/killallgit/podcastr/internal/services/pages"
	apperrors "github.com/killallgit/podcastr/pkg/errors"
)

// Revalidate regenerates a page on demand
// @Summary      Revalidate page
// @Description  Regenerates an episode page, or the home page for an empty slug, without waiting for its revalidate time
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body types.RevalidateRequest true "Page to regenerate"
// @Success      200 {object} types.RevalidateResponse "Page regenerated"
// @Failure      400 {object} types.ErrorResponse "Invalid slug"
// @Failure      401 {object} types.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} types.ErrorResponse "Episode not found, page dropped"
// @Failure      502 {object} types.ErrorResponse "Episodes API unavailable"
// @Failure      504 {object} types.ErrorResponse "Episodes API timed out"
// @Router       /api/v1/pages/revalidate [post]
func Revalidate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RevalidateRequest
		if !types.BindJSONOrError(c, deps.Validator, &req) {
			return
		}

		page, err := deps.Revalidator.Revalidate(c.Request.Context(), req.Slug)
		if err != nil {
			switch {
			case errors.Is(err, pagesService.ErrInvalidSlug):
				types.SendBadRequest(c, err.Error())
			case errors.Is(err, pagesService.ErrPageNotFound):
				types.SendNotFound(c, "episode", req.Slug)
			default:
				types.SendError(c, apperrors.ExternalServiceError("episodes-api", err))
			}
			return
		}

		message := "page regenerated"
		if req.Slug == "" {
			message = "home page regenerated"
		}
		types.SendSuccess(c, types.RevalidateResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: message},
			Slug:         page.Slug,
			GeneratedAt:  page.GeneratedAt,
			RevalidateAt: page.RevalidateAt,
		})
	}
}

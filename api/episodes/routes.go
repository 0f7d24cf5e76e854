package episodes

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcastr/api/types"
)

// RegisterRoutes registers episode routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/episodes - Latest episodes, newest first
	router.GET("", GetAll(deps))

	// GET /api/v1/episodes/:id - Episode details
	router.GET("/:id", GetByID(deps))
}

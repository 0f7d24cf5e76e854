package pages

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcastr/api/types"
)

// RegisterRoutes registers the HTML page routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies) {
	engine.GET("/", Home(deps))
	engine.GET("/episodes/:slug", Episode(deps))
}

// RegisterAPIRoutes registers the page management API
func RegisterAPIRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/revalidate", Revalidate(deps))
}

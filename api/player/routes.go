package player

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcastr/api/types"
)

// RegisterRoutes registers player routes. The group must run the
// PlayerSession middleware.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", Get(deps))

	router.POST("/play", Play(deps))
	router.POST("/playlist", PlayList(deps))
	router.POST("/playlist/latest", PlayLatest(deps))

	router.POST("/toggle/play", TogglePlay(deps))
	router.POST("/toggle/loop", ToggleLoop(deps))
	router.POST("/toggle/shuffle", ToggleShuffle(deps))
	router.PUT("/playing", SetPlaying(deps))

	router.POST("/next", Next(deps))
	router.POST("/previous", Previous(deps))

	// GET /api/v1/player/ws - Live state updates for the session
	router.GET("/ws", WebSocket(deps))
}

package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Build information, set with -ldflags at build time
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Get handles version requests
// @Summary      Version
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string "Build information"
// @Router       /version [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Podcastr",
			"version":     Version,
			"commit":      Commit,
			"build_date":  BuildDate,
			"description": "Podcast episode pages and a shared player",
			"status":      "running",
		})
	}
}

package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/podcastr/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Service status and database connectivity
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse "Healthy"
// @Failure      503 {object} types.HealthResponse "Database unreachable"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		response := types.HealthResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "healthy",
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Services:  map[string]any{},
		}

		database := getDatabaseStatus(deps)
		response.Services["database"] = database
		if database["status"] == "unhealthy" {
			status = http.StatusServiceUnavailable
			response.Status = types.StatusError
			response.Message = "unhealthy"
		}

		if deps != nil && deps.PlayerHub != nil {
			response.Services["player_feed"] = gin.H{"status": "healthy"}
		}

		c.JSON(status, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}

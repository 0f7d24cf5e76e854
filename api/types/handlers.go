package types

import (
	stderrors "errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/killallgit/podcastr/pkg/errors"
	"github.com/killallgit/podcastr/pkg/validator"
)

// SessionKey is the gin context key holding the listener session id
const SessionKey = "player.session"

// Handler utility functions to reduce duplication across handlers

// SessionID returns the listener session assigned by the session middleware
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}

// BindJSONOrError binds the request body and runs struct validation.
// Returns false and sends error response if either fails
func BindJSONOrError(c *gin.Context, v *validator.Validator, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		SendError(c, apperrors.InvalidInput("Invalid request body").WithDetail("cause", err.Error()))
		return false
	}

	if v == nil {
		return true
	}

	if fields, ok := v.Validate(target); !ok {
		SendError(c, apperrors.ValidationFailed(fields))
		return false
	}
	return true
}

// SendError writes err as an ErrorResponse with the status of its code
func SendError(c *gin.Context, err error) {
	status := apperrors.GetHTTPCode(err)
	response := ErrorResponse{
		Status:  StatusError,
		Message: http.StatusText(status),
		Error:   string(apperrors.GetCode(err)),
	}

	var appErr *apperrors.AppError
	if stderrors.As(err, &appErr) {
		response.Message = appErr.Message
		if len(appErr.Details) > 0 {
			response.Details = appErr.Details
		}
	}

	if status >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	c.AbortWithStatusJSON(status, response)
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	SendError(c, apperrors.InvalidInput(message))
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, resource string, id any) {
	SendError(c, apperrors.NotFound(resource, id))
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/morg/internal/apperr"
	"github.com/example/morg/internal/logger"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// statusFor maps an error kind to an HTTP status.
func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey),
			"error", err,
		)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     apperr.UserMessage(err),
		Kind:      string(apperr.KindOf(err)),
		RequestID: c.GetString(requestIDKey),
	})
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		RequestID: c.GetString(requestIDKey),
	})
}

// Package httpkit provides HTTP response rendering.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"
	"time"

	"address_search_backend/platform/apperr"
	"address_search_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error half of the response envelope. Kind-specific fields
// (expected/actual country for mismatches, provider status for upstream
// failures) travel in Details.
type ErrorBody struct {
	Message       string                 `json:"message"`
	StatusCode    int                    `json:"statusCode"`
	Kind          string                 `json:"kind"`
	Provider      string                 `json:"provider,omitempty"`
	Timestamp     string                 `json:"timestamp"`
	Path          string                 `json:"path"`
	CorrelationID string                 `json:"correlationId"`
	Details       map[string]interface{} `json:"details,omitempty"`
}

// ErrorEnvelope is the only externally observable error representation.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// JSON sends a JSON response with the given status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK sends a 200 OK response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// HandleError renders err as a classified error envelope. Errors already in
// the taxonomy keep their kind; anything else is downgraded to unknown rather
// than leaking internal error types across the boundary. Whether a log record
// is emitted, and at which level, is the kind's decision.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, log *logger.Logger, err error) bool {
	if err == nil {
		return false
	}

	classified := apperr.FromError(err)
	status := classified.HTTPStatus()
	correlationID := CorrelationID(c)

	if log != nil {
		log.WithCorrelationID(correlationID).Log(c.Request.Context(), classified.Kind.Severity(), "search_failed",
			"kind", classified.Kind.String(),
			"status", status,
			"path", c.Request.URL.Path,
			"error", classified.Error(),
		)
	}

	c.JSON(status, ErrorEnvelope{
		Success: false,
		Error: ErrorBody{
			Message:       classified.Message,
			StatusCode:    status,
			Kind:          classified.Kind.String(),
			Provider:      classified.Provider,
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
			Path:          c.Request.URL.Path,
			CorrelationID: correlationID,
			Details:       classified.Details,
		},
	})
	return true
}

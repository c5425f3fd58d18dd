package server

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/healthmate/healthmate-backend/internal/common"
)

// All responses share a flat envelope: success, optional message, and the
// domain keys (user, token, file, files, insight, insights, count, vitals,
// familyMembers) at the top level.
func respond(c *gin.Context, status int, message string, extra gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondFromError maps the error taxonomy onto a status code. The message is
// a fixed client-facing string per status; internals never leak.
func respondFromError(c *gin.Context, err error, notFoundMsg string) {
	status := common.HTTPStatus(err)
	switch status {
	case 404:
		respondError(c, status, notFoundMsg)
	case 400:
		if errors.Is(err, common.ErrExtractionFailed) {
			respondError(c, status, "Could not extract text from the file.")
		} else {
			respondError(c, status, "Invalid request")
		}
	case 401:
		respondError(c, status, "Invalid or expired token")
	default:
		respondError(c, status, "Internal server error")
	}
}

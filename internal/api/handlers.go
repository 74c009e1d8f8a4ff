package api

import (
	"errors"
	"net/http"

	"hosteldesk/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary Greeting
// @Description Plain text greeting, doubles as a liveness probe
// @Tags Misc
// @Produce plain
// @Success 200 {string} string "Hello World"
// @Router / [get]
func Home(c *gin.Context) {
	c.String(http.StatusOK, "Hello World")
}

// respondError maps a service failure onto the HTTP contract. Category errors
// surface their message; anything unclassified becomes an opaque 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAuth):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}

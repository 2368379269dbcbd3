package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/ballflight/internal/editor"
	"github.com/playmatatu/ballflight/internal/sim"
)

// bindJSON decodes the body into dst, answering 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// respondError maps service errors onto status codes.
func respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, sim.ErrInvalidParameters),
		errors.Is(err, editor.ErrUnknownField),
		errors.Is(err, editor.ErrUnknownEdit):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, sim.ErrNonFinite):
		log.Printf("[API] %s diverged: %v", op, err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.Printf("[API] %s failed: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

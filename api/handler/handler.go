// Package handler contains the gin handlers of the API.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hellenika/hellenika/database"
	"github.com/hellenika/hellenika/translate"
	"github.com/hellenika/hellenika/words"
)

// Handler bundles the collaborators the API handlers work with.
type Handler struct {
	words      *words.Service
	db         *database.Client
	translator *translate.Client
}

// New creates a new handler.
func New(svc *words.Service, db *database.Client, translator *translate.Client) *Handler {
	return &Handler{
		words:      svc,
		db:         db,
		translator: translator,
	}
}

// Health reports server liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseIDParam parses the :id path parameter.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid word ID"})
		return 0, false
	}
	return uint(id), true
}

// respondWorkflowError maps workflow errors to HTTP responses.
func respondWorkflowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, words.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Word not found"})
	case errors.Is(err, words.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

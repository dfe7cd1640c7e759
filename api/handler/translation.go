package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/hellenika/hellenika/api/models"
)

// TranslateToGreek translates the request text to Greek.
func (h *Handler) TranslateToGreek(c *gin.Context) {
	h.translateText(c, h.translator.ToGreek)
}

// TranslateToEnglish translates the request text to English.
func (h *Handler) TranslateToEnglish(c *gin.Context) {
	h.translateText(c, h.translator.ToEnglish)
}

func (h *Handler) translateText(c *gin.Context, fn func(context.Context, string) (string, error)) {
	var req models.TranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text must not be empty"})
		return
	}

	translated, err := fn(c.Request.Context(), req.Text)
	if err != nil {
		log.Error("translation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Translation failed"})
		return
	}
	c.JSON(http.StatusOK, models.TranslationResponse{TranslatedText: translated})
}

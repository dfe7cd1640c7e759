package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hellenika/hellenika/api/auth"
	"github.com/hellenika/hellenika/api/models"
	"github.com/hellenika/hellenika/database"
	"github.com/hellenika/hellenika/words"
)

// submitRequestFromInput validates the word input and converts it into a
// workflow request.
func submitRequestFromInput(c *gin.Context, input models.WordInput) (words.SubmitRequest, bool) {
	wordType := database.WordType(input.WordType)
	if !wordType.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid word_type"})
		return words.SubmitRequest{}, false
	}

	var gender *database.Gender
	if input.Gender != nil && *input.Gender != "" {
		g := database.Gender(*input.Gender)
		if !g.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gender"})
			return words.SubmitRequest{}, false
		}
		gender = &g
	}

	meanings := make([]words.MeaningInput, 0, len(input.Meanings))
	for _, m := range input.Meanings {
		meanings = append(meanings, words.MeaningInput{
			EnglishMeaning: m.EnglishMeaning,
			IsPrimary:      m.IsPrimary,
		})
	}

	return words.SubmitRequest{
		GreekWord: input.GreekWord,
		WordType:  wordType,
		Gender:    gender,
		Notes:     input.Notes,
		Meanings:  meanings,
	}, true
}

// CreateWord submits a new word for moderation.
func (h *Handler) CreateWord(c *gin.Context) {
	var input models.WordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req, ok := submitRequestFromInput(c, input)
	if !ok {
		return
	}

	word, err := h.words.Submit(c.Request.Context(), auth.CallerFrom(c), req)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToWord(word))
}

// ListWords returns one page of words matching the query filters.
func (h *Handler) ListWords(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "50"))
	includePending, _ := strconv.ParseBool(c.DefaultQuery("include_pending", "false"))

	result, err := h.words.List(c.Request.Context(), auth.CallerFrom(c), words.ListRequest{
		Search:         c.Query("search"),
		WordType:       database.WordType(c.Query("word_type")),
		Gender:         database.Gender(c.Query("gender")),
		IncludePending: includePending,
		Page:           page,
		Size:           size,
	})
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.WordPage{
		Items: models.ToWords(result.Items),
		Total: result.Total,
		Page:  result.Page,
		Size:  result.Size,
		Pages: result.Pages,
	})
}

// PendingWords lists all words awaiting moderation.
func (h *Handler) PendingWords(c *gin.Context) {
	pending, err := h.words.ListPending(c.Request.Context(), auth.CallerFrom(c))
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToWords(pending))
}

// GetWord returns a single word by ID.
func (h *Handler) GetWord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	word, err := h.words.Get(c.Request.Context(), auth.CallerFrom(c), id)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToWord(word))
}

// UpdateWord replaces a word's fields and meanings.
func (h *Handler) UpdateWord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var input models.WordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req, ok := submitRequestFromInput(c, input)
	if !ok {
		return
	}

	word, err := h.words.Update(c.Request.Context(), auth.CallerFrom(c), id, req)
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToWord(word))
}

// ApproveWord marks a word as approved.
func (h *Handler) ApproveWord(c *gin.Context) {
	h.moderateWord(c, database.ApprovalStatusApproved)
}

// RejectWord marks a word as rejected.
func (h *Handler) RejectWord(c *gin.Context) {
	h.moderateWord(c, database.ApprovalStatusRejected)
}

func (h *Handler) moderateWord(c *gin.Context, status database.ApprovalStatus) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var (
		word *database.Word
		err  error
	)
	if status == database.ApprovalStatusApproved {
		word, err = h.words.Approve(c.Request.Context(), auth.CallerFrom(c), id)
	} else {
		word, err = h.words.Reject(c.Request.Context(), auth.CallerFrom(c), id)
	}
	if err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToWord(word))
}

// DeleteWord deletes a word and all of its meanings.
func (h *Handler) DeleteWord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.words.Delete(c.Request.Context(), auth.CallerFrom(c), id); err != nil {
		respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

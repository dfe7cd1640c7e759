package handler

import (
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/hellenika/hellenika/api/models"
	"github.com/hellenika/hellenika/database"
)

const (
	recentLimit      = 10
	activeUserWindow = 30 * 24 * time.Hour
)

// roundToTenth rounds half away from zero, so shrinking counts round the
// same way as growing ones.
func roundToTenth(x float64) float64 {
	return math.Round(x*10) / 10
}

// Stats returns the admin dashboard numbers.
func (h *Handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	now := time.Now().UTC()

	totalUsers, err := h.db.CountUsers(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	activeUsers, err := h.db.CountActiveUsers(ctx, now.Add(-activeUserWindow))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	totalWords, err := h.db.CountWords(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	// Month-over-month user growth.
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevMonthStart := monthStart.AddDate(0, -1, 0)
	currentMonth, err := h.db.CountUsersCreatedBetween(ctx, monthStart, now.AddDate(0, 0, 1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	prevMonth, err := h.db.CountUsersCreatedBetween(ctx, prevMonthStart, monthStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	var userGrowth float64
	switch {
	case prevMonth > 0:
		userGrowth = float64(currentMonth-prevMonth) / float64(prevMonth) * 100
	case currentMonth > 0:
		userGrowth = 100
	}

	c.JSON(http.StatusOK, models.DashboardStats{
		TotalUsers:   totalUsers,
		ActiveUsers:  activeUsers,
		TotalContent: totalWords,
		UserGrowth:   roundToTenth(userGrowth),
		// No historical content snapshots yet, so this stays a placeholder.
		ContentGrowth: 25,
	})
}

// RecentUsers returns the most recently registered users.
func (h *Handler) RecentUsers(c *gin.Context) {
	users, err := h.db.GetRecentUsers(c.Request.Context(), recentLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}

	now := time.Now().UTC()
	c.JSON(http.StatusOK, lo.Map(users, func(u database.User, _ int) models.RecentUser {
		status := "inactive"
		if u.LastLogin != nil && now.Sub(*u.LastLogin) < activeUserWindow {
			status = "active"
		}
		return models.RecentUser{
			ID: u.ID,
			// There is no display name yet, use the mailbox part of the email.
			Name:   strings.SplitN(u.Email, "@", 2)[0],
			Email:  u.Email,
			Joined: u.CreatedAt.Format("2006-01-02"),
			Status: status,
		}
	}))
}

// RecentContent returns the most recently created words.
func (h *Handler) RecentContent(c *gin.Context) {
	recent, err := h.db.GetRecentWords(c.Request.Context(), recentLimit)
	if err != nil {
		log.Error("failed to load recent words", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load content"})
		return
	}

	c.JSON(http.StatusOK, lo.Map(recent, func(w database.Word, _ int) models.RecentContent {
		return models.RecentContent{
			ID:      w.ID,
			Title:   w.GreekWord,
			Type:    "Word",
			Created: w.CreatedAt.Format("2006-01-02"),
			Status:  "published",
		}
	}))
}

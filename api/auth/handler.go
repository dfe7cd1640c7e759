package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hellenika/hellenika/api/models"
	"github.com/hellenika/hellenika/database"
)

// RegisterInput is the request body for user registration. The role field is
// accepted for compatibility with older clients but ignored: everyone
// registers as a regular user.
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// Register creates a new user account.
func (p *Provider) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if _, err := p.db.GetUserByEmail(ctx, input.Email); err == nil {
		log.Warn("registration rejected, email already exists", "email", input.Email)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check email"})
		return
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := database.User{
		Email:          input.Email,
		HashedPassword: hash,
		Role:           database.RoleUser,
		IsActive:       true,
	}
	if err := p.db.CreateUser(ctx, &user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	log.Info("registered user", "email", user.Email)
	c.JSON(http.StatusOK, models.ToUser(&user))
}

// Token exchanges credentials for an access token. The request uses the
// OAuth2 password flow form encoding, with the email in the username field.
func (p *Provider) Token(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")
	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	ctx := c.Request.Context()
	user, err := p.db.GetUserByEmail(ctx, email)
	if err != nil || !CheckPassword(user.HashedPassword, password) {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}

	token, err := p.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	if err := p.db.TouchLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		// The login itself succeeded, only the bookkeeping failed.
		log.Error("failed to record last login", "user", user.Email, "error", err)
	}

	c.JSON(http.StatusOK, models.Token{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me returns the profile of the authenticated user.
func (p *Provider) Me(c *gin.Context) {
	c.JSON(http.StatusOK, models.ToUser(CurrentUser(c)))
}

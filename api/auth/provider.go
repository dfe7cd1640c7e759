// Package auth issues and validates bearer credentials for the API.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hellenika/hellenika/config"
	"github.com/hellenika/hellenika/database"
)

// Provider issues JWT access tokens and resolves them back to users.
type Provider struct {
	db          *database.Client
	secret      []byte
	tokenExpiry time.Duration
}

// New creates a new auth provider.
func New(db *database.Client, cfg *config.AuthConfig) *Provider {
	return &Provider{
		db:          db,
		secret:      []byte(cfg.JWTSecret),
		tokenExpiry: time.Duration(cfg.TokenExpiryMinutes) * time.Minute,
	}
}

// IssueToken creates a signed access token for the user.
func (p *Provider) IssueToken(user *database.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"iat":     now.Unix(),
		"exp":     now.Add(p.tokenExpiry).Unix(),
	})
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// userFromToken validates the token string and loads the user it belongs to.
func (p *Provider) userFromToken(ctx context.Context, tokenStr string) (*database.User, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	// JWT numbers decode as float64.
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("token has no user_id claim")
	}

	user, err := p.db.GetUserByID(ctx, uint(rawID))
	if err != nil {
		return nil, fmt.Errorf("token user not found: %w", err)
	}
	return user, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

package database

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

func (c *Client) CreateUser(ctx context.Context, user *User) error {
	if err := c.db.WithContext(ctx).Create(user).Error; err != nil {
		log.Error("failed to create user", "error", err)
		return err
	}
	return nil
}

func (c *Client) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Error("failed to get user by email", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Error("failed to get user by id", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

// TouchLastLogin records a successful login.
func (c *Client) TouchLastLogin(ctx context.Context, userID uint, at time.Time) error {
	if err := c.db.WithContext(ctx).Model(&User{}).Where("id = ?", userID).
		Update("last_login", at).Error; err != nil {
		log.Error("failed to update last login", "error", err)
		return err
	}
	return nil
}

func (c *Client) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&User{}).Count(&count).Error
	return count, err
}

// CountActiveUsers counts users who logged in since the given time.
func (c *Client) CountActiveUsers(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&User{}).
		Where("last_login >= ?", since).
		Count(&count).Error
	return count, err
}

// CountUsersCreatedBetween counts users created in [from, to).
func (c *Client) CountUsersCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&User{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

// GetRecentUsers returns the most recently registered users.
func (c *Client) GetRecentUsers(ctx context.Context, limit int) ([]User, error) {
	var users []User
	if err := c.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&users).Error; err != nil {
		log.Error("failed to get recent users", "error", err)
		return nil, err
	}
	return users, nil
}

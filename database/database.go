package database

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hellenika/hellenika/config"
)

// Client wraps the gorm.DB instance.
type Client struct {
	db *gorm.DB
}

// New creates a new database connection and performs migrations.
func New(cfg *config.DatabaseConfig) (*Client, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	client := &Client{db: db}
	if err := client.Migrate(); err != nil {
		return nil, err
	}
	return client, nil
}

// Migrate creates or updates the database schema.
func (c *Client) Migrate() error {
	if err := c.db.AutoMigrate(
		&User{},
		&Word{},
		&Meaning{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// EnsureAdmin creates a default admin user unless an admin already exists.
func (c *Client) EnsureAdmin(auth *config.AuthConfig) error {
	if !auth.CreateAdmin {
		return nil
	}

	var count int64
	if err := c.db.Model(&User{}).Where("role = ?", RoleAdmin).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := User{
		Email:          auth.AdminEmail,
		HashedPassword: string(hash),
		Role:           RoleAdmin,
	}
	if err := c.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}
	log.Info("created default admin user", "email", auth.AdminEmail)
	return nil
}

// Close closes the underlying database connection.
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

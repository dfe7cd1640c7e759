package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the Hellenika server and its dependencies.
type Config struct {
	// Listen is the address the API server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// APIPrefix is the path prefix all API routes are mounted under.
	APIPrefix string `yaml:"api_prefix" mapstructure:"api_prefix"`
	// LogLevel is the default log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// CORSOrigins is the list of origins allowed to call the API.
	CORSOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	// Auth holds the authentication configuration.
	Auth *AuthConfig `yaml:"auth" mapstructure:"auth"`
	// Translation holds the configuration for the external translation provider.
	Translation *TranslationConfig `yaml:"translation" mapstructure:"translation"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	// Driver selects the database backend, either "sqlite" or "postgres".
	Driver string `yaml:"driver" mapstructure:"driver"`
	// Path is the sqlite database file path. Only used with the sqlite driver.
	Path string `yaml:"path" mapstructure:"path"`
	// Host is the postgres server host.
	Host string `yaml:"host" mapstructure:"host"`
	// Port is the postgres server port.
	Port int `yaml:"port" mapstructure:"port"`
	// User is the postgres user.
	User string `yaml:"user" mapstructure:"user"`
	// Password is the postgres password.
	Password string `yaml:"password" mapstructure:"password"`
	// Name is the postgres database name.
	Name string `yaml:"name" mapstructure:"name"`
}

// AuthConfig holds the authentication configuration.
type AuthConfig struct {
	// JWTSecret is the key used to sign access tokens.
	JWTSecret string `yaml:"jwt_secret" mapstructure:"jwt_secret"`
	// TokenExpiryMinutes is the access token lifetime in minutes.
	TokenExpiryMinutes int `yaml:"token_expiry_minutes" mapstructure:"token_expiry_minutes"`
	// CreateAdmin enables creation of a default admin user at startup.
	CreateAdmin bool `yaml:"create_admin" mapstructure:"create_admin"`
	// AdminEmail is the email for the default admin user.
	AdminEmail string `yaml:"admin_email" mapstructure:"admin_email"`
	// AdminPassword is the password for the default admin user.
	AdminPassword string `yaml:"admin_password" mapstructure:"admin_password"`
}

// TranslationConfig holds the configuration for the Google Translate proxy.
type TranslationConfig struct {
	// APIKey is the Google Translate API key.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	// CacheTTLMinutes is how long translation results are cached.
	CacheTTLMinutes int `yaml:"cache_ttl_minutes" mapstructure:"cache_ttl_minutes"`
}

// Load reads the configuration from the specified path and returns a Config struct.
// If path is empty, it will search the default locations for a config file.
// If no config file is found, defaults and environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("HELLENIKA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.hellenika")
		v.AddConfigPath("/etc/hellenika")
	}

	if err := v.ReadInConfig(); err != nil {
		// Running without a config file is fine, everything has a
		// default or an env override.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
		log.Debug("Environment variables with HELLENIKA_ prefix override config file values")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:8000")
	v.SetDefault("api_prefix", "/api/v1")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_origins", []string{"http://localhost:3000"})

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "hellenika.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "hellenika")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "hellenika")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_expiry_minutes", 30)
	v.SetDefault("auth.create_admin", false)
	v.SetDefault("auth.admin_email", "")
	v.SetDefault("auth.admin_password", "")

	v.SetDefault("translation.api_key", "")
	v.SetDefault("translation.cache_ttl_minutes", 60)
}

// validateConfig checks that required configuration values are set.
func validateConfig(c *Config) error {
	if c.Auth == nil || c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Database.Host == "" || c.Database.Name == "" || c.Database.User == "" {
			return fmt.Errorf("database.host, database.user and database.name are required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Auth.CreateAdmin && (c.Auth.AdminEmail == "" || c.Auth.AdminPassword == "") {
		return fmt.Errorf("auth.admin_email and auth.admin_password are required when auth.create_admin is set")
	}
	return nil
}

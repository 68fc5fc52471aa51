package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Rows      int      `json:"rows" mapstructure:"rows"`
	OutputDir string   `json:"output_dir" mapstructure:"output_dir"`
	Database  Database `json:"database" mapstructure:"database"`
}

// Database holds the provider plus the names of the environment variables
// carrying the discrete credential parts. Credentials themselves never live
// in the config file.
type Database struct {
	Provider    string `json:"provider" mapstructure:"provider"`
	UserEnv     string `json:"user_env" mapstructure:"user_env"`
	PasswordEnv string `json:"password_env" mapstructure:"password_env"`
	HostEnv     string `json:"host_env" mapstructure:"host_env"`
	PortEnv     string `json:"port_env" mapstructure:"port_env"`
	NameEnv     string `json:"name_env" mapstructure:"name_env"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Rows == 0 {
		cfg.Rows = 50
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "dummy_data"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.UserEnv == "" {
		cfg.Database.UserEnv = "DB_USER"
	}
	if cfg.Database.PasswordEnv == "" {
		cfg.Database.PasswordEnv = "DB_PASSWORD"
	}
	if cfg.Database.HostEnv == "" {
		cfg.Database.HostEnv = "DB_HOST"
	}
	if cfg.Database.PortEnv == "" {
		cfg.Database.PortEnv = "DB_PORT"
	}
	if cfg.Database.NameEnv == "" {
		cfg.Database.NameEnv = "DB_NAME"
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			return nil
		}
	}
	return fmt.Errorf("unsupported database provider: %s. Supported providers: %v",
		c.Database.Provider, supportedProviders)
}

// DatabaseURL assembles a DSN from the discrete credential environment
// variables, in the format the provider's driver expects.
func (c *Config) DatabaseURL() (string, error) {
	name := os.Getenv(c.Database.NameEnv)
	if name == "" {
		return "", fmt.Errorf("database name not found in environment variable %s", c.Database.NameEnv)
	}

	switch c.Database.Provider {
	case "sqlite", "sqlite3":
		// For sqlite the database name is the file path.
		return name, nil
	}

	user := os.Getenv(c.Database.UserEnv)
	pass := os.Getenv(c.Database.PasswordEnv)
	host := os.Getenv(c.Database.HostEnv)
	port := os.Getenv(c.Database.PortEnv)
	if user == "" || host == "" {
		return "", fmt.Errorf("database credentials missing: set %s and %s",
			c.Database.UserEnv, c.Database.HostEnv)
	}

	switch c.Database.Provider {
	case "mysql":
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", user, pass, host, port, name), nil
	default:
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
			url.QueryEscape(user), url.QueryEscape(pass), host, port, name), nil
	}
}

// EnsureOutputDir creates the CSV output directory if needed.
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.OutputDir, err)
	}
	return nil
}

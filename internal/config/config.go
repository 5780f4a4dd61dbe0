// Package config loads the phonebook configuration from YAML with
// environment overrides
package config

import (
	"fmt"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/phonebook/internal/config/colors"
	"github.com/thenoetrevino/phonebook/internal/models"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig     `yaml:"database"`
	Log         LogConfig          `yaml:"log"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// DatabaseConfig holds the connection parameters for the store
type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`

	// Path is the database file when Driver is sqlite
	Path string `yaml:"path"`

	// ConnectTimeout bounds each connection attempt; zero waits indefinitely
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// LogConfig controls the file logger
type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{
		Database: DefaultDatabaseConfig(),
		Log:      LogConfig{Level: "info"},
	}
	cfg.ColorScheme.ApplyDefaults()
	return cfg
}

// DefaultDatabaseConfig returns the stock local Postgres credentials
func DefaultDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Driver:   DriverPostgres,
		Host:     "localhost",
		Port:     5432,
		Name:     "lab10",
		User:     "postgres",
		Password: "123456789",
		SSLMode:  "disable",
	}
}

// Load loads config from path, or from the user's config directory when path is empty.
// Returns default config if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = getConfigPath()
		if err != nil {
			// Fall back to defaults if we can't determine config path
			cfg := Default()
			if err := cfg.applyEnv(); err != nil {
				return nil, err
			}
			return cfg, cfg.Validate()
		}
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		cfg = Default()
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path, creating the parent directory
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = getConfigPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Credentials live in this file
	return os.WriteFile(path, data, 0o600)
}

// Validate checks that the configuration can produce a connection
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			return fmt.Errorf("%w: postgres requires host and database name", models.ErrValidation)
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("%w: sqlite requires a database path", models.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown database driver %q", models.ErrValidation, c.Database.Driver)
	}
	return nil
}

// DSN returns the driver-specific data source name
func (d DatabaseConfig) DSN() string {
	if d.Driver == DriverSQLite {
		return d.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, quoteDSN(d.User), quoteDSN(d.Password), quoteDSN(d.Name), d.SSLMode)
	if d.ConnectTimeout > 0 {
		dsn += fmt.Sprintf(" connect_timeout=%d", timeoutSeconds(d.ConnectTimeout))
	}
	return dsn
}

// timeoutSeconds rounds up to whole seconds. libpq reads 0 as no timeout, so
// any positive duration maps to at least 1.
func timeoutSeconds(d time.Duration) int {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return secs
}

// Redacted returns a loggable description of the target without the password
func (d DatabaseConfig) Redacted() string {
	if d.Driver == DriverSQLite {
		return "sqlite:" + d.Path
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.User(d.User),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	return u.String()
}

// quoteDSN quotes a libpq keyword value when it contains spaces or quotes
func quoteDSN(v string) string {
	needsQuote := v == ""
	for _, r := range v {
		if r == ' ' || r == '\'' || r == '\\' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return v
	}
	out := make([]rune, 0, len(v)+2)
	out = append(out, '\'')
	for _, r := range v {
		if r == '\'' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(append(out, '\''))
}

// applyEnv overrides database settings from PHONEBOOK_DB_* variables
func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setString("PHONEBOOK_DB_DRIVER", &c.Database.Driver)
	setString("PHONEBOOK_DB_HOST", &c.Database.Host)
	setString("PHONEBOOK_DB_NAME", &c.Database.Name)
	setString("PHONEBOOK_DB_USER", &c.Database.User)
	setString("PHONEBOOK_DB_PASSWORD", &c.Database.Password)
	setString("PHONEBOOK_DB_PATH", &c.Database.Path)
	setString("PHONEBOOK_LOG_LEVEL", &c.Log.Level)

	if v := os.Getenv("PHONEBOOK_DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			return fmt.Errorf("%w: PHONEBOOK_DB_PORT %q is not a valid port", models.ErrValidation, v)
		}
		c.Database.Port = port
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	def := DefaultDatabaseConfig()
	if c.Database.Driver == "" {
		c.Database.Driver = def.Driver
	}
	if c.Database.Driver == DriverPostgres {
		if c.Database.Host == "" {
			c.Database.Host = def.Host
		}
		if c.Database.Port == 0 {
			c.Database.Port = def.Port
		}
		if c.Database.Name == "" {
			c.Database.Name = def.Name
		}
		if c.Database.User == "" {
			c.Database.User = def.User
		}
		if c.Database.SSLMode == "" {
			c.Database.SSLMode = def.SSLMode
		}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.ColorScheme.ApplyDefaults()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "phonebook", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "phonebook", "config.yaml"), nil
}

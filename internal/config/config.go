package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultQuery reads the local images table.
const DefaultQuery = "SELECT id, title, image_url FROM images ORDER BY sort_order, created_at"

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Source   SourceConfig
	Roles    RolesConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings for the local gallery store.
type DatabaseConfig struct {
	Path       string
	Migrations string
}

// SourceConfig describes where gallery rows come from. An empty DSN with the
// sqlite3 driver means the local gallery database. For remote drivers an empty DSN
// is looked up in the secrets vault under Driver and Host.
type SourceConfig struct {
	Driver string
	DSN    string
	Host   string
	Query  string
}

// RolesConfig binds roles to result column names.
type RolesConfig struct {
	ImageURL string `mapstructure:"image_url"`
	Title    string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

// LogConfig redirects the standard logger while the TUI owns the terminal.
type LogConfig struct {
	File string
}

func configDir() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "jaskgallery")
}

// Load reads configuration from file and env. Env var overrides use prefix JASKGALLERY_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "jaskgallery", "jaskgallery.db"))
	v.SetDefault("database.migrations", "internal/database/migrations")
	v.SetDefault("source.driver", "sqlite3")
	v.SetDefault("source.dsn", "")
	v.SetDefault("source.host", "")
	v.SetDefault("source.query", DefaultQuery)
	v.SetDefault("roles.image_url", "image_url")
	v.SetDefault("roles.title", "title")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKGALLERY_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKGALLERY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Source.Driver = strings.ToLower(strings.TrimSpace(c.Source.Driver))
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("JASKGALLERY_CONFIG")
	if path == "" {
		path = filepath.Join(configDir(), "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.migrations", cfg.Database.Migrations)
	v.Set("source.driver", cfg.Source.Driver)
	v.Set("source.dsn", cfg.Source.DSN)
	v.Set("source.host", cfg.Source.Host)
	v.Set("source.query", cfg.Source.Query)
	v.Set("roles.image_url", cfg.Roles.ImageURL)
	v.Set("roles.title", cfg.Roles.Title)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

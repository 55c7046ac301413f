package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
	"github.com/spf13/viper"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	StoreFile     = "file"
	StorePostgres = "postgres"
	// Boards live only as long as the process
	StoreMemory = "memory"

	envPrefix = "BATTLESHIP"
)

type Config struct {
	Stage     string          `mapstructure:"stage"`
	Store     string          `mapstructure:"store"`
	Board     BoardConfig     `mapstructure:"board"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
}

type BoardConfig struct {
	Side int `mapstructure:"side"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AnalyticsConfig only applies to the postgres store.
type AnalyticsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// loadEnvFile reads .env outside of prod. A missing file is
// fine, the environment may already be set.
func loadEnvFile() error {
	if os.Getenv(envPrefix+"_STAGE") == StageProd {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// LoadConfig reads defaults, then the optional config file,
// then BATTLESHIP_* environment variables.
func LoadConfig(configPath string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()

	v.SetDefault("stage", StageDev)
	v.SetDefault("store", StoreFile)
	v.SetDefault("board.side", mb.DefaultSideLength)
	v.SetDefault("database.url", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("analytics.enabled", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Stage != StageDev && c.Stage != StageProd {
		return fmt.Errorf("stage must be either dev or prod, got: %s", c.Stage)
	}
	if err := mb.ValidateSide(c.Board.Side); err != nil {
		return fmt.Errorf("invalid board.side: %w", err)
	}

	switch c.Store {
	case StoreFile, StoreMemory:
		if c.Analytics.Enabled {
			return fmt.Errorf("analytics needs the %s store", StorePostgres)
		}
	case StorePostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("database.url is required for the %s store", StorePostgres)
		}
	default:
		return fmt.Errorf("store must be one of %s, %s or %s, got: %s", StoreFile, StorePostgres, StoreMemory, c.Store)
	}

	if _, err := parseLogLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be either text or json, got: %s", c.Log.Format)
	}
	return nil
}

func parseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return l, fmt.Errorf("invalid log.level: %s", level)
	}
	return l, nil
}

func SetupLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	level, _ := parseLogLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"

	DefaultPort        = 3318
	DefaultDatabaseURL = "file:media?mode=memory&cache=shared"
	DefaultTileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultUploadMB    = 10
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	MapTileURL     string
	ChatbotBaseURL string
	MaxUploadMB    int
	Seed           bool
}

// MaxUploadBytes is the upload limit for media attachments
func (c Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var seed string

	fs := flag.NewFlagSet("disaster-verify", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Media store database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Collaborators
	fs.StringVar(&cfg.MapTileURL, "tiles", "", "Map tile URL template")
	fs.StringVar(&cfg.ChatbotBaseURL, "chatbot", "", "Chat assistant loader base URL (empty disables)")
	fs.IntVar(&cfg.MaxUploadMB, "max-upload", 0, "Max media upload size in MB")
	fs.StringVar(&seed, "seed", "", "Load starting dashboard data (true or false)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = DatabaseSQLite
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultDatabaseURL
	}

	if cfg.MapTileURL == "" {
		cfg.MapTileURL = os.Getenv("MAP_TILE_URL")
	}
	if cfg.MapTileURL == "" {
		cfg.MapTileURL = DefaultTileURL
	}

	if cfg.ChatbotBaseURL == "" {
		cfg.ChatbotBaseURL = os.Getenv("CHATBOT_BASE_URL")
	}

	if cfg.MaxUploadMB == 0 {
		if mbStr := os.Getenv("MAX_UPLOAD_MB"); mbStr != "" {
			mb, err := strconv.Atoi(mbStr)
			if err != nil {
				return Config{}, errors.New("invalid MAX_UPLOAD_MB env variable")
			}
			cfg.MaxUploadMB = mb
		} else {
			cfg.MaxUploadMB = DefaultUploadMB
		}
	}
	if cfg.MaxUploadMB < 0 {
		return Config{}, errors.New("max upload size cannot be negative")
	}

	if seed == "" {
		seed = os.Getenv("SEED")
	}
	cfg.Seed = true
	if seed != "" {
		b, err := strconv.ParseBool(seed)
		if err != nil {
			return Config{}, errors.New("invalid seed value")
		}
		cfg.Seed = b
	}

	return cfg, nil
}

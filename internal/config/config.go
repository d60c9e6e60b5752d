// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package config

import (
	"net"
	"strconv"
	"time"
)

// Catalog source kinds.
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CatalogConfig selects where the movie catalog is read from.
//
// Environment Variables:
//   - CATALOG_SOURCE: csv or sqlite (default: csv)
//   - CATALOG_PATH: path to the CSV file or SQLite database
//   - CATALOG_TABLE: table name for the sqlite source (default: movies)
type CatalogConfig struct {
	Source string `koanf:"source"`
	Path   string `koanf:"path"`
	Table  string `koanf:"table"`
}

// RecommendConfig holds similarity index settings.
type RecommendConfig struct {
	// TopK is the number of recommendations per query.
	// Default: 5
	TopK int `koanf:"top_k"`

	// StopWords is the stop-word list: english or none.
	// Default: english
	StopWords string `koanf:"stop_words"`

	// BuildWorkers bounds the goroutines computing each similarity matrix.
	// 0 uses GOMAXPROCS.
	BuildWorkers int `koanf:"build_workers"`

	// CacheSize is the number of found recommendation responses cached in
	// memory per index.
	// Default: 1024
	CacheSize int `koanf:"cache_size"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development" or "production"
}

// Addr returns host:port for net.Listen.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds CORS and rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
//   - LOG_FILE: optional path of a rotated log file
//   - LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS, LOG_MAX_AGE_DAYS, LOG_COMPRESS: rotation
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`

	// File, when set, also writes logs to a size-rotated file.
	File string `koanf:"file"`

	// MaxSizeMB is the size at which the log file is rotated.
	// Default: 100
	MaxSizeMB int `koanf:"max_size_mb"`

	// MaxBackups is the number of rotated files kept.
	// Default: 3
	MaxBackups int `koanf:"max_backups"`

	// MaxAgeDays removes rotated files older than this. 0 keeps them.
	// Default: 28
	MaxAgeDays int `koanf:"max_age_days"`

	// Compress gzips rotated files.
	Compress bool `koanf:"compress"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

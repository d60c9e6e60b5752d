// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

package config

import (
	"fmt"
	"regexp"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validateCatalog validates the catalog source settings
func (c *Config) validateCatalog() error {
	switch c.Catalog.Source {
	case SourceCSV:
	case SourceSQLite:
		if !tableNamePattern.MatchString(c.Catalog.Table) {
			return fmt.Errorf("CATALOG_TABLE must be a plain SQL identifier, got %q", c.Catalog.Table)
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be one of: csv, sqlite")
	}

	if c.Catalog.Path == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	return nil
}

// Recommendation limits
const (
	maxTopK         = 100
	maxBuildWorkers = 1024
	maxCacheSize    = 1 << 20
)

// validateRecommend validates the similarity index settings
func (c *Config) validateRecommend() error {
	if c.Recommend.TopK < 1 || c.Recommend.TopK > maxTopK {
		return fmt.Errorf("RECOMMEND_TOP_K must be between 1 and %d", maxTopK)
	}
	if c.Recommend.BuildWorkers < 0 || c.Recommend.BuildWorkers > maxBuildWorkers {
		return fmt.Errorf("RECOMMEND_BUILD_WORKERS must be between 0 and %d", maxBuildWorkers)
	}
	if c.Recommend.CacheSize < 1 || c.Recommend.CacheSize > maxCacheSize {
		return fmt.Errorf("RECOMMEND_CACHE_SIZE must be between 1 and %d", maxCacheSize)
	}
	switch c.Recommend.StopWords {
	case "english", "none":
		return nil
	default:
		return fmt.Errorf("RECOMMEND_STOP_WORDS must be one of: english, none")
	}
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	return c.validateRateLimits()
}

// Rate limit constants
const (
	minRateLimitRequests = 1               // Minimum 1 request allowed
	maxRateLimitRequests = 100000          // Maximum 100k requests per window
	minRateLimitWindow   = 1 * time.Second // Minimum 1 second window
	maxRateLimitWindow   = 1 * time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting bounds
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	if c.Logging.File != "" && c.Logging.MaxSizeMB < 1 {
		return fmt.Errorf("LOG_MAX_SIZE_MB must be at least 1 when LOG_FILE is set")
	}
	if c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("LOG_MAX_BACKUPS and LOG_MAX_AGE_DAYS must not be negative")
	}
	return nil
}

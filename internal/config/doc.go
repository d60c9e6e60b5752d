// CineSence - Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesence

/*
Package config provides centralized configuration management for CineSence.

# Configuration Sources

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, or the first of config.yaml, config.yml,
    /etc/cinesence/config.yaml, /etc/cinesence/config.yml
 3. Environment variables (explicit mapping, unknown variables ignored)

# Environment Variables

Catalog (CatalogConfig):
  - CATALOG_SOURCE: csv or sqlite (default: csv)
  - CATALOG_PATH: file path of the CSV file or SQLite database (default: data/movies.csv)
  - CATALOG_TABLE: SQLite table name (default: movies)

Recommendations (RecommendConfig):
  - RECOMMEND_TOP_K: results per query (default: 5)
  - RECOMMEND_STOP_WORDS: english or none (default: english)
  - RECOMMEND_BUILD_WORKERS: goroutines per matrix build, 0 = GOMAXPROCS
  - RECOMMEND_CACHE_SIZE: cached recommendation responses (default: 1024)

HTTP Server (ServerConfig):
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_PORT: listen port (default: 8501)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: graceful shutdown timeout (default: 10s)
  - ENVIRONMENT: development or production

Security (SecurityConfig):
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging (LoggingConfig):
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - LOG_FILE, LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS, LOG_MAX_AGE_DAYS, LOG_COMPRESS

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config

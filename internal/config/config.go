package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds runtime settings. Values come from the environment and are
// overridden by command-line flags.
type Config struct {
	// Markdown document to navigate
	DocPath string

	// Optional YAML file overriding the default menu topics
	TopicsFile string

	// Logging
	LogLevel  string
	LogFormat string

	// Heading index cache capacity (documents)
	CacheSize int

	// Disable screen clearing between menu pages
	NoClear bool
}

const (
	DefaultDocPath   = "documentacion.md"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultCacheSize = 16
)

func Load() Config {
	cfg := Config{
		DocPath:    envOr("DOCNAV_DOC", DefaultDocPath),
		TopicsFile: os.Getenv("DOCNAV_TOPICS"),

		LogLevel:  envOr("DOCNAV_LOG_LEVEL", DefaultLogLevel),
		LogFormat: envOr("DOCNAV_LOG_FORMAT", DefaultLogFormat),

		CacheSize: envInt("DOCNAV_CACHE_SIZE", DefaultCacheSize),

		NoClear: envBool("DOCNAV_NO_CLEAR", false),
	}

	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}

	return cfg
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DocPath) == "" {
		return fmt.Errorf("document path is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q (expected debug, info, warn or error)", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %q (expected text or json)", c.LogFormat)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("cache size must be positive, got %d", c.CacheSize)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Fetcher FetcherConfig
	Log     LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// FetcherConfig controls page retrieval.
type FetcherConfig struct {
	// Timeout is the hard deadline for one page fetch.
	Timeout time.Duration // default: 10s

	// UserAgent identifies the analyzer to the target site.
	UserAgent string // default: "WordPress.com Website Analyzer Bot"

	// MaxBodyBytes caps how much of the response body is read.
	MaxBodyBytes int64 // default: 10 MB
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("SITEADVISOR_HOST", "0.0.0.0"),
			Port: envIntOr("SITEADVISOR_PORT", 8080),
			Mode: envOr("SITEADVISOR_MODE", "release"),
		},
		Fetcher: FetcherConfig{
			Timeout:      envDurationOr("SITEADVISOR_FETCH_TIMEOUT", 10*time.Second),
			UserAgent:    envOr("SITEADVISOR_USER_AGENT", "WordPress.com Website Analyzer Bot"),
			MaxBodyBytes: envInt64Or("SITEADVISOR_MAX_BODY", 10*1024*1024),
		},
		Log: LogConfig{
			Level:  envOr("SITEADVISOR_LOG_LEVEL", "info"),
			Format: envOr("SITEADVISOR_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envInt64Or(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

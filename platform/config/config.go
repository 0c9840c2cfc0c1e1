// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetRateLimitQPS() float64
	GetRateLimitBurst() int
}

// ProviderConfig provides settings for the outbound search provider client.
type ProviderConfig interface {
	GetSearchAPIKey() string
	GetSearchBaseURL() string
	GetSearchAPIVersion() string
	GetSearchCountryCode() string
	GetSearchMaxAttempts() int
	GetSearchRetryBaseDelay() time.Duration
	GetSearchRequestTimeout() time.Duration
	GetSearchRateQPS() float64
}

// SearchConfig provides settings for the search service.
type SearchConfig interface {
	GetSearchCountryCode() string
	GetSearchDefaultLimit() int
}

// Config holds all application configuration, loaded from the environment.
// The pipeline itself performs no ambient environment lookups; everything it
// needs is supplied through the interfaces above.
type Config struct {
	Env      string
	HTTPAddr string

	CORSAllowAll   bool
	CORSOrigins    []string
	CORSAllowCreds bool

	RateLimitQPS   float64
	RateLimitBurst int

	SearchAPIKey         string
	SearchBaseURL        string
	SearchAPIVersion     string
	SearchCountryCode    string
	SearchDefaultLimit   int
	SearchMaxAttempts    int
	SearchRetryBaseDelay time.Duration
	SearchRequestTimeout time.Duration
	SearchRateQPS        float64
}

func (c *Config) GetHTTPAddr() string { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool { return c.CORSAllowCreds }
func (c *Config) GetRateLimitQPS() float64 { return c.RateLimitQPS }
func (c *Config) GetRateLimitBurst() int { return c.RateLimitBurst }
func (c *Config) GetSearchAPIKey() string { return c.SearchAPIKey }
func (c *Config) GetSearchBaseURL() string { return c.SearchBaseURL }
func (c *Config) GetSearchAPIVersion() string { return c.SearchAPIVersion }
func (c *Config) GetSearchCountryCode() string { return c.SearchCountryCode }
func (c *Config) GetSearchDefaultLimit() int { return c.SearchDefaultLimit }
func (c *Config) GetSearchMaxAttempts() int { return c.SearchMaxAttempts }
func (c *Config) GetSearchRetryBaseDelay() time.Duration { return c.SearchRetryBaseDelay }
func (c *Config) GetSearchRequestTimeout() time.Duration { return c.SearchRequestTimeout }
func (c *Config) GetSearchRateQPS() float64 { return c.SearchRateQPS }

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	defaultLimit, err := parseInt("SEARCH_DEFAULT_LIMIT", "10")
	if err != nil {
		return nil, err
	}
	maxAttempts, err := parseInt("SEARCH_MAX_ATTEMPTS", "3")
	if err != nil {
		return nil, err
	}
	retryBaseDelay, err := parseDuration("SEARCH_RETRY_BASE_DELAY", "200ms")
	if err != nil {
		return nil, err
	}
	requestTimeout, err := parseDuration("SEARCH_REQUEST_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	rateQPS, err := parseFloat("SEARCH_RATE_QPS", "10")
	if err != nil {
		return nil, err
	}
	rateLimitQPS, err := parseFloat("RATE_LIMIT_QPS", "20")
	if err != nil {
		return nil, err
	}
	rateLimitBurst, err := parseInt("RATE_LIMIT_BURST", "40")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		HTTPAddr:             getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:         corsAllowAll,
		CORSOrigins:          corsOrigins,
		CORSAllowCreds:       strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RateLimitQPS:         rateLimitQPS,
		RateLimitBurst:       rateLimitBurst,
		SearchAPIKey:         getEnv("SEARCH_API_KEY", ""),
		SearchBaseURL:        getEnv("SEARCH_BASE_URL", "https://api.tomtom.com"),
		SearchAPIVersion:     getEnv("SEARCH_API_VERSION", "2"),
		SearchCountryCode:    getEnv("SEARCH_COUNTRY_CODE", "AU"),
		SearchDefaultLimit:   defaultLimit,
		SearchMaxAttempts:    maxAttempts,
		SearchRetryBaseDelay: retryBaseDelay,
		SearchRequestTimeout: requestTimeout,
		SearchRateQPS:        rateQPS,
	}

	if cfg.SearchAPIKey == "" {
		return nil, fmt.Errorf("SEARCH_API_KEY is required")
	}
	if cfg.SearchMaxAttempts < 1 {
		return nil, fmt.Errorf("SEARCH_MAX_ATTEMPTS must be at least 1")
	}
	if cfg.SearchDefaultLimit < 1 || cfg.SearchDefaultLimit > 100 {
		return nil, fmt.Errorf("SEARCH_DEFAULT_LIMIT must be between 1 and 100")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.RateLimitQPS <= 0 || cfg.RateLimitBurst < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_QPS and RATE_LIMIT_BURST must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func parseInt(key, fallback string) (int, error) {
	value := getEnv(key, fallback)
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return parsed, nil
}

func parseFloat(key, fallback string) (float64, error) {
	value := getEnv(key, fallback)
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, value)
	}
	return parsed, nil
}

func parseDuration(key, fallback string) (time.Duration, error) {
	value := getEnv(key, fallback)
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration, got %q", key, value)
	}
	return parsed, nil
}

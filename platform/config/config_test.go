package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("SEARCH_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.SearchBaseURL != "https://api.tomtom.com" || cfg.SearchAPIVersion != "2" {
		t.Fatalf("unexpected provider defaults %+v", cfg)
	}
	if cfg.SearchCountryCode != "AU" || cfg.SearchDefaultLimit != 10 {
		t.Fatalf("unexpected search defaults %+v", cfg)
	}
	if cfg.SearchMaxAttempts != 3 || cfg.SearchRetryBaseDelay != 200*time.Millisecond {
		t.Fatalf("unexpected retry defaults %+v", cfg)
	}
	if cfg.RateLimitQPS != 20 || cfg.RateLimitBurst != 40 {
		t.Fatalf("unexpected rate limit defaults %+v", cfg)
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("SEARCH_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestLoadReportsMalformedValuesAsErrors(t *testing.T) {
	cases := map[string]string{
		"SEARCH_MAX_ATTEMPTS":     "many",
		"SEARCH_DEFAULT_LIMIT":    "ten",
		"SEARCH_RETRY_BASE_DELAY": "soon",
		"SEARCH_RATE_QPS":         "fast",
		"RATE_LIMIT_QPS":          "lots",
		"RATE_LIMIT_BURST":        "big",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("SEARCH_API_KEY", "test-key")
			t.Setenv(key, value)

			_, err := Load()
			if err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
			if !strings.Contains(err.Error(), key) {
				t.Fatalf("expected error to name %s, got %v", key, err)
			}
		})
	}
}

func TestLoadRejectsNonPositiveRateLimit(t *testing.T) {
	t.Setenv("SEARCH_API_KEY", "test-key")
	t.Setenv("RATE_LIMIT_QPS", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero rate limit")
	}
}

func TestLoadRejectsWildcardOriginWithCredentials(t *testing.T) {
	t.Setenv("SEARCH_API_KEY", "test-key")
	t.Setenv("CORS_ORIGINS", "*")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for wildcard origin with credentials")
	}
}

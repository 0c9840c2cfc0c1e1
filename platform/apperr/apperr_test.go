package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"testing"
)

func TestKindHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindInvalidInput, http.StatusBadRequest},
		{KindNoResults, http.StatusNotFound},
		{KindCountryMismatch, http.StatusUnprocessableEntity},
		{KindProviderAuth, http.StatusUnauthorized},
		{KindProviderRateLimit, http.StatusTooManyRequests},
		{KindProviderUnavailable, http.StatusServiceUnavailable},
		{KindProviderNetwork, http.StatusBadGateway},
		{KindHTTP, http.StatusBadGateway},
		{KindConfiguration, http.StatusInternalServerError},
		{KindProviderUnknown, http.StatusInternalServerError},
		{KindUnknown, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := New(tc.kind, "x").HTTPStatus(); got != tc.want {
			t.Fatalf("kind %s: got status %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestKindRetryable(t *testing.T) {
	retryable := map[Kind]bool{
		KindProviderRateLimit:   true,
		KindProviderUnavailable: true,
		KindProviderNetwork:     true,
	}

	for kind := KindUnknown; kind <= KindHTTP; kind++ {
		if got := kind.Retryable(); got != retryable[kind] {
			t.Fatalf("kind %s: retryable = %v, want %v", kind, got, retryable[kind])
		}
	}
}

func TestKindSeverity(t *testing.T) {
	cases := []struct {
		kind Kind
		want slog.Level
	}{
		{KindInvalidInput, slog.LevelDebug},
		{KindNoResults, slog.LevelDebug},
		{KindCountryMismatch, slog.LevelDebug},
		{KindProviderRateLimit, slog.LevelWarn},
		{KindProviderAuth, slog.LevelError},
		{KindProviderUnavailable, slog.LevelError},
		{KindUnknown, slog.LevelError},
	}

	for _, tc := range cases {
		if got := tc.kind.Severity(); got != tc.want {
			t.Fatalf("kind %s: got level %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestKindWireNamesAreStable(t *testing.T) {
	cases := map[Kind]string{
		KindInvalidInput:        "invalid_input",
		KindNoResults:           "no_results",
		KindCountryMismatch:     "country_mismatch",
		KindConfiguration:       "configuration",
		KindProviderAuth:        "provider_auth",
		KindProviderRateLimit:   "provider_rate_limit",
		KindProviderUnavailable: "provider_unavailable",
		KindProviderNetwork:     "provider_network",
		KindProviderUnknown:     "provider_unknown",
		KindHTTP:                "provider_http",
		KindUnknown:             "unknown",
	}

	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("kind %d: got %q, want %q", kind, got, want)
		}
	}
}

func TestErrorMessageIncludesOp(t *testing.T) {
	err := NoResults("no addresses found").WithOp("search.validateResults")
	if got := err.Error(); got != "search.validateResults: no addresses found" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestFromErrorPassesTaxonomyThrough(t *testing.T) {
	original := ProviderRateLimit("throttled").WithProvider("tomtom").WithStatus(429)
	wrapped := fmt.Errorf("call failed: %w", original)

	classified := FromError(wrapped)
	if classified != original {
		t.Fatalf("expected original error back, got %+v", classified)
	}
	if classified.Provider != "tomtom" || classified.StatusCode != 429 {
		t.Fatalf("expected provider context preserved, got %+v", classified)
	}
}

func TestFromErrorDowngradesForeignErrors(t *testing.T) {
	classified := FromError(errors.New("sql: connection refused"))
	if classified.Kind != KindUnknown {
		t.Fatalf("expected unknown kind, got %s", classified.Kind)
	}
	if classified.Message != "unexpected error" {
		t.Fatalf("internal error text leaked into message: %q", classified.Message)
	}
}

func TestFromErrorNil(t *testing.T) {
	if FromError(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestIsMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", CountryMismatch("outside target country"))
	if !Is(err, KindCountryMismatch) {
		t.Fatal("expected kind match through wrapping")
	}
	if Is(err, KindNoResults) {
		t.Fatal("unexpected kind match")
	}
	if Is(errors.New("plain"), KindCountryMismatch) {
		t.Fatal("plain error must not match a taxonomy kind")
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindProviderNetwork, "provider unreachable", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected cause reachable via errors.Is")
	}
}

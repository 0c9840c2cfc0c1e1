package domain

import (
	"strings"
	"testing"

	"address_search_backend/platform/apperr"
)

func TestValidateQueryTrimsAndNormalizes(t *testing.T) {
	query, warnings, err := ValidateQuery(RawQuery{Text: "  123 George Street Sydney  ", Limit: 5}, Australia, 10)
	if err != nil {
		t.Fatalf("expected valid query, got %v", err)
	}
	if query.Text != "123 George Street Sydney" {
		t.Fatalf("expected trimmed text, got %q", query.Text)
	}
	if query.Limit != 5 {
		t.Fatalf("expected limit 5, got %d", query.Limit)
	}
	if query.CountryCode != "AU" {
		t.Fatalf("expected country code AU, got %q", query.CountryCode)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}

func TestValidateQueryIsIdempotent(t *testing.T) {
	first, _, err := ValidateQuery(RawQuery{Text: " 123 George Street Sydney ", Limit: 5}, Australia, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, _, err := ValidateQuery(RawQuery{Text: first.Text, Limit: first.Limit, Country: first.CountryCode}, Australia, 10)
	if err != nil {
		t.Fatalf("unexpected error revalidating: %v", err)
	}
	if first != second {
		t.Fatalf("expected revalidation to be a no-op, got %+v vs %+v", first, second)
	}
}

func TestValidateQueryRejectsShortText(t *testing.T) {
	_, _, err := ValidateQuery(RawQuery{Text: "ab"}, Australia, 10)
	if !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestValidateQueryRejectsWhitespaceOnlyText(t *testing.T) {
	_, _, err := ValidateQuery(RawQuery{Text: "      "}, Australia, 10)
	if !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestValidateQueryRejectsLongText(t *testing.T) {
	_, _, err := ValidateQuery(RawQuery{Text: strings.Repeat("a", 201)}, Australia, 10)
	if !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestValidateQueryCountsCharactersNotBytes(t *testing.T) {
	// Two characters, six bytes: under the minimum either way it is counted.
	_, _, err := ValidateQuery(RawQuery{Text: "悉尼"}, Australia, 10)
	if !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("expected 2-character query rejected, got %v", err)
	}

	// 150 characters, 450 bytes: valid in characters, over 200 in bytes.
	long := strings.Repeat("悉", 150)
	_, warnings, err := ValidateQuery(RawQuery{Text: long}, Australia, 10)
	if err != nil {
		t.Fatalf("expected 150-character query accepted, got %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "longer") {
		t.Fatalf("expected a longer-than-optimal warning, got %v", warnings)
	}

	// Ten characters meets the advisory minimum regardless of byte width.
	_, warnings, err = ValidateQuery(RawQuery{Text: strings.Repeat("悉", 10)}, Australia, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}

func TestValidateQueryDefaultsLimit(t *testing.T) {
	query, _, err := ValidateQuery(RawQuery{Text: "123 George Street Sydney"}, Australia, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.Limit != 10 {
		t.Fatalf("expected default limit 10, got %d", query.Limit)
	}
}

func TestValidateQueryRejectsLimitOutOfRange(t *testing.T) {
	for _, limit := range []int{-1, 101} {
		_, _, err := ValidateQuery(RawQuery{Text: "123 George Street Sydney", Limit: limit}, Australia, 10)
		if !apperr.Is(err, apperr.KindInvalidInput) {
			t.Fatalf("limit %d: expected invalid input, got %v", limit, err)
		}
	}
}

func TestValidateQueryAcceptsTargetCountrySpellings(t *testing.T) {
	for _, country := range []string{"AU", "au", "AUS", "australia", " Australia "} {
		_, _, err := ValidateQuery(RawQuery{Text: "123 George Street Sydney", Country: country}, Australia, 10)
		if err != nil {
			t.Fatalf("country %q: unexpected error %v", country, err)
		}
	}
}

func TestValidateQueryRejectsForeignCountry(t *testing.T) {
	_, _, err := ValidateQuery(RawQuery{Text: "123 George Street Sydney", Country: "DE"}, Australia, 10)
	if !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	msg := err.Error()
	for _, accepted := range Australia.Accepted() {
		if !strings.Contains(msg, accepted) {
			t.Fatalf("expected message to list %q, got %q", accepted, msg)
		}
	}
}

func TestValidateQueryWarnsOnShortText(t *testing.T) {
	query, warnings, err := ValidateQuery(RawQuery{Text: "Syd"}, Australia, 10)
	if err != nil {
		t.Fatalf("short-but-valid query should pass, got %v", err)
	}
	if query.Text != "Syd" {
		t.Fatalf("unexpected text %q", query.Text)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "shorter") {
		t.Fatalf("expected a shorter-than-optimal warning, got %v", warnings)
	}
}

func TestValidateQueryWarnsOnLongText(t *testing.T) {
	_, warnings, err := ValidateQuery(RawQuery{Text: strings.Repeat("a", 150)}, Australia, 10)
	if err != nil {
		t.Fatalf("long-but-valid query should pass, got %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "longer") {
		t.Fatalf("expected a longer-than-optimal warning, got %v", warnings)
	}
}

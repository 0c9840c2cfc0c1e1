package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"address_search_backend/platform/apperr"
)

// Query bounds. Violations are rejected before any network call is made.
const (
	MinQueryLength = 3
	MaxQueryLength = 200
	MinLimit       = 1
	MaxLimit       = 100
)

// Advisory sub-range: queries outside it are still valid but produce warnings.
const (
	optimalMinLength = 10
	optimalMaxLength = 100
)

// ValidateQuery normalizes and bounds-checks the raw input. It is pure,
// performs no I/O, and is idempotent: re-validating an already-valid query
// yields an identical Query. Warnings are advisory only and are surfaced to
// the caller alongside the result, never raised as errors.
func ValidateQuery(raw RawQuery, target Country, defaultLimit int) (Query, []string, error) {
	text := strings.TrimSpace(raw.Text)
	// Bounds are in characters, not bytes; multibyte queries count per rune.
	length := utf8.RuneCountInString(text)
	if length < MinQueryLength {
		return Query{}, nil, apperr.InvalidInput(
			fmt.Sprintf("search text must be at least %d characters", MinQueryLength))
	}
	if length > MaxQueryLength {
		return Query{}, nil, apperr.InvalidInput(
			fmt.Sprintf("search text must be at most %d characters", MaxQueryLength))
	}

	limit := raw.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < MinLimit || limit > MaxLimit {
		return Query{}, nil, apperr.InvalidInput(
			fmt.Sprintf("limit must be between %d and %d", MinLimit, MaxLimit))
	}

	if country := strings.TrimSpace(raw.Country); country != "" && !target.Matches(country) {
		return Query{}, nil, apperr.InvalidInput(
			fmt.Sprintf("country must be one of: %s", strings.Join(target.Accepted(), ", ")))
	}

	var warnings []string
	if length < optimalMinLength {
		warnings = append(warnings,
			fmt.Sprintf("search text shorter than %d characters may return overly broad results", optimalMinLength))
	}
	if length > optimalMaxLength {
		warnings = append(warnings,
			fmt.Sprintf("search text longer than %d characters rarely improves matching", optimalMaxLength))
	}

	return Query{Text: text, Limit: limit, CountryCode: target.Alpha2}, warnings, nil
}

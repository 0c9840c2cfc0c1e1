// Package apperr provides the typed error taxonomy for the search pipeline.
// Every failure that crosses a component boundary is represented as an *Error
// tagged with exactly one Kind. The HTTP layer maps kinds to status codes, the
// request executor consults Retryable to drive its retry loop, and the log
// policy is a property of the kind rather than of the call site.
package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindInvalidInput indicates the query failed local validation or was
	// rejected by the provider as malformed.
	KindInvalidInput
	// KindNoResults indicates the provider returned an empty result set.
	KindNoResults
	// KindCountryMismatch indicates all provider results fell outside the
	// target country.
	KindCountryMismatch
	// KindConfiguration indicates missing or invalid provider configuration.
	KindConfiguration
	// KindProviderAuth indicates the provider rejected our credentials.
	KindProviderAuth
	// KindProviderRateLimit indicates the provider throttled the request.
	KindProviderRateLimit
	// KindProviderUnavailable indicates a provider 5xx or timeout.
	KindProviderUnavailable
	// KindProviderNetwork indicates the request was sent but no response came back.
	KindProviderNetwork
	// KindProviderUnknown indicates an unrecognizable transport failure.
	KindProviderUnknown
	// KindHTTP indicates a provider response with an unexpected status code.
	// The status itself is carried on the Error.
	KindHTTP
)

// String returns the wire name of the kind, used in error envelopes.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNoResults:
		return "no_results"
	case KindCountryMismatch:
		return "country_mismatch"
	case KindConfiguration:
		return "configuration"
	case KindProviderAuth:
		return "provider_auth"
	case KindProviderRateLimit:
		return "provider_rate_limit"
	case KindProviderUnavailable:
		return "provider_unavailable"
	case KindProviderNetwork:
		return "provider_network"
	case KindProviderUnknown:
		return "provider_unknown"
	case KindHTTP:
		return "provider_http"
	default:
		return "unknown"
	}
}

// Retryable reports whether a new attempt against the provider may succeed
// without changing the request. The request executor stops immediately on the
// first non-retryable classification.
func (k Kind) Retryable() bool {
	switch k {
	case KindProviderRateLimit, KindProviderUnavailable, KindProviderNetwork:
		return true
	default:
		return false
	}
}

// Severity returns the log level for errors of this kind. Client-input
// failures are only visible at debug level; provider-side failures are
// always logged.
func (k Kind) Severity() slog.Level {
	switch k {
	case KindInvalidInput, KindNoResults, KindCountryMismatch:
		return slog.LevelDebug
	case KindProviderRateLimit:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// Error is a classified domain error.
type Error struct {
	Kind       Kind
	Message    string
	Provider   string                 // Provider that produced the failure (optional)
	Op         string                 // Operation that failed (optional)
	StatusCode int                    // Provider HTTP status, if a response was received
	Err        error                  // Underlying error (optional)
	Details    map[string]interface{} // Additional details for the error envelope (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status code the error envelope is served with.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNoResults:
		return http.StatusNotFound
	case KindCountryMismatch:
		return http.StatusUnprocessableEntity
	case KindProviderAuth:
		return http.StatusUnauthorized
	case KindProviderRateLimit:
		return http.StatusTooManyRequests
	case KindProviderUnavailable:
		return http.StatusServiceUnavailable
	case KindProviderNetwork, KindHTTP:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Retryable reports whether the request executor may retry this error.
func (e *Error) Retryable() bool {
	return e.Kind.Retryable()
}

// New creates a new domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp returns the error with the operation set.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// WithProvider returns the error with the provider name set.
func (e *Error) WithProvider(provider string) *Error {
	e.Provider = provider
	return e
}

// WithStatus returns the error with the provider status code set.
func (e *Error) WithStatus(status int) *Error {
	e.StatusCode = status
	return e
}

// WithDetails returns the error with additional envelope details.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	e.Details = details
	return e
}

// Convenience constructors for the taxonomy.

// InvalidInput creates a validation error.
func InvalidInput(message string) *Error {
	return New(KindInvalidInput, message)
}

// NoResults creates an empty-result-set error.
func NoResults(message string) *Error {
	return New(KindNoResults, message)
}

// CountryMismatch creates a target-country invariant violation.
func CountryMismatch(message string) *Error {
	return New(KindCountryMismatch, message)
}

// Configuration creates a configuration error.
func Configuration(message string) *Error {
	return New(KindConfiguration, message)
}

// ProviderAuth creates a provider authentication error.
func ProviderAuth(message string) *Error {
	return New(KindProviderAuth, message)
}

// ProviderRateLimit creates a provider throttling error.
func ProviderRateLimit(message string) *Error {
	return New(KindProviderRateLimit, message)
}

// ProviderUnavailable creates a provider 5xx/timeout error.
func ProviderUnavailable(message string) *Error {
	return New(KindProviderUnavailable, message)
}

// ProviderNetwork creates a no-response transport error.
func ProviderNetwork(message string) *Error {
	return New(KindProviderNetwork, message)
}

// ProviderUnknown creates an unclassifiable provider error.
func ProviderUnknown(message string) *Error {
	return New(KindProviderUnknown, message)
}

// HTTPError creates an error for an unexpected provider status code.
func HTTPError(status int, message string) *Error {
	return &Error{Kind: KindHTTP, Message: message, StatusCode: status}
}

// FromError returns err as a classified *Error. An error that already belongs
// to the taxonomy passes through unchanged; anything else is downgraded to
// KindUnknown so internal error types never leak across the boundary.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(KindUnknown, "unexpected error", err)
}

// GetKind extracts the error kind from an error.
// Returns KindUnknown if the error is not an *Error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is checks if err is an *Error with the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}

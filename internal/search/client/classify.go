package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"address_search_backend/internal/search/transport"
	"address_search_backend/platform/apperr"
)

// statusError carries a non-2xx provider response to the classifier.
type statusError struct {
	StatusCode int
	Body       string
}

func (e *statusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

// Classify converts any failure of one provider attempt into exactly one
// member of the error taxonomy. It is total: whatever shape it is handed, it
// returns a classified error. Errors that already belong to the taxonomy pass
// through unchanged; the classifier never re-wraps them.
func Classify(err error) *apperr.Error {
	if err == nil {
		return nil
	}

	var classified *apperr.Error
	if errors.As(err, &classified) {
		return classified
	}

	var status *statusError
	if errors.As(err, &status) {
		return classifyStatus(status)
	}

	// Timeouts come in two shapes: the attempt-sequence deadline expiring,
	// and the transport reporting a timeout itself. Both get the
	// service-unavailable framing and stay retryable until the deadline or
	// attempt budget runs out.
	if errors.Is(err, context.DeadlineExceeded) {
		return timeoutError(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return timeoutError(err)
	}

	// The request went out but no response came back.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return apperr.Wrap(apperr.KindProviderNetwork, "search provider unreachable", err).
			WithProvider(transport.ProviderName).
			WithDetails(map[string]interface{}{"category": "network"})
	}

	return apperr.Wrap(apperr.KindProviderUnknown, "unexpected search provider failure", err).
		WithProvider(transport.ProviderName).
		WithDetails(map[string]interface{}{"category": "unknown"})
}

func timeoutError(err error) *apperr.Error {
	return apperr.Wrap(apperr.KindProviderUnavailable, "search provider timed out", err).
		WithProvider(transport.ProviderName).
		WithDetails(map[string]interface{}{"category": "timeout"})
}

func classifyStatus(status *statusError) *apperr.Error {
	var classified *apperr.Error
	category := ""

	switch {
	case status.StatusCode == 400:
		classified = apperr.InvalidInput("search provider rejected the query")
		category = "validation"
	case status.StatusCode == 401 || status.StatusCode == 403:
		classified = apperr.ProviderAuth("search provider authentication failed")
		category = "auth"
	case status.StatusCode == 429:
		classified = apperr.ProviderRateLimit("search provider rate limit exceeded")
		category = "rate_limit"
	case status.StatusCode >= 500:
		classified = apperr.ProviderUnavailable(fmt.Sprintf("search provider unavailable (status %d)", status.StatusCode))
		category = "unavailable"
	default:
		classified = apperr.HTTPError(status.StatusCode, fmt.Sprintf("unexpected provider status %d", status.StatusCode))
		category = "http"
	}

	classified.Err = status
	return classified.
		WithProvider(transport.ProviderName).
		WithStatus(status.StatusCode).
		WithDetails(map[string]interface{}{
			"status":   status.StatusCode,
			"category": category,
		})
}

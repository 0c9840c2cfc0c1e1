// Package client provides the HTTP client for the address search provider,
// including the bounded retry policy applied to every outbound call.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"address_search_backend/internal/search/domain"
	"address_search_backend/internal/search/transport"
	"address_search_backend/platform/apperr"
	"address_search_backend/platform/config"
	"address_search_backend/platform/logger"

	"golang.org/x/time/rate"
)

// providerMaxLimit is the largest result count the provider accepts per call.
const providerMaxLimit = 100

// RetryPolicy bounds the attempt sequence of one search call. It is immutable
// per client and shared across concurrent calls without locking.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Timeout     time.Duration
}

// Client is the HTTP client for the search provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	version    string
	policy     RetryPolicy
	limiter    *rate.Limiter
	log        *logger.Logger
}

// New creates a new provider client from configuration.
func New(cfg config.ProviderConfig, log *logger.Logger) *Client {
	var limiter *rate.Limiter
	if qps := cfg.GetSearchRateQPS(); qps > 0 {
		limiter = rate.NewLimiter(rate.Limit(qps), 1)
	}

	return &Client{
		// The per-call deadline below is the only timeout. A client-level
		// timeout would race it and produce ambiguous classifications.
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(cfg.GetSearchBaseURL(), "/"),
		apiKey:     cfg.GetSearchAPIKey(),
		version:    cfg.GetSearchAPIVersion(),
		policy: RetryPolicy{
			MaxAttempts: cfg.GetSearchMaxAttempts(),
			BaseDelay:   cfg.GetSearchRetryBaseDelay(),
			Timeout:     cfg.GetSearchRequestTimeout(),
		},
		limiter: limiter,
		log:     log,
	}
}

// Search issues the provider call for a validated query, retrying transient
// failures up to the policy's attempt budget. The whole attempt sequence is
// bounded by a single deadline; on expiry the in-flight attempt is abandoned
// and classified as a provider timeout. Only errors the classifier marks
// retryable keep the loop going; everything else surfaces immediately.
func (c *Client) Search(ctx context.Context, query domain.Query) (*transport.ProviderResponse, error) {
	reqURL := c.searchURL(query)

	ctx, cancel := context.WithTimeout(ctx, c.policy.Timeout)
	defer cancel()

	var lastErr *apperr.Error
	for attempt := 1; attempt <= c.policy.MaxAttempts; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				// Wait fails either because the deadline expired or because
				// its precheck sees the reservation cannot fit before it.
				// Both are deadline expiry for classification purposes.
				if ctxErr := ctx.Err(); ctxErr != nil {
					return nil, Classify(ctxErr)
				}
				return nil, timeoutError(err)
			}
		}

		c.log.ProviderRequest(transport.ProviderName, c.baseURL, attempt)

		payload, err := c.attempt(ctx, reqURL)
		if err == nil {
			return payload, nil
		}

		lastErr = Classify(err)
		if !lastErr.Retryable() || attempt == c.policy.MaxAttempts {
			return nil, lastErr
		}

		delay := backoffDelay(attempt, c.policy.BaseDelay)
		c.log.ProviderRetry(transport.ProviderName, attempt, float64(delay.Milliseconds()), lastErr)

		select {
		case <-ctx.Done():
			return nil, Classify(ctx.Err())
		case <-time.After(delay):
		}
	}

	return nil, lastErr
}

// attempt performs a single provider request. Transport errors are returned
// raw for the classifier; non-2xx responses are wrapped with their status.
func (c *Client) attempt(ctx context.Context, reqURL string) (*transport.ProviderResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindConfiguration, "invalid provider request", err).
			WithProvider(transport.ProviderName)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &statusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var payload transport.ProviderResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperr.Wrap(apperr.KindProviderUnknown, "undecodable provider response", err).
			WithProvider(transport.ProviderName)
	}

	return &payload, nil
}

// searchURL builds the versioned search URL. The caller's limit is already
// validated; it is additionally capped at the provider's own maximum.
func (c *Client) searchURL(query domain.Query) string {
	limit := query.Limit
	if limit > providerMaxLimit {
		limit = providerMaxLimit
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("countrySet", query.CountryCode)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("typeahead", "true")
	params.Set("view", "Unified")

	return fmt.Sprintf("%s/search/%s/search/%s.json?%s",
		c.baseURL, c.version, url.PathEscape(query.Text), params.Encode())
}

// backoffDelay grows exponentially from the base delay: base, 2x, 4x, ...
func backoffDelay(attempt int, base time.Duration) time.Duration {
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
	}
	return delay
}

// Package service provides the business logic of the address search pipeline:
// query validation, provider execution and result validation, composed per call.
package service

import (
	"context"

	"address_search_backend/internal/search/domain"
	"address_search_backend/internal/search/transport"
	"address_search_backend/platform/apperr"
	"address_search_backend/platform/config"
	"address_search_backend/platform/logger"
)

// ProviderClient executes one search call against the provider, retries
// included. The service never inspects raw transport errors; whatever comes
// back is already classified.
type ProviderClient interface {
	Search(ctx context.Context, query domain.Query) (*transport.ProviderResponse, error)
}

// Service handles address search calls. All fields are read-only after
// construction and safe to share across concurrent calls.
type Service struct {
	client       ProviderClient
	target       domain.Country
	defaultLimit int
	log          *logger.Logger
}

// New creates a new search service for the configured target country.
func New(client ProviderClient, cfg config.SearchConfig, log *logger.Logger) (*Service, error) {
	target, ok := domain.CountryByCode(cfg.GetSearchCountryCode())
	if !ok {
		return nil, apperr.Configuration("unsupported target country code: " + cfg.GetSearchCountryCode())
	}

	return &Service{
		client:       client,
		target:       target,
		defaultLimit: cfg.GetSearchDefaultLimit(),
		log:          log,
	}, nil
}

// Search runs the full pipeline for one raw query. Validation failures never
// reach the network; provider failures arrive classified from the client; and
// every suggestion returned is guaranteed to belong to the target country.
func (s *Service) Search(ctx context.Context, raw domain.RawQuery) (transport.SearchResult, error) {
	query, warnings, err := domain.ValidateQuery(raw, s.target, s.defaultLimit)
	if err != nil {
		return transport.SearchResult{}, err
	}

	payload, err := s.client.Search(ctx, query)
	if err != nil {
		return transport.SearchResult{}, err
	}

	suggestions, err := s.validateResults(payload, query)
	if err != nil {
		return transport.SearchResult{}, err
	}

	return transport.SearchResult{
		Results: suggestions,
		Metadata: transport.SearchMetadata{
			Query:       query.Text,
			Limit:       query.Limit,
			ResultCount: len(suggestions),
			Warnings:    warnings,
		},
	}, nil
}

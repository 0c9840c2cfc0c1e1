// Package search provides the address search bounded context.
// This file defines the public interface exposed to other domains.
package search

import (
	"context"

	"address_search_backend/internal/search/domain"
	"address_search_backend/internal/search/transport"
)

// AddressSearchService defines the public interface for address lookups.
// Other domains should depend on this interface, not the concrete implementation.
type AddressSearchService interface {
	// Search returns validated, target-country address suggestions for a
	// free-text query, or a classified error.
	Search(ctx context.Context, raw domain.RawQuery) (transport.SearchResult, error)
}

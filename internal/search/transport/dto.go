// Package transport defines the wire shapes of the search module: the inbound
// request DTO, the success envelope, and the provider's response payload.
package transport

import (
	"encoding/json"

	"address_search_backend/internal/search/domain"
)

// ProviderName identifies the upstream search provider in logs and errors.
const ProviderName = "tomtom"

// SearchRequest represents the query parameters from the caller.
type SearchRequest struct {
	Query   string `form:"q" validate:"required,min=3,max=200"`
	Limit   int    `form:"limit" validate:"omitempty,min=1,max=100"`
	Country string `form:"country" validate:"omitempty,max=56"`
}

// SearchMetadata describes the query a result set answers.
type SearchMetadata struct {
	Query       string   `json:"query"`
	Limit       int      `json:"limit"`
	ResultCount int      `json:"resultCount"`
	Warnings    []string `json:"warnings"`
}

// SearchResult is the service-level outcome of one search call.
type SearchResult struct {
	Results  []domain.Suggestion
	Metadata SearchMetadata
}

// SearchResponse is the success envelope served at the HTTP boundary.
type SearchResponse struct {
	Success  bool                `json:"success"`
	Results  []domain.Suggestion `json:"results"`
	Metadata SearchMetadata      `json:"metadata"`
}

// NewSearchResponse builds the success envelope. The result count is always
// recomputed from the results being serialized, never trusted from upstream.
func NewSearchResponse(result SearchResult) SearchResponse {
	meta := result.Metadata
	meta.ResultCount = len(result.Results)
	if meta.Warnings == nil {
		meta.Warnings = []string{}
	}
	results := result.Results
	if results == nil {
		results = []domain.Suggestion{}
	}
	return SearchResponse{Success: true, Results: results, Metadata: meta}
}

// ProviderResponse mirrors the relevant parts of the provider search payload.
// Errors the provider reports in-band, distinct from the HTTP status, arrive
// as either a structured detailedError or a bare errorText.
type ProviderResponse struct {
	Results       []ProviderResult `json:"results"`
	DetailedError *ProviderError   `json:"detailedError"`
	ErrorText     string           `json:"errorText"`
}

// ProviderError is the structured in-band error body.
type ProviderError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ProviderResult is one raw provider match. Raw keeps the original payload
// bytes for diagnostics.
type ProviderResult struct {
	ID       string           `json:"id"`
	Score    *float64         `json:"score"`
	Address  ProviderAddress  `json:"address"`
	Position ProviderPosition `json:"position"`
	Raw      json.RawMessage  `json:"-"`
}

// UnmarshalJSON decodes the result and retains the raw payload bytes.
func (r *ProviderResult) UnmarshalJSON(data []byte) error {
	type alias ProviderResult
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = ProviderResult(a)
	r.Raw = json.RawMessage(append([]byte(nil), data...))
	return nil
}

// ProviderAddress is the provider's address block.
type ProviderAddress struct {
	FreeformAddress         string `json:"freeformAddress"`
	StreetNumber            string `json:"streetNumber"`
	StreetName              string `json:"streetName"`
	MunicipalitySubdivision string `json:"municipalitySubdivision"`
	Municipality            string `json:"municipality"`
	CountrySubdivision      string `json:"countrySubdivision"`
	PostalCode              string `json:"postalCode"`
	Country                 string `json:"country"`
	CountryCode             string `json:"countryCode"`
	CountryCodeISO3         string `json:"countryCodeISO3"`
}

// ProviderPosition is the provider's coordinate pair.
type ProviderPosition struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

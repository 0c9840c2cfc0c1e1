package service

import (
	"fmt"
	"strings"

	"address_search_backend/internal/search/domain"
	"address_search_backend/internal/search/transport"
	"address_search_backend/platform/apperr"

	"github.com/google/uuid"
)

// defaultScore is assumed when the provider omits a relevance score.
const defaultScore = 1.0

// validateResults filters the provider payload against the target-country
// invariant and maps the survivors into domain suggestions. Provider ordering
// is preserved. A foreign address is never silently included: if filtering
// empties a non-empty result set, the call fails with a country mismatch.
func (s *Service) validateResults(payload *transport.ProviderResponse, query domain.Query) ([]domain.Suggestion, error) {
	if payload.DetailedError != nil {
		return nil, apperr.ProviderUnavailable(payload.DetailedError.Message).
			WithProvider(transport.ProviderName).
			WithDetails(map[string]interface{}{"providerCode": payload.DetailedError.Code})
	}
	if payload.ErrorText != "" {
		return nil, apperr.ProviderUnavailable(payload.ErrorText).
			WithProvider(transport.ProviderName)
	}

	if len(payload.Results) == 0 {
		return nil, apperr.NoResults(
			fmt.Sprintf("no addresses found for %q via %s", query.Text, transport.ProviderName))
	}

	suggestions := make([]domain.Suggestion, 0, len(payload.Results))
	for _, result := range payload.Results {
		if !s.matchesTarget(result.Address) {
			continue
		}
		suggestions = append(suggestions, mapSuggestion(result))
	}

	if len(suggestions) == 0 {
		return nil, apperr.CountryMismatch(
			fmt.Sprintf("no results in %s for %q", s.target.Name, query.Text)).
			WithProvider(transport.ProviderName).
			WithDetails(map[string]interface{}{
				"expectedCountry": s.target.Name,
				"actualCountries": distinctCountries(payload.Results),
				"query":           query.Text,
			})
	}

	return suggestions, nil
}

// matchesTarget resolves the result's country against the target by alpha-2
// code, alpha-3 code or country name.
func (s *Service) matchesTarget(address transport.ProviderAddress) bool {
	return s.target.Matches(address.CountryCode) ||
		s.target.Matches(address.CountryCodeISO3) ||
		s.target.Matches(address.Country)
}

// mapSuggestion converts one raw provider result into the domain shape,
// filling the defaults the provider is allowed to omit.
func mapSuggestion(result transport.ProviderResult) domain.Suggestion {
	id := result.ID
	if id == "" {
		id = uuid.NewString()
	}

	score := defaultScore
	if result.Score != nil {
		score = *result.Score
	}

	address := domain.Address{
		FullAddress:  result.Address.FreeformAddress,
		StreetNumber: result.Address.StreetNumber,
		StreetName:   result.Address.StreetName,
		Suburb:       result.Address.MunicipalitySubdivision,
		Municipality: result.Address.Municipality,
		State:        result.Address.CountrySubdivision,
		Postcode:     result.Address.PostalCode,
		Country:      result.Address.Country,
		Coordinates: domain.Coordinates{
			Lat: result.Position.Lat,
			Lon: result.Position.Lon,
		},
		Raw: result.Raw,
	}

	text := result.Address.FreeformAddress
	if text == "" {
		text = composeText(address)
	}

	return domain.Suggestion{
		ID:      id,
		Text:    text,
		Score:   score,
		Address: address,
	}
}

// composeText builds a display string from address components when the
// provider omits one.
func composeText(address domain.Address) string {
	var parts []string
	if street := strings.TrimSpace(address.StreetNumber + " " + address.StreetName); street != "" {
		parts = append(parts, street)
	}
	if address.Suburb != "" {
		parts = append(parts, address.Suburb)
	}
	if region := strings.TrimSpace(address.State + " " + address.Postcode); region != "" {
		parts = append(parts, region)
	}
	if address.Country != "" {
		parts = append(parts, address.Country)
	}
	return strings.Join(parts, ", ")
}

// distinctCountries collects the countries observed in the raw result set,
// in first-seen order.
func distinctCountries(results []transport.ProviderResult) []string {
	seen := make(map[string]struct{})
	countries := make([]string, 0, len(results))
	for _, result := range results {
		name := result.Address.Country
		if name == "" {
			name = result.Address.CountryCode
		}
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		countries = append(countries, name)
	}
	return countries
}

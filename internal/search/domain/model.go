// Package domain holds the address search domain model: queries, countries,
// and the normalized suggestion shape returned to callers.
package domain

import "encoding/json"

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the position is inside the WGS84 bounds.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Address is a normalized address. Raw retains the original provider payload
// for diagnostics; it is never interpreted after mapping.
type Address struct {
	FullAddress  string          `json:"fullAddress"`
	StreetNumber string          `json:"streetNumber,omitempty"`
	StreetName   string          `json:"streetName,omitempty"`
	Suburb       string          `json:"suburb,omitempty"`
	Municipality string          `json:"municipality,omitempty"`
	State        string          `json:"state"`
	Postcode     string          `json:"postcode"`
	Country      string          `json:"country"`
	Coordinates  Coordinates     `json:"coordinates"`
	Raw          json.RawMessage `json:"-"`
}

// Suggestion is one candidate address returned to the caller. Provider
// ordering is authoritative; suggestions are never re-sorted.
type Suggestion struct {
	ID      string  `json:"id"`
	Text    string  `json:"text"`
	Score   float64 `json:"relevanceScore"`
	Address Address `json:"address"`
}

// RawQuery is the unvalidated search input as received at the boundary.
// A Limit of zero means "not supplied".
type RawQuery struct {
	Text    string
	Limit   int
	Country string
}

// Query is a validated search query. It is constructed only by ValidateQuery
// and lives for a single call.
type Query struct {
	Text        string
	Limit       int
	CountryCode string
}

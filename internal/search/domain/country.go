package domain

import "strings"

// Country identifies the target country for the search facade. Matching is
// case-insensitive across the full name and both ISO 3166-1 codes, since the
// provider is inconsistent about which of the three it returns per result.
type Country struct {
	Name   string
	Alpha2 string
	Alpha3 string
}

// Matches reports whether value identifies this country by name, alpha-2 or
// alpha-3 code.
func (c Country) Matches(value string) bool {
	v := strings.TrimSpace(value)
	return strings.EqualFold(v, c.Name) ||
		strings.EqualFold(v, c.Alpha2) ||
		strings.EqualFold(v, c.Alpha3)
}

// Accepted returns the values a caller may pass as the country parameter.
func (c Country) Accepted() []string {
	return []string{c.Name, c.Alpha2, c.Alpha3}
}

// Australia is the default target country.
var Australia = Country{Name: "Australia", Alpha2: "AU", Alpha3: "AUS"}

var countries = map[string]Country{
	"AU": Australia,
	"NZ": {Name: "New Zealand", Alpha2: "NZ", Alpha3: "NZL"},
	"GB": {Name: "United Kingdom", Alpha2: "GB", Alpha3: "GBR"},
	"US": {Name: "United States", Alpha2: "US", Alpha3: "USA"},
}

// CountryByCode looks up a supported target country by its alpha-2 code.
func CountryByCode(code string) (Country, bool) {
	country, ok := countries[strings.ToUpper(strings.TrimSpace(code))]
	return country, ok
}

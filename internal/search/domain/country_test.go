package domain

import "testing"

func TestCountryMatches(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"AU", true},
		{"au", true},
		{"AUS", true},
		{"Australia", true},
		{"AUSTRALIA", true},
		{" australia ", true},
		{"US", false},
		{"United States", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := Australia.Matches(tc.value); got != tc.want {
			t.Fatalf("Matches(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestCountryByCode(t *testing.T) {
	country, ok := CountryByCode("au")
	if !ok {
		t.Fatal("expected AU to be supported")
	}
	if country.Name != "Australia" || country.Alpha3 != "AUS" {
		t.Fatalf("unexpected country %+v", country)
	}

	if _, ok := CountryByCode("ZZ"); ok {
		t.Fatal("expected ZZ to be unsupported")
	}
}

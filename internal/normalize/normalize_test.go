package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSKU(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty string", "", ""},
		{"Whitespace only", "   ", ""},
		{"Already canonical", "ABC123", "ABC123"},
		{"Lowercase", "abc123", "ABC123"},
		{"Leading and trailing spaces", "  abc-123 ", "ABC-123"},
		{"Interior spaces", "AB C 123", "ABC123"},
		{"Commas stripped", "1,234-X", "1234-X"},
		{"Zero-width space stripped", "AB​C", "ABC"},
		{"Replacement character stripped", "AB�C", "ABC"},
		{"Hyphen preserved", "0244-15-BK", "0244-15-BK"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SKU(tc.input))
		})
	}
}

func TestSKUIdempotent(t *testing.T) {
	inputs := []string{"  abc-123 ", "1,2 3", "AB​C", "plain"}
	for _, in := range inputs {
		once := SKU(in)
		assert.Equal(t, once, SKU(once), "SKU should be idempotent for %q", in)
	}
}

func TestSKUEquivalence(t *testing.T) {
	// Different raw spellings land on the same catalog key.
	assert.Equal(t, SKU("ABC123"), SKU(" a bc,123 "))
	assert.Equal(t, SKU("0244-15"), SKU("0244-15​"))
}

func TestMonthCode(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{"Zero date", time.Time{}, ""},
		{"Base month", time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC), "ZH"},
		{"Next month", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), "ZI"},
		{"Before base collapses", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "ZH"},
		{"Year boundary", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), "ZM"},
		{"Wraps after Z", time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC), "ZA"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MonthCode(tc.date))
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		expects time.Time
	}{
		{"ISO date", "2025-08-15", time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)},
		{"US date", "08/15/2025", time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)},
		{"Short US date", "8/5/2025", time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)},
		{"Garbage", "not a date", time.Time{}},
		{"Empty", "", time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expects, ParseDate(tc.input))
		})
	}
}

func TestStateAndRegion(t *testing.T) {
	tests := []struct {
		name   string
		addr   string
		state  string
		region string
	}{
		{"Empty address", "", "", ""},
		{"US abbreviation", "123 Main St, Springfield, IL 62704", "IL", "USA"},
		{"US full name", "500 Oak Ave, Columbus, Ohio", "OH", "USA"},
		{"West Virginia not Virginia", "1 Coal Rd, Charleston, West Virginia", "WV", "USA"},
		{"Canadian province", "77 King St, Toronto, ON M5H 1A1", "ON", "Canada"},
		{"Canadian full name", "10 Rue Principale, Quebec", "QC", "Canada"},
		{"Unknown", "Somewhere overseas", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state, region := StateAndRegion(tc.addr)
			assert.Equal(t, tc.state, state)
			assert.Equal(t, tc.region, region)
		})
	}
}

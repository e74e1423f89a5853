package normalize

import (
	"sort"
	"strings"
)

// stateAbbrev maps full state and province names to their two-letter codes.
var stateAbbrev = map[string]string{
	"ALABAMA": "AL", "ALASKA": "AK", "ARIZONA": "AZ", "ARKANSAS": "AR",
	"CALIFORNIA": "CA", "COLORADO": "CO", "CONNECTICUT": "CT", "DELAWARE": "DE",
	"FLORIDA": "FL", "GEORGIA": "GA", "HAWAII": "HI", "IDAHO": "ID",
	"ILLINOIS": "IL", "INDIANA": "IN", "IOWA": "IA", "KANSAS": "KS",
	"KENTUCKY": "KY", "LOUISIANA": "LA", "MAINE": "ME", "MARYLAND": "MD",
	"MASSACHUSETTS": "MA", "MICHIGAN": "MI", "MINNESOTA": "MN", "MISSISSIPPI": "MS",
	"MISSOURI": "MO", "MONTANA": "MT", "NEBRASKA": "NE", "NEVADA": "NV",
	"NEW HAMPSHIRE": "NH", "NEW JERSEY": "NJ", "NEW MEXICO": "NM", "NEW YORK": "NY",
	"NORTH CAROLINA": "NC", "NORTH DAKOTA": "ND", "OHIO": "OH", "OKLAHOMA": "OK",
	"OREGON": "OR", "PENNSYLVANIA": "PA", "RHODE ISLAND": "RI", "SOUTH CAROLINA": "SC",
	"SOUTH DAKOTA": "SD", "TENNESSEE": "TN", "TEXAS": "TX", "UTAH": "UT",
	"VERMONT": "VT", "VIRGINIA": "VA", "WASHINGTON": "WA", "WEST VIRGINIA": "WV",
	"WISCONSIN": "WI", "WYOMING": "WY", "DISTRICT OF COLUMBIA": "DC",
	"ALBERTA": "AB", "BRITISH COLUMBIA": "BC", "MANITOBA": "MB", "NEW BRUNSWICK": "NB",
	"NEWFOUNDLAND AND LABRADOR": "NL", "NORTHWEST TERRITORIES": "NT", "NOVA SCOTIA": "NS",
	"NUNAVUT": "NU", "ONTARIO": "ON", "PRINCE EDWARD ISLAND": "PE", "QUEBEC": "QC",
	"SASKATCHEWAN": "SK", "YUKON": "YT",
}

var canadianProvinces = map[string]bool{
	"AB": true, "BC": true, "MB": true, "NB": true, "NL": true, "NT": true,
	"NS": true, "NU": true, "ON": true, "PE": true, "QC": true, "SK": true,
	"YT": true,
}

var usStates = func() map[string]bool {
	m := make(map[string]bool, len(stateAbbrev))
	for _, abbrev := range stateAbbrev {
		if !canadianProvinces[abbrev] {
			m[abbrev] = true
		}
	}
	return m
}()

// stateNamesByLength lists the full names longest-first so that
// "WEST VIRGINIA" matches before "VIRGINIA". Map iteration order would make
// the result nondeterministic.
var stateNamesByLength = func() []string {
	names := make([]string, 0, len(stateAbbrev))
	for name := range stateAbbrev {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}()

// StateAndRegion extracts a state/province abbreviation and its region
// ("USA" or "Canada") from a free-text address. Full names are tried first,
// then bare two-letter codes. Nothing recognizable yields two empty strings.
func StateAndRegion(address string) (state, region string) {
	addr := strings.ToUpper(strings.TrimSpace(address))
	if addr == "" {
		return "", ""
	}

	for _, name := range stateNamesByLength {
		if strings.Contains(addr, name) {
			abbrev := stateAbbrev[name]
			if canadianProvinces[abbrev] {
				return abbrev, "Canada"
			}
			return abbrev, "USA"
		}
	}

	for _, part := range strings.Fields(addr) {
		part = strings.TrimRight(part, ",.")
		if len(part) != 2 {
			continue
		}
		if canadianProvinces[part] {
			return part, "Canada"
		}
		if usStates[part] {
			return part, "USA"
		}
	}

	return "", ""
}

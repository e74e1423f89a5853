package normalize

import "time"

// monthCodeBase anchors the tracked-month sequence: 2025-08 maps to "ZH"
// and each following month advances one letter, wrapping after Z.
var monthCodeBase = time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)

// MonthCode derives the dashboard tracked-month code ("ZH", "ZI", ...) for
// a date. Dates before the base month collapse to "ZH"; a zero date yields
// "".
func MonthCode(date time.Time) string {
	if date.IsZero() {
		return ""
	}

	monthsDiff := (date.Year()-monthCodeBase.Year())*12 + int(date.Month()-monthCodeBase.Month())
	if monthsDiff < 0 {
		return "ZH"
	}

	letter := 7 + monthsDiff
	if letter > 25 {
		letter = letter % 26
	}
	return "Z" + string(rune('A'+letter))
}

// dateLayouts are the formats accepted for export date columns.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02T15:04:05Z07:00",
}

// ParseDate parses a date cell from an export. Unparseable input yields a
// zero time rather than an error; a missing date never aborts a row.
func ParseDate(value string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

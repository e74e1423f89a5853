// Package normalize provides pure canonicalization helpers used for
// reference-table joins: SKU normalization plus the small derived fields
// (tracked month, state/region) the dashboard sheet carries.
package normalize

import "strings"

// skuNoise are the characters stripped from raw SKU values before matching:
// delimiter noise, spaces, zero-width spaces, and Unicode replacement
// characters left by bad encodings.
var skuNoise = strings.NewReplacer(
	",", "",
	" ", "",
	"​", "",
	"�", "",
)

// SKU canonicalizes a raw SKU string for lookup-table joins: trims, strips
// noise characters, and uppercases. Blank input yields "". Idempotent:
// SKU(SKU(x)) == SKU(x).
func SKU(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = skuNoise.Replace(s)
	return strings.ToUpper(s)
}

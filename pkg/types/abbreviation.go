package types

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeAbbreviation returns the canonical storage key for s: surrounding
// whitespace removed and upper-cased.
func NormalizeAbbreviation(s string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}

package users

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Key returns the form of a username or email used for uniqueness and
// lookups: trimmed, NFC-normalized and Unicode case folded, so "Émile",
// "émile" and a decomposed "Émile" share one key.
func Key(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// Package normalize provides the canonical join key used to reconcile the
// three tabular sources fused by package catalog: lowercase, accent-folded,
// whitespace-collapsed course names.
//
// Name() is idempotent: Name(Name(s)) == Name(s) for any s. This is the
// property the catalog fusion and eligibility matching rely on when they
// normalize both sides of a comparison before joining.
//
// Complexity: O(len(s)) time and space.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents strips combining marks (accents) left behind by NFD
// decomposition, e.g. "á" -> "a" via "a" + U+0301 -> "a".
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name returns the canonical join key for a course or section name:
// lowercase, accents folded, every run of non-alphanumeric characters
// collapsed to a single space, then trimmed.
//
// Name is the join key used across packages catalog, prereq and
// eligibility; both sides of a name comparison must be passed through it.
func Name(s string) string {
	folded, _, err := transform.String(foldAccents, s)
	if err != nil {
		// transform.String on a Chain of pure rune filters cannot fail in
		// practice; fall back to the unfolded input rather than losing data.
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	lastWasSpace := true // collapse leading separators too
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastWasSpace = false
			continue
		}
		if !lastWasSpace {
			b.WriteRune(' ')
			lastWasSpace = true
		}
	}

	return strings.TrimSpace(b.String())
}

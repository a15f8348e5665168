// Package slug canonicalises artist slugs and suggests near matches for
// slugs that do not resolve.
package slug

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// MaxSuggestDistance is the largest edit distance Nearest will suggest.
const MaxSuggestDistance = 2

// Slug returns the canonical slug form of s. Letters are NFD-normalised
// with combining marks dropped and lower-cased; runs of whitespace,
// underscores and dashes become a single dash; other characters are
// removed. The result never starts or ends with a dash.
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range norm.NFD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
		case unicode.IsLetter(r), unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(unicode.ToLower(r))
		case r == '-', r == '_', unicode.IsSpace(r):
			dash = true
		}
	}
	return b.String()
}

// Nearest returns the candidate closest to target by edit distance, if
// one lies within MaxSuggestDistance. Exact matches are ignored. Ties go
// to the earliest candidate.
func Nearest(target string, candidates []string) (string, bool) {
	best := ""
	bestDist := MaxSuggestDistance + 1
	for _, c := range candidates {
		if c == target {
			continue
		}
		if d := levenshtein.ComputeDistance(target, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}

package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// NormalizeText lowercases s, turns every non letter/digit run into a single
// space and trims the result.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// MatchesAll reports whether every token of query occurs in at least one of
// the given fields. An empty query matches everything.
func MatchesAll(query string, fields ...string) bool {
	q := NormalizeText(query)
	if q == "" {
		return true
	}
	haystack := make([]string, 0, len(fields))
	for _, f := range fields {
		haystack = append(haystack, NormalizeText(f))
	}
	for _, tok := range strings.Split(q, " ") {
		found := false
		for _, h := range haystack {
			if strings.Contains(h, tok) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

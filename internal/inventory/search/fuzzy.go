package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Chative-core-poc-v1/inventory/internal/inventory/model"
)

// wordSep separates the words of a catalog key ("cable_hdmi").
const wordSep = "_"

var normalizer = strings.NewReplacer(" ", wordSep, "-", wordSep)

// Normalize maps free text onto the catalog key space: lowercase, with spaces
// and hyphens turned into underscores.
func Normalize(name string) string {
	return normalizer.Replace(strings.ToLower(strings.TrimSpace(name)))
}

// Fuzzy returns the catalog names matching an already normalized query, best
// first. An exact key short-circuits to that key alone.
//
// A product matches when the query and its name contain one another, or when
// any query word is a substring of any word of the name. Matches are ordered by
// how many query words appear in the full name (descending), then by name
// length (ascending); remaining ties keep catalog order.
func Fuzzy(c *model.Catalog, query string) []string {
	if query == "" {
		return nil
	}
	if c.Has(query) {
		return []string{query}
	}

	queryWords := words(query)

	var matches []string
	for _, name := range c.Names() {
		if strings.Contains(name, query) || strings.Contains(query, name) {
			matches = append(matches, name)
			continue
		}
		if wordOverlap(queryWords, words(name)) > 0 {
			matches = append(matches, name)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		si, sj := containedWords(queryWords, matches[i]), containedWords(queryWords, matches[j])
		if si != sj {
			return si > sj
		}
		return utf8.RuneCountInString(matches[i]) < utf8.RuneCountInString(matches[j])
	})

	return matches
}

// words splits a key into its non-empty words.
func words(key string) []string {
	parts := strings.Split(key, wordSep)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// wordOverlap counts query words found inside at least one name word.
func wordOverlap(queryWords, nameWords []string) int {
	n := 0
	for _, qw := range queryWords {
		for _, nw := range nameWords {
			if strings.Contains(nw, qw) {
				n++
				break
			}
		}
	}
	return n
}

// containedWords counts query words that are substrings of the full name.
func containedWords(queryWords []string, name string) int {
	n := 0
	for _, qw := range queryWords {
		if strings.Contains(name, qw) {
			n++
		}
	}
	return n
}

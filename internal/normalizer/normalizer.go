// Package normalizer cleans raw input text before it is summarized.
package normalizer

import (
	"strings"
	"unicode"
)

// stopwords is the fixed filler-word set removed by Normalize.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "is": {}, "in": {}, "to": {}, "a": {}, "of": {},
	"that": {}, "on": {}, "with": {}, "for": {}, "it": {}, "as": {},
}

// Clean drops every character that is not a letter, digit, underscore,
// whitespace or one of ".,!?", then collapses whitespace runs to a single
// space and trims. Characters are removed before collapsing so that
// Clean(Clean(s)) == Clean(s).
func Clean(text string) string {
	kept := strings.Map(func(r rune) rune {
		if keep(r) {
			return r
		}
		return -1
	}, text)
	return strings.Join(strings.Fields(kept), " ")
}

// Normalize cleans text and, when stripStopwords is set, removes stopwords
// case-insensitively while keeping the remaining tokens in order.
func Normalize(text string, stripStopwords bool) string {
	cleaned := Clean(text)
	if !stripStopwords {
		return cleaned
	}

	words := strings.Fields(cleaned)
	filtered := make([]string, 0, len(words))
	for _, w := range words {
		if IsStopword(w) {
			continue
		}
		filtered = append(filtered, w)
	}
	return strings.Join(filtered, " ")
}

// IsStopword reports whether word, lowercased, is in the stopword set.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

func keep(r rune) bool {
	switch {
	case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
		return true
	case r == '_', r == '.', r == ',', r == '!', r == '?':
		return true
	}
	return false
}

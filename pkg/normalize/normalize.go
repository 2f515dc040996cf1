// Package normalize contains pure helpers that bring phone numbers and
// person names into a canonical form for matching and lock-key building.
// Every function is total: bad input yields an empty result, never an error.
package normalize

import (
	"strings"
	"unicode"
)

// Phone reduces a phone string to exactly 10 digits.
// Non-digits are stripped; a longer number keeps its last 10 digits
// (drops country codes). Anything that does not end up as 10 digits is
// returned as "" and treated as invalid by callers.
func Phone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) > 10 {
		return digits[len(digits)-10:]
	}
	if len(digits) == 10 {
		return digits
	}
	return ""
}

// Name lowercases a name, strips diacritics and non-letters, and collapses
// runs of whitespace to a single space.
func Name(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(stripDiacritic(r))
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Email lowercases and trims an email address for comparison.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// stripDiacritic maps common accented Latin letters to their base letter.
// Letters outside the table pass through unchanged.
func stripDiacritic(r rune) rune {
	if mapped, ok := diacritics[r]; ok {
		return mapped
	}
	return r
}

var diacritics = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ý': 'y', 'ÿ': 'y',
	'ç': 'c', 'ñ': 'n', 'ß': 's',
}

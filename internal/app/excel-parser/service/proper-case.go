package excel_parser_service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ProperCase capitalizes the first letter of every space separated word and lowercases the rest.
// Runs of spaces are kept as they are.
func ProperCase(s string) string {
	if s == "" {
		return ""
	}

	words := strings.Split(s, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
	}

	return strings.Join(words, " ")
}

package strs

import (
	"strings"
	"unicode/utf8"
)

// StartsWith reports whether s begins with candidate.
func StartsWith(candidate, s string) bool {
	return strings.HasPrefix(s, candidate)
}

// EndsWith reports whether s ends with candidate.
func EndsWith(candidate, s string) bool {
	return strings.HasSuffix(s, candidate)
}

// Reverse reverses s rune by rune, so multi-byte characters stay intact.
// Bytes that are not valid UTF-8 are moved one at a time, unchanged.
func Reverse(s string) string {
	out := make([]byte, len(s))
	end := len(s)
	for len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		end -= size
		copy(out[end:], s[:size])
		s = s[size:]
	}
	return string(out)
}

// Trim removes leading and trailing white space.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

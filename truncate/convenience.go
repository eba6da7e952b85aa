package truncate

import "unicode/utf8"

// CharsString truncates a string to at most n runes without allocating.
// The cut always lands on a rune boundary.
func CharsString(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}

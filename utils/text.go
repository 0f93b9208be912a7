package utils

// Truncate shortens s to at most max characters, ending in "..." when cut.
// It counts runes, so multi-byte characters are never split.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

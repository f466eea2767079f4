package utils

// Truncate shortens s to maxLen bytes, marking the cut with an
// ellipsis. Strings at or under the limit come back unchanged.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

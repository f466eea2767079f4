// Package sanitize normalizes user-supplied chat text before it is
// classified or replayed upstream. Cleaning strips ASCII control
// characters, bounds length, and collapses whitespace so that no
// downstream component ever sees raw, unbounded input.
package sanitize

import (
	"regexp"
	"strings"
)

// MaxLen is the maximum number of characters Clean will ever return.
// Anything longer is token stuffing.
const MaxLen = 4000

var whitespaceRun = regexp.MustCompile(`\s+`)

// Clean strips ASCII control characters (below 0x20, plus DEL),
// truncates to MaxLen characters, collapses whitespace runs into
// single spaces, and trims. Pure and total: any string in, a bounded
// printable string out.
func Clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 0x20 || r == 0x7F {
			// Keep tab/newline/CR so whitespace collapsing still sees them.
			if r != '\t' && r != '\n' && r != '\r' {
				continue
			}
		}
		b.WriteRune(r)
	}
	cleaned := b.String()

	// Truncate before collapsing; collapsing never lengthens the
	// string, so the MaxLen bound holds for the final output.
	if runes := []rune(cleaned); len(runes) > MaxLen {
		cleaned = string(runes[:MaxLen])
	}

	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")

	return strings.TrimSpace(cleaned)
}

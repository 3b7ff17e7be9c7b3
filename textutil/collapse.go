package textutil

import "strings"

// Collapse keeps the first rune of each maximal run of identical runes
// One deterministic linear scan; applying Collapse to its own output
// returns the output unchanged
func Collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var prev rune
	first := true
	for _, r := range s {
		if first || r != prev {
			b.WriteRune(r)
			prev = r
			first = false
		}
	}
	return b.String()
}

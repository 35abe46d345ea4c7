package app

import (
	"strings"
	"unicode/utf8"
)

const maxTracedQueryBytes = 512

// formatDBQueryForTrace collapses whitespace so multi-line upserts read as one
// span attribute, and caps the length at a rune boundary.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryBytes {
		return normalized
	}

	cut := maxTracedQueryBytes
	for cut > 0 && !utf8.RuneStart(normalized[cut]) {
		cut--
	}
	return normalized[:cut] + "..."
}

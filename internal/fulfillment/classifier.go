package fulfillment

import (
	"regexp"
	"strings"
)

const (
	markerProcessed    = "Walsworth processed:"
	markerNotProcessed = "Walsworth DID NOT process:"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// IsWalsworthNote is the loose test used by the immediate alert pipeline:
// any note reporting Walsworth activity qualifies, including fully
// processed ones. Intentionally broader than IsMixedNote; immediate alerts
// announce partner activity, the digest follows up on the mixed subset.
func IsWalsworthNote(content string) bool {
	return strings.Contains(content, markerProcessed)
}

// IsMixedNote is the strict test used by the daily digest: the note must
// carry both the processed and the not-processed sections. Whitespace runs
// are collapsed first so line breaks inside a marker cannot hide a match.
func IsMixedNote(content string) bool {
	if content == "" {
		return false
	}

	normalized := whitespaceRe.ReplaceAllString(content, " ")

	return strings.Contains(normalized, markerProcessed) &&
		strings.Contains(normalized, markerNotProcessed)
}

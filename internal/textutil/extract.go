package textutil

import (
	"regexp"
	"strings"
)

// DefaultMedicineName is returned when no name pattern matches.
const DefaultMedicineName = "Medicine"

// Ordered from most to least reliable: an explicit label beats the leading
// words of the text, which beat a capitalized-word scan anywhere in it.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:medicine name|name|this is)\s*:?\s*([^.,\n]+)`),
	regexp.MustCompile(`^([A-Za-z]+(?:\s+[A-Za-z]+)?)`),
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
}

// ExtractMedicineName derives the best-guess medicine name from free-form
// analysis text. The result is never empty; when nothing matches it falls
// back to DefaultMedicineName.
//
// The capitalized-word fallback can latch onto incidental capitalized words
// (brand slogans and the like). That weakness is known and accepted.
func ExtractMedicineName(analysisText string) string {
	for _, pattern := range namePatterns {
		match := pattern.FindStringSubmatch(analysisText)
		if match == nil {
			continue
		}
		if name := strings.TrimSpace(match[1]); name != "" {
			return name
		}
	}
	return DefaultMedicineName
}

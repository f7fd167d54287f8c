package textutil

import (
	"regexp"
	"strings"
)

var (
	boldMarker    = regexp.MustCompile(`\*\*`)
	italicMarker  = regexp.MustCompile(`\*`)
	headingMarker = regexp.MustCompile(`#{1,6}\s*`)
	numberedItem  = regexp.MustCompile(`(?m)^\d+\.\s*`)
	dashItem      = regexp.MustCompile(`(?m)^-\s*`)
	blankRun      = regexp.MustCompile(`\n\s*\n`)
)

// FormatMedicineInfo performs the cosmetic normalization pass over a combined
// document: markdown emphasis and heading markers are stripped, numbered and
// dash lists become uniform bullets, blank-line runs collapse, and lines that
// just restate the medicine name heading are dropped. The pass is idempotent.
func FormatMedicineInfo(rawText, medicineName string) string {
	formatted := boldMarker.ReplaceAllString(rawText, "")
	formatted = italicMarker.ReplaceAllString(formatted, "")
	formatted = headingMarker.ReplaceAllString(formatted, "")
	formatted = numberedItem.ReplaceAllString(formatted, "• ")
	formatted = dashItem.ReplaceAllString(formatted, "• ")
	formatted = blankRun.ReplaceAllString(formatted, "\n\n")
	formatted = strings.TrimSpace(formatted)

	lowerName := strings.ToLower(medicineName)

	var cleanSections []string
	for _, section := range strings.Split(formatted, "\n\n") {
		var cleanLines []string
		for _, line := range strings.Split(section, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if isRedundantNameHeading(line, lowerName) {
				continue
			}
			cleanLines = append(cleanLines, line)
		}
		if len(cleanLines) > 0 {
			cleanSections = append(cleanSections, strings.Join(cleanLines, "\n"))
		}
	}

	return strings.Join(cleanSections, "\n\n")
}

// A heading like "Medicine Name: Paracetamol" duplicates what the UI already
// shows, so it is removed when it repeats the extracted name.
func isRedundantNameHeading(line, lowerName string) bool {
	if lowerName == "" {
		return false
	}
	lowerLine := strings.ToLower(line)
	return strings.Contains(lowerLine, "medicine name:") && strings.Contains(lowerLine, lowerName)
}

package speech

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// Caps on each bounded clause. TTS engines do not paginate, so the summary
// must stay short no matter how long the source document is.
const (
	maxUses        = 3
	maxPrecautions = 2
	maxSideEffects = 2
)

type section int

const (
	sectionNone section = iota
	sectionUses
	sectionForm
	sectionPrecautions
	sectionSideEffects
)

var (
	bulletPrefix    = regexp.MustCompile(`^•\s*`)
	headingPrefix   = regexp.MustCompile(`^#{1,6}\s*`)
	commonUseLabel  = regexp.MustCompile(`(?i)common use:`)
	dosageFormLabel = regexp.MustCompile(`(?i)^.*dosage form:\s*`)
)

var noisePhrases = []string{
	"medicine name",
	"expiry date",
	"dosage instructions",
	"disclaimer",
	"based on the image",
}

// Summary is the bounded, speakable precis of a combined document: at most
// five labeled clauses, name first.
type Summary struct {
	Clauses  []string
	Language language.Tag
}

// Utterance is the text handed to the speech engine.
func (s Summary) Utterance() string {
	return strings.Join(s.Clauses, " ")
}

// Summarize parses a combined document into semantic sections and renders the
// localized utterance. The parser is section-sticky: a header line switches
// the current section and subsequent content lines accumulate under it until
// the next header.
func Summarize(info, name string, tag language.Tag) Summary {
	var uses, precautions, sideEffects []string
	var dosageForm string
	current := sectionNone

	for _, line := range strings.Split(info, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		clean := strings.TrimSpace(line)
		clean = strings.ReplaceAll(clean, "*", "")
		clean = headingPrefix.ReplaceAllString(clean, "")
		clean = strings.TrimSpace(bulletPrefix.ReplaceAllString(clean, ""))
		lower := strings.ToLower(line)

		switch {
		case strings.Contains(lower, "common use") || strings.Contains(lower, "uses:"):
			current = sectionUses
			if strings.Contains(lower, "common use:") {
				if text := strings.TrimSpace(commonUseLabel.ReplaceAllString(clean, "")); len(text) > 3 {
					uses = append(uses, text)
				}
			}
			continue
		case strings.Contains(lower, "dosage form") || strings.Contains(lower, "form:"):
			current = sectionForm
			if strings.Contains(lower, "dosage form:") {
				if text := strings.TrimSpace(dosageFormLabel.ReplaceAllString(clean, "")); len(text) > 3 {
					dosageForm = text
				}
			}
			continue
		case strings.Contains(lower, "precautions") || strings.Contains(lower, "precaution:") || strings.Contains(lower, "warnings"):
			current = sectionPrecautions
			continue
		case strings.Contains(lower, "side effects") || strings.Contains(lower, "effects:"):
			current = sectionSideEffects
			continue
		}

		if len(clean) <= 3 || isNoise(lower) {
			continue
		}

		switch current {
		case sectionUses:
			uses = append(uses, clean)
		case sectionForm:
			dosageForm = clean
		case sectionPrecautions:
			precautions = append(precautions, clean)
		case sectionSideEffects:
			sideEffects = append(sideEffects, clean)
		}
	}

	labels := labelsFor(tag)
	cleanName := strings.TrimSpace(strings.ReplaceAll(name, "**", ""))

	clauses := []string{labels.MedicineName + " " + cleanName + "."}
	if len(uses) > 0 {
		clauses = append(clauses, labels.CommonUses+" "+strings.Join(truncate(uses, maxUses), ", ")+".")
	}
	if dosageForm != "" {
		clauses = append(clauses, labels.DosageForm+" "+dosageForm+".")
	}
	if len(precautions) > 0 {
		clauses = append(clauses, labels.KeyPrecautions+" "+strings.Join(truncate(precautions, maxPrecautions), ", ")+".")
	}
	if len(sideEffects) > 0 {
		clauses = append(clauses, labels.SideEffects+" "+strings.Join(truncate(sideEffects, maxSideEffects), ", ")+".")
	}

	return Summary{Clauses: clauses, Language: tag}
}

func isNoise(lower string) bool {
	for _, phrase := range noisePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func truncate(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}

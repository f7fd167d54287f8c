package verification

import (
	"regexp"
	"strings"
)

var (
	dosageSuffix = regexp.MustCompile(`(?i)\s*(tablets?|capsules?|syrup|liquid|injection|mg|ml).*$`)
	nonAlpha     = regexp.MustCompile(`[^a-zA-Z\s]`)
)

// Classifier classifies extracted medicine names against the catalog. It is a
// priority-ordered classifier, not a scored one: supplement detection
// dominates medicine detection (a product cannot be both), and specificity
// decreases down the list.
type Classifier struct {
	catalog *Catalog

	// Single-word keywords get an exact-match set; multi-word keywords
	// (e.g. "fish oil") still need a substring scan.
	supplementWords    map[string]struct{}
	fdaApprovedWords   map[string]struct{}
	internationalWords map[string]struct{}
}

func NewClassifier(catalog *Catalog) *Classifier {
	return &Classifier{
		catalog:            catalog,
		supplementWords:    wordSet(catalog.Supplements),
		fdaApprovedWords:   wordSet(catalog.FDAApproved),
		internationalWords: wordSet(catalog.International),
	}
}

// Classify normalizes the name and walks the catalog lists in priority order.
// Empty and placeholder names fall through to StatusUnknown.
func (c *Classifier) Classify(name string) Verdict {
	clean := NormalizeName(name)

	switch {
	case c.matches(clean, c.supplementWords, c.catalog.Supplements):
		return c.verdict(NotVerified, StatusSupplement)
	case c.matches(clean, c.fdaApprovedWords, c.catalog.FDAApproved):
		return c.verdict(Verified, StatusFDAApproved)
	case c.matches(clean, c.internationalWords, c.catalog.International):
		return c.verdict(NotVerified, StatusInternational)
	default:
		return c.verdict(NotVerified, StatusUnknown)
	}
}

func (c *Classifier) verdict(outcome Outcome, status Status) Verdict {
	return Verdict{
		Outcome: outcome,
		Status:  status,
		Message: c.catalog.Message(status),
	}
}

// NormalizeName strips trailing dosage-form and unit tokens plus any
// non-alphabetic characters, then lowercases and trims. "Ashwagandha 500mg
// Capsules" becomes "ashwagandha".
func NormalizeName(name string) string {
	clean := dosageSuffix.ReplaceAllString(name, "")
	clean = nonAlpha.ReplaceAllString(clean, "")
	return strings.ToLower(strings.TrimSpace(clean))
}

func (c *Classifier) matches(clean string, words map[string]struct{}, keywords []string) bool {
	if clean == "" {
		return false
	}

	for _, field := range strings.Fields(clean) {
		if _, ok := words[field]; ok {
			return true
		}
	}

	// Substring pass catches multi-word keywords and embedded matches like
	// "multivitamin" containing "vitamin".
	for _, keyword := range keywords {
		if strings.Contains(clean, keyword) {
			return true
		}
	}
	return false
}

func wordSet(keywords []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keywords))
	for _, keyword := range keywords {
		if !strings.Contains(keyword, " ") {
			set[keyword] = struct{}{}
		}
	}
	return set
}

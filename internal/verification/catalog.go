package verification

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogData []byte

// Catalog is the static reference data the classifier runs against: three
// curated keyword lists plus one human-readable message per status.
type Catalog struct {
	Supplements   []string          `yaml:"supplements"`
	FDAApproved   []string          `yaml:"fda_approved"`
	International []string          `yaml:"international"`
	Messages      map[Status]string `yaml:"messages"`
}

// DefaultCatalog loads the catalog embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	return parseCatalog(defaultCatalogData)
}

// LoadCatalog reads a catalog from a YAML file, for deployments that want to
// supply their own reference lists.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return parseCatalog(data)
}

func parseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(catalog.FDAApproved) == 0 {
		return nil, fmt.Errorf("catalog has no fda_approved entries")
	}
	return &catalog, nil
}

// Message returns the catalog message for a status, with a hardcoded fallback
// so a sparse catalog cannot produce an empty user-facing message.
func (c *Catalog) Message(status Status) string {
	if msg, ok := c.Messages[status]; ok && msg != "" {
		return msg
	}
	switch status {
	case StatusFDAApproved:
		return "Recognized as FDA-approved medicine."
	case StatusSupplement:
		return "This appears to be a dietary supplement. Supplements are not FDA-approved medicines."
	case StatusInternational:
		return "This may be an international medicine. Verify with local regulations."
	case StatusError:
		return "Verification timed out. Proceeding with analysis only."
	default:
		return "Unknown medicine. Please verify authenticity and consult a healthcare provider."
	}
}

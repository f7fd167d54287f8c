package verification

import "fmt"

// Outcome is the tri-state verification result. NotVerified means the name
// was checked and is not a recognized FDA-approved medicine; Indeterminate
// means the check could not be completed (timeout), which is a different
// thing and must never collapse into NotVerified.
type Outcome int

const (
	NotVerified Outcome = iota
	Verified
	Indeterminate
)

// MarshalJSON keeps the wire shape the client expects: true, false or null.
func (o Outcome) MarshalJSON() ([]byte, error) {
	switch o {
	case Verified:
		return []byte("true"), nil
	case NotVerified:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (o *Outcome) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true":
		*o = Verified
	case "false":
		*o = NotVerified
	case "null":
		*o = Indeterminate
	default:
		return fmt.Errorf("invalid verification outcome %q", string(data))
	}
	return nil
}

type Status string

const (
	StatusFDAApproved   Status = "fda_approved"
	StatusSupplement    Status = "supplement"
	StatusInternational Status = "international"
	StatusUnknown       Status = "unknown"
	StatusError         Status = "error"
)

// RegistryInfo holds structured drug-registry fields when a verified medicine
// has an official record behind it.
type RegistryInfo struct {
	BrandName         string `json:"brand_name" yaml:"brandName"`
	GenericName       string `json:"generic_name" yaml:"genericName"`
	Manufacturer      string `json:"manufacturer" yaml:"manufacturer"`
	ProductType       string `json:"product_type" yaml:"productType"`
	ApplicationNumber string `json:"application_number" yaml:"applicationNumber"`
}

// Verdict is the result of classifying an extracted medicine name.
type Verdict struct {
	Outcome  Outcome       `json:"verified"`
	Status   Status        `json:"status"`
	Registry *RegistryInfo `json:"registry,omitempty"`
	Message  string        `json:"message"`
}

package models

import (
	"time"

	"github.com/medscan/medscan-api/internal/verification"
)

// ScanRecord is one completed scan: extracted name, the combined document,
// the verification verdict and a reference to the stored image. Records are
// immutable once written.
type ScanRecord struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Info         string                `json:"info"`
	Verification verification.Verdict  `json:"verification"`
	ImageKey     string                `json:"image_key,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

// Favorite is a saved {name, info} pair, keyed by exact name.
type Favorite struct {
	Name      string    `json:"name" db:"name"`
	Info      string    `json:"info" db:"info"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ScanRequest is a captured or gallery-picked image plus the user's language.
type ScanRequest struct {
	Image    []byte
	Language string
}

// ScanResult is the outcome of a successful scan, with the alert flags the
// UI surfaces alongside it.
type ScanResult struct {
	Scan *ScanRecord `json:"scan"`
	// Warning is set when the analysis text contains safety-warning language.
	Warning bool `json:"warning"`
	// VerificationFailed is set when the medicine was checked and found not
	// verified. It stays false for an indeterminate (timed out) check.
	VerificationFailed bool `json:"verification_failed"`
}

// SpeechResponse is the bounded utterance handed to an on-device TTS engine.
type SpeechResponse struct {
	Utterance string   `json:"utterance"`
	Language  string   `json:"language"`
	Clauses   []string `json:"clauses"`
}

package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	return NewClassifier(catalog)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "dosage form suffix stripped", in: "Ashwagandha Capsules", want: "ashwagandha"},
		{name: "strength and form stripped", in: "Cetirizine 10mg Tablets", want: "cetirizine"},
		{name: "non-alphabetic stripped", in: "Dolo-650!", want: "dolo"},
		{name: "already clean", in: "Paracetamol", want: "paracetamol"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestClassify(t *testing.T) {
	classifier := newTestClassifier(t)

	tests := []struct {
		name        string
		in          string
		wantStatus  Status
		wantOutcome Outcome
	}{
		{name: "supplement", in: "Ashwagandha Capsules", wantStatus: StatusSupplement, wantOutcome: NotVerified},
		{name: "fda approved", in: "Paracetamol", wantStatus: StatusFDAApproved, wantOutcome: Verified},
		{name: "international", in: "Cetirizine 10mg", wantStatus: StatusInternational, wantOutcome: NotVerified},
		{name: "unknown", in: "Xyzmedicine123", wantStatus: StatusUnknown, wantOutcome: NotVerified},
		{name: "supplement beats medicine", in: "Vitamin C with Aspirin", wantStatus: StatusSupplement, wantOutcome: NotVerified},
		{name: "embedded keyword", in: "Multivitamin Syrup", wantStatus: StatusSupplement, wantOutcome: NotVerified},
		{name: "placeholder name", in: "Medicine", wantStatus: StatusUnknown, wantOutcome: NotVerified},
		{name: "empty name", in: "", wantStatus: StatusUnknown, wantOutcome: NotVerified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := classifier.Classify(tt.in)
			assert.Equal(t, tt.wantStatus, verdict.Status)
			assert.Equal(t, tt.wantOutcome, verdict.Outcome)
			assert.NotEmpty(t, verdict.Message, "every verdict carries a message")
		})
	}
}

func TestCatalogMessageFallback(t *testing.T) {
	catalog := &Catalog{FDAApproved: []string{"paracetamol"}}

	// A catalog with no messages still produces non-empty user-facing text.
	for _, status := range []Status{StatusFDAApproved, StatusSupplement, StatusInternational, StatusUnknown, StatusError} {
		assert.NotEmpty(t, catalog.Message(status))
	}
}

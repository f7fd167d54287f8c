package verification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medscan/medscan-api/internal/utils"
)

type slowClassifier struct {
	delay   time.Duration
	verdict Verdict
}

func (c *slowClassifier) Classify(name string) Verdict {
	time.Sleep(c.delay)
	return c.verdict
}

func TestVerifierReturnsClassification(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	verifier := NewVerifier(NewClassifier(catalog), catalog, time.Second, utils.NewTestLogger())

	verdict := verifier.Verify(context.Background(), "Paracetamol")

	assert.Equal(t, StatusFDAApproved, verdict.Status)
	assert.Equal(t, Verified, verdict.Outcome)
}

func TestVerifierTimesOut(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	slow := &slowClassifier{
		delay:   500 * time.Millisecond,
		verdict: Verdict{Outcome: Verified, Status: StatusFDAApproved},
	}
	verifier := NewVerifier(slow, catalog, 20*time.Millisecond, utils.NewTestLogger())

	start := time.Now()
	verdict := verifier.Verify(context.Background(), "Paracetamol")

	assert.Less(t, time.Since(start), 400*time.Millisecond, "must not wait for the slow classifier")
	assert.Equal(t, Indeterminate, verdict.Outcome, "timeout is indeterminate, not a refusal")
	assert.Equal(t, StatusError, verdict.Status)
	assert.NotEmpty(t, verdict.Message)
}

func TestVerifierHonorsCancelledContext(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	slow := &slowClassifier{delay: 500 * time.Millisecond}
	verifier := NewVerifier(slow, catalog, 5*time.Second, utils.NewTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	verdict := verifier.Verify(ctx, "Paracetamol")

	assert.Equal(t, Indeterminate, verdict.Outcome)
	assert.Equal(t, StatusError, verdict.Status)
}

func TestVerifierDefaultsTimeout(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	verifier := NewVerifier(NewClassifier(catalog), catalog, 0, utils.NewTestLogger())
	assert.Equal(t, DefaultTimeout, verifier.timeout)
}

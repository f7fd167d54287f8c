package verification

import (
	"context"
	"time"

	"github.com/medscan/medscan-api/internal/utils"
)

// DefaultTimeout bounds how long a scan will wait for verification before
// proceeding with analysis only.
const DefaultTimeout = 5 * time.Second

// NameClassifier is what the verifier races against its timeout.
type NameClassifier interface {
	Classify(name string) Verdict
}

// Verifier runs a classification raced against a fixed timeout. Whichever
// settles first wins; a late classification result is discarded, never
// awaited. Verification must not block scan completion.
type Verifier struct {
	classifier NameClassifier
	catalog    *Catalog
	timeout    time.Duration
	logger     *utils.Logger
}

func NewVerifier(classifier NameClassifier, catalog *Catalog, timeout time.Duration, logger *utils.Logger) *Verifier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Verifier{
		classifier: classifier,
		catalog:    catalog,
		timeout:    timeout,
		logger:     logger,
	}
}

// Verify returns the classification verdict, or the degraded timeout verdict
// (Indeterminate / StatusError) if the classifier does not answer in time or
// the context is cancelled first.
func (v *Verifier) Verify(ctx context.Context, name string) Verdict {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	results := make(chan Verdict, 1)
	go func() {
		results <- v.classifier.Classify(name)
	}()

	select {
	case verdict := <-results:
		return verdict
	case <-ctx.Done():
		v.logger.Warn("verification timed out", "name", name, "timeout", v.timeout.String())
		return Verdict{
			Outcome: Indeterminate,
			Status:  StatusError,
			Message: v.catalog.Message(StatusError),
		}
	}
}

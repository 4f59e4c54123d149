package payment

import "context"

// Verifier checks that a payment reference handed in by the external payment
// collaborator actually denotes a settled payment. The scheduling core treats
// the reference as an opaque precondition token; it never captures funds.
type Verifier interface {
	Verify(ctx context.Context, paymentReference string) error
}

// NoopVerifier accepts any non-empty reference. Used when reference
// verification is disabled; the non-empty precondition is still enforced by
// the booking creation path.
type NoopVerifier struct{}

func (NoopVerifier) Verify(ctx context.Context, paymentReference string) error { return nil }

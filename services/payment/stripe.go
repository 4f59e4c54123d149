package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeVerifier resolves a payment reference as a Stripe PaymentIntent id and
// requires it to have succeeded before a reservation may proceed.
type StripeVerifier struct{}

func (StripeVerifier) Verify(ctx context.Context, paymentReference string) error {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := paymentintent.Get(paymentReference, params)
	if err != nil {
		return fmt.Errorf("payment reference %s could not be resolved: %w", paymentReference, err)
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return fmt.Errorf("payment reference %s is not settled: status %s", paymentReference, intent.Status)
	}
	return nil
}

package booking

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeProcessor charges cards through Stripe PaymentIntents with manual
// capture, so the hold and the settle are separate steps.
type StripeProcessor struct {
	Logger *zap.Logger
}

func NewStripeProcessor(logger *zap.Logger) *StripeProcessor {
	return &StripeProcessor{Logger: logger}
}

// Authorize places a hold for the requested amount and returns the intent id.
func (p *StripeProcessor) Authorize(ctx context.Context, req PaymentRequest) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(toMinorUnits(req.Amount)),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
		Confirm:       stripe.Bool(true),
		Description:   stripe.String(req.Description),
	}
	params.Context = ctx
	params.AddMetadata("seekerId", req.SeekerID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe authorize failed: %w", err)
	}
	if pi.Status != stripe.PaymentIntentStatusRequiresCapture {
		return "", fmt.Errorf("stripe authorize ended in status %s", pi.Status)
	}

	p.Logger.Info("payment authorized", zap.String("intent", pi.ID), zap.Int64("amount", pi.Amount))
	return pi.ID, nil
}

// Capture settles a previously authorized intent.
func (p *StripeProcessor) Capture(ctx context.Context, ref string) error {
	params := &stripe.PaymentIntentCaptureParams{}
	params.Context = ctx
	if _, err := paymentintent.Capture(ref, params); err != nil {
		return fmt.Errorf("stripe capture failed for %s: %w", ref, err)
	}
	p.Logger.Info("payment captured", zap.String("intent", ref))
	return nil
}

// Cancel releases an uncaptured hold.
func (p *StripeProcessor) Cancel(ctx context.Context, ref string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx
	if _, err := paymentintent.Cancel(ref, params); err != nil {
		return fmt.Errorf("stripe cancel failed for %s: %w", ref, err)
	}
	return nil
}

// toMinorUnits converts a decimal amount to cents.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

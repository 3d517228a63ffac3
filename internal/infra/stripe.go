package infra

import (
	"context"
	"os"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// PaymentGateway creates charge intents with an external processor. The
// returned client secret is handed to the caller, which completes the charge
// client-side; the server never sees the capture.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinor int64) (string, error)
}

type stripeGateway struct{}

func NewStripeGateway() PaymentGateway {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &stripeGateway{}
}

func (s *stripeGateway) CreateIntent(ctx context.Context, amountMinor int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}

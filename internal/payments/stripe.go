package payments

import (
	"context"
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// IntentCreator is the narrow surface handlers see of the payment
// provider. Only the client secret ever leaves this package.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64) (clientSecret string, err error)
}

// MinorUnits converts a decimal USD price to cents. The product is
// rounded, not truncated: float64 cannot hold 19.99*100 exactly and a
// plain int64 cast would shave a cent off it.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// StripeClient creates card payment intents against Stripe.
type StripeClient struct {
	api *client.API
}

// NewStripeClient builds a client for the given secret key.
func NewStripeClient(secretKey string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api}
}

// CreateIntent requests a USD card payment intent for the given amount
// in cents and returns the client-visible secret.
func (s *StripeClient) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

package services

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeIntents creates payment intents through the Stripe API.
type StripeIntents struct {
	api *client.API
}

// NewStripeIntents uses the default Stripe backends when backends is nil.
func NewStripeIntents(secretKey string, backends *stripe.Backends) *StripeIntents {
	return &StripeIntents{api: client.New(secretKey, backends)}
}

func (s *StripeIntents) CreateIntent(ctx context.Context, amount int64, currency string, methods []string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice(methods),
	}
	params.Context = ctx

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}

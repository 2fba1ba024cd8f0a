package services

import (
	"context"
	"fmt"
	"math"
)

const (
	paymentCurrency = "usd"
	paymentMethod   = "card"

	// MaxPrice is the largest charge the processor accepts, in dollars.
	MaxPrice = 999999.99
)

// IntentCreator creates a payment intent at the processor and returns its
// client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string, methods []string) (string, error)
}

type PaymentService struct {
	intents IntentCreator
}

// NewPaymentService accepts a nil creator; CreateIntent then reports
// ErrPaymentsDisabled.
func NewPaymentService(intents IntentCreator) *PaymentService {
	return &PaymentService{intents: intents}
}

func (s *PaymentService) Enabled() bool {
	return s.intents != nil
}

// AmountFromPrice converts a price in dollars to cents.
func AmountFromPrice(price float64) int64 {
	return int64(math.Round(price * 100))
}

func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if s.intents == nil {
		return "", ErrPaymentsDisabled
	}
	if price > MaxPrice {
		return "", fmt.Errorf("%w: price must not exceed %.2f", ErrInvalidInput, MaxPrice)
	}
	amount := AmountFromPrice(price)
	if amount <= 0 {
		return "", fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	secret, err := s.intents.CreateIntent(ctx, amount, paymentCurrency, []string{paymentMethod})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return secret, nil
}

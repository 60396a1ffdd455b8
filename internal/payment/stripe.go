package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Gateway creates payment intents against Stripe. Amounts arrive in major
// currency units and are converted to cents for the API.
type Gateway struct{}

// NewGateway sets the account key for the stripe client.
func NewGateway(secretKey string) *Gateway {
	stripe.Key = secretKey
	return &Gateway{}
}

// amountInCents converts a major-unit price to the minor units the API
// expects, truncating per float semantics.
func amountInCents(price float64) int64 {
	return int64(price * 100)
}

// CreateIntent requests a card payment intent for price in USD and returns
// the client secret the frontend completes the charge with.
func (g *Gateway) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := amountInCents(price)

	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("payment: create intent: %w", err)
	}
	return intent.ClientSecret, nil
}

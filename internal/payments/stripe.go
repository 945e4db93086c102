// Package payments wraps the payment provider used at checkout.
package payments

import (
	"context"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Intent carries the provider-side handle the frontend needs to collect
// payment details.
type Intent struct {
	ClientSecret string `json:"clientSecret"`
}

// IntentCreator creates provider-side payment intents. Amounts are in minor
// units of the given currency.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (Intent, error)
}

// StripeClient implements IntentCreator against the Stripe API.
type StripeClient struct {
	api *client.API
}

// NewStripeClient builds a client from the provider secret key.
func NewStripeClient(secretKey string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api}
}

// CreateIntent creates a card payment intent and returns its client secret.
func (c *StripeClient) CreateIntent(ctx context.Context, amount int64, currency string) (Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return Intent{}, err
	}
	return Intent{ClientSecret: pi.ClientSecret}, nil
}

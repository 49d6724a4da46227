// Package stripepay adapts the Stripe payment-intent API to the
// registration.PaymentProvider interface.
package stripepay

import (
	"context"
	"fmt"

	"github.com/guemper-znacht/event-registration/registration"
	"github.com/stripe/stripe-go/v85"
)

var _ registration.PaymentProvider = &Provider{}

type Provider struct {
	client *stripe.Client
}

// NewProvider returns an error rather than a lazily broken client when
// the secret key is missing; callers decide whether that degrades the
// feature or aborts startup.
func NewProvider(secretKey string) (*Provider, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("stripe secret key is empty")
	}

	return &Provider{client: stripe.NewClient(secretKey)}, nil
}

func (p *Provider) CreateIntent(ctx context.Context, params registration.CreateIntentParams) (registration.Intent, error) {
	pi, err := p.client.V1PaymentIntents.Create(ctx, &stripe.PaymentIntentCreateParams{
		Amount:   stripe.Int64(params.Amount),
		Currency: stripe.String(params.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentCreateAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: params.Metadata,
	})
	if err != nil {
		return registration.Intent{}, fmt.Errorf("stripe payment intent create failed: %w", err)
	}

	return intentFromStripe(pi), nil
}

func (p *Provider) GetIntent(ctx context.Context, id string) (registration.Intent, error) {
	pi, err := p.client.V1PaymentIntents.Retrieve(ctx, id, nil)
	if err != nil {
		return registration.Intent{}, fmt.Errorf("stripe payment intent retrieve failed: %w", err)
	}

	return intentFromStripe(pi), nil
}

func (p *Provider) UpdateIntentMetadata(ctx context.Context, id string, metadata map[string]string) error {
	// Stripe merges metadata keys on update, so only the changed keys
	// are sent.
	_, err := p.client.V1PaymentIntents.Update(ctx, id, &stripe.PaymentIntentUpdateParams{
		Metadata: metadata,
	})
	if err != nil {
		return fmt.Errorf("stripe payment intent update failed: %w", err)
	}

	return nil
}

func intentFromStripe(pi *stripe.PaymentIntent) registration.Intent {
	return registration.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       registration.IntentStatus(pi.Status),
		Metadata:     pi.Metadata,
	}
}

package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeIssuer issues card payment intents through Stripe.
type StripeIssuer struct {
	sc *client.API
}

// NewStripeIssuer creates an issuer for the given secret key. backends may be
// nil to use Stripe's default endpoints.
func NewStripeIssuer(secretKey string, backends *stripe.Backends) *StripeIssuer {
	return &StripeIssuer{sc: client.New(secretKey, backends)}
}

func (s *StripeIssuer) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := s.sc.PaymentIntents.New(params)
	if err != nil {
		return nil, classify("create payment intent", err)
	}
	return toIntent(pi), nil
}

func (s *StripeIssuer) GetIntent(ctx context.Context, id string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := s.sc.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, classify("get payment intent "+id, err)
	}
	return toIntent(pi), nil
}

func toIntent(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
		Metadata:     pi.Metadata,
	}
}

func classify(op string, err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		switch stripeErr.Type {
		case stripe.ErrorTypeInvalidRequest, stripe.ErrorTypeCard:
			return fmt.Errorf("stripe: %s: %w: %s", op, ErrRejected, stripeErr.Msg)
		}
	}
	return fmt.Errorf("stripe: %s: %w: %w", op, ErrUnavailable, err)
}

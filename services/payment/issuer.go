package payment

import (
	"context"
	"errors"
	"math"
)

// IntentSucceeded is the status of an intent the customer has paid.
const IntentSucceeded = "succeeded"

var (
	// ErrUnavailable means the payment service could not be reached or is
	// not configured.
	ErrUnavailable = errors.New("payment service unavailable")
	// ErrRejected means the payment service refused the request.
	ErrRejected = errors.New("payment request rejected")
)

// Intent is the subset of a payment intent the handlers use.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	Status       string
	Metadata     map[string]string
}

// Issuer creates and looks up server-side payment intents.
type Issuer interface {
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
}

// MinorUnits converts a price in major units to the smallest currency unit.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// Disabled is used when no payment secret key is configured.
type Disabled struct{}

func (Disabled) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*Intent, error) {
	return nil, ErrUnavailable
}

func (Disabled) GetIntent(ctx context.Context, id string) (*Intent, error) {
	return nil, ErrUnavailable
}

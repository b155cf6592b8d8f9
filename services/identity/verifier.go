package identity

import (
	"context"
	"errors"
	"strings"
)

// Status is the outcome of verifying a bearer token.
type Status int

const (
	// Unverified covers a missing, malformed, expired, revoked or forged token.
	// Callers treat the request as anonymous.
	Unverified Status = iota
	// Verified means Email was confirmed by the identity provider.
	Verified
	// Failed means the provider could not decide, e.g. its keys could not be
	// fetched. Err carries the cause and must be surfaced to the client.
	Failed
)

func (s Status) String() string {
	switch s {
	case Verified:
		return "verified"
	case Failed:
		return "failed"
	default:
		return "unverified"
	}
}

var ErrNotConfigured = errors.New("identity verification is not configured")

// Result is the tri-state outcome of Verify.
type Result struct {
	Status Status
	Email  string
	// Reason explains an Unverified result, for logs only.
	Reason string
	Err    error
}

func VerifiedAs(email string) Result { return Result{Status: Verified, Email: email} }

func Anonymous(reason string) Result { return Result{Status: Unverified, Reason: reason} }

func Failure(err error) Result { return Result{Status: Failed, Err: err} }

func (r Result) IsVerified() bool { return r.Status == Verified && r.Email != "" }

// Verifier resolves a bearer token to a verified email.
type Verifier interface {
	Verify(ctx context.Context, token string) Result
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// Disabled is used when no identity provider credentials are configured.
type Disabled struct{}

func (Disabled) Verify(ctx context.Context, token string) Result {
	if token == "" {
		return Anonymous("missing token")
	}
	return Failure(ErrNotConfigured)
}

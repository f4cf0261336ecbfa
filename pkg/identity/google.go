package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
)

var (
	ErrInvalidIDToken   = errors.New("invalid id token")
	ErrEmailNotVerified = errors.New("email address not verified")
)

// Identity is what a federated sign-in proves about the caller.
type Identity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}

type Verifier interface {
	Verify(ctx context.Context, idToken string) (Identity, error)
}

type GoogleVerifier struct {
	clientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

func (g *GoogleVerifier) Verify(_ context.Context, idToken string) (Identity, error) {
	if g.clientID == "" {
		return Identity{}, fmt.Errorf("%w: google client id not configured", ErrInvalidIDToken)
	}
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{g.clientID}); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidIDToken, err)
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidIDToken, err)
	}
	if claimSet.Email == "" || claimSet.Sub == "" {
		return Identity{}, fmt.Errorf("%w: missing email or subject", ErrInvalidIDToken)
	}
	if !claimSet.EmailVerified {
		return Identity{}, ErrEmailNotVerified
	}
	return Identity{
		Subject:       claimSet.Sub,
		Email:         strings.ToLower(claimSet.Email),
		EmailVerified: true,
		Name:          claimSet.Name,
	}, nil
}

// Package auth verifies bearer-token requests against the identity provider.
package auth

import (
	"context"
	"net/http"
	"strings"

	"taskdesk/pkg/apperror"
	"taskdesk/pkg/gidentity"
	"taskdesk/pkg/log"
)

const bearerPrefix = "Bearer "

// Verifier runs the per-request authentication checks.
type Verifier struct {
	provider gidentity.Provider
	users    UserStore
	l        log.Logger
}

// New creates a Verifier.
func New(l log.Logger, provider gidentity.Provider, users UserStore) *Verifier {
	return &Verifier{
		provider: provider,
		users:    users,
		l:        l,
	}
}

// Verify checks a request's headers and returns the verified identity. The
// checks are ordered hard gates: the first failure wins and later checks are
// never reached. Every failure is a named auth error; provider and store
// failures carry their cause.
func (v *Verifier) Verify(ctx context.Context, headers http.Header, mode Mode) (Identity, error) {
	token, err := extractBearerToken(headers)
	if err != nil {
		return Identity{}, err
	}

	decoded, err := v.provider.VerifyIDToken(ctx, token)
	if err != nil {
		return Identity{}, apperror.Wrap(err, apperror.AuthFailed, "token verification failed")
	}
	if decoded.Subject == "" {
		return Identity{}, apperror.New(apperror.AuthFailed, "decoded token has no subject")
	}

	identity := Identity{UserID: decoded.Subject, Email: decoded.Email}

	if mode == ModeSetup {
		return identity, nil
	}

	user, err := v.users.GetUser(ctx, decoded.Subject)
	if err != nil {
		v.l.Errorf(ctx, "auth.Verify GetUser: %v", err)
		return Identity{}, apperror.Wrap(err, apperror.Unknown, "user lookup failed")
	}
	if user.ID == "" {
		return Identity{}, apperror.New(apperror.AuthUserNotFound, "no stored profile for subject")
	}

	return identity, nil
}

// extractBearerToken walks the header checks in their fixed order: headers
// present, Authorization present, single-valued, "Bearer " prefixed, exactly
// one non-empty token.
func extractBearerToken(headers http.Header) (string, error) {
	if headers == nil {
		return "", apperror.New(apperror.AuthMissingHeaders, "request has no headers")
	}

	values := headers.Values("Authorization")
	if len(values) == 0 {
		return "", apperror.New(apperror.AuthMissingAuthorization, "authorization header not present")
	}
	if len(values) > 1 {
		return "", apperror.New(apperror.AuthAuthorizationIsArray, "authorization header has multiple values")
	}

	authorization := values[0]
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return "", apperror.New(apperror.AuthAuthorizationNotBearer, "authorization header does not start with Bearer")
	}

	parts := strings.Split(authorization, bearerPrefix)
	if len(parts) != 2 {
		return "", apperror.New(apperror.AuthFailed, "authorization header not formatted as Bearer token")
	}
	token := parts[1]
	if token == "" {
		return "", apperror.New(apperror.AuthFailed, "bearer token is empty")
	}

	return token, nil
}

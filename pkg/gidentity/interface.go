package gidentity

import "context"

// IDToken is the decoded identity carried by a verified bearer token.
type IDToken struct {
	Subject       string
	Email         string
	EmailVerified bool
}

// UserRecord is the provider's account record for one identity.
type UserRecord struct {
	UID           string
	Email         string
	EmailVerified bool
	DisplayName   string
	Disabled      bool
}

// Provider verifies bearer tokens and resolves provider account records.
// Token validity (signature, expiry, issuer, audience, revocation) is the
// provider's concern; callers only see pass/fail plus the decoded identity.
//
//go:generate mockery --name Provider
type Provider interface {
	VerifyIDToken(ctx context.Context, rawToken string) (IDToken, error)
	GetUser(ctx context.Context, uid string) (UserRecord, error)
}

package auth

import (
	"context"

	"taskdesk/internal/model"
)

// Mode selects how far verification goes.
type Mode int

const (
	// ModeFull requires the token subject to resolve to a stored user
	// profile. Used by every route except account setup.
	ModeFull Mode = iota
	// ModeSetup skips the stored-profile check, since the setup route is the
	// one that creates the profile.
	ModeSetup
)

// Identity is the verified caller attached to a request.
type Identity struct {
	UserID string
	Email  string
}

// UserStore resolves a subject id to a stored user profile. A zero-ID user
// with a nil error means no profile exists.
type UserStore interface {
	GetUser(ctx context.Context, id string) (model.User, error)
}

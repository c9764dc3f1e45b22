package repository

import (
	"context"

	"taskdesk/internal/model"
)

// Repository is the user-profile data store. GetUser returns a zero-value
// User with a nil error when no profile exists; CreateUser is an atomic
// check-and-create that fails when a profile already exists for the id.
//
//go:generate mockery --name Repository
type Repository interface {
	CreateUser(ctx context.Context, u model.User) error
	GetUser(ctx context.Context, id string) (model.User, error)
}

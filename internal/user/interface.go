package user

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Setup creates the caller's profile exactly once per identity.
	Setup(ctx context.Context, input SetupUserInput) error
	// Detail returns the caller's stored profile.
	Detail(ctx context.Context, input DetailUserInput) (DetailUserOutput, error)
}

package usecase

import (
	"context"

	"taskdesk/internal/model"
	"taskdesk/internal/user"
	"taskdesk/pkg/apperror"
)

// Setup fetches the caller's provider record and creates the profile
// document. The email is taken from the provider record, never from the
// request, and it must be verified before a profile can be created.
func (uc *implUseCase) Setup(ctx context.Context, input user.SetupUserInput) error {
	record, err := uc.provider.GetUser(ctx, input.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Setup.GetUser: %v", err)
		return apperror.Wrap(err, apperror.Unknown, "look up provider record")
	}

	if record.Email == "" || !record.EmailVerified {
		uc.l.Warnf(ctx, "user.usecase.Setup: no verified email for %s", input.UserID)
		return user.ErrProfileIncomplete
	}

	u := model.User{
		ID:        input.UserID,
		Email:     record.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if violations := u.Validate(); !violations.Valid() {
		uc.l.Warnf(ctx, "user.usecase.Setup: %s", violations)
		return apperror.Newf(apperror.Unknown, "profile invalid: %s", violations)
	}

	if err := uc.repo.CreateUser(ctx, u); err != nil {
		uc.l.Errorf(ctx, "user.usecase.Setup.CreateUser: %v", err)
		return apperror.Wrap(err, apperror.Unknown, "create user profile")
	}

	return nil
}

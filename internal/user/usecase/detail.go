package usecase

import (
	"context"

	"taskdesk/internal/user"
	"taskdesk/pkg/apperror"
)

func (uc *implUseCase) Detail(ctx context.Context, input user.DetailUserInput) (user.DetailUserOutput, error) {
	u, err := uc.repo.GetUser(ctx, input.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Detail.GetUser: %v", err)
		return user.DetailUserOutput{}, apperror.Wrap(err, apperror.Unknown, "get user")
	}

	if u.ID == "" {
		return user.DetailUserOutput{}, user.ErrNotFound
	}

	return user.DetailUserOutput{User: u}, nil
}

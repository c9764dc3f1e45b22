package user

import "taskdesk/pkg/apperror"

// Domain errors for the user package.
var (
	ErrNotFound          = apperror.New(apperror.UserNotFound, "user not found")
	ErrProfileIncomplete = apperror.New(apperror.UserProfileIncomplete, "provider record has no verified email")
)

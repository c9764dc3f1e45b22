package task

import "taskdesk/pkg/apperror"

// Domain errors for the task package. Dispatch is by name, so shared
// instances are safe.
var (
	ErrNotFound = apperror.New(apperror.TaskNotFound, "task not found on id")
	ErrNotYours = apperror.New(apperror.TaskNotYours, "task is owned by another user")
)

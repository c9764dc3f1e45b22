package usecase

import (
	"context"

	"taskdesk/internal/task"
	"taskdesk/pkg/apperror"
)

// List returns all tasks owned by the caller, newest first. An empty list is
// a valid result, not an error.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, err := uc.repo.ListTasksByOwner(ctx, input.OwnerID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasksByOwner: %v", err)
		return task.ListTasksOutput{}, apperror.Wrap(err, apperror.Unknown, "failed to list tasks")
	}

	return task.ListTasksOutput{Tasks: tasks}, nil
}

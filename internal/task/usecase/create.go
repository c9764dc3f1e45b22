package usecase

import (
	"context"

	"taskdesk/internal/model"
	"taskdesk/internal/task"
	repo "taskdesk/internal/task/repository"
	"taskdesk/pkg/apperror"
)

// Create validates input shape and writes a new task. The store assigns the
// id and the creation timestamp.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	candidate := model.Task{
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Description: input.Description,
	}
	if violations := candidate.Validate(false); !violations.Valid() {
		uc.l.Warnf(ctx, "uc.Create schema invalid: %s", violations)
		return task.CreateTaskOutput{}, apperror.Newf(apperror.TaskSchemaInvalid, "schema invalid: %s", violations)
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, apperror.Wrap(err, apperror.Unknown, "failed to create task")
	}

	return task.CreateTaskOutput{Task: created}, nil
}

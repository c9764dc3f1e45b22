package usecase

import (
	"context"

	"taskdesk/internal/model"
	"taskdesk/internal/task"
	repo "taskdesk/internal/task/repository"
	"taskdesk/pkg/apperror"
)

// fetchOwned loads a task and gates on existence, then ownership. An owner
// mismatch is an authorization failure, not a not-found.
func (uc *implUseCase) fetchOwned(ctx context.Context, callerID, taskID string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, taskID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.fetchOwned GetTask: %v", err)
		return model.Task{}, apperror.Wrap(err, apperror.Unknown, "failed to get task")
	}
	if t.ID == "" {
		return model.Task{}, task.ErrNotFound
	}
	if t.OwnerID != callerID {
		uc.l.Warnf(ctx, "uc.fetchOwned: task %s not owned by caller", taskID)
		return model.Task{}, task.ErrNotYours
	}
	return t, nil
}

// Detail retrieves a single task owned by the caller.
func (uc *implUseCase) Detail(ctx context.Context, input task.DetailTaskInput) (task.DetailTaskOutput, error) {
	t, err := uc.fetchOwned(ctx, input.CallerID, input.TaskID)
	if err != nil {
		return task.DetailTaskOutput{}, err
	}
	return task.DetailTaskOutput{Task: t}, nil
}

// Update applies new name/description to an owned task, re-validating the
// full record before the write.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	t, err := uc.fetchOwned(ctx, input.CallerID, input.TaskID)
	if err != nil {
		return task.UpdateTaskOutput{}, err
	}

	t.Name = input.Name
	t.Description = input.Description
	if violations := t.Validate(true); !violations.Valid() {
		uc.l.Warnf(ctx, "uc.Update schema invalid: %s", violations)
		return task.UpdateTaskOutput{}, apperror.Newf(apperror.TaskSchemaInvalid, "schema invalid: %s", violations)
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, apperror.Wrap(err, apperror.Unknown, "failed to update task")
	}

	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes an owned task.
func (uc *implUseCase) Delete(ctx context.Context, input task.DeleteTaskInput) error {
	t, err := uc.fetchOwned(ctx, input.CallerID, input.TaskID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteTask(ctx, t.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return apperror.Wrap(err, apperror.Unknown, "failed to delete task")
	}
	return nil
}

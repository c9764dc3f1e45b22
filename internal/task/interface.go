package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD, all scoped to the calling user.
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, input DetailTaskInput) (DetailTaskOutput, error)
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, input DeleteTaskInput) error
}

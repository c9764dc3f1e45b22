package repository

import (
	"context"

	"taskdesk/internal/model"
)

// Repository is the task data store. Reads that find nothing return a
// zero-value Task with a nil error; errors are reserved for store failures.
//
//go:generate mockery --name Repository
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasksByOwner(ctx context.Context, ownerID string) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

package task

import "taskdesk/internal/model"

// --- UseCase Inputs ---

type ListTasksInput struct {
	OwnerID string
}

type DetailTaskInput struct {
	CallerID string
	TaskID   string
}

type CreateTaskInput struct {
	OwnerID     string
	Name        string
	Description string
}

type UpdateTaskInput struct {
	CallerID    string
	TaskID      string
	Name        string
	Description string
}

type DeleteTaskInput struct {
	CallerID string
	TaskID   string
}

// --- UseCase Outputs ---

type ListTasksOutput struct {
	Tasks []model.Task
}

type DetailTaskOutput struct {
	Task model.Task
}

type CreateTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}

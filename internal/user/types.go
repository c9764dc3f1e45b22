package user

import "taskdesk/internal/model"

// --- UseCase Inputs ---

type SetupUserInput struct {
	UserID    string
	FirstName string
	LastName  string
}

type DetailUserInput struct {
	UserID string
}

// --- UseCase Outputs ---

type DetailUserOutput struct {
	User model.User
}

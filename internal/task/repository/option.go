package repository

// CreateTaskOptions holds parameters for inserting a new task. The store
// assigns the document id and the creation timestamp.
type CreateTaskOptions struct {
	OwnerID     string
	Name        string
	Description string
}

// UpdateTaskOptions holds parameters for rewriting a task's mutable fields.
type UpdateTaskOptions struct {
	ID          string
	Name        string
	Description string
}

package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskdesk/internal/model"
	"taskdesk/internal/task/repository"
	"taskdesk/pkg/firestore"
)

// Stored field names. The task id is the document key, never a stored field.
const (
	fieldOwnerID      = "ownerId"
	fieldName         = "name"
	fieldDescription  = "description"
	fieldCreatedAtUtc = "createdAtUtc"
)

// taskFields maps a task onto its stored record.
func taskFields(t model.Task) map[string]firestore.Value {
	return map[string]firestore.Value{
		fieldOwnerID:      firestore.String(t.OwnerID),
		fieldName:         firestore.String(t.Name),
		fieldDescription:  firestore.String(t.Description),
		fieldCreatedAtUtc: firestore.String(t.CreatedAtUtc),
	}
}

// taskFromDocument rebuilds a task from a stored record, taking the id from
// the document key.
func taskFromDocument(doc firestore.Document) model.Task {
	return model.Task{
		ID:           doc.ID(),
		OwnerID:      doc.GetString(fieldOwnerID),
		Name:         doc.GetString(fieldName),
		Description:  doc.GetString(fieldDescription),
		CreatedAtUtc: doc.GetString(fieldCreatedAtUtc),
	}
}

// newDocumentID mints a document key. The key must stay strictly
// alphanumeric, like Firestore auto-ids, so stored records re-validate; a
// raw UUID string would not (hyphens).
func newDocumentID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// CreateTask mints a new document id and creation timestamp and writes the
// record.
func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	t := model.Task{
		ID:           newDocumentID(),
		OwnerID:      opt.OwnerID,
		Name:         opt.Name,
		Description:  opt.Description,
		CreatedAtUtc: time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := r.client.CreateDocument(ctx, tasksCollection, t.ID, taskFields(t)); err != nil {
		return model.Task{}, fmt.Errorf("failed to create task document: %w", err)
	}
	return t, nil
}

// GetTask fetches one task by id. An absent task is a zero value, not an
// error.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	doc, err := r.client.GetDocument(ctx, tasksCollection, id)
	if err != nil {
		if errors.Is(err, firestore.ErrNotFound) {
			return model.Task{}, nil
		}
		return model.Task{}, fmt.Errorf("failed to get task document: %w", err)
	}
	return taskFromDocument(*doc), nil
}

// ListTasksByOwner returns the owner's tasks, newest first.
func (r *implRepository) ListTasksByOwner(ctx context.Context, ownerID string) ([]model.Task, error) {
	docs, err := r.client.RunQuery(ctx, firestore.Query{
		Collection: tasksCollection,
		Where:      []firestore.FieldFilter{{Field: fieldOwnerID, Value: firestore.String(ownerID)}},
		OrderBy:    []firestore.Order{{Field: fieldCreatedAtUtc, Descending: true}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, taskFromDocument(doc))
	}
	return tasks, nil
}

// UpdateTask rewrites the mutable fields of an existing task.
func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	fields := map[string]firestore.Value{
		fieldName:        firestore.String(opt.Name),
		fieldDescription: firestore.String(opt.Description),
	}

	doc, err := r.client.PatchDocument(ctx, tasksCollection, opt.ID, fields, []string{fieldName, fieldDescription})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task document: %w", err)
	}
	return taskFromDocument(*doc), nil
}

// DeleteTask removes a task by id.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if err := r.client.DeleteDocument(ctx, tasksCollection, id); err != nil {
		return fmt.Errorf("failed to delete task document: %w", err)
	}
	return nil
}

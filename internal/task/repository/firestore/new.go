package firestore

import (
	"taskdesk/internal/task/repository"
	"taskdesk/pkg/firestore"
	"taskdesk/pkg/log"
)

const tasksCollection = "tasks"

// implRepository stores tasks as documents in the tasks collection.
type implRepository struct {
	client *firestore.Client
	l      log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates the Firestore-backed task repository.
func New(client *firestore.Client, l log.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

package firestore

import (
	"taskdesk/internal/user/repository"
	"taskdesk/pkg/firestore"
	"taskdesk/pkg/log"
)

const usersCollection = "users"

// implRepository stores user profiles keyed by the provider subject id.
type implRepository struct {
	client *firestore.Client
	l      log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates the Firestore-backed user repository.
func New(client *firestore.Client, l log.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

package firestore

import (
	"context"
	"errors"
	"fmt"

	"taskdesk/internal/model"
	"taskdesk/pkg/firestore"
)

const (
	fieldEmail     = "email"
	fieldFirstName = "firstName"
	fieldLastName  = "lastName"
)

func userFields(u model.User) map[string]firestore.Value {
	return map[string]firestore.Value{
		fieldEmail:     firestore.String(u.Email),
		fieldFirstName: firestore.String(u.FirstName),
		fieldLastName:  firestore.String(u.LastName),
	}
}

func userFromDocument(doc firestore.Document) model.User {
	return model.User{
		ID:        doc.ID(),
		Email:     doc.GetString(fieldEmail),
		FirstName: doc.GetString(fieldFirstName),
		LastName:  doc.GetString(fieldLastName),
	}
}

// CreateUser writes the profile document keyed by the user id. The write
// fails with firestore.ErrAlreadyExists when a profile is already present,
// so setup never overwrites an existing profile.
func (r *implRepository) CreateUser(ctx context.Context, u model.User) error {
	if _, err := r.client.CreateDocument(ctx, usersCollection, u.ID, userFields(u)); err != nil {
		return fmt.Errorf("failed to create user document: %w", err)
	}
	return nil
}

// GetUser returns the zero user with a nil error when no profile exists.
func (r *implRepository) GetUser(ctx context.Context, id string) (model.User, error) {
	doc, err := r.client.GetDocument(ctx, usersCollection, id)
	if err != nil {
		if errors.Is(err, firestore.ErrNotFound) {
			return model.User{}, nil
		}
		return model.User{}, fmt.Errorf("failed to get user document: %w", err)
	}

	return userFromDocument(*doc), nil
}

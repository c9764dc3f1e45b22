package model_test

import (
	"testing"

	"taskdesk/internal/model"
)

func TestUserValidate(t *testing.T) {
	valid := model.User{
		ID:        "uid42",
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}

	t.Run("valid user passes", func(t *testing.T) {
		if violations := valid.Validate(); !violations.Valid() {
			t.Fatalf("expected valid, got violations: %s", violations)
		}
	})

	t.Run("missing fields are all reported", func(t *testing.T) {
		violations := model.User{}.Validate()
		if len(violations) != 4 {
			t.Fatalf("expected 4 violations, got %d: %s", len(violations), violations)
		}
	})

	t.Run("bad email rejected", func(t *testing.T) {
		tests := []string{"", "not-an-email", "a@", "@example.com", "a b@example.com"}
		for _, email := range tests {
			u := valid
			u.Email = email
			violations := u.Validate()
			if violations.Valid() {
				t.Errorf("email %q: expected a violation, got none", email)
				continue
			}
			if violations[0].Field != "email" {
				t.Errorf("email %q: violation on %q, want email", email, violations[0].Field)
			}
		}
	})

	t.Run("plus addressing accepted", func(t *testing.T) {
		u := valid
		u.Email = "ada+tags@sub.example.co.uk"
		if violations := u.Validate(); !violations.Valid() {
			t.Fatalf("expected valid, got violations: %s", violations)
		}
	})
}

// Package user defines the account entity. The product surfaces display
// users as "Accounts"; the schema keeps the historical table name.
package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pennypilote/pennypilote/pkg/domain"
)

// User represents an account that exclusively owns its transactions.
// Deleting a user cascades to every transaction it owns.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}

// New creates a User with a generated id. Name and email are required;
// email uniqueness is enforced at the store boundary.
func New(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, domain.NewConstraintError("name", "must not be empty")
	}
	if email == "" {
		return nil, domain.NewConstraintError("email", "must not be empty")
	}
	return &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}, nil
}

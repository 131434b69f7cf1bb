// Package category defines the spending category entity.
package category

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pennypilote/pennypilote/pkg/domain"
)

// Category groups transactions for reporting. Names are globally unique.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
}

// New creates a Category with a generated id. The description is
// optional; pass nil to omit it.
func New(name string, description *string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewConstraintError("name", "must not be empty")
	}
	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

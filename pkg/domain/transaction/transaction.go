// Package transaction defines the ledger entry entity.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/pennypilote/pennypilote/pkg/domain"
)

// UncategorizedLabel is the sentinel grouping key for transactions
// without a category.
const UncategorizedLabel = "Uncategorized"

// Transaction is a single income (positive amount) or expense (negative
// amount) entry. A zero amount is allowed. CategoryID is nullable:
// uncategorized transactions are legal and grouped under
// UncategorizedLabel in summaries.
type Transaction struct {
	ID          uuid.UUID
	Amount      float64
	Date        time.Time
	Description *string
	UserID      uuid.UUID
	CategoryID  *uuid.UUID
	CreatedAt   time.Time
}

// New creates a Transaction with a generated id. The date and owning
// user are required; existence of the referenced rows is checked at the
// store boundary.
func New(
	amount float64,
	date time.Time,
	description *string,
	userID uuid.UUID,
	categoryID *uuid.UUID,
) (*Transaction, error) {
	if date.IsZero() {
		return nil, domain.NewConstraintError("date", "is required")
	}
	if userID == uuid.Nil {
		return nil, domain.NewConstraintError("user_id", "is required")
	}
	return &Transaction{
		ID:          uuid.New(),
		Amount:      amount,
		Date:        date,
		Description: description,
		UserID:      userID,
		CategoryID:  categoryID,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

package transaction

// NewTransaction is the request body for recording a transaction.
// Amount is a pointer so that an explicit zero passes the required
// check. Date defaults to today when omitted.
type NewTransaction struct {
	Amount      *float64 `json:"amount" validate:"required"`
	AccountID   string   `json:"account_id" validate:"required,uuid"`
	CategoryID  *string  `json:"category_id" validate:"omitempty,uuid"`
	Date        string   `json:"date" validate:"omitempty"`
	Description *string  `json:"description" validate:"omitempty,max=255"`
}

// NewTransactionResponse is the wire shape returned after recording.
type NewTransactionResponse struct {
	TransactionID string `json:"transaction_id"`
}

// TransactionResponse is the wire shape for a listed transaction.
// Category is the category name, or null when uncategorized.
type TransactionResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
	AccountID   string  `json:"account_id"`
	Category    *string `json:"category"`
}

// FilterRequest is the request body for POST /transactions/filter. All
// set predicates are combined with AND; either date bound may be given
// alone for a one-sided range.
type FilterRequest struct {
	UserID     *string `json:"user_id" validate:"omitempty,uuid"`
	CategoryID *string `json:"category_id" validate:"omitempty,uuid"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
	Keyword    string  `json:"keyword"`
}

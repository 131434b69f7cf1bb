package category

// NewCategory is the request body for creating a category. Description
// is accepted and persisted but not echoed in the response shape.
type NewCategory struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

// CategoryResponse is the wire shape for a category.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

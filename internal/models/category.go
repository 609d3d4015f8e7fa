package models

// Category name and description limits enforced before storage.
const (
	MaxCategoryNameLength        = 50
	MaxCategoryDescriptionLength = 200
)

// Category groups todos by name. Names are unique (case-sensitive) and
// trimmed before storage. Categories are create-only: there is no update or
// delete operation.
type Category struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	CreatedAt   LocalDateTime `json:"createdAt"`
}

package models

// Field length limits enforced at the API boundary.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxCategoryLength    = 50
)

// Todo represents a todo item. Description, Category and DueDate are
// nullable; CreatedAt is immutable after creation and UpdatedAt is bumped on
// every write.
type Todo struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description,omitempty"`
	Completed   bool          `json:"completed"`
	Important   bool          `json:"important"`
	Category    *string       `json:"category,omitempty"`
	DueDate     *Date         `json:"dueDate,omitempty"`
	CreatedAt   LocalDateTime `json:"createdAt"`
	UpdatedAt   LocalDateTime `json:"updatedAt"`
}

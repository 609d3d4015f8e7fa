package database

import (
	"context"

	"github.com/mecoding/todo-api/internal/models"
)

// TodoStore is the bounded lookup surface the filter engine dispatches over.
// Every method corresponds to one indexed predicate combination; there is no
// general query builder. This interface also enables mock implementations in
// tests.
type TodoStore interface {
	Create(ctx context.Context, todo *models.Todo) error
	GetByID(ctx context.Context, id int64) (*models.Todo, error)
	GetAll(ctx context.Context) ([]*models.Todo, error)
	Update(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, id int64) error

	Search(ctx context.Context, term string) ([]*models.Todo, error)

	GetByCompleted(ctx context.Context, completed bool) ([]*models.Todo, error)
	GetByCategory(ctx context.Context, category string) ([]*models.Todo, error)
	GetByImportant(ctx context.Context, important bool) ([]*models.Todo, error)
	GetByCategoryAndCompleted(ctx context.Context, category string, completed bool) ([]*models.Todo, error)
	GetByImportantAndCompleted(ctx context.Context, important, completed bool) ([]*models.Todo, error)
	GetByImportantAndCategory(ctx context.Context, important bool, category string) ([]*models.Todo, error)
	GetByImportantAndCategoryAndCompleted(ctx context.Context, important bool, category string, completed bool) ([]*models.Todo, error)

	GetByDueDate(ctx context.Context, dueDate models.Date) ([]*models.Todo, error)
	GetByDueDateAndCompleted(ctx context.Context, dueDate models.Date, completed bool) ([]*models.Todo, error)
	GetByDueDateAndImportant(ctx context.Context, dueDate models.Date, important bool) ([]*models.Todo, error)
	GetByDueDateAndCategory(ctx context.Context, dueDate models.Date, category string) ([]*models.Todo, error)
	GetByDueDateAndImportantAndCompleted(ctx context.Context, dueDate models.Date, important, completed bool) ([]*models.Todo, error)
	GetByDueDateAndCategoryAndCompleted(ctx context.Context, dueDate models.Date, category string, completed bool) ([]*models.Todo, error)
	GetByDueDateAndImportantAndCategory(ctx context.Context, dueDate models.Date, important bool, category string) ([]*models.Todo, error)
	GetByDueDateAndImportantAndCategoryAndCompleted(ctx context.Context, dueDate models.Date, important bool, category string, completed bool) ([]*models.Todo, error)

	GetByDueDateBetween(ctx context.Context, start, end models.Date) ([]*models.Todo, error)
	GetWithoutDueDate(ctx context.Context) ([]*models.Todo, error)
	GetDueToday(ctx context.Context) ([]*models.Todo, error)
	GetDueTodayByCompleted(ctx context.Context, completed bool) ([]*models.Todo, error)
}

// CategoryStore is the persistence surface backing the category registry.
type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	GetAll(ctx context.Context) ([]*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// Ensure concrete types implement the interfaces.
var (
	_ TodoStore     = (*TodoRepository)(nil)
	_ CategoryStore = (*CategoryRepository)(nil)
)

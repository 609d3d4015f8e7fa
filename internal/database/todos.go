package database

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/mecoding/todo-api/internal/models"
)

// TodoRepository handles todo database operations. Each lookup maps to one
// indexed predicate combination; the filter engine picks which one to call,
// so the query surface here stays finite and auditable.
type TodoRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewTodoRepository creates a new todo repository.
func NewTodoRepository(db *DB) *TodoRepository {
	return &TodoRepository{db: db, logger: zap.NewNop()}
}

// SetLogger sets the logger used for query diagnostics.
func (r *TodoRepository) SetLogger(logger *zap.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

const todoColumns = `id, title, description, completed, important, category, due_date, created_at, updated_at`

// Create inserts a new todo. The store assigns the identifier and both
// timestamps; they are written back onto todo.
func (r *TodoRepository) Create(ctx context.Context, todo *models.Todo) error {
	query := `
		INSERT INTO todos (title, description, completed, important, category, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		todo.Title,
		nullString(todo.Description),
		todo.Completed,
		todo.Important,
		nullString(todo.Category),
		nullDate(todo.DueDate),
	).Scan(&todo.ID, &todo.CreatedAt, &todo.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}

	return nil
}

// GetByID retrieves a todo by ID.
func (r *TodoRepository) GetByID(ctx context.Context, id int64) (*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1`

	todo, err := scanTodo(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("todo %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	return todo, nil
}

// GetAll retrieves every todo with no filter and no ordering guarantee.
func (r *TodoRepository) GetAll(ctx context.Context) ([]*models.Todo, error) {
	return r.queryTodos(ctx, `SELECT `+todoColumns+` FROM todos`)
}

// Update overwrites every mutable column of an existing todo and bumps
// updated_at unconditionally, even when nothing else changed. ID and
// created_at are never written.
func (r *TodoRepository) Update(ctx context.Context, todo *models.Todo) error {
	query := `
		UPDATE todos
		SET title = $2, description = $3, completed = $4, important = $5, category = $6, due_date = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		todo.ID,
		todo.Title,
		nullString(todo.Description),
		todo.Completed,
		todo.Important,
		nullString(todo.Category),
		nullDate(todo.DueDate),
	).Scan(&todo.UpdatedAt)

	if err == sql.ErrNoRows {
		return fmt.Errorf("todo %d: %w", todo.ID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}

	return nil
}

// Delete removes a todo by ID.
func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("todo %d: %w", id, ErrNotFound)
	}

	return nil
}

// Search returns todos whose title or description contains the term.
// Case-sensitivity follows the collation of the underlying columns.
func (r *TodoRepository) Search(ctx context.Context, term string) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE title LIKE '%' || $1 || '%' OR description LIKE '%' || $1 || '%'`
	return r.queryTodos(ctx, query, term)
}

// GetByCompleted returns todos by completion status, newest first. This is
// the only lookup with an ordering guarantee.
func (r *TodoRepository) GetByCompleted(ctx context.Context, completed bool) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE completed = $1 ORDER BY created_at DESC`
	return r.queryTodos(ctx, query, completed)
}

// GetByCategory returns todos in the given category.
func (r *TodoRepository) GetByCategory(ctx context.Context, category string) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE category = $1`
	return r.queryTodos(ctx, query, category)
}

// GetByImportant returns todos by importance flag.
func (r *TodoRepository) GetByImportant(ctx context.Context, important bool) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE important = $1`
	return r.queryTodos(ctx, query, important)
}

// GetByCategoryAndCompleted returns todos matching both predicates.
func (r *TodoRepository) GetByCategoryAndCompleted(ctx context.Context, category string, completed bool) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE category = $1 AND completed = $2`
	return r.queryTodos(ctx, query, category, completed)
}

// GetByImportantAndCompleted returns todos matching both predicates.
func (r *TodoRepository) GetByImportantAndCompleted(ctx context.Context, important, completed bool) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE important = $1 AND completed = $2`
	return r.queryTodos(ctx, query, important, completed)
}

// GetByImportantAndCategory returns todos matching both predicates.
func (r *TodoRepository) GetByImportantAndCategory(ctx context.Context, important bool, category string) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE important = $1 AND category = $2`
	return r.queryTodos(ctx, query, important, category)
}

// GetByImportantAndCategoryAndCompleted returns todos matching all three
// predicates.
func (r *TodoRepository) GetByImportantAndCategoryAndCompleted(ctx context.Context, important bool, category string, completed bool) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE important = $1 AND category = $2 AND completed = $3`
	return r.queryTodos(ctx, query, important, category, completed)
}

// GetByDueDate returns todos due on the given date.
func (r *TodoRepository) GetByDueDate(ctx context.Context, dueDate models.Date) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE due_date = $1`
	return r.queryTodos(ctx, query, dueDate)
}

// GetByDueDateAndCompleted returns todos due on the date with the given
// completion status.
func (r *TodoRepository) GetByDueDateAndCompleted(ctx context.Context, dueDate models.Date, completed bool) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE due_date = $1 AND completed = $2`
	return r.queryTodos(ctx, query, dueDate, completed)
}

// GetByDueDateAndImportant returns todos due on the date with the given
// importance.
func (r *TodoRepository) GetByDueDateAndImportant(ctx context.Context, dueDate models.Date, important bool) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE due_date = $1 AND important = $2`
	return r.queryTodos(ctx, query, dueDate, important)
}

// GetByDueDateAndCategory returns todos due on the date in the category.
func (r *TodoRepository) GetByDueDateAndCategory(ctx context.Context, dueDate models.Date, category string) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE due_date = $1 AND category = $2`
	return r.queryTodos(ctx, query, dueDate, category)
}

// GetByDueDateAndImportantAndCompleted returns todos matching all three
// predicates.
func (r *TodoRepository) GetByDueDateAndImportantAndCompleted(ctx context.Context, dueDate models.Date, important, completed bool) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE due_date = $1 AND important = $2 AND completed = $3`
	return r.queryTodos(ctx, query, dueDate, important, completed)
}

// GetByDueDateAndCategoryAndCompleted returns todos matching all three
// predicates.
func (r *TodoRepository) GetByDueDateAndCategoryAndCompleted(ctx context.Context, dueDate models.Date, category string, completed bool) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE due_date = $1 AND category = $2 AND completed = $3`
	return r.queryTodos(ctx, query, dueDate, category, completed)
}

// GetByDueDateAndImportantAndCategory returns todos matching all three
// predicates.
func (r *TodoRepository) GetByDueDateAndImportantAndCategory(ctx context.Context, dueDate models.Date, important bool, category string) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE due_date = $1 AND important = $2 AND category = $3`
	return r.queryTodos(ctx, query, dueDate, important, category)
}

// GetByDueDateAndImportantAndCategoryAndCompleted returns todos matching all
// four predicates.
func (r *TodoRepository) GetByDueDateAndImportantAndCategoryAndCompleted(ctx context.Context, dueDate models.Date, important bool, category string, completed bool) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE due_date = $1 AND important = $2 AND category = $3 AND completed = $4`
	return r.queryTodos(ctx, query, dueDate, important, category, completed)
}

// GetByDueDateBetween returns todos due within the inclusive date range.
func (r *TodoRepository) GetByDueDateBetween(ctx context.Context, start, end models.Date) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE due_date BETWEEN $1 AND $2`
	return r.queryTodos(ctx, query, start, end)
}

// GetWithoutDueDate returns todos that have no due date.
func (r *TodoRepository) GetWithoutDueDate(ctx context.Context) ([]*models.Todo, error) {
	return r.queryTodos(ctx, `SELECT `+todoColumns+` FROM todos WHERE due_date IS NULL`)
}

// GetDueToday returns todos due on the database's current date.
func (r *TodoRepository) GetDueToday(ctx context.Context) ([]*models.Todo, error) {
	return r.queryTodos(ctx, `SELECT `+todoColumns+` FROM todos WHERE due_date = CURRENT_DATE`)
}

// GetDueTodayByCompleted returns today's todos with the given completion
// status.
func (r *TodoRepository) GetDueTodayByCompleted(ctx context.Context, completed bool) ([]*models.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE due_date = CURRENT_DATE AND completed = $1`
	return r.queryTodos(ctx, query, completed)
}

// queryTodos runs a multi-row todo query and scans the results.
func (r *TodoRepository) queryTodos(ctx context.Context, query string, args ...any) ([]*models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer rows.Close()

	todos := []*models.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}

	r.logger.Debug("todos_queried", zap.Int("count", len(todos)))

	return todos, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (*models.Todo, error) {
	todo := &models.Todo{}
	var description, category sql.NullString
	var dueDate sql.NullTime

	err := row.Scan(
		&todo.ID,
		&todo.Title,
		&description,
		&todo.Completed,
		&todo.Important,
		&category,
		&dueDate,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		todo.Description = &description.String
	}
	if category.Valid {
		todo.Category = &category.String
	}
	if dueDate.Valid {
		d := models.NewDate(dueDate.Time.Year(), dueDate.Time.Month(), dueDate.Time.Day())
		todo.DueDate = &d
	}

	return todo, nil
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullDate(d *models.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

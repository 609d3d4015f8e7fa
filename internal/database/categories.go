package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mecoding/todo-api/internal/models"
)

// CategoryRepository handles category database operations.
type CategoryRepository struct {
	db *DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

const categoryColumns = `id, name, description, created_at`

// Create inserts a new category. The unique index on name converts a lost
// check-then-insert race into ErrDuplicateName instead of a silent duplicate.
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (name, description, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		category.Name,
		nullString(category.Description),
	).Scan(&category.ID, &category.CreatedAt)

	if isUniqueViolation(err) {
		return fmt.Errorf("category %q: %w", category.Name, ErrDuplicateName)
	}
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// GetAll retrieves every category.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []*models.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetByID retrieves a category by ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

// GetByName retrieves a category by its exact name.
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1`

	category, err := scanCategory(r.db.QueryRowContext(ctx, query, name))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("category %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

// ExistsByName reports whether a category with the exact name exists.
func (r *CategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return exists, nil
}

func scanCategory(row rowScanner) (*models.Category, error) {
	category := &models.Category{}
	var description sql.NullString

	err := row.Scan(
		&category.ID,
		&category.Name,
		&description,
		&category.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		category.Description = &description.String
	}

	return category, nil
}

// Package category implements the category registry: a thin layer over the
// store that trims names and enforces their uniqueness.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mecoding/todo-api/internal/database"
	"github.com/mecoding/todo-api/internal/models"
)

// ErrBlankName is returned when a category is created with an empty or
// whitespace-only name.
var ErrBlankName = errors.New("category name cannot be empty")

// Service is the category registry.
type Service struct {
	store  database.CategoryStore
	logger *zap.Logger
}

// NewService creates a category service backed by the given store.
func NewService(store database.CategoryStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// List retrieves all categories.
func (s *Service) List(ctx context.Context) ([]*models.Category, error) {
	return s.store.GetAll(ctx)
}

// Get retrieves a category by ID.
func (s *Service) Get(ctx context.Context, id int64) (*models.Category, error) {
	return s.store.GetByID(ctx, id)
}

// GetByName retrieves a category by trimmed name.
func (s *Service) GetByName(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category: %w", database.ErrNotFound)
	}
	return s.store.GetByName(ctx, name)
}

// Create trims the name and persists the category. A duplicate name yields
// database.ErrDuplicateName, either from the existence pre-check here or,
// if two creations race past it, from the store's unique index.
func (s *Service) Create(ctx context.Context, category *models.Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return ErrBlankName
	}

	exists, err := s.store.ExistsByName(ctx, category.Name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("category %q: %w", category.Name, database.ErrDuplicateName)
	}

	if err := s.store.Create(ctx, category); err != nil {
		return err
	}

	s.logger.Info("category_created",
		zap.Int64("id", category.ID),
		zap.String("name", category.Name),
	)
	return nil
}

// Exists reports whether a category with the trimmed name exists.
func (s *Service) Exists(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}
	return s.store.ExistsByName(ctx, name)
}

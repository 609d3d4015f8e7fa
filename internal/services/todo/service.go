// Package todo implements the todo service: CRUD operations, the filter
// resolution engine that maps optional predicates onto the store's fixed
// lookup surface, and the sparse-merge logic behind PATCH.
package todo

import (
	"context"

	"go.uber.org/zap"

	"github.com/mecoding/todo-api/internal/database"
	"github.com/mecoding/todo-api/internal/models"
)

// Service coordinates todo operations over the record store. It holds no
// per-request state; every operation works solely on its inputs and a
// freshly fetched record.
type Service struct {
	store   database.TodoStore
	logger  *zap.Logger
	lookups []lookup
}

// NewService creates a todo service backed by the given store.
func NewService(store database.TodoStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{store: store, logger: logger}
	s.lookups = s.buildLookups()
	return s
}

// Replacement is a full PUT payload. Every mutable field is always present;
// fields the client omitted from the request body arrive as their zero value
// and overwrite the stored record accordingly. This is deliberately
// different from Patch semantics.
type Replacement struct {
	Title       string
	Description *string
	Completed   bool
	Important   bool
	Category    *string
	DueDate     *models.Date
}

// Patch is a sparse PATCH payload. Each field is independently tagged
// present-or-absent; a present field set to JSON null clears the
// corresponding nullable column.
type Patch struct {
	Title       models.Optional[string]       `json:"title"`
	Description models.Optional[*string]      `json:"description"`
	Completed   models.Optional[bool]         `json:"completed"`
	Important   models.Optional[bool]         `json:"important"`
	Category    models.Optional[*string]      `json:"category"`
	DueDate     models.Optional[*models.Date] `json:"dueDate"`
}

// Get retrieves a todo by ID.
func (s *Service) Get(ctx context.Context, id int64) (*models.Todo, error) {
	return s.store.GetByID(ctx, id)
}

// Create persists a new todo. The store assigns the identifier and both
// timestamps.
func (s *Service) Create(ctx context.Context, t *models.Todo) error {
	if err := s.store.Create(ctx, t); err != nil {
		return err
	}
	s.logger.Info("todo_created",
		zap.Int64("id", t.ID),
		zap.String("title", t.Title),
	)
	return nil
}

// Replace overwrites every mutable field of the todo with the replacement
// values, including resetting fields the caller left at their zero value.
func (s *Service) Replace(ctx context.Context, id int64, rep Replacement) (*models.Todo, error) {
	t, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Title = rep.Title
	t.Description = rep.Description
	t.Completed = rep.Completed
	t.Important = rep.Important
	t.Category = rep.Category
	t.DueDate = rep.DueDate

	if err := s.store.Update(ctx, t); err != nil {
		return nil, err
	}
	s.logger.Info("todo_replaced", zap.Int64("id", id))
	return t, nil
}

// Patch fetches the todo and merges only the fields present in the payload,
// leaving absent fields at their persisted values. The write bumps
// updatedAt unconditionally, even for a no-op payload.
func (s *Service) Patch(ctx context.Context, id int64, p Patch) (*models.Todo, error) {
	t, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyPatch(t, p)

	if err := s.store.Update(ctx, t); err != nil {
		return nil, err
	}
	s.logger.Info("todo_patched", zap.Int64("id", id))
	return t, nil
}

// applyPatch merges the present fields of p onto t. Identifier and creation
// timestamp are never touched; updatedAt is stamped by the store write.
func applyPatch(t *models.Todo, p Patch) {
	if v, ok := p.Title.Get(); ok {
		t.Title = v
	}
	if v, ok := p.Description.Get(); ok {
		t.Description = v
	}
	if v, ok := p.Completed.Get(); ok {
		t.Completed = v
	}
	if v, ok := p.Important.Get(); ok {
		t.Important = v
	}
	if v, ok := p.Category.Get(); ok {
		t.Category = v
	}
	if v, ok := p.DueDate.Get(); ok {
		t.DueDate = v
	}
}

// Delete removes a todo by ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("todo_deleted", zap.Int64("id", id))
	return nil
}

// Today returns todos due on the current date, optionally filtered by
// completion status.
func (s *Service) Today(ctx context.Context, completed *bool) ([]*models.Todo, error) {
	if completed != nil {
		return s.store.GetDueTodayByCompleted(ctx, *completed)
	}
	return s.store.GetDueToday(ctx)
}

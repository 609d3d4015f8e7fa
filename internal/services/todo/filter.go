package todo

import (
	"context"
	"strings"

	"github.com/mecoding/todo-api/internal/models"
)

// Filter carries the optional structured predicates and the free-text query
// for a single list request. Nil pointers mean the predicate is absent; a
// blank or whitespace-only Category is treated as absent too.
type Filter struct {
	Completed *bool
	Category  string
	Important *bool
	DueDate   *models.Date
	Search    string
}

// presenceMask records which structured predicates a request supplied.
type presenceMask uint8

const (
	hasCompleted presenceMask = 1 << iota
	hasCategory
	hasImportant
	hasDueDate
)

// category returns the trimmed category value.
func (f Filter) category() string {
	return strings.TrimSpace(f.Category)
}

// mask computes the presence mask for tier selection.
func (f Filter) mask() presenceMask {
	var m presenceMask
	if f.Completed != nil {
		m |= hasCompleted
	}
	if f.category() != "" {
		m |= hasCategory
	}
	if f.Important != nil {
		m |= hasImportant
	}
	if f.DueDate != nil {
		m |= hasDueDate
	}
	return m
}

// lookup binds one predicate combination to its store call. The engine walks
// an ordered slice of these and dispatches to the first whose mask is fully
// present, so the priority order is data rather than nested conditionals.
type lookup struct {
	mask  presenceMask
	fetch func(ctx context.Context, f Filter) ([]*models.Todo, error)
}

// buildLookups returns the tier table, most specific first. The final entry
// has an empty mask and always matches, terminating at full-table scan.
func (s *Service) buildLookups() []lookup {
	return []lookup{
		{hasDueDate | hasImportant | hasCategory | hasCompleted, func(ctx context.Context, f Filter) ([]*models.Todo, error) {
			return s.store.GetByDueDateAndImportantAndCategoryAndCompleted(ctx, *f.DueDate, *f.Important, f.category(), *f.Completed)
		}},
		{hasDueDate | hasImportant | hasCategory, func(ctx context.Context, f Filter) ([]*models.Todo, error) {
			return s.store.GetByDueDateAndImportantAndCategory(ctx, *f.DueDate, *f.Important, f.category())
		}},
		{hasDueDate | hasCategory | hasCompleted, func(ctx context.Context, f Filter) ([]*models.Todo, error) {
			return s.store.GetByDueDateAndCategoryAndCompleted(ctx, *f.DueDate, f.category(), *f.Completed)
		}},
		{hasDueDate | hasImportant | hasCompleted, func(ctx context.Context, f Filter) ([]*models.Todo, error) {
			return s.store.GetByDueDateAndImportantAndCompleted(ctx, *f.DueDate, *f.Important, *f.Completed)
		}},
		{hasDueDate | hasImportant, func(ctx context.Context, f Filter) ([]*models.Todo, error) {
			return s.store.GetByDueDateAndImportant(ctx, *f.DueDate, *f.Important)
		}},
		{hasDueDate | hasCategory, func(ctx context.Context, f Filter) ([]*models.Todo, error) {
			return s.store.GetByDueDateAndCategory(ctx, *f.DueDate, f.category())
		}},
		{hasDueDate | hasCompleted, func(ctx context.Context, f Filter) ([]*models.Todo, error) {
			return s.store.GetByDueDateAndCompleted(ctx, *f.DueDate, *f.Completed)
		}},
		{hasDueDate, func(ctx context.Context, f Filter) ([]*models.Todo, error) {
			return s.store.GetByDueDate(ctx, *f.DueDate)
		}},
		{hasImportant | hasCategory | hasCompleted, func(ctx context.Context, f Filter) ([]*models.Todo, error) {
			return s.store.GetByImportantAndCategoryAndCompleted(ctx, *f.Important, f.category(), *f.Completed)
		}},
		{hasImportant | hasCategory, func(ctx context.Context, f Filter) ([]*models.Todo, error) {
			return s.store.GetByImportantAndCategory(ctx, *f.Important, f.category())
		}},
		{hasImportant | hasCompleted, func(ctx context.Context, f Filter) ([]*models.Todo, error) {
			return s.store.GetByImportantAndCompleted(ctx, *f.Important, *f.Completed)
		}},
		{hasCategory | hasCompleted, func(ctx context.Context, f Filter) ([]*models.Todo, error) {
			return s.store.GetByCategoryAndCompleted(ctx, f.category(), *f.Completed)
		}},
		{hasImportant, func(ctx context.Context, f Filter) ([]*models.Todo, error) {
			return s.store.GetByImportant(ctx, *f.Important)
		}},
		{hasCategory, func(ctx context.Context, f Filter) ([]*models.Todo, error) {
			return s.store.GetByCategory(ctx, f.category())
		}},
		{hasCompleted, func(ctx context.Context, f Filter) ([]*models.Todo, error) {
			return s.store.GetByCompleted(ctx, *f.Completed)
		}},
		{0, func(ctx context.Context, f Filter) ([]*models.Todo, error) {
			return s.store.GetAll(ctx)
		}},
	}
}

// List resolves the filter to exactly one store lookup and runs it.
//
// A non-blank search query takes precedence over every structured predicate:
// free-text search and structured filtering are mutually exclusive per
// request. Otherwise the tier table is walked in priority order and the
// first tier whose predicates are all present wins.
func (s *Service) List(ctx context.Context, f Filter) ([]*models.Todo, error) {
	if term := strings.TrimSpace(f.Search); term != "" {
		return s.store.Search(ctx, term)
	}

	m := f.mask()
	for _, l := range s.lookups {
		if m&l.mask == l.mask {
			return l.fetch(ctx, f)
		}
	}

	// Unreachable: the last lookup has an empty mask and matches everything.
	return s.store.GetAll(ctx)
}

package todo

import (
	"context"
	"fmt"
	"time"

	"github.com/mecoding/todo-api/internal/database"
	"github.com/mecoding/todo-api/internal/models"
)

// fakeStore implements database.TodoStore, recording which lookup each call
// hit so tests can assert on dispatch. Records live in a map keyed by ID.
type fakeStore struct {
	todos   map[int64]*models.Todo
	nextID  int64
	calls   []string
	updated *models.Todo
}

var _ database.TodoStore = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{todos: make(map[int64]*models.Todo), nextID: 1}
}

func (s *fakeStore) record(call string) {
	s.calls = append(s.calls, call)
}

// lastCall returns the most recent lookup name, or "" when none happened.
func (s *fakeStore) lastCall() string {
	if len(s.calls) == 0 {
		return ""
	}
	return s.calls[len(s.calls)-1]
}

func (s *fakeStore) Create(ctx context.Context, todo *models.Todo) error {
	s.record("Create")
	todo.ID = s.nextID
	s.nextID++
	todo.CreatedAt = models.Now()
	todo.UpdatedAt = todo.CreatedAt
	clone := *todo
	s.todos[todo.ID] = &clone
	return nil
}

func (s *fakeStore) GetByID(ctx context.Context, id int64) (*models.Todo, error) {
	s.record("GetByID")
	t, ok := s.todos[id]
	if !ok {
		return nil, fmt.Errorf("todo %d: %w", id, database.ErrNotFound)
	}
	clone := *t
	return &clone, nil
}

func (s *fakeStore) Update(ctx context.Context, todo *models.Todo) error {
	s.record("Update")
	if _, ok := s.todos[todo.ID]; !ok {
		return fmt.Errorf("todo %d: %w", todo.ID, database.ErrNotFound)
	}
	// The real store bumps updated_at on every write, no-op or not.
	todo.UpdatedAt = models.LocalDateTime{Time: todo.UpdatedAt.Time.Add(time.Second)}
	clone := *todo
	s.todos[todo.ID] = &clone
	s.updated = &clone
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, id int64) error {
	s.record("Delete")
	if _, ok := s.todos[id]; !ok {
		return fmt.Errorf("todo %d: %w", id, database.ErrNotFound)
	}
	delete(s.todos, id)
	return nil
}

func (s *fakeStore) GetAll(ctx context.Context) ([]*models.Todo, error) {
	s.record("GetAll")
	return nil, nil
}

func (s *fakeStore) Search(ctx context.Context, term string) ([]*models.Todo, error) {
	s.record("Search(" + term + ")")
	return nil, nil
}

func (s *fakeStore) GetByCompleted(ctx context.Context, completed bool) ([]*models.Todo, error) {
	s.record("GetByCompleted")
	return nil, nil
}

func (s *fakeStore) GetByCategory(ctx context.Context, category string) ([]*models.Todo, error) {
	s.record("GetByCategory(" + category + ")")
	return nil, nil
}

func (s *fakeStore) GetByImportant(ctx context.Context, important bool) ([]*models.Todo, error) {
	s.record("GetByImportant")
	return nil, nil
}

func (s *fakeStore) GetByCategoryAndCompleted(ctx context.Context, category string, completed bool) ([]*models.Todo, error) {
	s.record("GetByCategoryAndCompleted")
	return nil, nil
}

func (s *fakeStore) GetByImportantAndCompleted(ctx context.Context, important, completed bool) ([]*models.Todo, error) {
	s.record("GetByImportantAndCompleted")
	return nil, nil
}

func (s *fakeStore) GetByImportantAndCategory(ctx context.Context, important bool, category string) ([]*models.Todo, error) {
	s.record("GetByImportantAndCategory")
	return nil, nil
}

func (s *fakeStore) GetByImportantAndCategoryAndCompleted(ctx context.Context, important bool, category string, completed bool) ([]*models.Todo, error) {
	s.record("GetByImportantAndCategoryAndCompleted")
	return nil, nil
}

func (s *fakeStore) GetByDueDate(ctx context.Context, dueDate models.Date) ([]*models.Todo, error) {
	s.record("GetByDueDate")
	return nil, nil
}

func (s *fakeStore) GetByDueDateAndCompleted(ctx context.Context, dueDate models.Date, completed bool) ([]*models.Todo, error) {
	s.record("GetByDueDateAndCompleted")
	return nil, nil
}

func (s *fakeStore) GetByDueDateAndImportant(ctx context.Context, dueDate models.Date, important bool) ([]*models.Todo, error) {
	s.record("GetByDueDateAndImportant")
	return nil, nil
}

func (s *fakeStore) GetByDueDateAndCategory(ctx context.Context, dueDate models.Date, category string) ([]*models.Todo, error) {
	s.record("GetByDueDateAndCategory(" + category + ")")
	return nil, nil
}

func (s *fakeStore) GetByDueDateAndImportantAndCompleted(ctx context.Context, dueDate models.Date, important, completed bool) ([]*models.Todo, error) {
	s.record("GetByDueDateAndImportantAndCompleted")
	return nil, nil
}

func (s *fakeStore) GetByDueDateAndCategoryAndCompleted(ctx context.Context, dueDate models.Date, category string, completed bool) ([]*models.Todo, error) {
	s.record("GetByDueDateAndCategoryAndCompleted")
	return nil, nil
}

func (s *fakeStore) GetByDueDateAndImportantAndCategory(ctx context.Context, dueDate models.Date, important bool, category string) ([]*models.Todo, error) {
	s.record("GetByDueDateAndImportantAndCategory")
	return nil, nil
}

func (s *fakeStore) GetByDueDateAndImportantAndCategoryAndCompleted(ctx context.Context, dueDate models.Date, important bool, category string, completed bool) ([]*models.Todo, error) {
	s.record("GetByDueDateAndImportantAndCategoryAndCompleted")
	return nil, nil
}

func (s *fakeStore) GetByDueDateBetween(ctx context.Context, start, end models.Date) ([]*models.Todo, error) {
	s.record("GetByDueDateBetween")
	return nil, nil
}

func (s *fakeStore) GetWithoutDueDate(ctx context.Context) ([]*models.Todo, error) {
	s.record("GetWithoutDueDate")
	return nil, nil
}

func (s *fakeStore) GetDueToday(ctx context.Context) ([]*models.Todo, error) {
	s.record("GetDueToday")
	return nil, nil
}

func (s *fakeStore) GetDueTodayByCompleted(ctx context.Context, completed bool) ([]*models.Todo, error) {
	s.record("GetDueTodayByCompleted")
	return nil, nil
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/mecoding/todo-api/internal/database"
	"github.com/mecoding/todo-api/internal/models"
	"github.com/mecoding/todo-api/internal/services/category"
	"github.com/mecoding/todo-api/internal/services/todo"
)

// fakeTodoStore is a map-backed database.TodoStore. Lookup methods filter
// in memory so requests exercise the same predicate semantics the SQL
// queries implement.
type fakeTodoStore struct {
	todos  map[int64]*models.Todo
	nextID int64
}

var _ database.TodoStore = (*fakeTodoStore)(nil)

func newFakeTodoStore() *fakeTodoStore {
	return &fakeTodoStore{todos: make(map[int64]*models.Todo), nextID: 1}
}

func (s *fakeTodoStore) Create(ctx context.Context, t *models.Todo) error {
	t.ID = s.nextID
	s.nextID++
	t.CreatedAt = models.Now()
	t.UpdatedAt = t.CreatedAt
	clone := *t
	s.todos[t.ID] = &clone
	return nil
}

func (s *fakeTodoStore) GetByID(ctx context.Context, id int64) (*models.Todo, error) {
	t, ok := s.todos[id]
	if !ok {
		return nil, fmt.Errorf("todo %d: %w", id, database.ErrNotFound)
	}
	clone := *t
	return &clone, nil
}

func (s *fakeTodoStore) Update(ctx context.Context, t *models.Todo) error {
	if _, ok := s.todos[t.ID]; !ok {
		return fmt.Errorf("todo %d: %w", t.ID, database.ErrNotFound)
	}
	t.UpdatedAt = models.Now()
	clone := *t
	s.todos[t.ID] = &clone
	return nil
}

func (s *fakeTodoStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.todos[id]; !ok {
		return fmt.Errorf("todo %d: %w", id, database.ErrNotFound)
	}
	delete(s.todos, id)
	return nil
}

func (s *fakeTodoStore) filter(pred func(*models.Todo) bool) []*models.Todo {
	out := []*models.Todo{}
	for _, t := range s.todos {
		if pred(t) {
			clone := *t
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func hasCategory(t *models.Todo, name string) bool {
	return t.Category != nil && *t.Category == name
}

func hasDueDate(t *models.Todo, d models.Date) bool {
	return t.DueDate != nil && t.DueDate.Equal(d)
}

func (s *fakeTodoStore) GetAll(ctx context.Context) ([]*models.Todo, error) {
	return s.filter(func(*models.Todo) bool { return true }), nil
}

func (s *fakeTodoStore) Search(ctx context.Context, term string) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool {
		if strings.Contains(t.Title, term) {
			return true
		}
		return t.Description != nil && strings.Contains(*t.Description, term)
	}), nil
}

func (s *fakeTodoStore) GetByCompleted(ctx context.Context, completed bool) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool { return t.Completed == completed }), nil
}

func (s *fakeTodoStore) GetByCategory(ctx context.Context, cat string) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool { return hasCategory(t, cat) }), nil
}

func (s *fakeTodoStore) GetByImportant(ctx context.Context, important bool) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool { return t.Important == important }), nil
}

func (s *fakeTodoStore) GetByCategoryAndCompleted(ctx context.Context, cat string, completed bool) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool { return hasCategory(t, cat) && t.Completed == completed }), nil
}

func (s *fakeTodoStore) GetByImportantAndCompleted(ctx context.Context, important, completed bool) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool { return t.Important == important && t.Completed == completed }), nil
}

func (s *fakeTodoStore) GetByImportantAndCategory(ctx context.Context, important bool, cat string) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool { return t.Important == important && hasCategory(t, cat) }), nil
}

func (s *fakeTodoStore) GetByImportantAndCategoryAndCompleted(ctx context.Context, important bool, cat string, completed bool) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool {
		return t.Important == important && hasCategory(t, cat) && t.Completed == completed
	}), nil
}

func (s *fakeTodoStore) GetByDueDate(ctx context.Context, d models.Date) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool { return hasDueDate(t, d) }), nil
}

func (s *fakeTodoStore) GetByDueDateAndCompleted(ctx context.Context, d models.Date, completed bool) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool { return hasDueDate(t, d) && t.Completed == completed }), nil
}

func (s *fakeTodoStore) GetByDueDateAndImportant(ctx context.Context, d models.Date, important bool) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool { return hasDueDate(t, d) && t.Important == important }), nil
}

func (s *fakeTodoStore) GetByDueDateAndCategory(ctx context.Context, d models.Date, cat string) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool { return hasDueDate(t, d) && hasCategory(t, cat) }), nil
}

func (s *fakeTodoStore) GetByDueDateAndImportantAndCompleted(ctx context.Context, d models.Date, important, completed bool) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool {
		return hasDueDate(t, d) && t.Important == important && t.Completed == completed
	}), nil
}

func (s *fakeTodoStore) GetByDueDateAndCategoryAndCompleted(ctx context.Context, d models.Date, cat string, completed bool) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool {
		return hasDueDate(t, d) && hasCategory(t, cat) && t.Completed == completed
	}), nil
}

func (s *fakeTodoStore) GetByDueDateAndImportantAndCategory(ctx context.Context, d models.Date, important bool, cat string) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool {
		return hasDueDate(t, d) && t.Important == important && hasCategory(t, cat)
	}), nil
}

func (s *fakeTodoStore) GetByDueDateAndImportantAndCategoryAndCompleted(ctx context.Context, d models.Date, important bool, cat string, completed bool) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool {
		return hasDueDate(t, d) && t.Important == important && hasCategory(t, cat) && t.Completed == completed
	}), nil
}

func (s *fakeTodoStore) GetByDueDateBetween(ctx context.Context, start, end models.Date) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool {
		return t.DueDate != nil && !t.DueDate.Before(start.Time) && !t.DueDate.After(end.Time)
	}), nil
}

func (s *fakeTodoStore) GetWithoutDueDate(ctx context.Context) ([]*models.Todo, error) {
	return s.filter(func(t *models.Todo) bool { return t.DueDate == nil }), nil
}

func (s *fakeTodoStore) GetDueToday(ctx context.Context) ([]*models.Todo, error) {
	return s.GetByDueDate(ctx, models.Today())
}

func (s *fakeTodoStore) GetDueTodayByCompleted(ctx context.Context, completed bool) ([]*models.Todo, error) {
	return s.GetByDueDateAndCompleted(ctx, models.Today(), completed)
}

// fakeCategoryStore is a map-backed database.CategoryStore.
type fakeCategoryStore struct {
	byName map[string]*models.Category
	nextID int64
}

var _ database.CategoryStore = (*fakeCategoryStore)(nil)

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{byName: make(map[string]*models.Category), nextID: 1}
}

func (s *fakeCategoryStore) Create(ctx context.Context, c *models.Category) error {
	if _, ok := s.byName[c.Name]; ok {
		return fmt.Errorf("category %q: %w", c.Name, database.ErrDuplicateName)
	}
	c.ID = s.nextID
	s.nextID++
	c.CreatedAt = models.Now()
	clone := *c
	s.byName[c.Name] = &clone
	return nil
}

func (s *fakeCategoryStore) GetAll(ctx context.Context) ([]*models.Category, error) {
	out := make([]*models.Category, 0, len(s.byName))
	for _, c := range s.byName {
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *fakeCategoryStore) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	for _, c := range s.byName {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("category %d: %w", id, database.ErrNotFound)
}

func (s *fakeCategoryStore) GetByName(ctx context.Context, name string) (*models.Category, error) {
	c, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("category %q: %w", name, database.ErrNotFound)
	}
	clone := *c
	return &clone, nil
}

func (s *fakeCategoryStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	_, ok := s.byName[name]
	return ok, nil
}

// testEnv wires fake stores through the real services and handlers onto a
// router with the production route layout.
type testEnv struct {
	router     *mux.Router
	todos      *fakeTodoStore
	categories *fakeCategoryStore
}

func newTestEnv() *testEnv {
	todoStore := newFakeTodoStore()
	categoryStore := newFakeCategoryStore()

	todoHandler := NewTodoHandler(todo.NewService(todoStore, nil), nil)
	categoryHandler := NewCategoryHandler(category.NewService(categoryStore, nil), nil)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()
	todoHandler.RegisterRoutes(api.PathPrefix("/todos").Subrouter())
	categoryHandler.RegisterRoutes(api.PathPrefix("/categories").Subrouter())

	return &testEnv{router: router, todos: todoStore, categories: categoryStore}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) doRaw(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeTodo(t *testing.T, rec *httptest.ResponseRecorder) models.Todo {
	t.Helper()
	var out models.Todo
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode todo response: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

func decodeTodos(t *testing.T, rec *httptest.ResponseRecorder) []models.Todo {
	t.Helper()
	var out []models.Todo
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode todo list response: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var out ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode error response: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

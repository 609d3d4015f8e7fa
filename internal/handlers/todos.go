package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/mecoding/todo-api/internal/models"
	"github.com/mecoding/todo-api/internal/services/todo"
	"github.com/mecoding/todo-api/internal/validation"
)

// TodoHandler handles todo-related requests.
type TodoHandler struct {
	svc    *todo.Service
	logger *zap.Logger
}

// NewTodoHandler creates a new todo handler.
func NewTodoHandler(svc *todo.Service, logger *zap.Logger) *TodoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TodoHandler{svc: svc, logger: logger}
}

// RegisterRoutes registers todo routes on the given router. The router
// should already carry the /todos prefix.
func (h *TodoHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.ListTodos).Methods("GET")
	r.HandleFunc("", h.CreateTodo).Methods("POST")
	r.HandleFunc("/today", h.TodayTodos).Methods("GET")
	r.HandleFunc("/{id:[0-9]+}", h.GetTodo).Methods("GET")
	r.HandleFunc("/{id:[0-9]+}", h.ReplaceTodo).Methods("PUT")
	r.HandleFunc("/{id:[0-9]+}", h.PatchTodo).Methods("PATCH")
	r.HandleFunc("/{id:[0-9]+}", h.DeleteTodo).Methods("DELETE")
}

// CreateTodoRequest is the POST body. Completed and important default to
// false when omitted.
type CreateTodoRequest struct {
	Title       string       `json:"title" validate:"required,max=100"`
	Description *string      `json:"description" validate:"omitempty,max=500"`
	Completed   bool         `json:"completed"`
	Important   bool         `json:"important"`
	Category    *string      `json:"category" validate:"omitempty,max=50"`
	DueDate     *models.Date `json:"dueDate"`
}

// ReplaceTodoRequest is the PUT body. Unlike PATCH, every mutable field is
// replaced: fields omitted from the body reset to their zero value.
type ReplaceTodoRequest struct {
	Title       string       `json:"title" validate:"required,max=100"`
	Description *string      `json:"description" validate:"omitempty,max=500"`
	Completed   bool         `json:"completed"`
	Important   bool         `json:"important"`
	Category    *string      `json:"category" validate:"omitempty,max=50"`
	DueDate     *models.Date `json:"dueDate"`
}

// DeleteResponse confirms a successful deletion.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ListTodos lists todos, resolving the optional filter and search
// parameters to a single store lookup.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	filter := todo.Filter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
	}

	var ok bool
	if filter.Completed, ok = parseBoolParam(w, r, "completed"); !ok {
		return
	}
	if filter.Important, ok = parseBoolParam(w, r, "important"); !ok {
		return
	}
	if filter.DueDate, ok = parseDateParam(w, r, "dueDate"); !ok {
		return
	}

	todos, err := h.svc.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed_to_list_todos", zap.Error(err))
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, todos)
}

// TodayTodos lists todos due today, optionally filtered by completion.
func (h *TodoHandler) TodayTodos(w http.ResponseWriter, r *http.Request) {
	completed, ok := parseBoolParam(w, r, "completed")
	if !ok {
		return
	}

	todos, err := h.svc.Today(r.Context(), completed)
	if err != nil {
		h.logger.Error("failed_to_list_todays_todos", zap.Error(err))
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, todos)
}

// GetTodo retrieves a todo by ID.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, t)
}

// CreateTodo creates a new todo.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req CreateTodoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	req.Title = validation.SanitizeText(req.Title)
	if err := validation.Validate.Struct(req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Validation failed", validation.Messages(err))
		return
	}

	t := &models.Todo{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Important:   req.Important,
		Category:    req.Category,
		DueDate:     req.DueDate,
	}

	if err := h.svc.Create(r.Context(), t); err != nil {
		h.logger.Error("failed_to_create_todo", zap.Error(err))
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, t)
}

// ReplaceTodo fully replaces a todo (PUT semantics).
func (h *TodoHandler) ReplaceTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req ReplaceTodoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	req.Title = validation.SanitizeText(req.Title)
	if err := validation.Validate.Struct(req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Validation failed", validation.Messages(err))
		return
	}

	t, err := h.svc.Replace(r.Context(), id, todo.Replacement{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Important:   req.Important,
		Category:    req.Category,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, t)
}

// PatchTodo applies a sparse update (PATCH semantics): only fields present
// in the body are applied.
func (h *TodoHandler) PatchTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch todo.Patch
	if !decodeBody(w, r, &patch) {
		return
	}

	if details := validatePatch(&patch); details != "" {
		respondError(w, r, http.StatusBadRequest, "Validation failed", details)
		return
	}

	t, err := h.svc.Patch(r.Context(), id, patch)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, t)
}

// DeleteTodo deletes a todo by ID.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, DeleteResponse{
		Message: "Todo deleted successfully",
		ID:      id,
	})
}

// validatePatch checks field-level constraints on the present fields of a
// sparse payload. Returns an aggregated detail string, empty when valid.
func validatePatch(p *todo.Patch) string {
	var violations []string

	if v, ok := p.Title.Get(); ok {
		sanitized := validation.SanitizeText(v)
		if sanitized == "" {
			violations = append(violations, "title is required")
		} else if len(sanitized) > models.MaxTitleLength {
			violations = append(violations, fmt.Sprintf("title must not exceed %d characters", models.MaxTitleLength))
		} else {
			p.Title = models.Set(sanitized)
		}
	}
	if v, ok := p.Description.Get(); ok && v != nil && len(*v) > models.MaxDescriptionLength {
		violations = append(violations, fmt.Sprintf("description must not exceed %d characters", models.MaxDescriptionLength))
	}
	if v, ok := p.Category.Get(); ok && v != nil && len(*v) > models.MaxCategoryLength {
		violations = append(violations, fmt.Sprintf("category must not exceed %d characters", models.MaxCategoryLength))
	}

	return strings.Join(violations, ", ")
}

// decodeBody decodes a JSON request body, writing a MalformedInput error on
// failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if maxBytesErr, ok := err.(*http.MaxBytesError); ok {
			respondError(w, r, http.StatusRequestEntityTooLarge, "Request entity too large",
				fmt.Sprintf("Request body exceeds maximum size of %d bytes", maxBytesErr.Limit))
			return false
		}
		respondError(w, r, http.StatusBadRequest, "Malformed JSON request", "Request body contains invalid JSON")
		return false
	}
	return true
}

// pathID extracts the numeric {id} path variable.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Bad request", "Invalid todo ID")
		return 0, false
	}
	return id, true
}

// parseBoolParam parses an optional boolean query parameter. The second
// return value is false when the parameter was present but unparseable, in
// which case an error response has already been written.
func parseBoolParam(w http.ResponseWriter, r *http.Request, name string) (*bool, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Bad request",
			fmt.Sprintf("Invalid value for %s: expected true or false", name))
		return nil, false
	}
	return &value, true
}

// parseDateParam parses an optional YYYY-MM-DD query parameter.
func parseDateParam(w http.ResponseWriter, r *http.Request, name string) (*models.Date, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	date, err := models.ParseDate(raw)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "Bad request", err.Error())
		return nil, false
	}
	return &date, true
}

package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/mecoding/todo-api/internal/models"
	"github.com/mecoding/todo-api/internal/services/category"
	"github.com/mecoding/todo-api/internal/validation"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	svc    *category.Service
	logger *zap.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(svc *category.Service, logger *zap.Logger) *CategoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryHandler{svc: svc, logger: logger}
}

// RegisterRoutes registers category routes on the given router. The router
// should already carry the /categories prefix.
func (h *CategoryHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.ListCategories).Methods("GET")
	r.HandleFunc("", h.CreateCategory).Methods("POST")
}

// CreateCategoryRequest is the POST body for category creation.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=50"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

// ListCategories lists all categories.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.List(r.Context())
	if err != nil {
		h.logger.Error("failed_to_list_categories", zap.Error(err))
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

// CreateCategory creates a new category, enforcing name uniqueness.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	req.Name = validation.SanitizeText(req.Name)
	if err := validation.Validate.Struct(req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Validation failed", validation.Messages(err))
		return
	}

	c := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.svc.Create(r.Context(), c); err != nil {
		h.logger.Warn("failed_to_create_category", zap.String("name", req.Name), zap.Error(err))
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, c)
}

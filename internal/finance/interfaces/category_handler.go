package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/coinkeeper/CoinKeeper/internal/finance/application"
	"github.com/coinkeeper/CoinKeeper/internal/finance/domain"
)

type CategoryServiceInterface interface {
	ListCategories(userID int) (*application.CategoryList, error)
	GetCategory(userID int, kind domain.Kind, categoryID int) (*domain.Category, error)
	CreateCategory(userID int, kind domain.Kind, title string) (*domain.Category, error)
	UpdateCategory(userID int, kind domain.Kind, categoryID int, title string) (*domain.Category, error)
	DeleteCategory(userID int, kind domain.Kind, categoryID int) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	list, err := h.service.ListCategories(userID)
	if err != nil {
		status, message := statusForError(err)
		h.respondError(w, status, message)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   list,
	})
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	kind := domain.Kind(r.URL.Query().Get("type"))
	category, err := h.service.GetCategory(userID, kind, categoryID)
	if err != nil {
		status, message := statusForError(err)
		h.respondError(w, status, message)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   category,
	})
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Title string `json:"title"`
		Type  string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(userID, domain.Kind(req.Type), req.Title)
	if err != nil {
		status, message := statusForError(err)
		h.respondError(w, status, message)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Category added successfully",
		"data":    category,
	})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	var req struct {
		Title string `json:"title"`
		Type  string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(userID, domain.Kind(req.Type), categoryID, req.Title)
	if err != nil {
		status, message := statusForError(err)
		h.respondError(w, status, message)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category updated successfully",
		"data":    category,
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	kind := domain.Kind(r.URL.Query().Get("type"))
	if err := h.service.DeleteCategory(userID, kind, categoryID); err != nil {
		status, message := statusForError(err)
		h.respondError(w, status, message)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category deleted successfully",
	})
}

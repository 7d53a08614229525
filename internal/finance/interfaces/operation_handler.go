package interfaces

import (
	"encoding/json"
	"net/http"

	"github.com/coinkeeper/CoinKeeper/internal/finance/domain"
)

type OperationServiceInterface interface {
	ListOperations(userID int) ([]domain.Operation, error)
	GetOperation(userID, operationID int) (*domain.Operation, error)
	CreateOperation(userID int, kind domain.Kind, amount domain.Amount, date, comment string, categoryID int) (*domain.Operation, error)
	UpdateOperation(userID, operationID int, amount domain.Amount, date, comment string, categoryID int) (*domain.Operation, error)
	DeleteOperation(userID, operationID int) error
}

type OperationHandler struct {
	service      OperationServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewOperationHandler(
	service OperationServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *OperationHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &OperationHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *OperationHandler) GetOperations(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	operations, err := h.service.ListOperations(userID)
	if err != nil {
		status, message := statusForError(err)
		h.respondError(w, status, message)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   operations,
	})
}

func (h *OperationHandler) GetOperation(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	operationID, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid operation id")
		return
	}

	operation, err := h.service.GetOperation(userID, operationID)
	if err != nil {
		status, message := statusForError(err)
		h.respondError(w, status, message)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   operation,
	})
}

func (h *OperationHandler) CreateOperation(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Type       string        `json:"type"`
		Amount     domain.Amount `json:"amount"`
		Date       string        `json:"date"`
		Comment    string        `json:"comment"`
		CategoryID int           `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	operation, err := h.service.CreateOperation(userID, domain.Kind(req.Type), req.Amount, req.Date, req.Comment, req.CategoryID)
	if err != nil {
		status, message := statusForError(err)
		h.respondError(w, status, message)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Operation added successfully",
		"data":    operation,
	})
}

func (h *OperationHandler) UpdateOperation(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	operationID, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid operation id")
		return
	}

	var req struct {
		Amount     domain.Amount `json:"amount"`
		Date       string        `json:"date"`
		Comment    string        `json:"comment"`
		CategoryID int           `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	operation, err := h.service.UpdateOperation(userID, operationID, req.Amount, req.Date, req.Comment, req.CategoryID)
	if err != nil {
		status, message := statusForError(err)
		h.respondError(w, status, message)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Operation updated successfully",
		"data":    operation,
	})
}

func (h *OperationHandler) DeleteOperation(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	operationID, err := pathID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid operation id")
		return
	}

	if err := h.service.DeleteOperation(userID, operationID); err != nil {
		status, message := statusForError(err)
		h.respondError(w, status, message)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Operation deleted successfully",
	})
}

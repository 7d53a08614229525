package interfaces

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/coinkeeper/CoinKeeper/internal/finance/domain"
)

type BalanceServiceInterface interface {
	GetBalance(userID int) (*domain.Balance, error)
	SetBalance(userID int, override *domain.Amount) (*domain.Balance, error)
}

type BalanceHandler struct {
	service      BalanceServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewBalanceHandler(
	service BalanceServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *BalanceHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &BalanceHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	balance, err := h.service.GetBalance(userID)
	if err != nil {
		status, message := statusForError(err)
		h.respondError(w, status, message)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   balance,
	})
}

// SetBalance recalculates the balance from the user's operations, or stores
// the explicit value when the request body carries one.
func (h *BalanceHandler) SetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Balance *domain.Amount `json:"balance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	balance, err := h.service.SetBalance(userID, req.Balance)
	if err != nil {
		status, message := statusForError(err)
		h.respondError(w, status, message)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Balance updated successfully",
		"data":    balance,
	})
}

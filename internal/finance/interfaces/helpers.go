package interfaces

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	financeErrors "github.com/coinkeeper/CoinKeeper/internal/finance/errors"
)

func userIDFromContext(r *http.Request) (int, bool) {
	userID, ok := r.Context().Value("userID").(int)
	return userID, ok
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

// statusForError maps the error taxonomy onto HTTP statuses: validation →
// 400, not-found (including foreign ownership) → 404, deletion conflict →
// 409, storage failures → 500 without claiming the mutation persisted.
func statusForError(err error) (int, string) {
	switch {
	case financeErrors.IsValidationError(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, financeErrors.ErrCategoryNotFound),
		errors.Is(err, financeErrors.ErrOperationNotFound),
		errors.Is(err, financeErrors.ErrBalanceNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, financeErrors.ErrCategoryInUse):
		return http.StatusConflict, err.Error()
	case financeErrors.IsStorageError(err):
		log.Printf("Storage failure: %v", err)
		return http.StatusInternalServerError, "Storage unavailable"
	default:
		log.Printf("Unexpected error: %v", err)
		return http.StatusInternalServerError, "Internal server error"
	}
}

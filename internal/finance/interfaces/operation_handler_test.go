package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coinkeeper/CoinKeeper/internal/finance/domain"
	financeErrors "github.com/coinkeeper/CoinKeeper/internal/finance/errors"
)

func TestGetOperations_Success(t *testing.T) {
	req := authenticated(httptest.NewRequest(http.MethodGet, "/api/operations", nil), 1)
	w := httptest.NewRecorder()

	mockService := &MockOperationService{
		operations: []domain.Operation{
			{ID: 1, UserID: 1, Kind: domain.Income, Date: "2024-01-05", CategoryID: 1},
			{ID: 2, UserID: 1, Kind: domain.Expense, Date: "2024-01-06", CategoryID: 1},
		},
	}
	handler := NewOperationHandler(mockService, respondJSON, respondError)
	handler.GetOperations(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Status string             `json:"status"`
		Data   []domain.Operation `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Len(t, response.Data, 2)
	assert.Equal(t, domain.Income, response.Data[0].Kind)
}

func TestGetOperations_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/operations", nil)
	w := httptest.NewRecorder()

	handler := NewOperationHandler(&MockOperationService{}, respondJSON, respondError)
	handler.GetOperations(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestCreateOperation_Success(t *testing.T) {
	body := strings.NewReader(`{"type": "income", "amount": 100.50, "date": "2024-01-05", "comment": "salary", "category_id": 1}`)
	req := authenticated(httptest.NewRequest(http.MethodPost, "/api/operations", body), 1)
	w := httptest.NewRecorder()

	handler := NewOperationHandler(&MockOperationService{}, respondJSON, respondError)
	handler.CreateOperation(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response struct {
		Message string           `json:"message"`
		Data    domain.Operation `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Operation added successfully", response.Message)
	assert.Equal(t, "100.50", response.Data.Amount.String())
}

func TestCreateOperation_MissingDetails(t *testing.T) {
	body := strings.NewReader(`{"type": "income", "amount": 0, "date": "", "category_id": 0}`)
	req := authenticated(httptest.NewRequest(http.MethodPost, "/api/operations", body), 1)
	w := httptest.NewRecorder()

	mockService := &MockOperationService{
		err: financeErrors.NewValidationError("missing or invalid operation details"),
	}
	handler := NewOperationHandler(mockService, respondJSON, respondError)
	handler.CreateOperation(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "missing or invalid operation details", response["message"])
}

func TestCreateOperation_UnknownCategory(t *testing.T) {
	body := strings.NewReader(`{"type": "expense", "amount": 25, "date": "2024-01-05", "category_id": 42}`)
	req := authenticated(httptest.NewRequest(http.MethodPost, "/api/operations", body), 1)
	w := httptest.NewRecorder()

	mockService := &MockOperationService{err: financeErrors.ErrUnknownCategory}
	handler := NewOperationHandler(mockService, respondJSON, respondError)
	handler.CreateOperation(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "category does not exist for this type", response["message"])
}

func TestCreateOperation_InvalidBody(t *testing.T) {
	body := strings.NewReader(`{"amount": [1, 2]}`)
	req := authenticated(httptest.NewRequest(http.MethodPost, "/api/operations", body), 1)
	w := httptest.NewRecorder()

	handler := NewOperationHandler(&MockOperationService{}, respondJSON, respondError)
	handler.CreateOperation(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestUpdateOperation_NotFound(t *testing.T) {
	body := strings.NewReader(`{"amount": 75}`)
	req := authenticated(httptest.NewRequest(http.MethodPut, "/api/operations/9", body), 1)
	req.SetPathValue("id", "9")
	w := httptest.NewRecorder()

	mockService := &MockOperationService{err: financeErrors.ErrOperationNotFound}
	handler := NewOperationHandler(mockService, respondJSON, respondError)
	handler.UpdateOperation(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestDeleteOperation_Success(t *testing.T) {
	req := authenticated(httptest.NewRequest(http.MethodDelete, "/api/operations/3", nil), 1)
	req.SetPathValue("id", "3")
	w := httptest.NewRecorder()

	handler := NewOperationHandler(&MockOperationService{}, respondJSON, respondError)
	handler.DeleteOperation(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Operation deleted successfully", response["message"])
}

func TestDeleteOperation_InvalidID(t *testing.T) {
	req := authenticated(httptest.NewRequest(http.MethodDelete, "/api/operations/oops", nil), 1)
	req.SetPathValue("id", "oops")
	w := httptest.NewRecorder()

	handler := NewOperationHandler(&MockOperationService{}, respondJSON, respondError)
	handler.DeleteOperation(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

package interfaces

import (
	"github.com/coinkeeper/CoinKeeper/internal/finance/domain"
)

type MockOperationService struct {
	operations []domain.Operation
	operation  *domain.Operation
	err        error
}

func (m *MockOperationService) ListOperations(userID int) ([]domain.Operation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.operations, nil
}

func (m *MockOperationService) GetOperation(userID, operationID int) (*domain.Operation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.operation, nil
}

func (m *MockOperationService) CreateOperation(userID int, kind domain.Kind, amount domain.Amount, date, comment string, categoryID int) (*domain.Operation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Operation{
		ID:         1,
		UserID:     userID,
		Kind:       kind,
		Amount:     amount,
		Date:       date,
		Comment:    comment,
		CategoryID: categoryID,
	}, nil
}

func (m *MockOperationService) UpdateOperation(userID, operationID int, amount domain.Amount, date, comment string, categoryID int) (*domain.Operation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Operation{
		ID:         operationID,
		UserID:     userID,
		Kind:       domain.Expense,
		Amount:     amount,
		Date:       date,
		Comment:    comment,
		CategoryID: categoryID,
	}, nil
}

func (m *MockOperationService) DeleteOperation(userID, operationID int) error {
	return m.err
}

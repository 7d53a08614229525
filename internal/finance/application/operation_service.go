package application

import (
	"github.com/coinkeeper/CoinKeeper/internal/finance/domain"
	financeErrors "github.com/coinkeeper/CoinKeeper/internal/finance/errors"
)

// CategoryExistenceChecker is the slice of the category ledger the operation
// ledger's referential check needs.
type CategoryExistenceChecker interface {
	CategoryExists(userID int, kind domain.Kind, categoryID int) (bool, error)
}

type OperationService struct {
	repo       domain.OperationRepository
	categories CategoryExistenceChecker
}

func NewOperationService(repo domain.OperationRepository, categories CategoryExistenceChecker) *OperationService {
	return &OperationService{repo: repo, categories: categories}
}

func (s *OperationService) ListOperations(userID int) ([]domain.Operation, error) {
	return s.repo.FindByUser(userID)
}

func (s *OperationService) GetOperation(userID, operationID int) (*domain.Operation, error) {
	return s.repo.FindByID(operationID, userID)
}

// CreateOperation rejects absent fields up front: a zero amount counts as
// absent (a string amount "0" does not), and so does category id 0. The
// category reference must exist in the caller's matching-kind collection.
func (s *OperationService) CreateOperation(userID int, kind domain.Kind, amount domain.Amount, date, comment string, categoryID int) (*domain.Operation, error) {
	if !kind.IsValid() || amount.IsZero() || date == "" || categoryID == 0 {
		return nil, financeErrors.NewValidationError("missing or invalid operation details")
	}
	exists, err := s.categories.CategoryExists(userID, kind, categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, financeErrors.ErrUnknownCategory
	}

	operation := &domain.Operation{
		UserID:     userID,
		Kind:       kind,
		Amount:     amount,
		Date:       date,
		Comment:    comment,
		CategoryID: categoryID,
	}
	if err := s.repo.Save(operation); err != nil {
		return nil, err
	}
	return operation, nil
}

// UpdateOperation overwrites only the fields that are present: amount 0,
// empty date/comment, and category id 0 leave the stored values untouched.
// Kind is immutable; a category change is validated against the operation's
// existing kind.
func (s *OperationService) UpdateOperation(userID, operationID int, amount domain.Amount, date, comment string, categoryID int) (*domain.Operation, error) {
	operation, err := s.repo.FindByID(operationID, userID)
	if err != nil {
		return nil, err
	}

	if !amount.IsZero() {
		operation.Amount = amount
	}
	if date != "" {
		operation.Date = date
	}
	if comment != "" {
		operation.Comment = comment
	}
	if categoryID != 0 {
		exists, err := s.categories.CategoryExists(userID, operation.Kind, categoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, financeErrors.ErrUnknownCategory
		}
		operation.CategoryID = categoryID
	}

	if err := s.repo.Update(*operation); err != nil {
		return nil, err
	}
	return operation, nil
}

func (s *OperationService) DeleteOperation(userID, operationID int) error {
	return s.repo.Delete(operationID, userID)
}

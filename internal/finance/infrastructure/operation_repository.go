package infrastructure

import (
	"github.com/coinkeeper/CoinKeeper/internal/finance/domain"
	financeErrors "github.com/coinkeeper/CoinKeeper/internal/finance/errors"
	"github.com/coinkeeper/CoinKeeper/internal/storage"
)

const operationsCollection = "operations"

type operationsDoc struct {
	Operations []domain.Operation `json:"operations"`
}

type OperationRepository struct {
	store *storage.Store
}

func NewOperationRepository(store *storage.Store) *OperationRepository {
	return &OperationRepository{store: store}
}

func (r *OperationRepository) load() ([]domain.Operation, error) {
	var doc operationsDoc
	if err := r.store.Load(operationsCollection, &doc); err != nil {
		return nil, financeErrors.NewStorageError(err)
	}
	return doc.Operations, nil
}

func (r *OperationRepository) save(operations []domain.Operation) error {
	if operations == nil {
		operations = []domain.Operation{}
	}
	if err := r.store.Save(operationsCollection, operationsDoc{Operations: operations}); err != nil {
		return financeErrors.NewStorageError(err)
	}
	return nil
}

// FindByUser returns the caller's operations in storage (insertion) order.
func (r *OperationRepository) FindByUser(userID int) ([]domain.Operation, error) {
	operations, err := r.load()
	if err != nil {
		return nil, err
	}
	owned := []domain.Operation{}
	for _, operation := range operations {
		if operation.UserID == userID {
			owned = append(owned, operation)
		}
	}
	return owned, nil
}

func (r *OperationRepository) FindByID(operationID, userID int) (*domain.Operation, error) {
	operations, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, operation := range operations {
		if operation.ID == operationID && operation.UserID == userID {
			return &operation, nil
		}
	}
	return nil, financeErrors.ErrOperationNotFound
}

// Save assigns operation_id = max over all users' operations plus one and
// persists the operation.
func (r *OperationRepository) Save(operation *domain.Operation) error {
	defer r.store.Lock(operationsCollection)()

	operations, err := r.load()
	if err != nil {
		return err
	}

	nextID := 1
	for _, existing := range operations {
		if existing.ID >= nextID {
			nextID = existing.ID + 1
		}
	}
	operation.ID = nextID

	operations = append(operations, *operation)
	return r.save(operations)
}

func (r *OperationRepository) Update(operation domain.Operation) error {
	defer r.store.Lock(operationsCollection)()

	operations, err := r.load()
	if err != nil {
		return err
	}
	for i, existing := range operations {
		if existing.ID == operation.ID && existing.UserID == operation.UserID {
			operations[i] = operation
			return r.save(operations)
		}
	}
	return financeErrors.ErrOperationNotFound
}

func (r *OperationRepository) Delete(operationID, userID int) error {
	defer r.store.Lock(operationsCollection)()

	operations, err := r.load()
	if err != nil {
		return err
	}
	for i, existing := range operations {
		if existing.ID == operationID && existing.UserID == userID {
			operations = append(operations[:i], operations[i+1:]...)
			return r.save(operations)
		}
	}
	return financeErrors.ErrOperationNotFound
}

// ExistsForCategory reports whether the user has any operation of the given
// kind referencing the category. The category deletion guard depends on it.
func (r *OperationRepository) ExistsForCategory(userID int, kind domain.Kind, categoryID int) (bool, error) {
	operations, err := r.load()
	if err != nil {
		return false, err
	}
	for _, operation := range operations {
		if operation.UserID == userID && operation.Kind == kind && operation.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

package application

import (
	"log"

	"github.com/shopspring/decimal"

	"github.com/coinkeeper/CoinKeeper/internal/finance/domain"
	financeErrors "github.com/coinkeeper/CoinKeeper/internal/finance/errors"
)

type BalanceService struct {
	repo       domain.BalanceRepository
	operations domain.OperationRepository
}

func NewBalanceService(repo domain.BalanceRepository, operations domain.OperationRepository) *BalanceService {
	return &BalanceService{repo: repo, operations: operations}
}

// GetBalance fails with not-found until the first balance mutation creates
// the user's row, even if the derived value would be zero.
func (s *BalanceService) GetBalance(userID int) (*domain.Balance, error) {
	return s.repo.FindByUser(userID)
}

// SetBalance stores an explicit override when one is supplied, otherwise
// re-derives the balance from the user's operations. The row is created
// lazily and always persisted.
func (s *BalanceService) SetBalance(userID int, override *domain.Amount) (*domain.Balance, error) {
	var value decimal.Decimal
	if override != nil {
		parsed, ok := override.Decimal()
		if !ok {
			return nil, financeErrors.NewValidationError("balance must be a valid number")
		}
		value = parsed
	} else {
		derived, err := s.derive(userID)
		if err != nil {
			return nil, err
		}
		value = derived
	}

	balance := domain.Balance{UserID: userID, Balance: value}
	if err := s.repo.Upsert(balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// derive sums income amounts and subtracts expense amounts over the user's
// operations; an amount that does not parse contributes nothing.
func (s *BalanceService) derive(userID int) (decimal.Decimal, error) {
	operations, err := s.operations.FindByUser(userID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	total := decimal.Zero
	for _, operation := range operations {
		amount, ok := operation.Amount.Decimal()
		if !ok {
			continue
		}
		switch operation.Kind {
		case domain.Income:
			total = total.Add(amount)
		case domain.Expense:
			total = total.Sub(amount)
		}
	}
	return total, nil
}

// ReconcileAll re-derives the balance of every user that already has a
// balance row. Meant for the scheduled maintenance job; an explicit override
// survives only until the next run.
func (s *BalanceService) ReconcileAll() error {
	balances, err := s.repo.FindAll()
	if err != nil {
		return err
	}
	for _, balance := range balances {
		if _, err := s.SetBalance(balance.UserID, nil); err != nil {
			log.Printf("Error reconciling balance for user %d: %v", balance.UserID, err)
			return err
		}
	}
	return nil
}

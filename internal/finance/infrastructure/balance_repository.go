package infrastructure

import (
	"github.com/coinkeeper/CoinKeeper/internal/finance/domain"
	financeErrors "github.com/coinkeeper/CoinKeeper/internal/finance/errors"
	"github.com/coinkeeper/CoinKeeper/internal/storage"
)

const balancesCollection = "balances"

type balancesDoc struct {
	Balances []domain.Balance `json:"balances"`
}

type BalanceRepository struct {
	store *storage.Store
}

func NewBalanceRepository(store *storage.Store) *BalanceRepository {
	return &BalanceRepository{store: store}
}

func (r *BalanceRepository) load() ([]domain.Balance, error) {
	var doc balancesDoc
	if err := r.store.Load(balancesCollection, &doc); err != nil {
		return nil, financeErrors.NewStorageError(err)
	}
	return doc.Balances, nil
}

func (r *BalanceRepository) FindByUser(userID int) (*domain.Balance, error) {
	balances, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, balance := range balances {
		if balance.UserID == userID {
			return &balance, nil
		}
	}
	return nil, financeErrors.ErrBalanceNotFound
}

func (r *BalanceRepository) FindAll() ([]domain.Balance, error) {
	return r.load()
}

// Upsert replaces the user's row in place, creating it when absent.
func (r *BalanceRepository) Upsert(balance domain.Balance) error {
	defer r.store.Lock(balancesCollection)()

	balances, err := r.load()
	if err != nil {
		return err
	}
	updated := false
	for i, existing := range balances {
		if existing.UserID == balance.UserID {
			balances[i] = balance
			updated = true
			break
		}
	}
	if !updated {
		balances = append(balances, balance)
	}
	if err := r.store.Save(balancesCollection, balancesDoc{Balances: balances}); err != nil {
		return financeErrors.NewStorageError(err)
	}
	return nil
}

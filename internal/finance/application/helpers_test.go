package application

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coinkeeper/CoinKeeper/internal/finance/domain"
	"github.com/coinkeeper/CoinKeeper/internal/finance/infrastructure"
	"github.com/coinkeeper/CoinKeeper/internal/storage"
)

// newTestServices wires the services over real file repositories in a
// throwaway data directory, the same way main does.
func newTestServices(t *testing.T) (*CategoryService, *OperationService, *BalanceService) {
	t.Helper()

	store, err := storage.NewStore(t.TempDir())
	assert.NoError(t, err)

	categoryRepo := infrastructure.NewCategoryRepository(store)
	operationRepo := infrastructure.NewOperationRepository(store)
	balanceRepo := infrastructure.NewBalanceRepository(store)

	categories := NewCategoryService(categoryRepo, operationRepo)
	operations := NewOperationService(operationRepo, categories)
	balances := NewBalanceService(balanceRepo, operationRepo)
	return categories, operations, balances
}

// numericAmount builds an Amount from a JSON number literal.
func numericAmount(t *testing.T, literal string) domain.Amount {
	t.Helper()
	var a domain.Amount
	assert.NoError(t, json.Unmarshal([]byte(literal), &a))
	return a
}

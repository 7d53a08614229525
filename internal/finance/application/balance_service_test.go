package application

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/coinkeeper/CoinKeeper/internal/finance/domain"
	financeErrors "github.com/coinkeeper/CoinKeeper/internal/finance/errors"
)

func assertBalance(t *testing.T, expected string, balance *domain.Balance) {
	t.Helper()
	assert.True(t, balance.Balance.Equal(decimal.RequireFromString(expected)),
		"expected balance %s, got %s", expected, balance.Balance.String())
}

func TestGetBalance_NotFoundBeforeFirstMutation(t *testing.T) {
	_, _, balances := newTestServices(t)

	_, err := balances.GetBalance(1)
	assert.ErrorIs(t, err, financeErrors.ErrBalanceNotFound)
}

func TestSetBalance_DerivedSkipsNonNumericAmounts(t *testing.T) {
	categories, operations, balances := newTestServices(t)

	salary, err := categories.CreateCategory(1, domain.Income, "Salary")
	assert.NoError(t, err)
	groceries, err := categories.CreateCategory(1, domain.Expense, "Groceries")
	assert.NoError(t, err)

	_, err = operations.CreateOperation(1, domain.Income, numericAmount(t, `100`), "2024-01-01", "", salary.ID)
	assert.NoError(t, err)
	_, err = operations.CreateOperation(1, domain.Expense, numericAmount(t, `30`), "2024-01-02", "", groceries.ID)
	assert.NoError(t, err)
	_, err = operations.CreateOperation(1, domain.Income, domain.AmountFromString("bad"), "2024-01-03", "", salary.ID)
	assert.NoError(t, err)

	balance, err := balances.SetBalance(1, nil)
	assert.NoError(t, err)
	assertBalance(t, "70", balance)

	stored, err := balances.GetBalance(1)
	assert.NoError(t, err)
	assertBalance(t, "70", stored)
}

func TestSetBalance_DerivedIsPerUser(t *testing.T) {
	categories, operations, balances := newTestServices(t)

	mine, err := categories.CreateCategory(1, domain.Income, "Salary")
	assert.NoError(t, err)
	theirs, err := categories.CreateCategory(2, domain.Income, "Salary")
	assert.NoError(t, err)

	_, err = operations.CreateOperation(1, domain.Income, numericAmount(t, `100`), "2024-01-01", "", mine.ID)
	assert.NoError(t, err)
	_, err = operations.CreateOperation(2, domain.Income, numericAmount(t, `999`), "2024-01-01", "", theirs.ID)
	assert.NoError(t, err)

	balance, err := balances.SetBalance(1, nil)
	assert.NoError(t, err)
	assertBalance(t, "100", balance)
}

func TestSetBalance_OverrideStoredExactly(t *testing.T) {
	categories, operations, balances := newTestServices(t)

	salary, err := categories.CreateCategory(1, domain.Income, "Salary")
	assert.NoError(t, err)
	_, err = operations.CreateOperation(1, domain.Income, numericAmount(t, `100`), "2024-01-01", "", salary.ID)
	assert.NoError(t, err)

	override := domain.AmountFromString("150.5")
	balance, err := balances.SetBalance(1, &override)
	assert.NoError(t, err)
	assertBalance(t, "150.5", balance)

	stored, err := balances.GetBalance(1)
	assert.NoError(t, err)
	assertBalance(t, "150.5", stored)
}

func TestSetBalances_OverrideMustBeNumeric(t *testing.T) {
	_, _, balances := newTestServices(t)

	override := domain.AmountFromString("lots")
	_, err := balances.SetBalance(1, &override)
	assert.True(t, financeErrors.IsValidationError(err))

	_, err = balances.GetBalance(1)
	assert.ErrorIs(t, err, financeErrors.ErrBalanceNotFound)
}

func TestReconcileAll_RefreshesOnlyExistingRows(t *testing.T) {
	categories, operations, balances := newTestServices(t)

	salary, err := categories.CreateCategory(1, domain.Income, "Salary")
	assert.NoError(t, err)
	other, err := categories.CreateCategory(2, domain.Income, "Salary")
	assert.NoError(t, err)

	_, err = operations.CreateOperation(1, domain.Income, numericAmount(t, `100`), "2024-01-01", "", salary.ID)
	assert.NoError(t, err)
	_, err = operations.CreateOperation(2, domain.Income, numericAmount(t, `40`), "2024-01-01", "", other.ID)
	assert.NoError(t, err)

	// user 1 has a row holding an override; user 2 has never touched balance
	override := domain.AmountFromString("5")
	_, err = balances.SetBalance(1, &override)
	assert.NoError(t, err)

	assert.NoError(t, balances.ReconcileAll())

	refreshed, err := balances.GetBalance(1)
	assert.NoError(t, err)
	assertBalance(t, "100", refreshed)

	_, err = balances.GetBalance(2)
	assert.ErrorIs(t, err, financeErrors.ErrBalanceNotFound)
}

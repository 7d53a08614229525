package interfaces

import (
	"github.com/shopspring/decimal"

	"github.com/coinkeeper/CoinKeeper/internal/finance/domain"
)

type MockBalanceService struct {
	balance  *domain.Balance
	err      error
	override *domain.Amount
}

func (m *MockBalanceService) GetBalance(userID int) (*domain.Balance, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.balance, nil
}

func (m *MockBalanceService) SetBalance(userID int, override *domain.Amount) (*domain.Balance, error) {
	m.override = override
	if m.err != nil {
		return nil, m.err
	}
	if override != nil {
		value, _ := override.Decimal()
		return &domain.Balance{UserID: userID, Balance: value}, nil
	}
	return &domain.Balance{UserID: userID, Balance: decimal.Zero}, nil
}

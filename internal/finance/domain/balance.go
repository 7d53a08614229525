package domain

import "github.com/shopspring/decimal"

func init() {
	// balances persist and travel as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Balance is the per-user running total: derived from operations or set
// explicitly, one row per user, overwritten in place.
type Balance struct {
	UserID  int             `json:"user_id"`
	Balance decimal.Decimal `json:"balance"`
}

type BalanceRepository interface {
	FindByUser(userID int) (*Balance, error)
	FindAll() ([]Balance, error)
	Upsert(balance Balance) error
}

package domain

// Kind tells whether an operation or category sits on the income or the
// expense side of the ledger.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

func (k Kind) IsValid() bool {
	return k == Income || k == Expense
}

// RefField is the JSON field name that carries a category reference of this
// kind, e.g. "income_id".
func (k Kind) RefField() string {
	return string(k) + "_id"
}

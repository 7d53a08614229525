package domain

import (
	"encoding/json"
	"fmt"
)

// Operation is a single dated income or expense entry. Operation ids are
// global across users and both kinds. The category reference is serialized
// under the kind-qualified field matching the operation's kind.
type Operation struct {
	ID         int
	UserID     int
	Kind       Kind
	Amount     Amount
	Date       string
	Comment    string
	CategoryID int
}

type operationJSON struct {
	OperationID int    `json:"operation_id"`
	UserID      int    `json:"user_id"`
	Kind        Kind   `json:"type"`
	Amount      Amount `json:"amount"`
	Date        string `json:"date"`
	Comment     string `json:"comment,omitempty"`
	IncomeID    *int   `json:"income_id,omitempty"`
	ExpenseID   *int   `json:"expense_id,omitempty"`
}

func (o Operation) MarshalJSON() ([]byte, error) {
	out := operationJSON{
		OperationID: o.ID,
		UserID:      o.UserID,
		Kind:        o.Kind,
		Amount:      o.Amount,
		Date:        o.Date,
		Comment:     o.Comment,
	}
	id := o.CategoryID
	switch o.Kind {
	case Expense:
		out.ExpenseID = &id
	case Income:
		out.IncomeID = &id
	default:
		return nil, fmt.Errorf("operation %d has invalid kind %q", o.ID, o.Kind)
	}
	return json.Marshal(out)
}

func (o *Operation) UnmarshalJSON(data []byte) error {
	var in operationJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	o.ID = in.OperationID
	o.UserID = in.UserID
	o.Kind = in.Kind
	o.Amount = in.Amount
	o.Date = in.Date
	o.Comment = in.Comment
	switch {
	case in.IncomeID != nil:
		o.CategoryID = *in.IncomeID
	case in.ExpenseID != nil:
		o.CategoryID = *in.ExpenseID
	}
	return nil
}

type OperationRepository interface {
	FindByUser(userID int) ([]Operation, error)
	FindByID(operationID, userID int) (*Operation, error)
	Save(operation *Operation) error
	Update(operation Operation) error
	Delete(operationID, userID int) error
	ExistsForCategory(userID int, kind Kind, categoryID int) (bool, error)
}

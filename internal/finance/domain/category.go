package domain

import (
	"encoding/json"
	"fmt"
)

// Category is a user-defined label operations reference. Ids are unique
// within one kind's collection (global across users), and the id travels
// under the kind-qualified field: income_id or expense_id.
type Category struct {
	ID     int
	Title  string
	UserID int
	Kind   Kind
}

type categoryJSON struct {
	IncomeID  *int   `json:"income_id,omitempty"`
	ExpenseID *int   `json:"expense_id,omitempty"`
	Title     string `json:"title"`
	UserID    int    `json:"user_id"`
}

func (c Category) MarshalJSON() ([]byte, error) {
	out := categoryJSON{Title: c.Title, UserID: c.UserID}
	id := c.ID
	if c.Kind == Expense {
		out.ExpenseID = &id
	} else {
		out.IncomeID = &id
	}
	return json.Marshal(out)
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var in categoryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch {
	case in.IncomeID != nil:
		c.ID = *in.IncomeID
		c.Kind = Income
	case in.ExpenseID != nil:
		c.ID = *in.ExpenseID
		c.Kind = Expense
	default:
		return fmt.Errorf("category is missing its income_id/expense_id field")
	}
	c.Title = in.Title
	c.UserID = in.UserID
	return nil
}

type CategoryRepository interface {
	FindByUser(kind Kind, userID int) ([]Category, error)
	FindByID(kind Kind, categoryID, userID int) (*Category, error)
	Save(category *Category) error
	Update(category Category) error
	Delete(kind Kind, categoryID, userID int) error
}

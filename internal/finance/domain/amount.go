package domain

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// Amount is a JSON number or string, kept in its lexical form. Stored data
// may carry amounts that do not parse as numbers; those survive load and
// save untouched and simply contribute nothing to balance sums.
type Amount struct {
	raw    string
	quoted bool
}

func AmountFromString(s string) Amount {
	return Amount{raw: s, quoted: true}
}

func AmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{raw: d.String()}
}

func (a Amount) String() string {
	return a.raw
}

// IsZero reports whether the amount counts as absent: unset, null, an empty
// string, or a numeric zero. A quoted "0" is a present value.
func (a Amount) IsZero() bool {
	if a.raw == "" {
		return true
	}
	if a.quoted {
		return false
	}
	d, err := decimal.NewFromString(a.raw)
	if err != nil {
		return false
	}
	return d.IsZero()
}

// Decimal parses the amount, reporting false for values that are not numbers.
func (a Amount) Decimal() (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(a.raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount{raw: s, quoted: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("amount must be a number or a string")
	}
	*a = Amount{raw: n.String()}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.quoted {
		return json.Marshal(a.raw)
	}
	if a.raw == "" {
		return []byte("0"), nil
	}
	return []byte(a.raw), nil
}

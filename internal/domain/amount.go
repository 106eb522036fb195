package domain

import "github.com/shopspring/decimal"

// Amount is a btc quantity. Game clients send and read it as a bare JSON
// number, so it never goes out quoted.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

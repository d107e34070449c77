package models

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Price is the current price of a symbol. The backend may answer with a bare
// number (or numeric string) or with a {"symbol", "price"} object.
type Price struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		type plain Price
		var v plain
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*p = Price(v)
		return nil
	}
	return p.Price.UnmarshalJSON(b)
}

// Quote is a provider-specific quote document passed through as-is.
type Quote map[string]any

package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Notes       string          `json:"notes,omitempty"`
	ExpenseDate DateTime        `json:"expenseDate"`
	CreatedAt   DateTime        `json:"createdAt"`
	UpdatedAt   DateTime        `json:"updatedAt"`
}

// ExpenseRequest is the body of expense create/update calls.
type ExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Notes       string          `json:"notes,omitempty"`
	ExpenseDate DateTime        `json:"expenseDate"`
}

// ExpenseSummary is returned by GET /expenses/summary. The per-category
// breakdown is an array of [category, total] tuples and is kept raw.
type ExpenseSummary struct {
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	ExpensesByCategory json.RawMessage `json:"expensesByCategory"`
}

package models

import "github.com/shopspring/decimal"

type GoalStatus string

const (
	GoalActive    GoalStatus = "ACTIVE"
	GoalCompleted GoalStatus = "COMPLETED"
	GoalCancelled GoalStatus = "CANCELLED"
)

type Goal struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    DateTime        `json:"targetDate"`
	Status        GoalStatus      `json:"status"`
	CreatedAt     DateTime        `json:"createdAt"`
	UpdatedAt     DateTime        `json:"updatedAt"`
}

// GoalRequest is the body of goal create/update calls.
type GoalRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    DateTime        `json:"targetDate"`
	Status        GoalStatus      `json:"status,omitempty"`
}

// GoalProgress is the body of PUT /goals/{id}/progress.
type GoalProgress struct {
	CurrentAmount decimal.Decimal `json:"currentAmount"`
}

package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/findash/internal/client/models"
)

// ExpensesAPI wraps the /expenses endpoints.
type ExpensesAPI struct {
	c *HTTPClient
}

func (c *HTTPClient) Expenses() *ExpensesAPI { return &ExpensesAPI{c: c} }

func (a *ExpensesAPI) List(ctx context.Context) ([]models.Expense, error) {
	return call[[]models.Expense](ctx, a.c, http.MethodGet, nil, "expenses")
}

func (a *ExpensesAPI) Get(ctx context.Context, id int64) (models.Expense, error) {
	return call[models.Expense](ctx, a.c, http.MethodGet, nil, "expenses", strconv.FormatInt(id, 10))
}

func (a *ExpensesAPI) Create(ctx context.Context, in models.ExpenseRequest) (models.Expense, error) {
	return call[models.Expense](ctx, a.c, http.MethodPost, in, "expenses")
}

func (a *ExpensesAPI) Update(ctx context.Context, id int64, in models.ExpenseRequest) (models.Expense, error) {
	return call[models.Expense](ctx, a.c, http.MethodPut, in, "expenses", strconv.FormatInt(id, 10))
}

func (a *ExpensesAPI) Delete(ctx context.Context, id int64) error {
	return a.c.send(ctx, http.MethodDelete, nil, nil, callOptions{}, "expenses", strconv.FormatInt(id, 10))
}

func (a *ExpensesAPI) Summary(ctx context.Context) (models.ExpenseSummary, error) {
	return call[models.ExpenseSummary](ctx, a.c, http.MethodGet, nil, "expenses", "summary")
}

func (a *ExpensesAPI) ByCategory(ctx context.Context, category string) ([]models.Expense, error) {
	return call[[]models.Expense](ctx, a.c, http.MethodGet, nil, "expenses", "category", category)
}

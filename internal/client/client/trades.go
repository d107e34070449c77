package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/findash/internal/client/models"
)

// TradesAPI wraps the /trades endpoints.
type TradesAPI struct {
	c *HTTPClient
}

func (c *HTTPClient) Trades() *TradesAPI { return &TradesAPI{c: c} }

func (a *TradesAPI) List(ctx context.Context) ([]models.Trade, error) {
	return call[[]models.Trade](ctx, a.c, http.MethodGet, nil, "trades")
}

func (a *TradesAPI) Get(ctx context.Context, id int64) (models.Trade, error) {
	return call[models.Trade](ctx, a.c, http.MethodGet, nil, "trades", strconv.FormatInt(id, 10))
}

func (a *TradesAPI) Create(ctx context.Context, in models.TradeRequest) (models.Trade, error) {
	return call[models.Trade](ctx, a.c, http.MethodPost, in, "trades")
}

func (a *TradesAPI) Update(ctx context.Context, id int64, in models.TradeRequest) (models.Trade, error) {
	return call[models.Trade](ctx, a.c, http.MethodPut, in, "trades", strconv.FormatInt(id, 10))
}

func (a *TradesAPI) Delete(ctx context.Context, id int64) error {
	return a.c.send(ctx, http.MethodDelete, nil, nil, callOptions{}, "trades", strconv.FormatInt(id, 10))
}

func (a *TradesAPI) Portfolio(ctx context.Context) (models.PortfolioSummary, error) {
	return call[models.PortfolioSummary](ctx, a.c, http.MethodGet, nil, "trades", "portfolio")
}

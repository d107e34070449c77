package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/findash/internal/client/models"
)

// MarketAPI wraps the read-only /market endpoints.
type MarketAPI struct {
	c *HTTPClient
}

func (c *HTTPClient) Market() *MarketAPI { return &MarketAPI{c: c} }

func (a *MarketAPI) CurrentPrice(ctx context.Context, symbol string) (models.Price, error) {
	p, err := call[models.Price](ctx, a.c, http.MethodGet, nil, "market", "price", symbol)
	if err == nil && p.Symbol == "" {
		p.Symbol = symbol
	}
	return p, err
}

func (a *MarketAPI) Quote(ctx context.Context, symbol string) (models.Quote, error) {
	return call[models.Quote](ctx, a.c, http.MethodGet, nil, "market", "quote", symbol)
}

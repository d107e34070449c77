package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/findash/internal/client/models"
)

// GoalsAPI wraps the /goals endpoints.
type GoalsAPI struct {
	c *HTTPClient
}

func (c *HTTPClient) Goals() *GoalsAPI { return &GoalsAPI{c: c} }

func (a *GoalsAPI) List(ctx context.Context) ([]models.Goal, error) {
	return call[[]models.Goal](ctx, a.c, http.MethodGet, nil, "goals")
}

func (a *GoalsAPI) Get(ctx context.Context, id int64) (models.Goal, error) {
	return call[models.Goal](ctx, a.c, http.MethodGet, nil, "goals", strconv.FormatInt(id, 10))
}

func (a *GoalsAPI) Create(ctx context.Context, in models.GoalRequest) (models.Goal, error) {
	return call[models.Goal](ctx, a.c, http.MethodPost, in, "goals")
}

func (a *GoalsAPI) Update(ctx context.Context, id int64, in models.GoalRequest) (models.Goal, error) {
	return call[models.Goal](ctx, a.c, http.MethodPut, in, "goals", strconv.FormatInt(id, 10))
}

func (a *GoalsAPI) Delete(ctx context.Context, id int64) error {
	return a.c.send(ctx, http.MethodDelete, nil, nil, callOptions{}, "goals", strconv.FormatInt(id, 10))
}

func (a *GoalsAPI) Active(ctx context.Context) ([]models.Goal, error) {
	return call[[]models.Goal](ctx, a.c, http.MethodGet, nil, "goals", "active")
}

func (a *GoalsAPI) UpdateProgress(ctx context.Context, id int64, in models.GoalProgress) (models.Goal, error) {
	return call[models.Goal](ctx, a.c, http.MethodPut, in, "goals", strconv.FormatInt(id, 10), "progress")
}

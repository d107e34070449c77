package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/findash/internal/client/models"
)

// AIClient calls the AI microservice. It has its own base URL and carries no
// interceptors: no token, no 401 handling.
type AIClient struct {
	c *HTTPClient
}

// NewAIClient creates an AI service client. Only WithHTTPDoer, WithTimeout
// and WithLogger are meaningful here; credentials and interceptors are ignored.
func NewAIClient(baseURL string, opts ...Option) (*AIClient, error) {
	c, err := newHTTPClient(baseURL, opts...)
	if err != nil {
		return nil, err
	}
	c.creds = nil
	c.requestInterceptors = nil
	c.responseInterceptors = nil
	return &AIClient{c: c}, nil
}

func (a *AIClient) BaseURL() string { return a.c.BaseURL() }

func (a *AIClient) PredictPrice(ctx context.Context, in models.PricePredictionRequest) (models.PricePrediction, error) {
	return call[models.PricePrediction](ctx, a.c, http.MethodPost, in, "predict-price")
}

func (a *AIClient) Recommendations(ctx context.Context, in models.RecommendationRequest) (models.Recommendations, error) {
	return call[models.Recommendations](ctx, a.c, http.MethodPost, in, "get-recommendations")
}

func (a *AIClient) AnalyzeMarket(ctx context.Context, in models.MarketAnalysisRequest) (models.MarketAnalysis, error) {
	return call[models.MarketAnalysis](ctx, a.c, http.MethodPost, in, "analyze-market")
}

func (a *AIClient) Health(ctx context.Context) (models.AIHealth, error) {
	return call[models.AIHealth](ctx, a.c, http.MethodGet, nil, "health")
}

package models

// HistoricalPoint is one sample of a symbol's history. Known keys are
// "volume" and "volatility"; others are forwarded untouched.
type HistoricalPoint map[string]any

// PricePredictionRequest is the body of POST /predict-price and
// POST /get-recommendations on a single symbol.
type PricePredictionRequest struct {
	Symbol            string            `json:"symbol"`
	CurrentPrice      float64           `json:"current_price"`
	HistoricalData    []HistoricalPoint `json:"historical_data"`
	UserRiskTolerance string            `json:"user_risk_tolerance,omitempty"`
}

type PricePrediction struct {
	Symbol         string  `json:"symbol"`
	CurrentPrice   float64 `json:"current_price"`
	PredictedPrice float64 `json:"predicted_price"`
	Confidence     float64 `json:"confidence"`
	PredictionDate string  `json:"prediction_date"`
}

// TradeSample is a trade as the AI service understands it.
type TradeSample struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Volume    float64 `json:"volume"`
	Date      string  `json:"date"`
	TradeType string  `json:"trade_type"`
}

// RecommendationRequest is the portfolio body of POST /get-recommendations.
type RecommendationRequest struct {
	Trades        []TradeSample `json:"trades"`
	RiskTolerance string        `json:"risk_tolerance,omitempty"`
}

type Recommendation struct {
	Symbol         string  `json:"symbol"`
	Recommendation string  `json:"recommendation"`
	Confidence     float64 `json:"confidence"`
	Reason         string  `json:"reason"`
	CurrentPrice   float64 `json:"current_price"`
}

type Recommendations struct {
	Portfolio    []Recommendation `json:"portfolio_recommendations"`
	General      []Recommendation `json:"general_recommendations"`
	AnalysisDate string           `json:"analysis_date"`
}

// MarketAnalysisRequest is the body of POST /analyze-market. AnalysisType is
// one of trend, volatility, correlation.
type MarketAnalysisRequest struct {
	Symbols      []string `json:"symbols"`
	AnalysisType string   `json:"analysis_type,omitempty"`
}

type SymbolAnalysis struct {
	Symbol         string  `json:"symbol"`
	Volatility     float64 `json:"volatility"`
	Trend          string  `json:"trend"`
	Strength       float64 `json:"strength"`
	Recommendation string  `json:"recommendation"`
	RiskLevel      string  `json:"risk_level"`
}

type MarketAnalysis struct {
	AnalysisType    string           `json:"analysis_type"`
	SymbolsAnalyzed []string         `json:"symbols_analyzed"`
	Results         []SymbolAnalysis `json:"results"`
	AnalysisDate    string           `json:"analysis_date"`
}

type AIHealth struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Timestamp   string `json:"timestamp"`
}

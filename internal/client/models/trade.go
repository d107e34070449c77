package models

import "github.com/shopspring/decimal"

type TradeType string

const (
	TradeBuy  TradeType = "BUY"
	TradeSell TradeType = "SELL"
)

type Trade struct {
	ID                   int64               `json:"id"`
	Symbol               string              `json:"symbol"`
	AssetType            string              `json:"assetType"`
	TradeType            TradeType           `json:"tradeType"`
	Quantity             decimal.Decimal     `json:"quantity"`
	PricePerUnit         decimal.Decimal     `json:"pricePerUnit"`
	TotalAmount          decimal.Decimal     `json:"totalAmount"`
	Fees                 decimal.Decimal     `json:"fees"`
	Notes                string              `json:"notes,omitempty"`
	TradeDate            DateTime            `json:"tradeDate"`
	CurrentPrice         decimal.NullDecimal `json:"currentPrice"`
	ProfitLoss           decimal.NullDecimal `json:"profitLoss"`
	ProfitLossPercentage decimal.NullDecimal `json:"profitLossPercentage"`
	CreatedAt            DateTime            `json:"createdAt"`
	UpdatedAt            DateTime            `json:"updatedAt"`
}

// TradeRequest is the body of trade create/update calls.
type TradeRequest struct {
	Symbol       string          `json:"symbol"`
	AssetType    string          `json:"assetType"`
	TradeType    TradeType       `json:"tradeType"`
	Quantity     decimal.Decimal `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	Fees         decimal.Decimal `json:"fees"`
	Notes        string          `json:"notes,omitempty"`
	TradeDate    DateTime        `json:"tradeDate"`
}

// PortfolioSummary is returned by GET /trades/portfolio.
type PortfolioSummary struct {
	TotalInvested   decimal.Decimal `json:"totalInvested"`
	TotalSold       decimal.Decimal `json:"totalSold"`
	CurrentValue    decimal.Decimal `json:"currentValue"`
	TotalProfitLoss decimal.Decimal `json:"totalProfitLoss"`
	TotalTrades     int             `json:"totalTrades"`
}

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_UnmarshalLayouts(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{`"2024-03-01T10:20:30"`, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{`"2024-03-01T10:20:30.5"`, time.Date(2024, 3, 1, 10, 20, 30, 500000000, time.UTC)},
		{`"2024-03-01T10:20:30Z"`, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{`"2024-03-01"`, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d DateTime
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			assert.True(t, tt.want.Equal(d.Time), "got %s", d.Time)
		})
	}
}

func TestDateTime_NullAndInvalid(t *testing.T) {
	var d DateTime
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
}

func TestDateTime_MarshalUsesBackendLayout(t *testing.T) {
	b, err := json.Marshal(NewDateTime(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-02T03:04:05"`, string(b))

	b, err = json.Marshal(DateTime{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}

func TestTrade_DecodesBackendPayload(t *testing.T) {
	payload := `{
		"id": 7, "symbol": "AAPL", "assetType": "STOCK", "tradeType": "BUY",
		"quantity": 10, "pricePerUnit": "150.25", "totalAmount": 1502.5, "fees": 0,
		"tradeDate": "2024-05-06T09:30:00", "currentPrice": null
	}`

	var tr Trade
	require.NoError(t, json.Unmarshal([]byte(payload), &tr))

	assert.Equal(t, int64(7), tr.ID)
	assert.Equal(t, TradeBuy, tr.TradeType)
	assert.True(t, decimal.RequireFromString("150.25").Equal(tr.PricePerUnit))
	assert.True(t, decimal.RequireFromString("1502.5").Equal(tr.TotalAmount))
	assert.False(t, tr.CurrentPrice.Valid)
	assert.Equal(t, 2024, tr.TradeDate.Year())
}

func TestLoginResponse_User(t *testing.T) {
	r := LoginResponse{AccessToken: "tok", ID: 3, Username: "alice", Email: "a@example.org"}
	assert.Equal(t, User{ID: 3, Username: "alice", Email: "a@example.org"}, r.User())
}

func TestPrice_DecodesBareNumberAndObject(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Price
	}{
		{"bare number", `150.25`, Price{Price: decimal.RequireFromString("150.25")}},
		{"numeric string", ` "150.25" `, Price{Price: decimal.RequireFromString("150.25")}},
		{"object", `{"symbol":"AAPL","price":"187.44"}`, Price{Symbol: "AAPL", Price: decimal.RequireFromString("187.44")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Price
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.want.Symbol, p.Symbol)
			assert.True(t, tt.want.Price.Equal(p.Price), "got %s", p.Price)
		})
	}

	var p Price
	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &p))
}

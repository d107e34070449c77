package cli

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/findash/internal/client/models"
	"github.com/shopspring/decimal"
)

// crud is the common verb set of the trades, expenses and goals groups.
type crud[T, R any] struct {
	name   string
	list   func(ctx context.Context) ([]T, error)
	get    func(ctx context.Context, id int64) (T, error)
	create func(ctx context.Context, in R) (T, error)
	update func(ctx context.Context, id int64, in R) (T, error)
	delete func(ctx context.Context, id int64) error
}

// runCRUD handles list/get/create/update/delete. It reports false when
// args[0] is not one of those verbs.
func runCRUD[T, R any](ctx context.Context, a *App, c crud[T, R], args []string) (bool, error) {
	if len(args) == 0 {
		out, err := c.list(ctx)
		if err != nil {
			return true, a.fail(err)
		}
		return true, a.printJSON(out)
	}

	switch args[0] {
	case "get":
		if len(args) != 2 {
			return true, a.usage(c.name + " get <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return true, a.fail(err)
		}
		out, err := c.get(ctx, id)
		if err != nil {
			return true, a.fail(err)
		}
		return true, a.printJSON(out)

	case "create":
		var in R
		if err := a.readJSON(args[1:], &in); err != nil {
			return true, a.fail(err)
		}
		out, err := c.create(ctx, in)
		if err != nil {
			return true, a.fail(err)
		}
		return true, a.printJSON(out)

	case "update":
		if len(args) < 2 {
			return true, a.usage(c.name + " update <id> [json]")
		}
		id, err := parseID(args[1])
		if err != nil {
			return true, a.fail(err)
		}
		var in R
		if err := a.readJSON(args[2:], &in); err != nil {
			return true, a.fail(err)
		}
		out, err := c.update(ctx, id, in)
		if err != nil {
			return true, a.fail(err)
		}
		return true, a.printJSON(out)

	case "delete":
		if len(args) != 2 {
			return true, a.usage(c.name + " delete <id>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return true, a.fail(err)
		}
		if err := c.delete(ctx, id); err != nil {
			return true, a.fail(err)
		}
		a.println("Deleted.")
		return true, nil
	}
	return false, nil
}

// readJSON decodes the JSON given inline in args, or prompts for it when
// args is empty.
func (a *App) readJSON(args []string, v any) error {
	raw := strings.Join(args, " ")
	if raw == "" {
		text, err := GetMultiline(a.reader, "Enter JSON body", a.out)
		if err != nil {
			return err
		}
		raw = text
	}
	return json.Unmarshal([]byte(raw), v)
}

func (a *App) Trades(ctx context.Context, args []string) error {
	api := a.api.Trades()
	handled, err := runCRUD(ctx, a, crud[models.Trade, models.TradeRequest]{
		name: "trades", list: api.List, get: api.Get, create: api.Create, update: api.Update, delete: api.Delete,
	}, args)
	if handled {
		return err
	}

	switch args[0] {
	case "portfolio":
		out, err := api.Portfolio(ctx)
		if err != nil {
			return a.fail(err)
		}
		return a.printJSON(out)
	}
	return a.usage("trades [get <id> | create [json] | update <id> [json] | delete <id> | portfolio]")
}

func (a *App) Expenses(ctx context.Context, args []string) error {
	api := a.api.Expenses()
	handled, err := runCRUD(ctx, a, crud[models.Expense, models.ExpenseRequest]{
		name: "expenses", list: api.List, get: api.Get, create: api.Create, update: api.Update, delete: api.Delete,
	}, args)
	if handled {
		return err
	}

	switch args[0] {
	case "summary":
		out, err := api.Summary(ctx)
		if err != nil {
			return a.fail(err)
		}
		return a.printJSON(out)

	case "category":
		if len(args) < 2 {
			return a.usage("expenses category <name>")
		}
		out, err := api.ByCategory(ctx, strings.Join(args[1:], " "))
		if err != nil {
			return a.fail(err)
		}
		return a.printJSON(out)
	}
	return a.usage("expenses [get <id> | create [json] | update <id> [json] | delete <id> | summary | category <name>]")
}

func (a *App) Goals(ctx context.Context, args []string) error {
	api := a.api.Goals()
	handled, err := runCRUD(ctx, a, crud[models.Goal, models.GoalRequest]{
		name: "goals", list: api.List, get: api.Get, create: api.Create, update: api.Update, delete: api.Delete,
	}, args)
	if handled {
		return err
	}

	switch args[0] {
	case "active":
		out, err := api.Active(ctx)
		if err != nil {
			return a.fail(err)
		}
		return a.printJSON(out)

	case "progress":
		if len(args) != 3 {
			return a.usage("goals progress <id> <amount>")
		}
		id, err := parseID(args[1])
		if err != nil {
			return a.fail(err)
		}
		amount, err := decimal.NewFromString(args[2])
		if err != nil {
			return a.fail(err)
		}
		out, err := api.UpdateProgress(ctx, id, models.GoalProgress{CurrentAmount: amount})
		if err != nil {
			return a.fail(err)
		}
		return a.printJSON(out)
	}
	return a.usage("goals [get <id> | create [json] | update <id> [json] | delete <id> | active | progress <id> <amount>]")
}

func (a *App) Price(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("price <symbol>")
	}
	out, err := a.api.Market().CurrentPrice(ctx, strings.ToUpper(args[0]))
	if err != nil {
		return a.fail(err)
	}
	return a.printJSON(out)
}

func (a *App) Quote(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("quote <symbol>")
	}
	out, err := a.api.Market().Quote(ctx, strings.ToUpper(args[0]))
	if err != nil {
		return a.fail(err)
	}
	return a.printJSON(out)
}

// AI runs the AI service commands. Without arguments it checks the service
// health.
func (a *App) AI(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"health"}
	}

	switch args[0] {
	case "health":
		out, err := a.ai.Health(ctx)
		if err != nil {
			return a.fail(err)
		}
		return a.printJSON(out)

	case "predict":
		if len(args) < 2 || len(args) > 3 {
			return a.usage("ai predict <symbol> [price]")
		}
		symbol := strings.ToUpper(args[1])
		price, err := a.currentPrice(ctx, symbol, args[2:])
		if err != nil {
			return a.fail(err)
		}
		quote, err := a.api.Market().Quote(ctx, symbol)
		if err != nil {
			return a.fail(err)
		}
		req := models.PricePredictionRequest{
			Symbol:         symbol,
			CurrentPrice:   price,
			HistoricalData: []models.HistoricalPoint{},
		}
		if p := quotePoint(quote); len(p) > 0 {
			req.HistoricalData = []models.HistoricalPoint{p}
		}
		out, err := a.ai.PredictPrice(ctx, req)
		if err != nil {
			return a.fail(err)
		}
		return a.printJSON(out)

	case "recommend":
		req := models.RecommendationRequest{RiskTolerance: "medium"}
		if len(args) > 1 {
			req.RiskTolerance = args[1]
		}
		trades, err := a.api.Trades().List(ctx)
		if err != nil {
			return a.fail(err)
		}
		req.Trades = tradeSamples(trades)
		out, err := a.ai.Recommendations(ctx, req)
		if err != nil {
			return a.fail(err)
		}
		return a.printJSON(out)

	case "analyze":
		if len(args) < 2 {
			return a.usage("ai analyze <symbol>...")
		}
		symbols := make([]string, 0, len(args)-1)
		for _, s := range args[1:] {
			symbols = append(symbols, strings.ToUpper(s))
		}
		out, err := a.ai.AnalyzeMarket(ctx, models.MarketAnalysisRequest{Symbols: symbols})
		if err != nil {
			return a.fail(err)
		}
		return a.printJSON(out)
	}
	return a.usage("ai [health | predict <symbol> [price] | recommend [risk] | analyze <symbol>...]")
}

// currentPrice returns the price given on the command line, or asks the
// market endpoint for it.
func (a *App) currentPrice(ctx context.Context, symbol string, args []string) (float64, error) {
	if len(args) == 1 {
		return strconv.ParseFloat(args[0], 64)
	}
	p, err := a.api.Market().CurrentPrice(ctx, symbol)
	if err != nil {
		return 0, err
	}
	return p.Price.InexactFloat64(), nil
}

// quotePoint turns a market quote into one history sample. Both the bare
// quote and the provider's {"Global Quote": {...}} envelope are accepted;
// fields that are missing or not numeric are left out.
func quotePoint(q models.Quote) models.HistoricalPoint {
	src := map[string]any(q)
	if inner, ok := src["Global Quote"].(map[string]any); ok {
		src = inner
	}

	p := models.HistoricalPoint{}
	for key, name := range map[string]string{"05. price": "price", "06. volume": "volume"} {
		if v, ok := quoteNumber(src[key]); ok {
			p[name] = v
		}
	}
	if day, ok := src["07. latest trading day"].(string); ok && day != "" && len(p) > 0 {
		p["date"] = day
	}
	return p
}

func quoteNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func tradeSamples(trades []models.Trade) []models.TradeSample {
	out := make([]models.TradeSample, 0, len(trades))
	for _, t := range trades {
		s := models.TradeSample{
			Symbol:    t.Symbol,
			Price:     t.PricePerUnit.InexactFloat64(),
			Volume:    t.Quantity.InexactFloat64(),
			TradeType: string(t.TradeType),
		}
		if !t.TradeDate.IsZero() {
			s.Date = t.TradeDate.Format("2006-01-02")
		}
		out = append(out, s)
	}
	return out
}

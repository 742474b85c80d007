package capgains

import (
	"github.com/etnz/capgains/date"
	"github.com/shopspring/decimal"
)

// GainLossSummary splits realized profits by holding term.
type GainLossSummary struct {
	ShortTerm Money
	LongTerm  Money
}

// Total returns the sum of short and long term profits.
func (g GainLossSummary) Total() Money { return g.ShortTerm.Add(g.LongTerm) }

// SymbolProfit aggregates the closed trades of a symbol.
type SymbolProfit struct {
	Symbol         string  `json:"symbol"`
	TotalProfit    Money   `json:"totalProfit"`
	TotalProfitPct Percent `json:"totalProfitPct"` // TotalProfitPct is weighted by each trade's cost basis.
}

// ClosedInMonth returns the trades sold during month m.
func ClosedInMonth(trades []ClosedTrade, m date.Month) []ClosedTrade {
	var res []ClosedTrade
	for _, t := range trades {
		if m.Contains(t.SellDate) {
			res = append(res, t)
		}
	}
	return res
}

// ClosedInYear returns the trades sold during year y.
func ClosedInYear(trades []ClosedTrade, y int) []ClosedTrade {
	var res []ClosedTrade
	for _, t := range trades {
		if t.SellDate.Year() == y {
			res = append(res, t)
		}
	}
	return res
}

// TotalGainLoss sums profits into short and long term buckets, each rounded to the cent.
func TotalGainLoss(trades []ClosedTrade) GainLossSummary {
	short, long := Dollars(0), Dollars(0)
	for _, t := range trades {
		if t.Term() == LongTerm {
			long = long.Add(t.Profit)
		} else {
			short = short.Add(t.Profit)
		}
	}
	return GainLossSummary{ShortTerm: short.Round2(), LongTerm: long.Round2()}
}

// SymbolProfits aggregates trades per symbol, in order of first appearance.
//
// The percentage is a running average weighted by investment: each trade's percentage
// is blended in proportion to its cost basis over the cumulative cost basis.
func SymbolProfits(trades []ClosedTrade) []SymbolProfit {
	type acc struct {
		profit   Money
		pct      decimal.Decimal
		invested decimal.Decimal
	}
	var order []string
	accs := make(map[string]*acc)
	for _, t := range trades {
		a, ok := accs[t.Symbol]
		if !ok {
			a = &acc{profit: Dollars(0)}
			accs[t.Symbol] = a
			order = append(order, t.Symbol)
		}
		a.profit = a.profit.Add(t.Profit)

		inv := t.Investment().Decimal()
		previous := a.invested
		a.invested = a.invested.Add(inv)
		if a.invested.IsZero() {
			continue
		}
		tradePct := decimal.NewFromFloat(float64(t.ProfitPct))
		a.pct = a.pct.Mul(previous).Add(tradePct.Mul(inv)).Div(a.invested)
	}

	res := make([]SymbolProfit, 0, len(order))
	for _, s := range order {
		a := accs[s]
		res = append(res, SymbolProfit{
			Symbol:         s,
			TotalProfit:    a.profit.Round2(),
			TotalProfitPct: pct(a.pct),
		})
	}
	return res
}

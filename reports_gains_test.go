package capgains

import (
	"slices"
	"testing"

	"github.com/etnz/capgains/date"
)

func trade(buy, sell Transaction) ClosedTrade { return newClosedTrade(buy, sell) }

func TestClosedTrade_Term(t *testing.T) {
	testCases := []struct {
		name string
		buy  string
		sell string
		want HoldingTerm
	}{
		{name: "same day", buy: "2024-01-01", sell: "2024-01-01", want: ShortTerm},
		{name: "364 days", buy: "2023-01-01", sell: "2023-12-31", want: ShortTerm},
		{name: "exactly 365 days", buy: "2023-01-01", sell: "2024-01-01", want: ShortTerm},
		{name: "366 days", buy: "2023-01-01", sell: "2024-01-02", want: LongTerm},
		{name: "leap year", buy: "2024-01-01", sell: "2024-12-31", want: ShortTerm},
		{name: "over a leap year", buy: "2024-01-01", sell: "2025-01-01", want: LongTerm},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := trade(NewBuy(day(tc.buy), "AAPL", 1, 10), NewSell(day(tc.sell), "AAPL", 1, 11))
			if got := tr.Term(); got != tc.want {
				t.Errorf("Term() = %v, want %v (held %v)", got, tc.want, tr.HoldingTime())
			}
		})
	}
}

func TestClosedTrade_ZeroCostBasis(t *testing.T) {
	tr := trade(NewBuy(day("2024-01-01"), "FREE", 1, 0), NewSell(day("2024-02-01"), "FREE", 1, 12.5))
	if !tr.Profit.Equal(usd(12.5)) {
		t.Errorf("Profit = %v, want 12.5", tr.Profit)
	}
	if tr.ProfitPct != 0 {
		t.Errorf("ProfitPct = %v, want 0", tr.ProfitPct)
	}
}

func TestTotalGainLoss(t *testing.T) {
	trades := []ClosedTrade{
		trade(NewBuy(day("2024-01-01"), "AAPL", 5, 100), NewSell(day("2024-03-01"), "AAPL", 5, 120)),
		trade(NewBuy(day("2022-01-01"), "MSFT", 1, 250), NewSell(day("2024-03-02"), "MSFT", 1, 300)),
		trade(NewBuy(day("2024-02-01"), "AAPL", 2, 110), NewSell(day("2024-03-03"), "AAPL", 2, 100)),
		trade(NewBuy(day("2024-02-01"), "TSLA", 3, 0.333), NewSell(day("2024-03-03"), "TSLA", 3, 0.334)),
	}
	got := TotalGainLoss(trades)
	if want := usd(80); !got.ShortTerm.Equal(want) {
		t.Errorf("ShortTerm = %v, want %v", got.ShortTerm, want)
	}
	if want := usd(50); !got.LongTerm.Equal(want) {
		t.Errorf("LongTerm = %v, want %v", got.LongTerm, want)
	}
	if want := usd(130); !got.Total().Equal(want) {
		t.Errorf("Total() = %v, want %v", got.Total(), want)
	}

	// values are rounded to the cent: computing again from rounded values gives the same result.
	if again := TotalGainLoss(trades); !again.ShortTerm.Equal(got.ShortTerm) || !again.LongTerm.Equal(got.LongTerm) {
		t.Errorf("TotalGainLoss() is not idempotent: %v then %v", got, again)
	}
	if !got.ShortTerm.Equal(got.ShortTerm.Round2()) {
		t.Errorf("ShortTerm = %v, want a value rounded to the cent", got.ShortTerm)
	}
}

func TestSymbolProfits(t *testing.T) {
	m := NewMatcher()
	m.Replay([]Transaction{
		NewBuy(day("2024-01-01"), "MSFT", 1, 100),
		NewBuy(day("2024-01-01"), "AAPL", 5, 100),
		NewBuy(day("2024-01-02"), "AAPL", 4, 110),
		NewSell(day("2024-01-03"), "MSFT", 1, 90),
		NewSell(day("2024-01-03"), "AAPL", 7, 120),
	})
	got := SymbolProfits(m.ClosedTrades())

	want := []struct {
		symbol string
		profit float64
		pct    Percent
	}{
		{"MSFT", -10, -10},
		// (20 * 500 + 9.09 * 220) / 720
		{"AAPL", 120, 16.67},
	}
	if len(got) != len(want) {
		t.Fatalf("SymbolProfits() = %v, want %d symbols", got, len(want))
	}
	for i, w := range want {
		if got[i].Symbol != w.symbol || !got[i].TotalProfit.Equal(usd(w.profit)) || !got[i].TotalProfitPct.Equal(w.pct) {
			t.Errorf("SymbolProfits()[%d] = %s %s %s, want %s %v %v", i, got[i].Symbol, got[i].TotalProfit, got[i].TotalProfitPct, w.symbol, w.profit, w.pct)
		}
	}

	if again := SymbolProfits(m.ClosedTrades()); !slices.EqualFunc(got, again, func(a, b SymbolProfit) bool {
		return a.Symbol == b.Symbol && a.TotalProfit.Equal(b.TotalProfit) && a.TotalProfitPct.Equal(b.TotalProfitPct)
	}) {
		t.Errorf("SymbolProfits() is not idempotent: %v then %v", got, again)
	}
}

func TestClosedInMonth(t *testing.T) {
	trades := []ClosedTrade{
		trade(NewBuy(day("2024-01-01"), "AAPL", 1, 1), NewSell(day("2024-01-31"), "AAPL", 1, 2)),
		trade(NewBuy(day("2024-01-01"), "AAPL", 1, 1), NewSell(day("2024-02-01"), "AAPL", 1, 2)),
		trade(NewBuy(day("2023-01-01"), "AAPL", 1, 1), NewSell(day("2023-02-01"), "AAPL", 1, 2)),
	}
	if got := ClosedInMonth(trades, date.NewMonth(2024, 2)); len(got) != 1 || got[0].SellDate != day("2024-02-01") {
		t.Errorf("ClosedInMonth(2/2024) = %v, want the trade sold 2024-02-01", got)
	}
	if got := ClosedInYear(trades, 2024); len(got) != 2 {
		t.Errorf("ClosedInYear(2024) = %d trades, want 2", len(got))
	}
}

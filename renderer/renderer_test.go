package renderer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/etnz/capgains"
	"github.com/etnz/capgains/date"
)

func feed() []capgains.Transaction {
	d := date.MustParse
	return []capgains.Transaction{
		capgains.NewCash(d("2024-01-02"), capgains.CodeACH, 1000, "ACH Deposit"),
		capgains.NewBuy(d("2024-01-10"), "AAPL", 5, 100),
		capgains.NewSell(d("2024-03-10"), "AAPL", 3, 120),
		capgains.NewCash(d("2024-03-15"), capgains.CodeCashDiv, 1.2, "Cash Div"),
		capgains.NewCash(d("2024-03-20"), capgains.CodeGold, -5, "Gold Subscription Fee"),
		capgains.NewSell(d("2024-03-21"), "TSLA", 1, 200),
	}
}

func march(t *testing.T) *capgains.MonthStatement {
	t.Helper()
	statements, err := capgains.MonthlyStatements(feed())
	if err != nil {
		t.Fatalf("MonthlyStatements() unexpected error: %v", err)
	}
	return statements[len(statements)-1]
}

func TestStatementMarkdown(t *testing.T) {
	md := StatementMarkdown(march(t))

	for _, want := range []string{
		"### March 2024 Monthly Statement",
		"| Dividend | $1.20 |",
		"| Fees | -$5.00 |",
		"| 3/10/2024 | Sell | AAPL | 3 | $120.00 | $360.00 |",
		"| AAPL | 2 | $200.00 | 1 |",
		"| Short term | +$60.00 |",
		"| Long term | - |",
		"| AAPL | +$60.00 | +20.00% |",
		"#### Skipped Sells",
		"TSLA",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("StatementMarkdown() does not contain %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "error ") {
		t.Errorf("StatementMarkdown() reported a template error:\n%s", md)
	}
}

func TestRenderStatement_Options(t *testing.T) {
	s := NewStatement(march(t))
	md := RenderStatement(s, StatementRenderOptions{SkipActivity: true, SkipHoldings: true})
	if strings.Contains(md, "#### Activity") || strings.Contains(md, "#### Holdings") {
		t.Errorf("RenderStatement() rendered skipped sections:\n%s", md)
	}
	if !strings.Contains(md, "#### Realized Gain/Loss") {
		t.Errorf("RenderStatement() is missing the gains section:\n%s", md)
	}
}

func TestStatementMarkdown_EmptyMonth(t *testing.T) {
	ms := &capgains.MonthStatement{Month: date.NewMonth(2024, 4)}
	md := StatementMarkdown(ms)
	if !strings.Contains(md, "### April 2024 Monthly Statement") {
		t.Errorf("StatementMarkdown() = %s, want the April headline", md)
	}
	if strings.Contains(md, "#### Activity") || strings.Contains(md, "by Symbol") {
		t.Errorf("StatementMarkdown() rendered empty sections:\n%s", md)
	}
}

func TestYearMarkdown(t *testing.T) {
	reports := capgains.YearlyReports(feed())
	if len(reports) != 1 {
		t.Fatalf("YearlyReports() = %d reports, want 1", len(reports))
	}
	md := YearMarkdown(reports[0])
	for _, want := range []string{
		"# Capital Gains Report 2024",
		"Closed trades: 1",
		"| **Total** | **+$60.00** |",
		"| Gold Subscription Fee | -$5.00 |",
		"## Skipped Sells",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("YearMarkdown() does not contain %q:\n%s", want, md)
		}
	}
}

func TestTradesMarkdown(t *testing.T) {
	m := capgains.NewMatcher()
	m.Replay(feed())
	md := TradesMarkdown(m.ClosedTrades())
	for _, want := range []string{
		"| AAPL | 3 | 1/10/2024 | 3/10/2024 |",
		"| +$60.00 | +20.00% | short |",
		"| **Total** |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("TradesMarkdown() does not contain %q:\n%s", want, md)
		}
	}
	if md := TradesMarkdown(nil); !strings.Contains(md, "No closed trade.") {
		t.Errorf("TradesMarkdown(nil) = %q", md)
	}
}

func TestHoldingsMarkdown(t *testing.T) {
	m := capgains.NewMatcher()
	m.Replay(feed())
	md := HoldingsMarkdown(m.Queue().Holdings())
	if !strings.Contains(md, "| AAPL | 2 | $200.00 | 1 |") {
		t.Errorf("HoldingsMarkdown() =\n%s", md)
	}
	if md := HoldingsMarkdown(nil); !strings.Contains(md, "No open position.") {
		t.Errorf("HoldingsMarkdown(nil) = %q", md)
	}
}

func TestHTML(t *testing.T) {
	html, err := HTML("# Title\n\n| A | B |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("HTML() unexpected error: %v", err)
	}
	for _, want := range []string{"<h1", "<table>", "<td>1</td>"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML() does not contain %q: %s", want, html)
		}
	}

	page, err := HTMLPage("Q1 <2024>", "text")
	if err != nil {
		t.Fatalf("HTMLPage() unexpected error: %v", err)
	}
	if !strings.Contains(page, "<title>Q1 &lt;2024&gt;</title>") || !strings.Contains(page, "<p>text</p>") {
		t.Errorf("HTMLPage() = %s", page)
	}
}

func TestWriteStatementsJSON(t *testing.T) {
	var b strings.Builder
	if err := WriteStatementsJSON(&b, []*Statement{NewStatement(march(t))}); err != nil {
		t.Fatalf("WriteStatementsJSON() unexpected error: %v", err)
	}

	var got []struct {
		Title    string
		Fees     string
		Total    string
		Activity []struct{ Date, Code, Symbol, Quantity, Price, Amount string }
		Holdings []struct {
			Symbol, Quantity, Cost string
			Lots                   int
		}
		Symbols []struct {
			Symbol         string
			TotalProfit    string
			TotalProfitPct float64
		}
		Warnings []string
	}
	if err := json.Unmarshal([]byte(b.String()), &got); err != nil {
		t.Fatalf("WriteStatementsJSON() wrote invalid JSON: %v\n%s", err, b.String())
	}
	if len(got) != 1 {
		t.Fatalf("WriteStatementsJSON() wrote %d statements, want 1", len(got))
	}
	s := got[0]
	if s.Title != "March 2024" || s.Fees != "-5" || s.Total != "60" {
		t.Errorf("statement = %q fees %q total %q, want March 2024 fees -5 total 60", s.Title, s.Fees, s.Total)
	}
	if len(s.Activity) == 0 {
		t.Fatalf("activity is empty:\n%s", b.String())
	}
	if a := s.Activity[0]; a.Date != "2024-03-10" || a.Symbol != "AAPL" || a.Quantity != "3" || a.Price != "120" {
		t.Errorf("activity[0] = %+v, want AAPL 3 @ 120 on 2024-03-10", a)
	}
	if len(s.Holdings) != 1 || s.Holdings[0].Cost != "200" || s.Holdings[0].Lots != 1 {
		t.Errorf("holdings = %+v, want AAPL costing 200 in 1 lot", s.Holdings)
	}
	if len(s.Symbols) != 1 || s.Symbols[0].TotalProfit != "60" || s.Symbols[0].TotalProfitPct != 20 {
		t.Errorf("symbols = %+v, want AAPL +60 20%%", s.Symbols)
	}
	if len(s.Warnings) != 1 {
		t.Errorf("warnings = %v, want the TSLA sell", s.Warnings)
	}
}

func TestWriteStatementsJSON_Empty(t *testing.T) {
	var b strings.Builder
	if err := WriteStatementsJSON(&b, nil); err != nil {
		t.Fatalf("WriteStatementsJSON() unexpected error: %v", err)
	}
	if got := strings.TrimSpace(b.String()); got != "[]" {
		t.Errorf("WriteStatementsJSON(nil) = %q, want []", got)
	}
}

package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/capgains"
)

// TradesMarkdown renders closed trades as a table, with a total row.
func TradesMarkdown(trades []capgains.ClosedTrade) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Closed Trades\n\n")
	if len(trades) == 0 {
		fmt.Fprintln(&b, "No closed trade.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Symbol | Quantity | Acquired | Sold | Held | Cost | Proceeds | Gain or Loss | Return | Term |")
	fmt.Fprintln(&b, "|:---|---:|:---|:---|:---|---:|---:|---:|---:|:---|")
	for _, t := range trades {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			t.Symbol,
			t.Quantity(),
			t.BuyDate.US(),
			t.SellDate.US(),
			capgains.HoldingTime(t),
			t.Investment().Round2(),
			t.Proceeds().Round2(),
			t.Profit.SignedString(),
			t.ProfitPct.SignedString(),
			t.Term(),
		)
	}
	total := capgains.TotalGainLoss(trades).Total()
	fmt.Fprintf(&b, "| **%s** | | | | | | | **%s** | | |\n", "Total", total.SignedString())
	return b.String()
}

// HoldingsMarkdown renders the open positions.
func HoldingsMarkdown(holdings []capgains.Holding) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Holdings\n\n")
	if len(holdings) == 0 {
		fmt.Fprintln(&b, "No open position.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Symbol | Quantity | Cost Basis | Lots |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	total := capgains.Dollars(0)
	for _, h := range holdings {
		fmt.Fprintf(&b, "| %s | %s | %s | %d |\n", h.Symbol, h.Quantity, h.Cost, h.Lots)
		total = total.Add(h.Cost)
	}
	fmt.Fprintf(&b, "| **%s** | | **%s** | |\n", "Total", total)
	return b.String()
}

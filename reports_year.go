package capgains

import (
	"slices"
	"strings"
)

// FeeRecord is an amount of fees for a description.
type FeeRecord struct {
	Description string
	Amount      Money
}

// MergeFees sums records sharing the same description, in order of first appearance.
func MergeFees(fees []FeeRecord) []FeeRecord {
	var res []FeeRecord
	index := make(map[string]int)
	for _, f := range fees {
		if i, ok := index[f.Description]; ok {
			res[i].Amount = res[i].Amount.Add(f.Amount)
			continue
		}
		index[f.Description] = len(res)
		res = append(res, f)
	}
	return res
}

// YearReport gathers the trades closed and the fees paid during a year.
type YearReport struct {
	Year     int
	Trades   []ClosedTrade
	Fees     []FeeRecord
	GainLoss GainLossSummary
	Warnings []SellWarning
}

// YearlyReports replays the whole feed once and reports per calendar year.
// Only years with a closed trade, a fee or a skipped sell are reported.
func YearlyReports(txs []Transaction, opts ...MatcherOption) []*YearReport {
	m := NewMatcher(opts...)
	m.Replay(txs)

	reports := make(map[int]*YearReport)
	get := func(y int) *YearReport {
		r, ok := reports[y]
		if !ok {
			r = &YearReport{Year: y}
			reports[y] = r
		}
		return r
	}
	for _, t := range m.ClosedTrades() {
		r := get(t.SellDate.Year())
		r.Trades = append(r.Trades, t)
	}
	for _, tx := range txs {
		if tx.Category() != Fee {
			continue
		}
		desc := strings.TrimSpace(tx.Description)
		if desc == "" {
			desc = string(tx.Code)
		}
		r := get(tx.ProcessDate.Year())
		r.Fees = append(r.Fees, FeeRecord{Description: desc, Amount: tx.Amount})
	}
	for _, w := range m.Warnings() {
		r := get(w.Transaction.ProcessDate.Year())
		r.Warnings = append(r.Warnings, w)
	}

	res := make([]*YearReport, 0, len(reports))
	for _, r := range reports {
		r.Fees = MergeFees(r.Fees)
		r.GainLoss = TotalGainLoss(r.Trades)
		res = append(res, r)
	}
	slices.SortFunc(res, func(a, b *YearReport) int { return a.Year - b.Year })
	return res
}

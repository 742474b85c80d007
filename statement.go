package capgains

import (
	"strings"

	"github.com/etnz/capgains/date"
)

// MonthMetadata sums the non-trade activity of a month, by kind.
// Amounts are signed as in the statement.
type MonthMetadata struct {
	Fees       Money
	Dividend   Money
	Deposit    Money
	Withdrawal Money
	Interest   Money
	Benefit    Money
	Acats      Money
}

// NewMonthMetadata sums the activity of transactions processed during month m.
func NewMonthMetadata(txs []Transaction, m date.Month) MonthMetadata {
	md := MonthMetadata{
		Fees:       Dollars(0),
		Dividend:   Dollars(0),
		Deposit:    Dollars(0),
		Withdrawal: Dollars(0),
		Interest:   Dollars(0),
		Benefit:    Dollars(0),
		Acats:      Dollars(0),
	}
	for _, tx := range MonthTransactions(txs, m) {
		switch tx.Category() {
		case Fee:
			md.Fees = md.Fees.Add(tx.Amount)
		case Dividend:
			md.Dividend = md.Dividend.Add(tx.Amount)
		case Interest:
			md.Interest = md.Interest.Add(tx.Amount)
		case Benefit:
			md.Benefit = md.Benefit.Add(tx.Amount)
		case Transfer:
			md.Acats = md.Acats.Add(tx.Amount)
		case CashMovement:
			if isWithdrawal(tx) {
				md.Withdrawal = md.Withdrawal.Add(tx.Amount)
			} else {
				md.Deposit = md.Deposit.Add(tx.Amount)
			}
		}
	}
	return md
}

func isWithdrawal(tx Transaction) bool {
	return strings.Contains(strings.ToLower(tx.Description), "withdraw")
}

// MonthStatement is the gain and loss accounting of a single month.
type MonthStatement struct {
	Month    date.Month
	Activity []Transaction // Activity lists the buys and sells of the month.
	Metadata MonthMetadata
	Holdings []Holding // Holdings are the open positions at the end of the month.
	Trades   []ClosedTrade
	Symbols  []SymbolProfit
	GainLoss GainLossSummary
	Warnings []SellWarning // Warnings are the sells of the month that have been skipped.
}

// NewMonthStatement replays the bucket's history on a fresh Matcher and reports on its month.
func NewMonthStatement(b MonthlyBucket, opts ...MatcherOption) *MonthStatement {
	m := NewMatcher(opts...)
	m.Replay(b.Transactions)

	ms := &MonthStatement{
		Month:    b.Month,
		Metadata: NewMonthMetadata(b.Transactions, b.Month),
		Holdings: m.Queue().Holdings(),
		Trades:   ClosedInMonth(m.ClosedTrades(), b.Month),
	}
	for _, tx := range MonthTransactions(b.Transactions, b.Month) {
		if c := tx.Category(); c == Buy || c == Sell {
			ms.Activity = append(ms.Activity, tx)
		}
	}
	for _, w := range m.Warnings() {
		if b.Month.Contains(w.Transaction.ProcessDate) {
			ms.Warnings = append(ms.Warnings, w)
		}
	}
	ms.Symbols = SymbolProfits(ms.Trades)
	ms.GainLoss = TotalGainLoss(ms.Trades)
	return ms
}

// MonthlyStatements computes a statement for every month of the feed, in chronological order.
func MonthlyStatements(txs []Transaction, opts ...MatcherOption) ([]*MonthStatement, error) {
	buckets, err := GroupByMonth(txs)
	if err != nil {
		return nil, err
	}
	statements := make([]*MonthStatement, 0, len(buckets))
	for _, b := range buckets {
		statements = append(statements, NewMonthStatement(b, opts...))
	}
	return statements, nil
}

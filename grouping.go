package capgains

import (
	"fmt"
	"slices"

	"github.com/etnz/capgains/date"
)

// MonthlyBucket holds the cumulative history of transactions up to and including Month.
//
// Lots opened in earlier months may be closed in Month, so matching always needs
// the whole history.
type MonthlyBucket struct {
	Month        date.Month
	Transactions []Transaction
}

// GroupByMonth partitions the feed into one cumulative bucket per month that has at least one transaction.
//
// Buckets are sorted chronologically. Within a bucket, transactions keep their feed order,
// which must therefore be chronological.
func GroupByMonth(txs []Transaction) ([]MonthlyBucket, error) {
	var months []date.Month
	seen := make(map[date.Month]bool)
	for _, tx := range txs {
		if tx.ProcessDate.IsZero() {
			return nil, fmt.Errorf("transaction %d (%s %s) has no process date: %w", tx.Seq, tx.Code, tx.Symbol, ErrInvalidDate)
		}
		m := date.MonthOf(tx.ProcessDate)
		if !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	slices.SortFunc(months, date.Month.Compare)

	buckets := make([]MonthlyBucket, 0, len(months))
	for _, m := range months {
		var history []Transaction
		for _, tx := range txs {
			if date.MonthOf(tx.ProcessDate).Compare(m) <= 0 {
				history = append(history, tx)
			}
		}
		buckets = append(buckets, MonthlyBucket{Month: m, Transactions: history})
	}
	return buckets, nil
}

// MonthTransactions returns the transactions processed during month m.
func MonthTransactions(txs []Transaction, m date.Month) []Transaction {
	var res []Transaction
	for _, tx := range txs {
		if m.Contains(tx.ProcessDate) {
			res = append(res, tx)
		}
	}
	return res
}

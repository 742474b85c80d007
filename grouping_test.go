package capgains

import (
	"errors"
	"testing"

	"github.com/etnz/capgains/date"
)

func TestGroupByMonth(t *testing.T) {
	txs := []Transaction{
		NewBuy(day("2023-12-05"), "AAPL", 5, 100),
		NewBuy(day("2024-01-10"), "AAPL", 1, 110),
		NewCash(day("2024-01-31"), CodeInterest, 0.12, "Interest Payment"),
		NewSell(day("2024-02-10"), "AAPL", 3, 120),
	}
	buckets, err := GroupByMonth(txs)
	if err != nil {
		t.Fatalf("GroupByMonth() unexpected error: %v", err)
	}

	want := []struct {
		month date.Month
		size  int
	}{
		{date.NewMonth(2023, 12), 1},
		{date.NewMonth(2024, 1), 3},
		{date.NewMonth(2024, 2), 4},
	}
	if len(buckets) != len(want) {
		t.Fatalf("GroupByMonth() = %d buckets, want %d", len(buckets), len(want))
	}
	for i, w := range want {
		if buckets[i].Month != w.month || len(buckets[i].Transactions) != w.size {
			t.Errorf("bucket[%d] = %v with %d transactions, want %v with %d", i, buckets[i].Month, len(buckets[i].Transactions), w.month, w.size)
		}
	}
	// cumulative buckets keep the feed order.
	last := buckets[len(buckets)-1].Transactions
	for i := range txs {
		if last[i] != txs[i] {
			t.Errorf("last bucket[%d] = %v, want %v", i, last[i], txs[i])
		}
	}
}

func TestGroupByMonth_SameMonthOfDifferentYears(t *testing.T) {
	txs := []Transaction{
		NewBuy(day("2023-03-01"), "AAPL", 1, 100),
		NewBuy(day("2024-01-15"), "AAPL", 1, 100),
		NewSell(day("2024-03-01"), "AAPL", 2, 100),
	}
	buckets, err := GroupByMonth(txs)
	if err != nil {
		t.Fatalf("GroupByMonth() unexpected error: %v", err)
	}
	if len(buckets) != 3 {
		t.Fatalf("GroupByMonth() = %d buckets, want 3: March 2023 and March 2024 are different months", len(buckets))
	}
	if got := len(buckets[0].Transactions); got != 1 {
		t.Errorf("March 2023 bucket has %d transactions, want 1", got)
	}
	if got := buckets[2].Month; got != date.NewMonth(2024, 3) {
		t.Errorf("last bucket = %v, want 3/2024", got)
	}
}

func TestGroupByMonth_MissingDate(t *testing.T) {
	txs := []Transaction{
		NewBuy(day("2024-01-10"), "AAPL", 1, 110),
		{Symbol: "AAPL", Code: CodeSell, Quantity: Q(1)},
	}
	if _, err := GroupByMonth(txs); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("GroupByMonth() error = %v, want %v", err, ErrInvalidDate)
	}
}

func TestGroupByMonth_Empty(t *testing.T) {
	buckets, err := GroupByMonth(nil)
	if err != nil || len(buckets) != 0 {
		t.Errorf("GroupByMonth(nil) = %v, %v, want no bucket", buckets, err)
	}
}

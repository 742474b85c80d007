package capgains

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// this file contains functions to export reports as CSV files, one row per closed trade.

// ClosedTradesHeader is the header row of a closed trades CSV file.
var ClosedTradesHeader = []string{
	"Symbol",
	"Quantity",
	"Date Acquired",
	"Date Sold",
	"Holding Time (~)",
	"Acquired Cost",
	"Sold Gross Amount",
	"Gain or Loss",
}

// FeesHeader is the header row of a fees CSV file.
var FeesHeader = []string{"Description", "Gross Amount"}

// HoldingTime formats an approximate holding time, e.g. "3 months".
func HoldingTime(t ClosedTrade) string {
	if t.HoldingTime() <= 0 {
		return "same day"
	}
	return strings.TrimSpace(humanize.RelTime(t.BuyDate.Time(), t.SellDate.Time(), "", ""))
}

// ExportClosedTrades writes trades to 'w' as CSV, with a header row.
func ExportClosedTrades(w io.Writer, trades []ClosedTrade) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ClosedTradesHeader); err != nil {
		return fmt.Errorf("cannot write closed trades header: %w", err)
	}
	for _, t := range trades {
		row := []string{
			t.Symbol,
			t.Quantity().String(),
			t.BuyDate.US(),
			t.SellDate.US(),
			HoldingTime(t),
			t.Investment().Fixed(),
			t.Proceeds().Fixed(),
			t.Profit.Fixed(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write closed trade %s: %w", t.Symbol, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFees writes fee records to 'w' as CSV, with a header row.
func ExportFees(w io.Writer, fees []FeeRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(FeesHeader); err != nil {
		return fmt.Errorf("cannot write fees header: %w", err)
	}
	for _, f := range fees {
		if err := cw.Write([]string{f.Description, f.Amount.Fixed()}); err != nil {
			return fmt.Errorf("cannot write fee %q: %w", f.Description, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFunc receives the data of a report period, e.g. to publish it somewhere else than in files.
type ExportFunc func(ctx context.Context, period string, trades []ClosedTrade, fees []FeeRecord) error

// Exporter writes report periods into a directory and/or hands them to a callback.
type Exporter struct {
	Dir        string     // Dir is the output directory.
	WriteFiles bool       // WriteFiles enables writing <period>.csv and <period>-fees.csv into Dir.
	Callback   ExportFunc // Callback, if not nil, is called for every period.
}

// Export writes the period's trades, and fees if any, then calls the callback.
func (e Exporter) Export(ctx context.Context, period string, trades []ClosedTrade, fees []FeeRecord) error {
	if e.WriteFiles {
		if err := os.MkdirAll(e.Dir, 0755); err != nil {
			return fmt.Errorf("cannot create output directory %q: %w", e.Dir, err)
		}
		err := writeFile(filepath.Join(e.Dir, period+".csv"), func(w io.Writer) error {
			return ExportClosedTrades(w, trades)
		})
		if err != nil {
			return err
		}
		if len(fees) > 0 {
			err := writeFile(filepath.Join(e.Dir, period+"-fees.csv"), func(w io.Writer) error {
				return ExportFees(w, fees)
			})
			if err != nil {
				return err
			}
		}
	}
	if e.Callback != nil {
		if err := e.Callback(ctx, period, trades, fees); err != nil {
			return fmt.Errorf("export callback failed for %s: %w", period, err)
		}
	}
	return nil
}

func writeFile(name string, write func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("cannot close %q: %w", name, cerr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("cannot write %q: %w", name, err)
	}
	return nil
}

// Package robinhood decodes Robinhood account activity reports.
//
// A report is a CSV file, newest activity first, with the columns:
//
//	Activity Date, Process Date, Settle Date, Instrument, Description, Trans Code, Quantity, Price, Amount
//
// Dates are formatted M/D/YYYY and amounts as currency strings like "$1,234.50" or "($5.00)".
package robinhood

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/etnz/capgains"
	"github.com/etnz/capgains/date"
	"github.com/shopspring/decimal"
)

// column names of a report.
const (
	colActivityDate = "Activity Date"
	colProcessDate  = "Process Date"
	colSettleDate   = "Settle Date"
	colInstrument   = "Instrument"
	colDescription  = "Description"
	colTransCode    = "Trans Code"
	colQuantity     = "Quantity"
	colPrice        = "Price"
	colAmount       = "Amount"
)

var requiredColumns = []string{colProcessDate, colTransCode, colAmount}

// Decoder reads Robinhood CSV reports.
type Decoder struct{}

// Match returns true for CSV files.
func (Decoder) Match(name string) bool { return strings.EqualFold(filepath.Ext(name), ".csv") }

// DecodeFile decodes the report at path.
func (d Decoder) DecodeFile(path string) ([]capgains.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	txs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return txs, nil
}

// Decode reads a report and returns its transactions in chronological order.
//
// Rows without a process date are skipped: reports end with a disclaimer spread over a few rows.
func Decode(r io.Reader) ([]capgains.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("missing column %q: %w", c, capgains.ErrInvalidRecord)
		}
	}

	var txs []capgains.Transaction
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		row := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		if row(colProcessDate) == "" {
			continue
		}
		tx, err := decodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		txs = append(txs, tx)
	}
	slices.Reverse(txs)
	return txs, nil
}

func decodeRow(row func(string) string) (capgains.Transaction, error) {
	var tx capgains.Transaction
	var err error
	if tx.ProcessDate, err = parseDate(colProcessDate, row(colProcessDate)); err != nil {
		return tx, err
	}
	// activity and settle dates are informative, they default to the process date.
	tx.ActivityDate, tx.SettleDate = tx.ProcessDate, tx.ProcessDate
	if s := row(colActivityDate); s != "" {
		if tx.ActivityDate, err = parseDate(colActivityDate, s); err != nil {
			return tx, err
		}
	}
	if s := row(colSettleDate); s != "" {
		if tx.SettleDate, err = parseDate(colSettleDate, s); err != nil {
			return tx, err
		}
	}

	tx.Symbol = row(colInstrument)
	tx.Description = row(colDescription)
	tx.Code = capgains.ParseTransCode(row(colTransCode))

	q, err := ParseQuantity(row(colQuantity))
	if err != nil {
		return tx, fmt.Errorf("column %q: %w", colQuantity, err)
	}
	tx.Quantity = capgains.Q(q)
	price, err := ParseAmount(row(colPrice))
	if err != nil {
		return tx, fmt.Errorf("column %q: %w", colPrice, err)
	}
	tx.Price = capgains.Dollars(price.Abs())
	amount, err := ParseAmount(row(colAmount))
	if err != nil {
		return tx, fmt.Errorf("column %q: %w", colAmount, err)
	}
	tx.Amount = capgains.Dollars(amount)
	return tx, nil
}

func parseDate(col, s string) (date.Date, error) {
	d, err := date.ParseUS(s)
	if err != nil {
		return d, fmt.Errorf("column %q: %w: %w", col, capgains.ErrInvalidDate, err)
	}
	return d, nil
}

// ParseAmount parses a currency string.
//
// The dollar sign and thousands separators are ignored. A value in parentheses is negative,
// whether or not it also carries a minus sign: "($5.00)" and "(-$5.00)" are both -5.
// The minus sign may come before or after the dollar sign.
// An empty string is zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s))
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}
	if s == "" || strings.ContainsAny(s, "+-") {
		return decimal.Zero, fmt.Errorf("malformed amount: %w", capgains.ErrInvalidRecord)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed amount %q: %w", s, errors.Join(capgains.ErrInvalidRecord, err))
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// ParseQuantity parses a share count. Stock split rows suffix the count with "S", which is ignored.
// An empty string is zero.
func ParseQuantity(s string) (decimal.Decimal, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "S")
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed quantity %q: %w", s, errors.Join(capgains.ErrInvalidRecord, err))
	}
	return d.Abs(), nil
}

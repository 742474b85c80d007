// Package alpaca decodes Alpaca account statements.
//
// Statements are JSON files named after their date, YYYYMMDD.json, holding trade activities
// and non-trade activities such as fees, dividends and interests.
package alpaca

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // statements are timestamped in New York time.

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/capgains"
	"github.com/etnz/capgains/date"
	"github.com/shopspring/decimal"
)

const (
	tradesPath    = "$.trade_activities[*]"
	nonTradesPath = "$.non_trade_activities[*]"

	timestampFormat = "2006-01-02 15:04:05"
	dateFormat      = "2006-01-02"
)

// Statement filenames must be dated within these years.
const (
	MinYear = 2014
	MaxYear = 2100
)

var newYork = mustLoadLocation("America/New_York")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// ParseFilename returns the date encoded in a statement filename like 20240131.json.
func ParseFilename(name string) (date.Date, error) {
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if len(stem) != 8 || !strings.EqualFold(filepath.Ext(base), ".json") {
		return date.Date{}, fmt.Errorf("%q want YYYYMMDD.json: %w", base, capgains.ErrInvalidFilename)
	}
	var v [3]int
	for i, part := range []string{stem[:4], stem[4:6], stem[6:]} {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return date.Date{}, fmt.Errorf("%q want YYYYMMDD.json: %w", base, capgains.ErrInvalidFilename)
		}
		v[i] = n
	}
	y, m, d := v[0], v[1], v[2]
	switch {
	case y < MinYear || y > MaxYear:
		return date.Date{}, fmt.Errorf("%q year %d not in [%d, %d]: %w", base, y, MinYear, MaxYear, capgains.ErrInvalidFilename)
	case m < 1 || m > 12:
		return date.Date{}, fmt.Errorf("%q month %d not in [1, 12]: %w", base, m, capgains.ErrInvalidFilename)
	case d < 1 || d > 31:
		return date.Date{}, fmt.Errorf("%q day %d not in [1, 31]: %w", base, d, capgains.ErrInvalidFilename)
	}
	return date.New(y, time.Month(m), d), nil
}

// Decoder reads Alpaca JSON statements.
type Decoder struct{}

// Match returns true for JSON files. Their names are validated by DecodeFile.
func (Decoder) Match(name string) bool { return strings.EqualFold(filepath.Ext(name), ".json") }

// DecodeFile validates the statement filename and decodes the statement.
func (Decoder) DecodeFile(path string) ([]capgains.Transaction, error) {
	if _, err := ParseFilename(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	txs, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return txs, nil
}

// Decode parses a statement and returns its transactions in chronological order.
//
// Trades are ordered by their New York timestamp. Fees, dividends and interests are kept,
// other non-trade activities are ignored.
func Decode(data []byte) ([]capgains.Transaction, error) {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("malformed statement: %w: %w", capgains.ErrInvalidRecord, err)
	}

	type trade struct {
		at time.Time
		tx capgains.Transaction
	}
	var trades []trade
	records, err := list(tradesPath, jobj)
	if err != nil {
		return nil, err
	}
	for i, r := range records {
		at, tx, err := decodeTrade(r)
		if err != nil {
			return nil, fmt.Errorf("trade_activities[%d]: %w", i, err)
		}
		trades = append(trades, trade{at, tx})
	}
	slices.SortStableFunc(trades, func(a, b trade) int { return a.at.Compare(b.at) })

	txs := make([]capgains.Transaction, 0, len(trades))
	for _, t := range trades {
		txs = append(txs, t.tx)
	}

	records, err = list(nonTradesPath, jobj)
	if err != nil {
		return nil, err
	}
	for i, r := range records {
		tx, ok, err := decodeNonTrade(r)
		if err != nil {
			return nil, fmt.Errorf("non_trade_activities[%d]: %w", i, err)
		}
		if ok {
			txs = append(txs, tx)
		}
	}
	slices.SortStableFunc(txs, func(a, b capgains.Transaction) int {
		return a.ProcessDate.Compare(b.ProcessDate)
	})
	return txs, nil
}

// list evaluates a jsonpath that selects records, a missing section is empty.
func list(path string, jobj any) ([]map[string]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		// jsonpath fails on unknown keys, statements without activities omit the section.
		return nil, nil
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is not a list: %w", path, capgains.ErrInvalidRecord)
	}
	records := make([]map[string]any, 0, len(jlist))
	for i, v := range jlist {
		r, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s[%d] is not an object: %w", path, i, capgains.ErrInvalidRecord)
		}
		records = append(records, r)
	}
	return records, nil
}

func decodeTrade(r map[string]any) (time.Time, capgains.Transaction, error) {
	var tx capgains.Transaction
	tx.Symbol = str(r, "symbol")
	if tx.Symbol == "" {
		return time.Time{}, tx, fmt.Errorf("missing symbol: %w", capgains.ErrInvalidRecord)
	}
	switch side := strings.ToLower(str(r, "side")); side {
	case "buy":
		tx.Code = capgains.CodeBuy
	case "sell", "sell_short":
		tx.Code = capgains.CodeSell
	default:
		return time.Time{}, tx, fmt.Errorf("unknown side %q: %w", side, capgains.ErrInvalidRecord)
	}

	tradeDate := str(r, "trade_date")
	at, err := time.ParseInLocation(timestampFormat, tradeDate+" "+str(r, "trade_time"), newYork)
	if err != nil {
		// some statements only carry the trade date.
		if at, err = time.ParseInLocation(dateFormat, tradeDate, newYork); err != nil {
			return time.Time{}, tx, fmt.Errorf("trade date %q: %w: %w", tradeDate, capgains.ErrInvalidDate, err)
		}
	}
	tx.ActivityDate = date.New(at.Date())
	tx.ProcessDate = tx.ActivityDate
	tx.SettleDate = tx.ActivityDate
	if s := str(r, "settle_date"); s != "" {
		if tx.SettleDate, err = date.Parse(s); err != nil {
			return time.Time{}, tx, fmt.Errorf("settle date: %w: %w", capgains.ErrInvalidDate, err)
		}
	}

	qty, err := num(r, "qty")
	if err != nil {
		return time.Time{}, tx, err
	}
	price, err := num(r, "price")
	if err != nil {
		return time.Time{}, tx, err
	}
	gross, err := num(r, "gross_amount")
	if err != nil {
		return time.Time{}, tx, err
	}
	if gross.IsZero() {
		gross = price.Mul(qty).Round(2)
	}
	gross = gross.Abs()
	if tx.Code == capgains.CodeBuy {
		gross = gross.Neg()
	}
	tx.Quantity = capgains.Q(qty.Abs())
	tx.Price = capgains.Dollars(price.Abs())
	tx.Amount = capgains.Dollars(gross)
	tx.Description = str(r, "note")
	return at, tx, nil
}

// decodeNonTrade returns false for activities that are not fees, dividends or interests.
func decodeNonTrade(r map[string]any) (capgains.Transaction, bool, error) {
	var tx capgains.Transaction
	switch strings.ToUpper(str(r, "type")) {
	case "FEE":
		tx.Code = capgains.CodeFee
	case "DIV":
		tx.Code = capgains.CodeDividend
	case "INT":
		tx.Code = capgains.CodeInterest
	default:
		return tx, false, nil
	}
	on, err := date.Parse(str(r, "date"))
	if err != nil {
		return tx, false, fmt.Errorf("date: %w: %w", capgains.ErrInvalidDate, err)
	}
	tx.ActivityDate, tx.ProcessDate, tx.SettleDate = on, on, on
	amount, err := num(r, "net_amount")
	if err != nil {
		return tx, false, err
	}
	tx.Amount = capgains.Dollars(amount)
	tx.Symbol = str(r, "symbol")
	tx.Description = str(r, "description")
	return tx, true, nil
}

func str(r map[string]any, key string) string {
	switch v := r[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// num reads a number, statements encode them either as JSON numbers or strings.
// A missing value is zero.
func num(r map[string]any, key string) (decimal.Decimal, error) {
	switch v := r[key].(type) {
	case nil:
		return decimal.Zero, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		if strings.TrimSpace(v) == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s %q: %w: %w", key, v, capgains.ErrInvalidRecord, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("%s has type %T: %w", key, v, capgains.ErrInvalidRecord)
	}
}

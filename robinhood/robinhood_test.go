package robinhood

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/capgains"
	"github.com/etnz/capgains/date"
	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "dollars", input: "$123", want: "123"},
		{name: "thousands", input: "$1,234.50", want: "1234.5"},
		{name: "parentheses", input: "($5.00)", want: "-5"},
		{name: "parentheses and minus", input: "(-$1,234)", want: "-1234"},
		{name: "minus", input: "-$12.5", want: "-12.5"},
		{name: "minus after dollar", input: "$-5.00", want: "-5"},
		{name: "minus after dollar with thousands", input: "$-1,234.50", want: "-1234.5"},
		{name: "zero", input: "$0", want: "0"},
		{name: "empty", input: "", want: "0"},
		{name: "million", input: "$1,000,000", want: "1000000"},
		{name: "spaces", input: " $7.25 ", want: "7.25"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.input, err)
			}
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("ParseAmount(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, input := range []string{"abc", "$", "()", "$1.2.3", "--5"} {
		if _, err := ParseAmount(input); !errors.Is(err, capgains.ErrInvalidRecord) {
			t.Errorf("ParseAmount(%q) error = %v, want %v", input, err, capgains.ErrInvalidRecord)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"5", "5"},
		{"0.125", "0.125"},
		{"10S", "10"},
		{"", "0"},
	}
	for _, tc := range testCases {
		got, err := ParseQuantity(tc.input)
		if err != nil {
			t.Fatalf("ParseQuantity(%q) unexpected error: %v", tc.input, err)
		}
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("ParseQuantity(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestDecoder_DecodeFile(t *testing.T) {
	txs, err := Decoder{}.DecodeFile("testdata/activity.csv")
	if err != nil {
		t.Fatalf("DecodeFile() unexpected error: %v", err)
	}
	if len(txs) != 5 {
		t.Fatalf("DecodeFile() returned %d transactions, want 5", len(txs))
	}

	// the report is newest first, transactions are returned oldest first.
	wantCodes := []capgains.TransCode{capgains.CodeACH, capgains.CodeBuy, capgains.CodeCashDiv, capgains.CodeGold, capgains.CodeSell}
	for i, want := range wantCodes {
		if txs[i].Code != want {
			t.Errorf("txs[%d].Code = %v, want %v", i, txs[i].Code, want)
		}
	}

	buy := txs[1]
	if buy.Symbol != "AAPL" {
		t.Errorf("buy.Symbol = %q, want %q", buy.Symbol, "AAPL")
	}
	if !buy.Quantity.Equal(capgains.Q(5)) {
		t.Errorf("buy.Quantity = %v, want 5", buy.Quantity)
	}
	if !buy.Price.Equal(capgains.Dollars(150)) {
		t.Errorf("buy.Price = %v, want 150", buy.Price)
	}
	if !buy.Amount.Equal(capgains.Dollars(-750)) {
		t.Errorf("buy.Amount = %v, want -750", buy.Amount)
	}
	if want := date.New(2024, 1, 10); buy.ProcessDate != want {
		t.Errorf("buy.ProcessDate = %v, want %v", buy.ProcessDate, want)
	}
	if want := date.New(2024, 1, 12); buy.SettleDate != want {
		t.Errorf("buy.SettleDate = %v, want %v", buy.SettleDate, want)
	}
	if !strings.HasPrefix(buy.Description, "Apple") {
		t.Errorf("buy.Description = %q, want a multi-line description starting with Apple", buy.Description)
	}

	if fee := txs[3]; !fee.Amount.Equal(capgains.Dollars(-5)) || fee.Category() != capgains.Fee {
		t.Errorf("fee = %v (%v), want a -5 fee", fee.Amount, fee.Category())
	}
	if deposit := txs[0]; !deposit.Amount.Equal(capgains.Dollars(1000)) {
		t.Errorf("deposit.Amount = %v, want 1000", deposit.Amount)
	}
}

func TestDecode_Errors(t *testing.T) {
	const header = `"Activity Date","Process Date","Settle Date","Instrument","Description","Trans Code","Quantity","Price","Amount"` + "\n"
	testCases := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "invalid date",
			input:   header + `"1/2/2024","13/2/2024","1/2/2024","AAPL","Apple","Buy","1","$1.00","($1.00)"`,
			wantErr: capgains.ErrInvalidDate,
			wantMsg: "line 2",
		},
		{
			name:    "invalid amount",
			input:   header + `"1/2/2024","1/2/2024","1/2/2024","AAPL","Apple","Buy","1","$1.00","oops"`,
			wantErr: capgains.ErrInvalidRecord,
			wantMsg: "Amount",
		},
		{
			name:    "missing column",
			input:   `"Instrument","Amount"` + "\n" + `"AAPL","$1.00"`,
			wantErr: capgains.ErrInvalidRecord,
			wantMsg: "Process Date",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.input))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Decode() error = %v, want %v", err, tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("Decode() error = %q, want it to mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestDecoder_Match(t *testing.T) {
	d := Decoder{}
	if !d.Match("2024.csv") || !d.Match("ACTIVITY.CSV") {
		t.Error("Match() = false for a CSV file, want true")
	}
	if d.Match("20240101.json") {
		t.Error("Match() = true for a JSON file, want false")
	}
}

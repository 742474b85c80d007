package capgains

import (
	"fmt"
	"strings"

	"github.com/etnz/capgains/date"
)

// TransCode is the brokerage code identifying the kind of a ledger line.
type TransCode string

// Transaction codes found in statements.
const (
	CodeBuy       TransCode = "Buy"
	CodeSell      TransCode = "Sell"
	CodeCashDiv   TransCode = "CDIV"
	CodeDividend  TransCode = "DIV"
	CodeInterest  TransCode = "INT"
	CodeGold      TransCode = "GOLD"
	CodeMargin    TransCode = "MINT"
	CodeFee       TransCode = "FEE"
	CodeACH       TransCode = "ACH"
	CodeGoldBoost TransCode = "GDBP"
	CodeTransfer  TransCode = "T/A"
	CodeACATSIn   TransCode = "ACATI"
	CodeACATSOut  TransCode = "ACATO"
)

// Category groups transaction codes by their effect.
type Category int

const (
	Other Category = iota
	Buy
	Sell
	Dividend
	Interest
	Fee
	CashMovement
	Benefit
	Transfer
)

func (c Category) String() string {
	switch c {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	case Dividend:
		return "dividend"
	case Interest:
		return "interest"
	case Fee:
		return "fee"
	case CashMovement:
		return "cash movement"
	case Benefit:
		return "benefit"
	case Transfer:
		return "transfer"
	default:
		return "other"
	}
}

// ParseTransCode normalizes a raw code. Buy and Sell are matched case-insensitively,
// other codes are upper-cased, unknown codes are kept.
func ParseTransCode(s string) TransCode {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "buy":
		return CodeBuy
	case "sell":
		return CodeSell
	}
	return TransCode(strings.ToUpper(s))
}

// Category returns the category of the code.
func (c TransCode) Category() Category {
	switch c {
	case CodeBuy:
		return Buy
	case CodeSell:
		return Sell
	case CodeCashDiv, CodeDividend:
		return Dividend
	case CodeInterest:
		return Interest
	case CodeGold, CodeMargin, CodeFee:
		return Fee
	case CodeACH:
		return CashMovement
	case CodeGoldBoost, CodeTransfer:
		return Benefit
	case CodeACATSIn, CodeACATSOut:
		return Transfer
	default:
		return Other
	}
}

// Transaction is one ledger line of a brokerage statement.
//
// Transactions are values: copying one never shares state with the original.
type Transaction struct {
	Symbol       string    // Symbol is the ticker, empty for non-trade lines.
	Code         TransCode // Code is the transaction code.
	Quantity     Quantity  // Quantity is the number of shares (non negative).
	Price        Money     // Price is the price per share.
	Amount       Money     // Amount is the signed net cash effect.
	ActivityDate date.Date
	ProcessDate  date.Date
	SettleDate   date.Date
	Description  string // Description is free text, used to tell cash movements apart.
	Seq          int    // Seq is the position in the merged feed.
}

// Category is a shortcut for t.Code.Category().
func (t Transaction) Category() Category { return t.Code.Category() }

// Clone returns an independent copy of t.
// Decimal values are never mutated in place, so a shallow copy shares nothing mutable.
func (t Transaction) Clone() Transaction { return t }

// withQuantity returns a copy of t for quantity q, with the amount recomputed from the price.
// The sign of the amount is kept.
func (t Transaction) withQuantity(q Quantity) Transaction {
	c := t.Clone()
	c.Quantity = q
	amount := t.Price.Mul(q).Round2()
	if t.Amount.IsNegative() {
		amount = amount.Neg()
	}
	c.Amount = amount
	return c
}

func (t Transaction) String() string {
	if t.Symbol == "" {
		return fmt.Sprintf("%s %s %s %q", t.ProcessDate.US(), t.Code, t.Amount, t.Description)
	}
	return fmt.Sprintf("%s %s %s %s @ %s", t.ProcessDate.US(), t.Code, t.Quantity, t.Symbol, t.Price)
}

// NewBuy creates a buy transaction, the amount is the cash paid.
func NewBuy(on date.Date, symbol string, quantity, price float64) Transaction {
	q, p := Q(quantity), Dollars(price)
	return Transaction{
		Symbol:       symbol,
		Code:         CodeBuy,
		Quantity:     q,
		Price:        p,
		Amount:       p.Mul(q).Round2().Neg(),
		ActivityDate: on,
		ProcessDate:  on,
		SettleDate:   on,
	}
}

// NewSell creates a sell transaction, the amount is the cash received.
func NewSell(on date.Date, symbol string, quantity, price float64) Transaction {
	q, p := Q(quantity), Dollars(price)
	return Transaction{
		Symbol:       symbol,
		Code:         CodeSell,
		Quantity:     q,
		Price:        p,
		Amount:       p.Mul(q).Round2(),
		ActivityDate: on,
		ProcessDate:  on,
		SettleDate:   on,
	}
}

// NewCash creates a non-trade transaction such as a dividend, a fee or a deposit.
func NewCash(on date.Date, code TransCode, amount float64, description string) Transaction {
	return Transaction{
		Code:         code,
		Amount:       Dollars(amount),
		ActivityDate: on,
		ProcessDate:  on,
		SettleDate:   on,
		Description:  description,
	}
}

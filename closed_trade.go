package capgains

import (
	"time"

	"github.com/etnz/capgains/date"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ClosedTrade is a realized sale matched against one lot, or one fragment of a lot.
type ClosedTrade struct {
	Symbol       string
	BuyQuantity  Quantity
	SellQuantity Quantity
	BuyDate      date.Date
	SellDate     date.Date
	BuyPrice     Money
	SellPrice    Money
	Profit       Money   // Profit is proceeds minus cost, rounded to the cent.
	ProfitPct    Percent // ProfitPct is the gain relative to the cost basis.
}

// newClosedTrade matches 'buy' and 'sell' which must have the same quantity.
func newClosedTrade(buy, sell Transaction) ClosedTrade {
	invested := buy.Price.Mul(buy.Quantity)
	proceeds := sell.Price.Mul(sell.Quantity)
	var p Percent
	if !invested.IsZero() {
		p = pct(proceeds.Decimal().Div(invested.Decimal()).Sub(decimal.NewFromInt(1)).Mul(hundred))
	}
	return ClosedTrade{
		Symbol:       sell.Symbol,
		BuyQuantity:  buy.Quantity,
		SellQuantity: sell.Quantity,
		BuyDate:      buy.ProcessDate,
		SellDate:     sell.ProcessDate,
		BuyPrice:     buy.Price,
		SellPrice:    sell.Price,
		Profit:       proceeds.Sub(invested).Round2(),
		ProfitPct:    p,
	}
}

// Quantity returns the matched quantity.
func (c ClosedTrade) Quantity() Quantity { return c.SellQuantity }

// Investment returns the cost basis of the matched quantity.
func (c ClosedTrade) Investment() Money { return c.BuyPrice.Mul(c.BuyQuantity) }

// Proceeds returns the gross amount of the sale.
func (c ClosedTrade) Proceeds() Money { return c.SellPrice.Mul(c.SellQuantity) }

// HoldingTime returns the time elapsed between acquisition and disposal.
func (c ClosedTrade) HoldingTime() time.Duration { return c.SellDate.Sub(c.BuyDate) }

// Term returns the holding term class of the trade.
func (c ClosedTrade) Term() HoldingTerm { return TermOf(c.HoldingTime()) }

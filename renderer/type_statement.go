package renderer

import (
	"github.com/etnz/capgains"
	"github.com/etnz/capgains/date"
)

// Statement is the view of a month statement.
// Numbers are kept as capgains types so that they carry their own renderers (SignedString etc.)
type Statement struct {
	// Title is the month, e.g. "March 2024".
	Title string `json:"title"`

	Dividend   capgains.Money `json:"dividend"`
	Interest   capgains.Money `json:"interest"`
	Benefit    capgains.Money `json:"benefit"`
	Fees       capgains.Money `json:"fees"`
	Deposit    capgains.Money `json:"deposit"`
	Withdrawal capgains.Money `json:"withdrawal"`
	Acats      capgains.Money `json:"acats"`

	// Activity lists the buys and sells of the month.
	Activity []StatementActivity `json:"activity"`
	// Holdings are the open positions at the end of the month.
	Holdings []capgains.Holding `json:"holdings"`

	ShortTerm capgains.Money `json:"shortTerm"`
	LongTerm  capgains.Money `json:"longTerm"`
	Total     capgains.Money `json:"total"`

	Symbols  []capgains.SymbolProfit `json:"symbols"`
	Warnings []string                `json:"warnings,omitempty"`
}

// StatementActivity is a single buy or sell.
type StatementActivity struct {
	Date     date.Date         `json:"date"`
	Code     string            `json:"code"`
	Symbol   string            `json:"symbol"`
	Quantity capgains.Quantity `json:"quantity"`
	Price    capgains.Money    `json:"price"`
	Amount   capgains.Money    `json:"amount"`
}

// NewStatement creates a new Statement view from a month statement.
func NewStatement(ms *capgains.MonthStatement) *Statement {
	md := ms.Metadata
	s := &Statement{
		Title:      ms.Month.Title(),
		Dividend:   md.Dividend,
		Interest:   md.Interest,
		Benefit:    md.Benefit,
		Fees:       md.Fees,
		Deposit:    md.Deposit,
		Withdrawal: md.Withdrawal,
		Acats:      md.Acats,
		Holdings:   ms.Holdings,
		ShortTerm:  ms.GainLoss.ShortTerm,
		LongTerm:   ms.GainLoss.LongTerm,
		Total:      ms.GainLoss.Total(),
		Symbols:    ms.Symbols,
	}
	for _, tx := range ms.Activity {
		s.Activity = append(s.Activity, StatementActivity{
			Date:     tx.ProcessDate,
			Code:     string(tx.Code),
			Symbol:   tx.Symbol,
			Quantity: tx.Quantity,
			Price:    tx.Price,
			Amount:   tx.Amount,
		})
	}
	for _, w := range ms.Warnings {
		s.Warnings = append(s.Warnings, w.Transaction.ProcessDate.US()+" "+w.Error())
	}
	return s
}

// StatementMarkdown renders a month statement with all its sections.
func StatementMarkdown(ms *capgains.MonthStatement) string {
	return RenderStatement(NewStatement(ms), StatementRenderOptions{})
}

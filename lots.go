package capgains

import (
	"slices"
)

// LotQueue holds the open buy lots of each symbol in FIFO order.
//
// Lots are stored by value: nothing returned by the queue aliases its content,
// and nothing pushed into it can be modified afterwards by the caller.
type LotQueue struct {
	lots map[string][]Transaction
}

// NewLotQueue returns an empty queue.
func NewLotQueue() *LotQueue {
	return &LotQueue{lots: make(map[string][]Transaction)}
}

// Push appends a lot at the tail of the symbol's queue.
func (q *LotQueue) Push(symbol string, lot Transaction) {
	q.lots[symbol] = append(q.lots[symbol], lot.Clone())
}

// Front returns the oldest lot for symbol.
func (q *LotQueue) Front(symbol string) (Transaction, bool) {
	l := q.lots[symbol]
	if len(l) == 0 {
		return Transaction{}, false
	}
	return l[0].Clone(), true
}

// Pop removes the oldest lot for symbol. It is a no-op if there is none.
func (q *LotQueue) Pop(symbol string) {
	l := q.lots[symbol]
	if len(l) == 0 {
		return
	}
	l[0] = Transaction{} // release
	q.lots[symbol] = l[1:]
}

// UpdateFront replaces the oldest lot for symbol. It is a no-op if there is none.
func (q *LotQueue) UpdateFront(symbol string, lot Transaction) {
	l := q.lots[symbol]
	if len(l) == 0 {
		return
	}
	l[0] = lot.Clone()
}

// TotalQuantity returns the sum of the quantity of all lots for symbol.
func (q *LotQueue) TotalQuantity(symbol string) Quantity {
	var total Quantity
	for _, lot := range q.lots[symbol] {
		total = total.Add(lot.Quantity)
	}
	return total
}

// IsEmpty returns true if there is no open lot for symbol.
func (q *LotQueue) IsEmpty(symbol string) bool { return len(q.lots[symbol]) == 0 }

// Size returns the number of symbols that have been pushed, emptied queues included.
func (q *LotQueue) Size() int { return len(q.lots) }

// Symbols returns the symbols that have been pushed, sorted.
func (q *LotQueue) Symbols() []string {
	symbols := make([]string, 0, len(q.lots))
	for s := range q.lots {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)
	return symbols
}

// Lots returns a copy of the open lots for symbol, oldest first.
func (q *LotQueue) Lots(symbol string) []Transaction {
	return slices.Clone(q.lots[symbol])
}

// Holding summarizes the open lots of a symbol.
type Holding struct {
	Symbol   string   `json:"symbol"`
	Quantity Quantity `json:"quantity"`
	Cost     Money    `json:"cost"` // Cost is the cost basis of the open lots.
	Lots     int      `json:"lots"`
}

// Holdings returns the open positions, sorted by symbol.
func (q *LotQueue) Holdings() []Holding {
	var holdings []Holding
	for _, symbol := range q.Symbols() {
		lots := q.lots[symbol]
		if len(lots) == 0 {
			continue
		}
		h := Holding{Symbol: symbol, Cost: Dollars(0), Lots: len(lots)}
		for _, lot := range lots {
			h.Quantity = h.Quantity.Add(lot.Quantity)
			h.Cost = h.Cost.Add(lot.Price.Mul(lot.Quantity))
		}
		h.Cost = h.Cost.Round2()
		holdings = append(holdings, h)
	}
	return holdings
}

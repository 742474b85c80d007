package capgains

import (
	"github.com/rs/zerolog"
)

// Matcher replays transactions in time order and matches sells against buy lots, FIFO.
//
// A Matcher owns its LotQueue: each processing pass must use a new Matcher.
type Matcher struct {
	queue    *LotQueue
	trades   []ClosedTrade
	warnings []SellWarning
	log      zerolog.Logger
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithLogger sets the logger used to report skipped sells.
func WithLogger(l zerolog.Logger) MatcherOption {
	return func(m *Matcher) { m.log = l }
}

// NewMatcher returns a Matcher with an empty LotQueue.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{queue: NewLotQueue(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Queue returns the open lots.
func (m *Matcher) Queue() *LotQueue { return m.queue }

// ClosedTrades returns the trades closed so far, in order.
func (m *Matcher) ClosedTrades() []ClosedTrade { return m.trades }

// Warnings returns the sells that have been skipped so far.
func (m *Matcher) Warnings() []SellWarning { return m.warnings }

// Replay applies all transactions in order.
func (m *Matcher) Replay(txs []Transaction) {
	for _, tx := range txs {
		m.Apply(tx)
	}
}

// Apply processes a single transaction. Only buys and sells have an effect.
//
// Apply panics with an *InvariantError if the queue runs out of lots while
// matching a sell that passed validation.
func (m *Matcher) Apply(tx Transaction) {
	switch tx.Category() {
	case Buy:
		m.queue.Push(tx.Symbol, tx)
	case Sell:
		m.processSell(tx)
	}
}

func (m *Matcher) processSell(sell Transaction) {
	if !sell.Quantity.IsPositive() {
		m.log.Debug().
			Str("symbol", sell.Symbol).
			Stringer("quantity", sell.Quantity).
			Str("date", sell.ProcessDate.String()).
			Msg("ignoring sell without shares")
		return
	}
	if err := VerifySell(m.queue, sell.Symbol, sell.Quantity); err != nil {
		m.log.Warn().
			Str("symbol", sell.Symbol).
			Stringer("quantity", sell.Quantity).
			Str("date", sell.ProcessDate.String()).
			Err(err).
			Msg("skipping sell")
		m.warnings = append(m.warnings, SellWarning{Transaction: sell, Err: err})
		return
	}
	m.matchLots(sell)
}

// matchLots closes lots in FIFO order until the sell is fully matched.
func (m *Matcher) matchLots(sell Transaction) {
	buy, _ := m.queue.Front(sell.Symbol)
	if !buy.Quantity.LessThan(sell.Quantity) {
		m.sellFullOrPartially(buy, sell)
		return
	}
	// The sell spans several lots: e.g. buy 5, buy 4, sell 7 closes the first lot
	// and 2 shares of the second one.
	remaining := sell
	for remaining.Quantity.IsPositive() {
		buy, ok := m.queue.Front(sell.Symbol)
		if !ok {
			panic(&InvariantError{Sell: sell, Remaining: remaining.Quantity, Err: ErrQueueUnderflow})
		}
		fragment := remaining.withQuantity(remaining.Quantity.Min(buy.Quantity))
		m.sellFullOrPartially(buy, fragment)
		remaining = remaining.withQuantity(remaining.Quantity.Sub(fragment.Quantity))
	}
}

// sellFullOrPartially matches 'sell' against 'buy', the front lot, when the lot is large enough.
func (m *Matcher) sellFullOrPartially(buy, sell Transaction) {
	switch buy.Quantity.Cmp(sell.Quantity) {
	case 0:
		m.trades = append(m.trades, newClosedTrade(buy, sell))
		m.queue.Pop(sell.Symbol)
	case 1:
		m.trades = append(m.trades, newClosedTrade(buy.withQuantity(sell.Quantity), sell))
		m.queue.UpdateFront(sell.Symbol, buy.withQuantity(buy.Quantity.Sub(sell.Quantity)))
	}
}

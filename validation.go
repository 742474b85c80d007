package capgains

import "fmt"

// VerifySell checks that 'qty' shares of 'symbol' can be matched against the open lots.
// It returns nil if they can, or an error wrapping ErrNeverBought or ErrInsufficientQuantity.
func VerifySell(queue *LotQueue, symbol string, qty Quantity) error {
	if queue.IsEmpty(symbol) {
		return fmt.Errorf("trying to sell %s %s that has not been bought yet: %w", qty, symbol, ErrNeverBought)
	}
	if held := queue.TotalQuantity(symbol); held.LessThan(qty) {
		return fmt.Errorf("trying to sell %s %s but only %s held: %w", qty, symbol, held, ErrInsufficientQuantity)
	}
	return nil
}

package capgains

import (
	"errors"
	"fmt"
)

// Sell feasibility errors. A sell failing with one of them is reported and skipped.
var (
	// ErrNeverBought indicates a sell of a symbol that has no open lot.
	ErrNeverBought = errors.New("symbol has not been bought")

	// ErrInsufficientQuantity indicates a sell of more shares than currently held.
	ErrInsufficientQuantity = errors.New("selling more than currently held")
)

// Input validation errors. They are fatal to a run.
var (
	// ErrInvalidDate indicates a missing or malformed date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidFilename indicates a statement file whose name does not encode a valid date.
	ErrInvalidFilename = errors.New("invalid statement filename")

	// ErrInvalidRecord indicates a statement row or record that cannot be decoded.
	ErrInvalidRecord = errors.New("invalid statement record")
)

// ErrQueueUnderflow indicates that a validated sell ran out of lots while being matched.
var ErrQueueUnderflow = errors.New("lot queue underflow")

// InvariantError is the panic value raised when the matching engine detects a corrupted state.
type InvariantError struct {
	Sell      Transaction // Sell is the sell being matched.
	Remaining Quantity    // Remaining is the quantity left unmatched.
	Err       error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: selling %s, %s left unmatched: %s", e.Err, e.Sell.Symbol, e.Remaining, e.Sell)
}

func (e *InvariantError) Unwrap() error { return e.Err }

// SellWarning records a sell that was skipped because it could not be matched.
type SellWarning struct {
	Transaction Transaction
	Err         error
}

func (w SellWarning) Error() string { return w.Err.Error() }

func (w SellWarning) Unwrap() error { return w.Err }

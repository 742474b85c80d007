package capgains

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/capgains/date"
)

// LongTermThreshold is the holding time above which a gain is long term.
const LongTermThreshold = 365 * date.Day

// HoldingTerm is the tax holding period class of a closed trade.
type HoldingTerm int

const (
	// ShortTerm gains come from lots held for a year or less.
	ShortTerm HoldingTerm = iota
	// LongTerm gains come from lots held for more than a year.
	LongTerm
)

// TermOf classifies a holding time.
func TermOf(held time.Duration) HoldingTerm {
	if held > LongTermThreshold {
		return LongTerm
	}
	return ShortTerm
}

func (t HoldingTerm) String() string {
	switch t {
	case ShortTerm:
		return "short"
	case LongTerm:
		return "long"
	default:
		return "unknown"
	}
}

// ParseHoldingTerm parses a string into a HoldingTerm.
func ParseHoldingTerm(s string) (HoldingTerm, error) {
	switch strings.ToLower(s) {
	case "short", "short-term":
		return ShortTerm, nil
	case "long", "long-term":
		return LongTerm, nil
	default:
		return 0, fmt.Errorf("unknown holding term: %q", s)
	}
}

package capgains

import "github.com/etnz/capgains/date"

// usd is a helper for test to create usd money from const
func usd(v float64) Money { return Dollars(v) }

// day is a helper for test to create a date from its ISO representation.
func day(s string) date.Date { return date.MustParse(s) }

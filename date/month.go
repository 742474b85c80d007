package date

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month identifies a calendar month of a given year, without the day.
//
// Its textual form is "M/YYYY" (e.g. "3/2024").
type Month struct {
	y int
	m time.Month
}

// NewMonth returns the month m of year y.
func NewMonth(y int, m time.Month) Month { return Month{y, m} }

// MonthOf returns the month containing d.
func MonthOf(d Date) Month { return Month{d.Year(), d.Month()} }

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Month returns the month of the year.
func (m Month) Month() time.Month { return m.m }

// String formats the month as "M/YYYY".
func (m Month) String() string { return fmt.Sprintf("%d/%d", int(m.m), m.y) }

// Title formats the month as "March 2024".
func (m Month) Title() string { return fmt.Sprintf("%s %d", m.m, m.y) }

// IsZero returns true if the month is the zero value.
func (m Month) IsZero() bool { return m == Month{} }

// Compare orders months by year, then month.
func (m Month) Compare(o Month) int {
	if m.y != o.y {
		return cmp.Compare(m.y, o.y)
	}
	return cmp.Compare(m.m, o.m)
}

// Before reports whether m is strictly before o.
func (m Month) Before(o Month) bool { return m.Compare(o) < 0 }

// Contains reports whether d falls within the month.
func (m Month) Contains(d Date) bool { return MonthOf(d) == m }

// Range returns the first and last day of the month.
func (m Month) Range() Range {
	first := New(m.y, m.m, 1)
	return Range{From: first, To: New(m.y, m.m+1, 0)}
}

// ParseMonth parses "M/YYYY" (leading zero optional).
func ParseMonth(s string) (Month, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 || len(parts[1]) != 4 {
		return Month{}, fmt.Errorf("invalid month %q want format MM/YYYY", s)
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil || m < 1 || m > 12 {
		return Month{}, fmt.Errorf("invalid month %q want format MM/YYYY", s)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format MM/YYYY: %w", s, err)
	}
	return Month{y, time.Month(m)}, nil
}

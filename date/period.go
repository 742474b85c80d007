package date

import "fmt"

// Period is the granularity of a report.
type Period int

func (p Period) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

const (
	Monthly Period = iota
	Yearly
)

// Key returns the name of the report period containing d, as used in output file names:
// "2024-03" for monthly, "2024" for yearly.
func (p Period) Key(d Date) string {
	switch p {
	case Monthly:
		return fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month()))
	case Yearly:
		return fmt.Sprintf("%04d", d.Year())
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

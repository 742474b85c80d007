package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/capgains"
)

// YearMarkdown renders the summary of a year report.
func YearMarkdown(yr *capgains.YearReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Capital Gains Report %d\n\n", yr.Year)
	fmt.Fprintf(&b, "Closed trades: %d\n\n", len(yr.Trades))

	fmt.Fprintln(&b, "| Term | Gain or Loss |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Short term | %s |\n", yr.GainLoss.ShortTerm.SignedString())
	fmt.Fprintf(&b, "| Long term | %s |\n", yr.GainLoss.LongTerm.SignedString())
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", yr.GainLoss.Total().SignedString())

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## Fees\n\n")
		fmt.Fprintln(w, "| Description | Gross Amount |")
		fmt.Fprintln(w, "|:---|---:|")
		for _, f := range yr.Fees {
			fmt.Fprintf(w, "| %s | %s |\n", f.Description, f.Amount)
		}
		return len(yr.Fees) > 0
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## Skipped Sells\n\n")
		for _, warn := range yr.Warnings {
			fmt.Fprintf(w, "- %s %s\n", warn.Transaction.ProcessDate.US(), warn.Error())
		}
		return len(yr.Warnings) > 0
	})
	return b.String()
}

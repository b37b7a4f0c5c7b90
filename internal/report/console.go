package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/reviewpulse/reviewpulse/internal/aggregate"
	"github.com/reviewpulse/reviewpulse/internal/sentiment"
)

// WriteSummary prints the aggregate summary to w.
func WriteSummary(w io.Writer, summary *aggregate.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "Sentiment Analysis Summary:")
	fmt.Fprintf(tw, "Total Reviews:\t%d\n", summary.Total())
	for _, label := range sentiment.All {
		fmt.Fprintf(tw, "%s:\t%d reviews (%.1f%%)\n", label, summary.Count(label), summary.Percent(label))
	}

	if summary.Total() > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Polarity Statistics:")
		fmt.Fprintf(tw, "Average Polarity:\t%.3f\n", summary.Mean())
		fmt.Fprintf(tw, "Min Polarity:\t%.3f\n", summary.Min())
		fmt.Fprintf(tw, "Max Polarity:\t%.3f\n", summary.Max())
		fmt.Fprintf(tw, "Std Dev:\t%.3f\n", summary.StdDev())
	}

	return tw.Flush()
}

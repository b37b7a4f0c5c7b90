package report

import (
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/reviewpulse/reviewpulse/internal/aggregate"
	"github.com/reviewpulse/reviewpulse/internal/sentiment"
)

// Fixed slice colors: green for Positive, yellow for Neutral, red for
// Negative.
var sliceColors = map[sentiment.Sentiment]drawing.Color{
	sentiment.Positive: drawing.ColorFromHex("2e8b57"),
	sentiment.Neutral:  drawing.ColorFromHex("ffd700"),
	sentiment.Negative: drawing.ColorFromHex("d0312d"),
}

// WritePieChart renders the sentiment distribution as a pie chart PNG
// at path. A summary with no reviews cannot be charted and returns an
// error.
func WritePieChart(path string, summary *aggregate.Summary) error {
	if summary.Total() == 0 {
		return fmt.Errorf("no reviews to chart")
	}

	values := make([]chart.Value, 0, len(sentiment.All))
	for _, label := range sentiment.All {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", label, summary.Percent(label)),
			Value: float64(summary.Count(label)),
			Style: chart.Style{FillColor: sliceColors[label]},
		})
	}

	pie := chart.PieChart{
		Title:  "Sentiment Analysis of Restaurant Reviews",
		Width:  512,
		Height: 512,
		Values: values,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := pie.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("rendering pie chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing chart file: %w", err)
	}
	return nil
}

package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/reviewpulse/reviewpulse/internal/sentiment"
)

// Record is one classified review ready for export.
type Record struct {
	Review    string
	Sentiment sentiment.Sentiment
	Polarity  float64
}

// WriteCSV writes one row per record to a timestamped results file in
// dir and returns the path. Polarity is formatted to three decimals.
func WriteCSV(dir string, records []Record, now time.Time) (string, error) {
	name := fmt.Sprintf("sentiment_results_%s.csv", now.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating results file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"review", "sentiment", "polarity"}); err != nil {
		return "", fmt.Errorf("writing results header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Review,
			rec.Sentiment.String(),
			strconv.FormatFloat(rec.Polarity, 'f', 3, 64),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing results row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing results file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing results file: %w", err)
	}
	return path, nil
}

package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/reviewpulse/reviewpulse/internal/aggregate"
	"github.com/reviewpulse/reviewpulse/internal/config"
	"github.com/reviewpulse/reviewpulse/internal/input"
	"github.com/reviewpulse/reviewpulse/internal/normalize"
	"github.com/reviewpulse/reviewpulse/internal/report"
	"github.com/reviewpulse/reviewpulse/internal/sentiment"
)

// Result holds the counters and output paths of a full run.
type Result struct {
	Processed   int
	Skipped     int // greeting rows
	Malformed   int // rows without a usable review cell
	ScoreErrors int
	Summary     *aggregate.Summary
	CSVPath     string
	ChartPath   string
}

// Pipeline runs the load -> normalize -> score -> classify ->
// aggregate -> report sequence for one invocation.
type Pipeline struct {
	cfg      *config.Config
	scorer   sentiment.Scorer
	progress Progress
	out      io.Writer
}

// New creates a pipeline. A nil progress hook disables progress
// reporting; a nil out writes the summary to stdout.
func New(cfg *config.Config, scorer sentiment.Scorer, progress Progress, out io.Writer) *Pipeline {
	if progress == nil {
		progress = NopProgress{}
	}
	if out == nil {
		out = os.Stdout
	}
	return &Pipeline{cfg: cfg, scorer: scorer, progress: progress, out: out}
}

// Run executes the full pipeline. Input-file problems are fatal;
// malformed rows and scorer failures are logged and skipped.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	reader := input.NewReader(p.cfg.Input.Path, p.cfg.Input.ReviewColumn, p.cfg.Comma())
	rows, rowErrs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	r := &Result{Summary: aggregate.New(), Malformed: len(rowErrs)}
	for _, re := range rowErrs {
		slog.Warn("Skipping malformed row",
			slog.Int("line", re.Line),
			slog.String("reason", re.Reason))
	}

	var records []report.Record
	p.progress.Start(len(rows))
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			p.progress.Finish()
			return nil, err
		}
		p.progress.Step()

		cleaned := normalize.Clean(row.Review)
		if slices.Contains(p.cfg.Greetings, cleaned) {
			slog.Info("Hello! How can I assist you?", slog.String("customer", row.Review))
			r.Skipped++
			continue
		}

		polarity, err := p.scorer.Score(cleaned)
		if err != nil {
			slog.Warn("Scoring failed, review excluded",
				slog.Int("line", row.Line),
				slog.String("error", err.Error()))
			r.ScoreErrors++
			continue
		}

		label := sentiment.Classify(polarity)
		r.Summary.Add(label, polarity)
		records = append(records, report.Record{
			Review:    row.Review,
			Sentiment: label,
			Polarity:  polarity,
		})
		r.Processed++
		slog.Info("Prediction",
			slog.String("review", truncate(row.Review, 50)),
			slog.String("sentiment", label.String()),
			slog.Float64("polarity", polarity))
	}
	p.progress.Finish()

	csvPath, err := report.WriteCSV(p.cfg.Output.Dir, records, time.Now())
	if err != nil {
		return nil, err
	}
	r.CSVPath = csvPath
	slog.Info("Results saved", slog.String("path", csvPath))

	if r.Summary.Total() == 0 {
		slog.Warn("No reviews processed, skipping pie chart")
	} else {
		chartPath := p.cfg.ChartPath()
		if err := report.WritePieChart(chartPath, r.Summary); err != nil {
			return nil, err
		}
		r.ChartPath = chartPath
		slog.Info("Sentiment pie chart saved", slog.String("path", chartPath))
	}

	if err := report.WriteSummary(p.out, r.Summary); err != nil {
		return nil, err
	}
	return r, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

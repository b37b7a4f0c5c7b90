package aggregate

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/reviewpulse/reviewpulse/internal/sentiment"
)

const tolerance = 1e-9

func TestEmptySummary(t *testing.T) {
	s := New()

	if s.Total() != 0 {
		t.Errorf("expected total 0, got %d", s.Total())
	}
	for _, label := range sentiment.All {
		if s.Percent(label) != 0 {
			t.Errorf("expected 0%% for %v on empty summary, got %v", label, s.Percent(label))
		}
	}
	if s.Mean() != 0 || s.Min() != 0 || s.Max() != 0 || s.StdDev() != 0 {
		t.Error("expected all statistics to be 0 on an empty summary")
	}
}

func TestSingleRecord(t *testing.T) {
	s := New()
	s.Add(sentiment.Positive, 0.6)

	if s.Total() != 1 {
		t.Fatalf("expected total 1, got %d", s.Total())
	}
	if s.Mean() != 0.6 {
		t.Errorf("expected mean 0.6, got %v", s.Mean())
	}
	if s.Min() != 0.6 || s.Max() != 0.6 {
		t.Errorf("expected min = max = 0.6, got min %v max %v", s.Min(), s.Max())
	}
	if s.StdDev() != 0 {
		t.Errorf("expected stddev 0 for a single record, got %v", s.StdDev())
	}
	if s.Percent(sentiment.Positive) != 100 {
		t.Errorf("expected 100%% Positive, got %v", s.Percent(sentiment.Positive))
	}
}

func TestCountsAndPercentages(t *testing.T) {
	s := New()
	s.Add(sentiment.Positive, 0.6)
	s.Add(sentiment.Positive, 0.3)
	s.Add(sentiment.Neutral, 0.05)
	s.Add(sentiment.Negative, -0.35)

	total := 0
	percent := 0.0
	for _, label := range sentiment.All {
		total += s.Count(label)
		percent += s.Percent(label)
	}
	if total != s.Total() {
		t.Errorf("per-sentiment counts sum to %d, expected total %d", total, s.Total())
	}
	if math.Abs(percent-100) > tolerance {
		t.Errorf("percentages sum to %v, expected 100", percent)
	}
	if s.Count(sentiment.Positive) != 2 {
		t.Errorf("expected 2 Positive, got %d", s.Count(sentiment.Positive))
	}
	if s.Percent(sentiment.Negative) != 25 {
		t.Errorf("expected 25%% Negative, got %v", s.Percent(sentiment.Negative))
	}
}

func TestOrderIndependence(t *testing.T) {
	polarities := []float64{0.6, -0.35, 0.05, 0.92, -0.8, 0.1, -0.1, 0.0, 0.44}

	build := func(order []float64) *Summary {
		s := New()
		for _, p := range order {
			s.Add(sentiment.Classify(p), p)
		}
		return s
	}

	want := build(polarities)

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		shuffled := append([]float64(nil), polarities...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		got := build(shuffled)

		if got.Total() != want.Total() {
			t.Fatalf("total changed under permutation: %d vs %d", got.Total(), want.Total())
		}
		for _, label := range sentiment.All {
			if got.Count(label) != want.Count(label) {
				t.Errorf("count for %v changed under permutation", label)
			}
		}
		if math.Abs(got.Mean()-want.Mean()) > tolerance {
			t.Errorf("mean changed under permutation: %v vs %v", got.Mean(), want.Mean())
		}
		if math.Abs(got.StdDev()-want.StdDev()) > tolerance {
			t.Errorf("stddev changed under permutation: %v vs %v", got.StdDev(), want.StdDev())
		}
		if got.Min() != want.Min() || got.Max() != want.Max() {
			t.Errorf("min/max changed under permutation")
		}
	}
}

func TestStatisticsAgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	polarities := make([]float64, 500)
	for i := range polarities {
		polarities[i] = rng.Float64()*2 - 1
	}

	s := New()
	for _, p := range polarities {
		s.Add(sentiment.Classify(p), p)
	}

	if mean := stat.Mean(polarities, nil); math.Abs(s.Mean()-mean) > 1e-12 {
		t.Errorf("mean %v disagrees with gonum %v", s.Mean(), mean)
	}
	if sd := stat.StdDev(polarities, nil); math.Abs(s.StdDev()-sd) > 1e-12 {
		t.Errorf("stddev %v disagrees with gonum %v", s.StdDev(), sd)
	}
}

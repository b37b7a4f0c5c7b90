package aggregate

import (
	"math"

	"github.com/reviewpulse/reviewpulse/internal/sentiment"
)

// Summary accumulates per-sentiment counts and polarity statistics over
// a stream of classified reviews in a single pass with constant state.
// The zero value is ready to use.
type Summary struct {
	counts [3]int
	n      int
	min    float64
	max    float64
	mean   float64
	m2     float64 // sum of squared deviations (Welford)
}

// New creates an empty summary.
func New() *Summary {
	return &Summary{}
}

// Add folds one classified review into the summary.
func (s *Summary) Add(label sentiment.Sentiment, polarity float64) {
	s.counts[label]++
	s.n++
	if s.n == 1 {
		s.min, s.max = polarity, polarity
	} else {
		s.min = math.Min(s.min, polarity)
		s.max = math.Max(s.max, polarity)
	}
	delta := polarity - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (polarity - s.mean)
}

// Total returns the number of reviews folded in.
func (s *Summary) Total() int {
	return s.n
}

// Count returns the number of reviews with the given sentiment.
func (s *Summary) Count(label sentiment.Sentiment) int {
	return s.counts[label]
}

// Percent returns the share of reviews with the given sentiment as a
// percentage. An empty summary reports 0 for every category.
func (s *Summary) Percent(label sentiment.Sentiment) float64 {
	if s.n == 0 {
		return 0
	}
	return float64(s.counts[label]) / float64(s.n) * 100
}

// Mean returns the arithmetic mean polarity, 0 when empty.
func (s *Summary) Mean() float64 {
	return s.mean
}

// Min returns the lowest polarity seen, 0 when empty.
func (s *Summary) Min() float64 {
	return s.min
}

// Max returns the highest polarity seen, 0 when empty.
func (s *Summary) Max() float64 {
	return s.max
}

// StdDev returns the sample standard deviation of the polarity scores
// (n-1 denominator), 0 when fewer than two reviews were added.
func (s *Summary) StdDev() float64 {
	if s.n < 2 {
		return 0
	}
	return math.Sqrt(s.m2 / float64(s.n-1))
}

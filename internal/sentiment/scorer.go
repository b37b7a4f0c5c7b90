package sentiment

import (
	"fmt"
	"unicode/utf8"

	"github.com/jonreiter/govader"
)

// Scorer produces a polarity score in [-1.0, 1.0] for a piece of text.
// Any implementation can stand in for the default VADER scorer.
type Scorer interface {
	Score(text string) (float64, error)
}

// VADER scores text against the VADER lexicon, reporting the compound
// score as the scalar polarity.
type VADER struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVADER creates a VADER-backed scorer.
func NewVADER() *VADER {
	return &VADER{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity for text.
func (v *VADER) Score(text string) (float64, error) {
	if !utf8.ValidString(text) {
		return 0, fmt.Errorf("text is not valid UTF-8")
	}
	return v.analyzer.PolarityScores(text).Compound, nil
}

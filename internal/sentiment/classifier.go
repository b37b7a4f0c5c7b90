package sentiment

// Sentiment is the discrete category derived from a polarity score.
type Sentiment int

const (
	Positive Sentiment = iota
	Neutral
	Negative
)

// Classification thresholds on the polarity axis. Scores on a boundary
// are Neutral.
const (
	PositiveThreshold = 0.1
	NegativeThreshold = -0.1
)

// All lists the sentiments in reporting order.
var All = []Sentiment{Positive, Neutral, Negative}

func (s Sentiment) String() string {
	switch s {
	case Positive:
		return "Positive"
	case Neutral:
		return "Neutral"
	case Negative:
		return "Negative"
	default:
		return "Unknown"
	}
}

// Classify maps a polarity score to its sentiment category. Total over
// all finite floats; scores outside [-1, 1] indicate a scorer bug but
// still classify by the same cuts.
func Classify(polarity float64) Sentiment {
	switch {
	case polarity > PositiveThreshold:
		return Positive
	case polarity < NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

package model

// Kind selects the tier representation.
type Kind int

const (
	PointTier    Kind = iota // discrete labeled instants (Praat TextTier)
	IntervalTier             // contiguous labeled spans (Praat IntervalTier)
)

// Class returns the Praat class name written into the TextGrid header.
func (k Kind) Class() string {
	if k == IntervalTier {
		return "IntervalTier"
	}
	return "TextTier"
}

// TimedLabel is one valid input row: a timestamp in seconds and its label.
// The label may be empty.
type TimedLabel struct {
	Time  float64
	Label string
}

// Interval is a labeled span with Start <= End.
type Interval struct {
	Start float64
	End   float64
	Label string
}

// Tier is the single annotation track written into the TextGrid.
// Exactly one of Points or Intervals is populated, matching Kind.
// Invariant: XMin <= XMax. Built once per run and never mutated after
// serialization begins.
type Tier struct {
	Kind      Kind
	Name      string
	XMin      float64
	XMax      float64
	Points    []TimedLabel
	Intervals []Interval
}

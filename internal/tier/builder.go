package tier

import (
	"errors"
	"sort"

	"github.com/crimson-sun/gridgen/internal/model"
)

// Mode selects how parsed rows become a tier.
type Mode string

const (
	ModeAuto     Mode = "auto"     // point when any label is present, else interval
	ModePoint    Mode = "point"    // TextTier
	ModeInterval Mode = "interval" // IntervalTier
)

// ErrNoEntries is returned when the input yielded no valid rows.
var ErrNoEntries = errors.New("no valid time entries found in input")

// Config controls tier construction.
type Config struct {
	Mode     Mode
	Duration *float64 // explicit xmax; nil derives max(time) + Tail
	Tail     float64  // seconds appended after the last timestamp
	Name     string
}

// Build sorts the parsed rows by time and assembles the tier. The tier always
// spans [0, xmax]. An explicit duration becomes xmax as-is, even when it is
// smaller than the data; otherwise xmax is the last timestamp plus the tail.
func Build(rows []model.TimedLabel, cfg Config) (model.Tier, error) {
	if len(rows) == 0 {
		return model.Tier{}, ErrNoEntries
	}

	sorted := make([]model.TimedLabel, len(rows))
	copy(sorted, rows)
	// Stable: rows with equal times keep their file order.
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	xmin := 0.0
	xmax := sorted[len(sorted)-1].Time + cfg.Tail
	if cfg.Duration != nil {
		xmax = *cfg.Duration
	}

	mode := cfg.Mode
	if mode == ModeAuto {
		mode = ModeInterval
		for _, r := range sorted {
			if r.Label != "" {
				mode = ModePoint
				break
			}
		}
	}

	t := model.Tier{Name: cfg.Name, XMin: xmin, XMax: xmax}
	if mode == ModePoint {
		t.Kind = model.PointTier
		t.Points = sorted
		return t, nil
	}
	t.Kind = model.IntervalTier
	t.Intervals = buildIntervals(sorted, xmin, xmax)
	return t, nil
}

// buildIntervals turns sorted boundary times into contiguous spans covering
// [xmin, xmax]. Each boundary's label attaches to the span starting at that
// boundary; the last boundary's label carries onto the trailing span up to
// xmax. A leading unlabeled span fills the gap before the first boundary.
func buildIntervals(rows []model.TimedLabel, xmin, xmax float64) []model.Interval {
	if len(rows) == 0 {
		return []model.Interval{{Start: xmin, End: xmax}}
	}

	var spans []model.Interval
	if xmin < rows[0].Time {
		spans = append(spans, model.Interval{Start: xmin, End: rows[0].Time})
	}
	for i := 0; i < len(rows)-1; i++ {
		spans = append(spans, model.Interval{
			Start: rows[i].Time,
			End:   rows[i+1].Time,
			Label: rows[i].Label,
		})
	}
	last := rows[len(rows)-1]
	if last.Time < xmax {
		spans = append(spans, model.Interval{Start: last.Time, End: xmax, Label: last.Label})
	}
	return spans
}

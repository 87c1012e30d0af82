package gridgen

import (
	"fmt"

	"github.com/crimson-sun/gridgen/internal/parser"
	"github.com/crimson-sun/gridgen/internal/pipeline"
	"github.com/crimson-sun/gridgen/internal/tier"
)

// ErrNoEntries reports that the input contained no valid time entries.
// Test with errors.Is.
var ErrNoEntries = tier.ErrNoEntries

// Result describes a completed conversion.
type Result struct {
	OutputPath string // where the TextGrid was written
	Class      string // "TextTier" or "IntervalTier"
	Entries    int    // number of valid rows parsed
}

// Generate reads the delimited input file and writes a TextGrid to output.
// An empty output derives the path from the input (trailing .tsv becomes
// .TextGrid). No file is written when an error is returned.
func Generate(input, output string, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch tier.Mode(o.mode) {
	case tier.ModeAuto, tier.ModePoint, tier.ModeInterval:
	default:
		return Result{}, fmt.Errorf("gridgen: invalid mode %q", o.mode)
	}

	res, err := pipeline.Run(pipeline.Config{
		Input:  input,
		Output: output,
		Parser: parser.Options{
			Delimiter: o.delimiter,
			TimeCol:   o.timeCol,
			LabelCol:  o.labelCol,
		},
		Tier: tier.Config{
			Mode:     tier.Mode(o.mode),
			Duration: o.duration,
			Tail:     o.tail,
			Name:     o.tierName,
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("gridgen: %w", err)
	}
	return Result{
		OutputPath: res.OutputPath,
		Class:      res.Kind.Class(),
		Entries:    res.Entries,
	}, nil
}

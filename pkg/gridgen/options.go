package gridgen

type options struct {
	mode      string
	duration  *float64
	tierName  string
	delimiter string
	timeCol   int
	labelCol  int
	tail      float64
}

// Option configures a Generate call.
type Option func(*options)

// WithMode forces the tier mode: "point", "interval", or "auto" (default).
func WithMode(mode string) Option {
	return func(o *options) { o.mode = mode }
}

// WithDuration sets xmax explicitly, in seconds. Without it xmax is the
// last timestamp plus the tail.
func WithDuration(seconds float64) Option {
	return func(o *options) { o.duration = &seconds }
}

// WithTierName sets the tier name written into the TextGrid. Default: "events".
func WithTierName(name string) Option {
	return func(o *options) { o.tierName = name }
}

// WithDelimiter sets the input field separator. Default: tab.
func WithDelimiter(d string) Option {
	return func(o *options) { o.delimiter = d }
}

// WithColumns sets the 0-based column indices for times and labels.
// Defaults: 0 and 1.
func WithColumns(timeCol, labelCol int) Option {
	return func(o *options) {
		o.timeCol = timeCol
		o.labelCol = labelCol
	}
}

// WithTail sets the seconds appended after the last timestamp when no
// explicit duration is given. Default: 1.0.
func WithTail(seconds float64) Option {
	return func(o *options) { o.tail = seconds }
}

func defaultOptions() options {
	return options{
		mode:      "auto",
		tierName:  "events",
		delimiter: "\t",
		timeCol:   0,
		labelCol:  1,
		tail:      1.0,
	}
}

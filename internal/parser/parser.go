package parser

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/crimson-sun/gridgen/internal/model"
)

// Options control how input rows are interpreted.
type Options struct {
	Delimiter string // field separator; empty means tab
	TimeCol   int    // 0-based column holding the timestamp
	LabelCol  int    // 0-based column holding the label
}

// DefaultOptions returns the standard TSV layout: tab-separated,
// time in column 0, label in column 1.
func DefaultOptions() Options {
	return Options{Delimiter: "\t", TimeCol: 0, LabelCol: 1}
}

// ParseFile reads a delimited file and returns one TimedLabel per valid row,
// in file order. Rows with a missing or non-numeric time field are skipped.
func ParseFile(path string, opts Options) ([]model.TimedLabel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("parser: read %s: %w", path, err)
	}
	return rows, nil
}

// Parse reads delimited rows from r. Empty lines and lines whose first field
// starts with '#' are skipped. A row is kept only when its time column parses
// as a float; anything else is dropped without error. The label column is
// optional: rows too short to reach it get an empty label.
func Parse(r io.Reader, opts Options) ([]model.TimedLabel, error) {
	if opts.Delimiter == "" {
		opts.Delimiter = "\t"
	}

	// Transcription tools on some platforms emit UTF-8 with a byte-order
	// mark; decode through a BOM-stripping transform so the first time
	// value still parses.
	sc := bufio.NewScanner(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))

	var rows []model.TimedLabel
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, opts.Delimiter)
		if strings.HasPrefix(strings.TrimSpace(fields[0]), "#") {
			continue
		}
		if opts.TimeCol < 0 || opts.TimeCol >= len(fields) {
			slog.Debug("skipping row: missing time column", "line", lineNo)
			continue
		}
		t, err := strconv.ParseFloat(strings.TrimSpace(fields[opts.TimeCol]), 64)
		if err != nil {
			slog.Debug("skipping row: non-numeric time", "line", lineNo, "value", fields[opts.TimeCol])
			continue
		}
		var label string
		if opts.LabelCol >= 0 && opts.LabelCol < len(fields) {
			label = strings.TrimSpace(fields[opts.LabelCol])
		}
		rows = append(rows, model.TimedLabel{Time: t, Label: label})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return rows, nil
}

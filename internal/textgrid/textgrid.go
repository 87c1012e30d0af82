// Package textgrid serializes a tier into Praat's ooTextFile TextGrid format.
package textgrid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/crimson-sun/gridgen/internal/model"
)

// Escape prepares a label for embedding in a double-quoted TextGrid string.
// Backslashes are doubled before quotes are escaped so the backslash
// introduced by quote-escaping is never itself re-escaped.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Unescape reverses Escape: a backslash makes the following byte literal.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// formatFloat renders a float in Go's shortest round-tripping form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Write serializes the tier to w. Praat rejects files that deviate from the
// grammar, so every header line is emitted verbatim.
func Write(w io.Writer, t model.Tier) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "File type = \"ooTextFile\"\n")
	fmt.Fprint(bw, "Object class = \"TextGrid\"\n\n")
	fmt.Fprintf(bw, "xmin = %s\n", formatFloat(t.XMin))
	fmt.Fprintf(bw, "xmax = %s\n", formatFloat(t.XMax))
	fmt.Fprint(bw, "tiers? <exists>\n")
	fmt.Fprint(bw, "size = 1\n")
	fmt.Fprint(bw, "item []:\n")
	fmt.Fprint(bw, "    item [1]:\n")
	fmt.Fprintf(bw, "        class = \"%s\"\n", t.Kind.Class())
	fmt.Fprintf(bw, "        name = \"%s\"\n", t.Name)
	fmt.Fprintf(bw, "        xmin = %s\n", formatFloat(t.XMin))
	fmt.Fprintf(bw, "        xmax = %s\n", formatFloat(t.XMax))

	switch t.Kind {
	case model.PointTier:
		fmt.Fprintf(bw, "        points: size = %d\n", len(t.Points))
		for i, p := range t.Points {
			fmt.Fprintf(bw, "        points [%d]:\n", i+1)
			fmt.Fprintf(bw, "            number = %s\n", formatFloat(p.Time))
			fmt.Fprintf(bw, "            mark = \"%s\"\n", Escape(p.Label))
		}
	case model.IntervalTier:
		fmt.Fprintf(bw, "        intervals: size = %d\n", len(t.Intervals))
		for i, iv := range t.Intervals {
			fmt.Fprintf(bw, "        intervals [%d]:\n", i+1)
			fmt.Fprintf(bw, "            xmin = %s\n", formatFloat(iv.Start))
			fmt.Fprintf(bw, "            xmax = %s\n", formatFloat(iv.End))
			fmt.Fprintf(bw, "            text = \"%s\"\n", Escape(iv.Label))
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("textgrid: write: %w", err)
	}
	return nil
}

// WriteFile creates (or overwrites) path and serializes the tier into it.
func WriteFile(path string, t model.Tier) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("textgrid: create %s: %w", path, err)
	}
	if err := Write(f, t); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("textgrid: close %s: %w", path, err)
	}
	return nil
}

package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crimson-sun/gridgen/internal/model"
)

func TestParse_BasicTSV(t *testing.T) {
	input := "0.5\tword1\n1.2\tword2\n2.0\n"

	rows, err := Parse(strings.NewReader(input), DefaultOptions())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []model.TimedLabel{
		{Time: 0.5, Label: "word1"},
		{Time: 1.2, Label: "word2"},
		{Time: 2.0, Label: ""},
	}
	assertRows(t, rows, want)
}

func TestParse_SkipsCommentsAndEmptyLines(t *testing.T) {
	input := "# header comment\n\n0.5\tone\n  #  indented comment\n1.0\ttwo\n"

	rows, err := Parse(strings.NewReader(input), DefaultOptions())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := []model.TimedLabel{
		{Time: 0.5, Label: "one"},
		{Time: 1.0, Label: "two"},
	}
	assertRows(t, rows, want)
}

func TestParse_DropsMalformedRows(t *testing.T) {
	// Non-numeric times are skipped without error; valid rows survive.
	input := "abc\tlabel\n0.5\tok\nnot a number\n1.5\talso ok\n"

	rows, err := Parse(strings.NewReader(input), DefaultOptions())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := []model.TimedLabel{
		{Time: 0.5, Label: "ok"},
		{Time: 1.5, Label: "also ok"},
	}
	assertRows(t, rows, want)
}

func TestParse_TrimsWhitespace(t *testing.T) {
	input := " 0.5 \t  spaced out  \n"

	rows, err := Parse(strings.NewReader(input), DefaultOptions())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	assertRows(t, rows, []model.TimedLabel{{Time: 0.5, Label: "spaced out"}})
}

func TestParse_CustomDelimiterAndColumns(t *testing.T) {
	input := "id1,hello,0.5\nid2,world,1.5\nid3,short\n"

	rows, err := Parse(strings.NewReader(input), Options{
		Delimiter: ",",
		TimeCol:   2,
		LabelCol:  1,
	})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	// id3 has no column 2, so the row is dropped.
	want := []model.TimedLabel{
		{Time: 0.5, Label: "hello"},
		{Time: 1.5, Label: "world"},
	}
	assertRows(t, rows, want)
}

func TestParse_EmptyDelimiterDefaultsToTab(t *testing.T) {
	rows, err := Parse(strings.NewReader("0.5\tx\n"), Options{LabelCol: 1})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	assertRows(t, rows, []model.TimedLabel{{Time: 0.5, Label: "x"}})
}

func TestParse_StripsUTF8BOM(t *testing.T) {
	input := "\xef\xbb\xbf0.5\tfirst\n"

	rows, err := Parse(strings.NewReader(input), DefaultOptions())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	assertRows(t, rows, []model.TimedLabel{{Time: 0.5, Label: "first"}})
}

func TestParse_NegativeColumnsDropRows(t *testing.T) {
	rows, err := Parse(strings.NewReader("0.5\tx\n"), Options{Delimiter: "\t", TimeCol: -1, LabelCol: 1})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(rows))
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.tsv")
	if err := os.WriteFile(path, []byte("0.5\tword\n1.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rows, err := ParseFile(path, DefaultOptions())
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	want := []model.TimedLabel{
		{Time: 0.5, Label: "word"},
		{Time: 1.0, Label: ""},
	}
	assertRows(t, rows, want)
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.tsv"), DefaultOptions())
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func assertRows(t *testing.T, got, want []model.TimedLabel) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

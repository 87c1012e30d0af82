// Package pipeline wires the parser, tier builder, and serializer into a
// single run: one input file in, one TextGrid out.
package pipeline

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/crimson-sun/gridgen/internal/model"
	"github.com/crimson-sun/gridgen/internal/parser"
	"github.com/crimson-sun/gridgen/internal/textgrid"
	"github.com/crimson-sun/gridgen/internal/tier"
)

// Config collects everything one run needs.
type Config struct {
	Input  string
	Output string // empty: derived from Input
	Parser parser.Options
	Tier   tier.Config
}

// Result reports what a run produced.
type Result struct {
	OutputPath string
	Kind       model.Kind
	Entries    int
}

// Run executes parse → build → serialize once. The output file is only
// created after parsing and tier construction succeed, so failed runs never
// leave a file behind.
func Run(cfg Config) (Result, error) {
	rows, err := parser.ParseFile(cfg.Input, cfg.Parser)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}

	t, err := tier.Build(rows, cfg.Tier)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}

	out := cfg.Output
	if out == "" {
		out = DerivedOutputPath(cfg.Input)
	}
	if err := textgrid.WriteFile(out, t); err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}

	slog.Info("wrote TextGrid",
		"path", out,
		"class", t.Kind.Class(),
		"entries", len(rows),
		"xmax", t.XMax)
	return Result{OutputPath: out, Kind: t.Kind, Entries: len(rows)}, nil
}

// DerivedOutputPath maps an input path to the default output path: a trailing
// .tsv suffix (any case) is replaced by .TextGrid, otherwise .TextGrid is
// appended.
func DerivedOutputPath(input string) string {
	if strings.HasSuffix(strings.ToLower(input), ".tsv") {
		return input[:len(input)-len(".tsv")] + ".TextGrid"
	}
	return input + ".TextGrid"
}

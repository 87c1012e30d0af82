package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/gridgen/internal/config"
	"github.com/crimson-sun/gridgen/internal/logging"
	"github.com/crimson-sun/gridgen/internal/parser"
	"github.com/crimson-sun/gridgen/internal/pipeline"
	"github.com/crimson-sun/gridgen/internal/tier"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gridgen: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	var (
		mode      string
		duration  float64
		tierName  string
		delimiter string
		timeCol   int
		labelCol  int
		tail      float64
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:   "gridgen <input> [output]",
		Short: "Generate a Praat TextGrid from a delimited file of times and labels",
		Long: `gridgen converts a tab-separated file of timestamps (seconds) with
optional labels into a Praat TextGrid annotation file.

Input format, one record per line:
  time [<tab> label]

With --mode auto (the default) a point tier (TextTier) is written when any
label is present, otherwise an interval tier (IntervalTier) spanning the
times. The output path defaults to the input path with a trailing .tsv
replaced by .TextGrid.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(logging.ParseLevel(logLevel))

			switch tier.Mode(mode) {
			case tier.ModeAuto, tier.ModePoint, tier.ModeInterval:
			default:
				return fmt.Errorf("invalid --mode %q (want auto, point, or interval)", mode)
			}

			run := pipeline.Config{
				Input: args[0],
				Parser: parser.Options{
					Delimiter: delimiter,
					TimeCol:   timeCol,
					LabelCol:  labelCol,
				},
				Tier: tier.Config{
					Mode: tier.Mode(mode),
					Tail: tail,
					Name: tierName,
				},
			}
			if len(args) == 2 {
				run.Output = args[1]
			}
			if cmd.Flags().Changed("duration") {
				run.Tier.Duration = &duration
			}

			res, err := pipeline.Run(run)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote TextGrid to %s\n", res.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", cfg.Mode, "tier mode: point=TextTier, interval=IntervalTier, auto=pick based on labels")
	cmd.Flags().Float64Var(&duration, "duration", 0, "set xmax in seconds (default: last time + tail)")
	cmd.Flags().StringVar(&tierName, "tier-name", cfg.TierName, "name of the tier in the TextGrid")
	cmd.Flags().StringVar(&delimiter, "delimiter", cfg.Delimiter, "input field delimiter")
	cmd.Flags().IntVar(&timeCol, "time-col", cfg.TimeCol, "0-based column index for times")
	cmd.Flags().IntVar(&labelCol, "label-col", cfg.LabelCol, "0-based column index for labels")
	cmd.Flags().Float64Var(&tail, "tail", cfg.Tail, "seconds added to the last timestamp for xmax when --duration is unset")
	cmd.Flags().StringVar(&logLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	return cmd
}

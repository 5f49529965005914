package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/2beens/healthtracker/internal/health/export"
	"github.com/2beens/healthtracker/internal/health/series"
	"github.com/2beens/healthtracker/internal/logging"
)

type options struct {
	file    string
	watch   bool
	asJSON  bool
	today   string
	verbose bool
}

// reportFunc computes a report from an export and writes it to w.
type reportFunc func(w io.Writer, e *export.Export, today time.Time, asJSON bool) error

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "healthctl",
		Short: "Inspect health tracker exports offline",
		Long: "healthctl reads a user export written by the health service " +
			"and prints cycle, training, body weight and routine statistics.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "info"
			if opts.verbose {
				level = "debug"
			}
			log.SetLevel(logging.GetLevel(level))
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "export.json", "export file")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "recompute whenever the export file changes")
	flags.BoolVar(&opts.asJSON, "json", false, "print JSON instead of text")
	flags.StringVar(&opts.today, "today", "", "reference day as YYYY-MM-DD (default today)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newReportCmd(opts, "cycles", "Cycle lengths and the current cycle estimate", cyclesReport),
		newReportCmd(opts, "training", "Short-term and long-term training load", trainingReport),
		newReportCmd(opts, "body-weight", "Smoothed body weight", bodyWeightReport),
		newRoutineCmd(opts),
		newHashTokenCmd(),
	)
	return root
}

func newReportCmd(opts *options, use, short string, report reportFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, report)
		},
	}
}

// run loads the export and writes the report, once or on every change of
// the export file until the command context is done.
func run(cmd *cobra.Command, opts *options, report reportFunc) error {
	today, err := opts.referenceDay()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	once := func() error {
		e, err := export.Load(opts.file)
		if err != nil {
			return err
		}
		return report(out, e, today, opts.asJSON)
	}

	if !opts.watch {
		return once()
	}

	if err := once(); err != nil {
		log.Errorf("report: %s", err)
	}
	return watchFile(cmd.Context(), opts.file, func() {
		fmt.Fprintln(out, "---")
		if err := once(); err != nil {
			log.Errorf("report: %s", err)
		}
	})
}

func (o *options) referenceDay() (time.Time, error) {
	if o.today == "" {
		return series.Today(), nil
	}
	day, err := series.ParseDate(o.today)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today: %w", err)
	}
	return day, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func days(d time.Duration) int {
	return int(d.Round(time.Hour).Hours() / 24)
}

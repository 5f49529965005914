package main

import (
	"fmt"
	"io"
	"time"

	"github.com/2beens/healthtracker/internal/health/body"
	"github.com/2beens/healthtracker/internal/health/cycle"
	"github.com/2beens/healthtracker/internal/health/export"
	"github.com/2beens/healthtracker/internal/health/series"
	"github.com/2beens/healthtracker/internal/health/training"
)

type cyclesResult struct {
	Cycles  []cycle.Cycle       `json:"cycles"`
	Stats   cycle.Stats         `json:"stats"`
	Current *cycle.CurrentCycle `json:"current,omitempty"`
}

func cyclesReport(w io.Writer, e *export.Export, today time.Time, asJSON bool) error {
	cycles := cycle.Cycles(e.Periods)
	result := cyclesResult{
		Cycles:  cycles,
		Stats:   cycle.CycleStats(cycles),
		Current: cycle.CurrentCycleAt(cycles, today),
	}
	if asJSON {
		return writeJSON(w, result)
	}

	fmt.Fprintf(w, "cycles: %d\n", len(result.Cycles))
	for _, c := range result.Cycles {
		fmt.Fprintf(w, "  %s  %d days\n", series.FormatDate(c.Begin), days(c.Length))
	}
	fmt.Fprintf(w, "median length: %d days (± %d)\n", days(result.Stats.LengthMedian), days(result.Stats.LengthVariation))
	if result.Current == nil {
		fmt.Fprintln(w, "current cycle: no recent cycles")
		return nil
	}
	fmt.Fprintf(w, "current cycle: begins %s, %d days left (± %d)\n",
		series.FormatDate(result.Current.Begin),
		days(result.Current.TimeLeft),
		days(result.Current.TimeLeftVariation),
	)
	return nil
}

func trainingReport(w io.Writer, e *export.Export, today time.Time, asJSON bool) error {
	summary := training.NewLoadSummary(training.StatsAt(e.TrainingSessions, today))
	if asJSON {
		return writeJSON(w, summary)
	}

	fmt.Fprintf(w, "sessions: %d\n", len(e.TrainingSessions))
	if n := len(summary.ShortTermLoad); n > 0 {
		fmt.Fprintf(w, "short-term load: %.1f\n", summary.ShortTermLoad[n-1].Value)
	}
	if n := len(summary.LongTermLoad); n > 0 {
		fmt.Fprintf(w, "long-term load: %.1f\n", summary.LongTermLoad[n-1].Value)
	}
	if summary.LoadRatio == nil {
		fmt.Fprintln(w, "load ratio: n/a")
		return nil
	}

	ratio := *summary.LoadRatio
	state := "ok"
	switch {
	case ratio < summary.LoadRatioLow:
		state = "low"
	case ratio > summary.LoadRatioHigh:
		state = "high"
	}
	fmt.Fprintf(w, "load ratio: %.2f (%s, range %.1f-%.1f)\n", ratio, state, summary.LoadRatioLow, summary.LoadRatioHigh)
	return nil
}

func bodyWeightReport(w io.Writer, e *export.Export, _ time.Time, asJSON bool) error {
	avg := body.AvgBodyWeight(e.BodyWeight)
	if asJSON {
		return writeJSON(w, avg)
	}

	if len(avg) == 0 {
		fmt.Fprintln(w, "no body weight records")
		return nil
	}
	for _, a := range avg {
		fmt.Fprintf(w, "%s  %.1f kg\n", series.FormatDate(a.Date), a.Weight)
	}
	return nil
}

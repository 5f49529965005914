package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/2beens/healthtracker/internal/health/exercise"
	"github.com/2beens/healthtracker/internal/health/export"
	"github.com/2beens/healthtracker/internal/health/routine"
)

func newRoutineCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "routine <name|id>",
		Short: "Duration, sets and muscle stimulus of a routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := args[0]
			return run(cmd, opts, func(w io.Writer, e *export.Export, today time.Time, asJSON bool) error {
				return routineReport(w, e, ref, asJSON)
			})
		},
	}
}

func findRoutine(routines []routine.Routine, ref string) (*routine.Routine, error) {
	id, idErr := uuid.Parse(ref)
	for i, r := range routines {
		if idErr == nil && r.ID == id {
			return &routines[i], nil
		}
		if idErr != nil && strings.EqualFold(r.Name.String(), ref) {
			return &routines[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", routine.ErrRoutineNotFound, ref)
}

func routineReport(w io.Writer, e *export.Export, ref string, asJSON bool) error {
	rt, err := findRoutine(e.Routines, ref)
	if err != nil {
		return err
	}

	exercises := exercise.Index(e.Exercises)
	summary := rt.Summary(exercises)
	if asJSON {
		return writeJSON(w, summary)
	}

	fmt.Fprintf(w, "routine: %s\n", rt.Name)
	fmt.Fprintf(w, "duration: %s\n", time.Duration(summary.DurationSeconds)*time.Second)
	fmt.Fprintf(w, "sets: %d\n", summary.NumSets)
	for _, id := range summary.Exercises {
		if ex, ok := exercises[id]; ok {
			fmt.Fprintf(w, "exercise: %s\n", ex.Name)
		}
	}

	muscles := make([]exercise.MuscleID, 0, len(summary.StimulusPerMuscle))
	for m, s := range summary.StimulusPerMuscle {
		if s > 0 {
			muscles = append(muscles, m)
		}
	}
	sort.Slice(muscles, func(i, j int) bool {
		return summary.StimulusPerMuscle[muscles[i]] > summary.StimulusPerMuscle[muscles[j]]
	})
	for _, m := range muscles {
		fmt.Fprintf(w, "  %-20s %d\n", m.Name(), summary.StimulusPerMuscle[m])
	}
	return nil
}

package routine

import (
	"sort"
	"time"

	"github.com/2beens/healthtracker/internal/health/training"

	"github.com/google/uuid"
)

// SortedByLastUse returns the routines accepted by filter, the most recently
// trained first. Routines without any training session follow, ordered by
// name and id.
func SortedByLastUse(routines []Routine, sessions []training.Session, filter func(Routine) bool) []Routine {
	lastUse := make(map[uuid.UUID]time.Time)
	for _, s := range sessions {
		if last, ok := lastUse[s.RoutineID]; !ok || s.Date.After(last) {
			lastUse[s.RoutineID] = s.Date
		}
	}

	result := make([]Routine, 0, len(routines))
	for _, r := range routines {
		if filter == nil || filter(r) {
			result = append(result, r)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, aUsed := lastUse[result[i].ID]
		b, bUsed := lastUse[result[j].ID]
		switch {
		case aUsed && bUsed && !a.Equal(b):
			return a.After(b)
		case aUsed != bUsed:
			return aUsed
		case result[i].Name != result[j].Name:
			return result[i].Name < result[j].Name
		default:
			return result[i].ID.String() < result[j].ID.String()
		}
	})
	return result
}

// NotArchived is a filter for SortedByLastUse.
func NotArchived(r Routine) bool {
	return !r.Archived
}

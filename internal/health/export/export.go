package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/2beens/healthtracker/internal/health/body"
	"github.com/2beens/healthtracker/internal/health/cycle"
	"github.com/2beens/healthtracker/internal/health/exercise"
	"github.com/2beens/healthtracker/internal/health/routine"
	"github.com/2beens/healthtracker/internal/health/training"
	"github.com/2beens/healthtracker/internal/health/user"
)

// Export is the complete record of a single user.
type Export struct {
	User             user.User           `json:"user"`
	Periods          []cycle.Period      `json:"periods"`
	BodyWeight       []body.Weight       `json:"bodyWeight"`
	BodyFat          []body.Fat          `json:"bodyFat"`
	Exercises        []exercise.Exercise `json:"exercises"`
	Routines         []routine.Routine   `json:"routines"`
	TrainingSessions []training.Session  `json:"trainingSessions"`
}

func Decode(r io.Reader) (*Export, error) {
	var e Export
	if err := json.NewDecoder(r).Decode(&e); err != nil {
		return nil, fmt.Errorf("decode export: %w", err)
	}
	return &e, nil
}

// Load reads an export file written from the export endpoint.
func Load(path string) (*Export, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

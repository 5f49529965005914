package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/healthtracker/internal/health/body"
	"github.com/2beens/healthtracker/internal/health/cycle"
	"github.com/2beens/healthtracker/internal/health/routine"
	"github.com/2beens/healthtracker/internal/health/series"
	"github.com/2beens/healthtracker/internal/health/training"
	"github.com/2beens/healthtracker/internal/health/user"

	"github.com/google/uuid"
)

const defaultTrendDays = 90

var ErrUserMissing = errors.New("user is required, by name or id")

type usersService interface {
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByName(ctx context.Context, n string) (*user.User, error)
}

type cyclesService interface {
	Current(ctx context.Context, userID uuid.UUID) (*cycle.CurrentCycle, error)
	Stats(ctx context.Context, userID uuid.UUID, defaultInterval series.DefaultInterval) (*cycle.IntervalStats, error)
}

type trainingService interface {
	Load(ctx context.Context, userID uuid.UUID) (*training.LoadSummary, error)
}

type bodyService interface {
	AvgWeights(ctx context.Context, userID uuid.UUID) ([]body.Weight, error)
}

type routinesService interface {
	List(ctx context.Context, userID uuid.UUID, sortByLastUse, includeArchived bool) ([]routine.Routine, error)
}

// statsService is what the tool handlers need, kept small for tests.
type statsService interface {
	CurrentCycle(ctx context.Context, userRef string) (*CurrentCycleInfo, error)
	CycleStats(ctx context.Context, userRef, interval string) (*CycleStatsInfo, error)
	TrainingStats(ctx context.Context, userRef string) (*training.LoadSummary, error)
	BodyWeightTrend(ctx context.Context, userRef string, days int) ([]WeightPoint, error)
	Routines(ctx context.Context, userRef string, includeArchived bool) ([]RoutineInfo, error)
}

// CurrentCycleInfo is cycle.CurrentCycle expressed in days.
type CurrentCycleInfo struct {
	Begin             string  `json:"begin"`
	DaysLeft          float64 `json:"days_left"`
	DaysLeftVariation float64 `json:"days_left_variation"`
}

type CycleStatsInfo struct {
	From                string  `json:"from"`
	To                  string  `json:"to"`
	Cycles              int     `json:"cycles"`
	LengthMedianDays    float64 `json:"length_median_days"`
	LengthVariationDays float64 `json:"length_variation_days"`
}

type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float32 `json:"weight"`
}

type RoutineInfo struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Notes           string    `json:"notes,omitempty"`
	Archived        bool      `json:"archived"`
	NumSets         uint32    `json:"num_sets"`
	DurationMinutes float64   `json:"duration_minutes"`
}

// StatsService resolves users by name or id and shapes the derived stats of
// the domain services for MCP clients.
type StatsService struct {
	users    usersService
	cycles   cyclesService
	training trainingService
	body     bodyService
	routines routinesService
	now      func() time.Time
}

func NewStatsService(
	users usersService,
	cycles cyclesService,
	training trainingService,
	body bodyService,
	routines routinesService,
) *StatsService {
	return &StatsService{
		users:    users,
		cycles:   cycles,
		training: training,
		body:     body,
		routines: routines,
		now:      time.Now,
	}
}

func (s *StatsService) resolveUser(ctx context.Context, userRef string) (uuid.UUID, error) {
	if userRef == "" {
		return uuid.Nil, ErrUserMissing
	}
	if id, err := uuid.Parse(userRef); err == nil {
		u, err := s.users.Get(ctx, id)
		if err != nil {
			return uuid.Nil, err
		}
		return u.ID, nil
	}
	u, err := s.users.GetByName(ctx, userRef)
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID, nil
}

// CurrentCycle returns nil when the user has no current cycle.
func (s *StatsService) CurrentCycle(ctx context.Context, userRef string) (*CurrentCycleInfo, error) {
	userID, err := s.resolveUser(ctx, userRef)
	if err != nil {
		return nil, err
	}
	current, err := s.cycles.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	return &CurrentCycleInfo{
		Begin:             series.FormatDate(current.Begin),
		DaysLeft:          days(current.TimeLeft),
		DaysLeftVariation: days(current.TimeLeftVariation),
	}, nil
}

func (s *StatsService) CycleStats(ctx context.Context, userRef, interval string) (*CycleStatsInfo, error) {
	defaultInterval := series.SixMonths
	if interval != "" {
		parsed, err := series.ParseDefaultInterval(interval)
		if err != nil {
			return nil, err
		}
		defaultInterval = parsed
	}

	userID, err := s.resolveUser(ctx, userRef)
	if err != nil {
		return nil, err
	}
	stats, err := s.cycles.Stats(ctx, userID, defaultInterval)
	if err != nil {
		return nil, err
	}
	return &CycleStatsInfo{
		From:                series.FormatDate(stats.Interval.First),
		To:                  series.FormatDate(stats.Interval.Last),
		Cycles:              len(stats.Cycles),
		LengthMedianDays:    days(stats.Stats.LengthMedian),
		LengthVariationDays: days(stats.Stats.LengthVariation),
	}, nil
}

func (s *StatsService) TrainingStats(ctx context.Context, userRef string) (*training.LoadSummary, error) {
	userID, err := s.resolveUser(ctx, userRef)
	if err != nil {
		return nil, err
	}
	return s.training.Load(ctx, userID)
}

// BodyWeightTrend returns the average body weight of the last days.
func (s *StatsService) BodyWeightTrend(ctx context.Context, userRef string, numDays int) ([]WeightPoint, error) {
	if numDays < 0 {
		return nil, fmt.Errorf("days must not be negative: %d", numDays)
	}
	if numDays == 0 {
		numDays = defaultTrendDays
	}

	userID, err := s.resolveUser(ctx, userRef)
	if err != nil {
		return nil, err
	}
	avg, err := s.body.AvgWeights(ctx, userID)
	if err != nil {
		return nil, err
	}

	from := series.AddDays(series.Day(s.now()), -numDays)
	points := make([]WeightPoint, 0)
	for _, w := range avg {
		if w.Date.Before(from) {
			continue
		}
		points = append(points, WeightPoint{
			Date:   series.FormatDate(w.Date),
			Weight: w.Weight,
		})
	}
	return points, nil
}

// Routines lists the routines of the user, the most recently trained first.
func (s *StatsService) Routines(ctx context.Context, userRef string, includeArchived bool) ([]RoutineInfo, error) {
	userID, err := s.resolveUser(ctx, userRef)
	if err != nil {
		return nil, err
	}
	routines, err := s.routines.List(ctx, userID, true, includeArchived)
	if err != nil {
		return nil, err
	}

	infos := make([]RoutineInfo, 0, len(routines))
	for _, rt := range routines {
		infos = append(infos, RoutineInfo{
			ID:              rt.ID,
			Name:            rt.Name.String(),
			Notes:           rt.Notes,
			Archived:        rt.Archived,
			NumSets:         rt.NumSets(),
			DurationMinutes: rt.Duration().Minutes(),
		})
	}
	return infos, nil
}

func days(d time.Duration) float64 {
	return d.Hours() / 24
}

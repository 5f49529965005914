package cycle

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/healthtracker/internal/cache"
	"github.com/2beens/healthtracker/internal/health/series"
	"github.com/2beens/healthtracker/internal/telemetry/metrics"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=cycle_test

const (
	kindCycles     = "cycles"
	kindCycleStats = "cycle-stats"
)

type periodsRepo interface {
	Add(ctx context.Context, userID uuid.UUID, p Period) error
	Update(ctx context.Context, userID uuid.UUID, p Period) error
	Delete(ctx context.Context, userID uuid.UUID, date time.Time) error
	List(ctx context.Context, userID uuid.UUID) ([]Period, error)
}

type statsCache interface {
	Get(ctx context.Context, userID uuid.UUID, kind string, dest any) (bool, error)
	Set(ctx context.Context, userID uuid.UUID, kind string, value any) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// IntervalStats are the stats of the cycles beginning within an interval.
type IntervalStats struct {
	Interval series.Interval `json:"interval"`
	Cycles   []Cycle         `json:"cycles"`
	Stats    Stats           `json:"stats"`
}

type Service struct {
	repo           periodsRepo
	cache          statsCache
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(repo periodsRepo, cache statsCache, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		cache:          cache,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) today() time.Time {
	return series.Day(s.now())
}

func (s *Service) ListPeriods(ctx context.Context, userID uuid.UUID) (_ []Period, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.cycle.period.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	periods, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	return periods, nil
}

func (s *Service) AddPeriod(ctx context.Context, userID uuid.UUID, p Period) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.cycle.period.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !p.Intensity.IsValid() {
		return ErrInvalidIntensity
	}
	p.Date = series.Day(p.Date)
	if err := s.repo.Add(ctx, userID, p); err != nil {
		return fmt.Errorf("add period: %w", err)
	}
	s.written(ctx, userID, "create")
	return nil
}

func (s *Service) UpdatePeriod(ctx context.Context, userID uuid.UUID, p Period) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.cycle.period.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !p.Intensity.IsValid() {
		return ErrInvalidIntensity
	}
	p.Date = series.Day(p.Date)
	if err := s.repo.Update(ctx, userID, p); err != nil {
		return fmt.Errorf("update period: %w", err)
	}
	s.written(ctx, userID, "update")
	return nil
}

func (s *Service) DeletePeriod(ctx context.Context, userID uuid.UUID, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.cycle.period.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, userID, series.Day(date)); err != nil {
		return fmt.Errorf("delete period: %w", err)
	}
	s.written(ctx, userID, "delete")
	return nil
}

// Cycles returns the completed cycles of the user.
func (s *Service) Cycles(ctx context.Context, userID uuid.UUID) (_ []Cycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.cycle.cycles")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return cache.Through(ctx, s.cache, userID, kindCycles, func(ctx context.Context) ([]Cycle, error) {
		periods, err := s.repo.List(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list periods: %w", err)
		}
		defer s.metricsManager.ObserveStats(kindCycles, time.Now())
		return Cycles(periods), nil
	})
}

// Current estimates the open cycle. Nil is returned if no cycle of the last
// half year is known.
func (s *Service) Current(ctx context.Context, userID uuid.UUID) (_ *CurrentCycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.cycle.current")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cycles, err := s.Cycles(ctx, userID)
	if err != nil {
		return nil, err
	}
	return CurrentCycleAt(cycles, s.today()), nil
}

func (s *Service) Stats(ctx context.Context, userID uuid.UUID, defaultInterval series.DefaultInterval) (_ *IntervalStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.cycle.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := s.today()
	kind := cache.DayKind(fmt.Sprintf("%s-%d", kindCycleStats, defaultInterval), today)
	return cache.Through(ctx, s.cache, userID, kind, func(ctx context.Context) (*IntervalStats, error) {
		cycles, err := s.Cycles(ctx, userID)
		if err != nil {
			return nil, err
		}
		defer s.metricsManager.ObserveStats(kindCycleStats, time.Now())

		begins := make([]time.Time, 0, len(cycles))
		for _, c := range cycles {
			begins = append(begins, c.Begin)
		}
		interval := series.InitInterval(begins, defaultInterval, today)
		inInterval := InInterval(cycles, interval)
		return &IntervalStats{
			Interval: interval,
			Cycles:   inInterval,
			Stats:    CycleStats(inInterval),
		}, nil
	})
}

// WarmUp precomputes the cached cycle stats of the user.
func (s *Service) WarmUp(ctx context.Context, userID uuid.UUID) error {
	_, err := s.Stats(ctx, userID, series.SixMonths)
	return err
}

func (s *Service) written(ctx context.Context, userID uuid.UUID, op string) {
	s.metricsManager.RecordWritten("period", op)
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		log.Warnf("invalidate stats cache of user %s: %s", userID, err)
	}
}

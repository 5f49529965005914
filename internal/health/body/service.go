package body

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/healthtracker/internal/cache"
	"github.com/2beens/healthtracker/internal/health/series"
	"github.com/2beens/healthtracker/internal/health/user"
	"github.com/2beens/healthtracker/internal/telemetry/metrics"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=body_test

const (
	kindWeightAvg = "body-weight-avg"
	kindFatAvg    = "body-fat-avg"
)

type bodyRepo interface {
	AddWeight(ctx context.Context, userID uuid.UUID, w Weight) error
	UpdateWeight(ctx context.Context, userID uuid.UUID, w Weight) error
	DeleteWeight(ctx context.Context, userID uuid.UUID, date time.Time) error
	ListWeights(ctx context.Context, userID uuid.UUID) ([]Weight, error)
	AddFat(ctx context.Context, userID uuid.UUID, f Fat) error
	UpdateFat(ctx context.Context, userID uuid.UUID, f Fat) error
	DeleteFat(ctx context.Context, userID uuid.UUID, date time.Time) error
	ListFat(ctx context.Context, userID uuid.UUID) ([]Fat, error)
}

type usersRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type statsCache interface {
	Get(ctx context.Context, userID uuid.UUID, kind string, dest any) (bool, error)
	Set(ctx context.Context, userID uuid.UUID, kind string, value any) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// FatEntry is a body fat record with its estimates for the user's sex.
type FatEntry struct {
	Fat
	JP3 *float32 `json:"jp3,omitempty"`
	JP7 *float32 `json:"jp7,omitempty"`
}

type FatTrend struct {
	Interval series.Interval  `json:"interval"`
	Series   [][]series.Point `json:"series"`
}

type Service struct {
	repo           bodyRepo
	users          usersRepo
	cache          statsCache
	metricsManager *metrics.Manager
}

func NewService(repo bodyRepo, users usersRepo, cache statsCache, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		users:          users,
		cache:          cache,
		metricsManager: metricsManager,
	}
}

func (s *Service) ListWeights(ctx context.Context, userID uuid.UUID) (_ []Weight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.body.weight.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	weights, err := s.repo.ListWeights(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list body weights: %w", err)
	}
	return weights, nil
}

func (s *Service) AddWeight(ctx context.Context, userID uuid.UUID, w Weight) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.body.weight.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := w.Validate(); err != nil {
		return err
	}
	w.Date = series.Day(w.Date)
	if err := s.repo.AddWeight(ctx, userID, w); err != nil {
		return fmt.Errorf("add body weight: %w", err)
	}
	s.written(ctx, userID, "body-weight", "create")
	return nil
}

func (s *Service) UpdateWeight(ctx context.Context, userID uuid.UUID, w Weight) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.body.weight.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := w.Validate(); err != nil {
		return err
	}
	w.Date = series.Day(w.Date)
	if err := s.repo.UpdateWeight(ctx, userID, w); err != nil {
		return fmt.Errorf("update body weight: %w", err)
	}
	s.written(ctx, userID, "body-weight", "update")
	return nil
}

func (s *Service) DeleteWeight(ctx context.Context, userID uuid.UUID, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.body.weight.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.DeleteWeight(ctx, userID, series.Day(date)); err != nil {
		return fmt.Errorf("delete body weight: %w", err)
	}
	s.written(ctx, userID, "body-weight", "delete")
	return nil
}

// AvgWeights returns the smoothed body weight of the user.
func (s *Service) AvgWeights(ctx context.Context, userID uuid.UUID) (_ []Weight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.body.weight.avg")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return cache.Through(ctx, s.cache, userID, kindWeightAvg, func(ctx context.Context) ([]Weight, error) {
		weights, err := s.repo.ListWeights(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list body weights: %w", err)
		}
		defer s.metricsManager.ObserveStats(kindWeightAvg, time.Now())
		return AvgBodyWeight(weights), nil
	})
}

func (s *Service) ListFat(ctx context.Context, userID uuid.UUID) (_ []FatEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.body.fat.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	records, err := s.repo.ListFat(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list body fat: %w", err)
	}

	entries := make([]FatEntry, 0, len(records))
	for _, r := range records {
		entry := FatEntry{Fat: r}
		if v, ok := r.JP3(u.Sex); ok {
			entry.JP3 = &v
		}
		if v, ok := r.JP7(u.Sex); ok {
			entry.JP7 = &v
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Service) AddFat(ctx context.Context, userID uuid.UUID, f Fat) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.body.fat.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	f.Date = series.Day(f.Date)
	if err := s.repo.AddFat(ctx, userID, f); err != nil {
		return fmt.Errorf("add body fat: %w", err)
	}
	s.written(ctx, userID, "body-fat", "create")
	return nil
}

func (s *Service) UpdateFat(ctx context.Context, userID uuid.UUID, f Fat) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.body.fat.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	f.Date = series.Day(f.Date)
	if err := s.repo.UpdateFat(ctx, userID, f); err != nil {
		return fmt.Errorf("update body fat: %w", err)
	}
	s.written(ctx, userID, "body-fat", "update")
	return nil
}

func (s *Service) DeleteFat(ctx context.Context, userID uuid.UUID, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.body.fat.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.DeleteFat(ctx, userID, series.Day(date)); err != nil {
		return fmt.Errorf("delete body fat: %w", err)
	}
	s.written(ctx, userID, "body-fat", "delete")
	return nil
}

// AvgFat returns the weekly averaged JP3 body fat within the default interval.
func (s *Service) AvgFat(ctx context.Context, userID uuid.UUID, defaultInterval series.DefaultInterval) (_ *FatTrend, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.body.fat.avg")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := series.Today()
	kind := cache.DayKind(fmt.Sprintf("%s-%d", kindFatAvg, defaultInterval), today)
	return cache.Through(ctx, s.cache, userID, kind, func(ctx context.Context) (*FatTrend, error) {
		u, err := s.users.Get(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("get user: %w", err)
		}
		records, err := s.repo.ListFat(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list body fat: %w", err)
		}
		defer s.metricsManager.ObserveStats(kindFatAvg, time.Now())

		dates := make([]time.Time, 0, len(records))
		for _, r := range records {
			dates = append(dates, r.Date)
		}
		interval := series.InitInterval(dates, defaultInterval, today)
		return &FatTrend{
			Interval: interval,
			Series:   AvgBodyFat(records, u.Sex, interval),
		}, nil
	})
}

// WarmUp precomputes the cached body stats of the user.
func (s *Service) WarmUp(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.AvgWeights(ctx, userID); err != nil {
		return err
	}
	if _, err := s.AvgFat(ctx, userID, series.ThreeMonths); err != nil {
		return err
	}
	return nil
}

func (s *Service) written(ctx context.Context, userID uuid.UUID, kind, op string) {
	s.metricsManager.RecordWritten(kind, op)
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		log.Warnf("invalidate stats cache of user %s: %s", userID, err)
	}
}

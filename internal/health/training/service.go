package training

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/healthtracker/internal/cache"
	"github.com/2beens/healthtracker/internal/health/exercise"
	"github.com/2beens/healthtracker/internal/health/series"
	"github.com/2beens/healthtracker/internal/telemetry/metrics"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=training_test

const (
	kindLoad   = "training-load"
	kindCharts = "training-charts"
)

type sessionsRepo interface {
	Add(ctx context.Context, s Session) error
	Get(ctx context.Context, userID, id uuid.UUID) (*Session, error)
	List(ctx context.Context, userID uuid.UUID) ([]Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type exercisesRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]exercise.Exercise, error)
}

type statsCache interface {
	Get(ctx context.Context, userID uuid.UUID, kind string, dest any) (bool, error)
	Set(ctx context.Context, userID uuid.UUID, kind string, value any) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// LoadSummary is the training load along with the current load ratio and
// the bounds of its recommended range.
type LoadSummary struct {
	Stats
	LoadRatio     *float32 `json:"loadRatio,omitempty"`
	LoadRatioLow  float32  `json:"loadRatioLow"`
	LoadRatioHigh float32  `json:"loadRatioHigh"`
}

func NewLoadSummary(stats Stats) LoadSummary {
	summary := LoadSummary{
		Stats:         stats,
		LoadRatioLow:  LoadRatioLow,
		LoadRatioHigh: LoadRatioHigh,
	}
	if ratio, ok := stats.LoadRatio(); ok {
		summary.LoadRatio = &ratio
	}
	return summary
}

type Service struct {
	repo           sessionsRepo
	exercises      exercisesRepo
	cache          statsCache
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(repo sessionsRepo, exercises exercisesRepo, cache statsCache, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		exercises:      exercises,
		cache:          cache,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) today() time.Time {
	return series.Day(s.now())
}

func (s *Service) Create(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.session.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session.ID = uuid.New()
	session.Date = series.Day(session.Date)
	if session.Elements == nil {
		session.Elements = Elements{}
	}
	if err := s.repo.Add(ctx, session); err != nil {
		return nil, fmt.Errorf("add training session: %w", err)
	}
	s.written(ctx, session.UserID, "create")
	return &session, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.session.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get training session: %w", err)
	}
	return &Summary{
		Session: *session,
		Metrics: session.Metrics(),
	}, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.session.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sessions, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list training sessions: %w", err)
	}
	return sessions, nil
}

func (s *Service) Update(ctx context.Context, session Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.session.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session.Date = series.Day(session.Date)
	if session.Elements == nil {
		session.Elements = Elements{}
	}
	if err := s.repo.Update(ctx, session); err != nil {
		return fmt.Errorf("update training session: %w", err)
	}
	s.written(ctx, session.UserID, "update")
	return nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.session.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete training session: %w", err)
	}
	s.written(ctx, userID, "delete")
	return nil
}

// Load returns the short-term and long-term training load up to today.
func (s *Service) Load(ctx context.Context, userID uuid.UUID) (_ *LoadSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := s.today()
	return cache.Through(ctx, s.cache, userID, cache.DayKind(kindLoad, today), func(ctx context.Context) (*LoadSummary, error) {
		sessions, err := s.repo.List(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list training sessions: %w", err)
		}
		defer s.metricsManager.ObserveStats(kindLoad, time.Now())

		summary := NewLoadSummary(StatsAt(sessions, today))
		return &summary, nil
	})
}

func (s *Service) Charts(ctx context.Context, userID uuid.UUID, defaultInterval series.DefaultInterval) (_ *Charts, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.charts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := s.today()
	kind := cache.DayKind(fmt.Sprintf("%s-%d", kindCharts, defaultInterval), today)
	return cache.Through(ctx, s.cache, userID, kind, func(ctx context.Context) (*Charts, error) {
		sessions, err := s.repo.List(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list training sessions: %w", err)
		}
		exercises, err := s.exercises.List(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list exercises: %w", err)
		}
		defer s.metricsManager.ObserveStats(kindCharts, time.Now())

		dates := make([]time.Time, 0, len(sessions))
		for _, session := range sessions {
			dates = append(dates, session.Date)
		}
		interval := series.InitInterval(dates, defaultInterval, today)
		charts := NewCharts(sessions, exercise.Index(exercises), interval)
		return &charts, nil
	})
}

// WarmUp precomputes the cached training stats of the user.
func (s *Service) WarmUp(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.Load(ctx, userID); err != nil {
		return err
	}
	if _, err := s.Charts(ctx, userID, series.ThreeMonths); err != nil {
		return err
	}
	return nil
}

func (s *Service) written(ctx context.Context, userID uuid.UUID, op string) {
	s.metricsManager.RecordWritten("training-session", op)
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		log.Warnf("invalidate stats cache of user %s: %s", userID, err)
	}
}

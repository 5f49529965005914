package exercise

import (
	"context"
	"fmt"

	"github.com/2beens/healthtracker/internal/health/name"
	"github.com/2beens/healthtracker/internal/telemetry/metrics"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=exercise_test

type exercisesRepo interface {
	Add(ctx context.Context, e Exercise) error
	Get(ctx context.Context, userID, id uuid.UUID) (*Exercise, error)
	List(ctx context.Context, userID uuid.UUID) ([]Exercise, error)
	Update(ctx context.Context, e Exercise) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type statsCache interface {
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type Service struct {
	repo           exercisesRepo
	cache          statsCache
	metricsManager *metrics.Manager
}

func NewService(repo exercisesRepo, cache statsCache, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		cache:          cache,
		metricsManager: metricsManager,
	}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, n name.Name, muscles []Muscle) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercise.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e := Exercise{
		ID:      uuid.New(),
		UserID:  userID,
		Name:    n,
		Muscles: muscles,
	}
	if e.Muscles == nil {
		e.Muscles = []Muscle{}
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Add(ctx, e); err != nil {
		return nil, fmt.Errorf("add exercise: %w", err)
	}
	s.written(ctx, userID, "create")
	return &e, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercise.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	e, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercise.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercises, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// Update changes the name and muscles of the exercise. The muscle stimulus
// feeds the training charts, so the cached stats are dropped.
func (s *Service) Update(ctx context.Context, e Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercise.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if e.Muscles == nil {
		e.Muscles = []Muscle{}
	}
	if err := e.Validate(); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	s.written(ctx, e.UserID, "update")
	return nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercise.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	s.written(ctx, userID, "delete")
	return nil
}

func (s *Service) written(ctx context.Context, userID uuid.UUID, op string) {
	s.metricsManager.RecordWritten("exercise", op)
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		log.Warnf("invalidate stats cache of user %s: %s", userID, err)
	}
}

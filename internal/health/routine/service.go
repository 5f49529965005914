package routine

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/healthtracker/internal/health/exercise"
	"github.com/2beens/healthtracker/internal/health/series"
	"github.com/2beens/healthtracker/internal/health/training"
	"github.com/2beens/healthtracker/internal/telemetry/metrics"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=routine_test

type routinesRepo interface {
	Add(ctx context.Context, rt Routine) error
	Get(ctx context.Context, userID, id uuid.UUID) (*Routine, error)
	List(ctx context.Context, userID uuid.UUID) ([]Routine, error)
	Update(ctx context.Context, rt Routine) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type exercisesRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]exercise.Exercise, error)
}

type sessionsRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]training.Session, error)
}

type Service struct {
	repo           routinesRepo
	exercises      exercisesRepo
	sessions       sessionsRepo
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(repo routinesRepo, exercises exercisesRepo, sessions sessionsRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		exercises:      exercises,
		sessions:       sessions,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) Create(ctx context.Context, rt Routine) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routine.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rt.ID = uuid.New()
	if rt.Sections == nil {
		rt.Sections = Parts{}
	}
	if err := s.repo.Add(ctx, rt); err != nil {
		return nil, fmt.Errorf("add routine: %w", err)
	}
	s.metricsManager.RecordWritten("routine", "create")
	return &rt, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routine.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rt, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get routine: %w", err)
	}
	return rt, nil
}

// List returns the routines of the user. With sortByLastUse the most recently
// trained routines come first, otherwise they are ordered by name.
func (s *Service) List(ctx context.Context, userID uuid.UUID, sortByLastUse, includeArchived bool) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routine.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routines, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}

	var filter func(Routine) bool
	if !includeArchived {
		filter = NotArchived
	}

	if !sortByLastUse {
		result := make([]Routine, 0, len(routines))
		for _, rt := range routines {
			if filter == nil || filter(rt) {
				result = append(result, rt)
			}
		}
		return result, nil
	}

	sessions, err := s.sessions.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list training sessions: %w", err)
	}
	return SortedByLastUse(routines, sessions, filter), nil
}

func (s *Service) Update(ctx context.Context, rt Routine) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routine.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if rt.Sections == nil {
		rt.Sections = Parts{}
	}
	if err := s.repo.Update(ctx, rt); err != nil {
		return fmt.Errorf("update routine: %w", err)
	}
	s.metricsManager.RecordWritten("routine", "update")
	return nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routine.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete routine: %w", err)
	}
	s.metricsManager.RecordWritten("routine", "delete")
	return nil
}

func (s *Service) Summary(ctx context.Context, userID, id uuid.UUID) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routine.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rt, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get routine: %w", err)
	}
	exercises, err := s.exercises.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	summary := rt.Summary(exercise.Index(exercises))
	return &summary, nil
}

// SessionTemplate returns an unsaved training session for today, prefilled
// with the targets of the routine.
func (s *Service) SessionTemplate(ctx context.Context, userID, id uuid.UUID) (_ *training.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routine.session_template")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rt, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get routine: %w", err)
	}
	return &training.Session{
		UserID:    userID,
		RoutineID: rt.ID,
		Date:      series.Day(s.now()),
		Elements:  rt.ToTrainingSessionElements(),
	}, nil
}

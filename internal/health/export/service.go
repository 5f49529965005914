package export

import (
	"context"
	"fmt"

	"github.com/2beens/healthtracker/internal/health/body"
	"github.com/2beens/healthtracker/internal/health/cycle"
	"github.com/2beens/healthtracker/internal/health/exercise"
	"github.com/2beens/healthtracker/internal/health/routine"
	"github.com/2beens/healthtracker/internal/health/training"
	"github.com/2beens/healthtracker/internal/health/user"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=export_test

type usersRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type bodyRepo interface {
	ListWeights(ctx context.Context, userID uuid.UUID) ([]body.Weight, error)
	ListFat(ctx context.Context, userID uuid.UUID) ([]body.Fat, error)
}

type periodsRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]cycle.Period, error)
}

type exercisesRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]exercise.Exercise, error)
}

type routinesRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]routine.Routine, error)
}

type sessionsRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]training.Session, error)
}

type Service struct {
	users     usersRepo
	body      bodyRepo
	periods   periodsRepo
	exercises exercisesRepo
	routines  routinesRepo
	sessions  sessionsRepo
}

func NewService(
	users usersRepo,
	body bodyRepo,
	periods periodsRepo,
	exercises exercisesRepo,
	routines routinesRepo,
	sessions sessionsRepo,
) *Service {
	return &Service{
		users:     users,
		body:      body,
		periods:   periods,
		exercises: exercises,
		routines:  routines,
		sessions:  sessions,
	}
}

// Export collects every record of the user. The user is looked up first so
// that an unknown user fails with user.ErrUserNotFound.
func (s *Service) Export(ctx context.Context, userID uuid.UUID) (_ *Export, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.export")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	e := Export{User: *u}
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		e.Periods, err = s.periods.List(gCtx, userID)
		return wrap(err, "list periods")
	})
	g.Go(func() (err error) {
		e.BodyWeight, err = s.body.ListWeights(gCtx, userID)
		return wrap(err, "list body weight")
	})
	g.Go(func() (err error) {
		e.BodyFat, err = s.body.ListFat(gCtx, userID)
		return wrap(err, "list body fat")
	})
	g.Go(func() (err error) {
		e.Exercises, err = s.exercises.List(gCtx, userID)
		return wrap(err, "list exercises")
	})
	g.Go(func() (err error) {
		e.Routines, err = s.routines.List(gCtx, userID)
		return wrap(err, "list routines")
	})
	g.Go(func() (err error) {
		e.TrainingSessions, err = s.sessions.List(gCtx, userID)
		return wrap(err, "list training sessions")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &e, nil
}

func wrap(err error, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", action, err)
}

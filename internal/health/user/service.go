package user

import (
	"context"
	"fmt"

	"github.com/2beens/healthtracker/internal/health/name"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=user_test

type usersRepo interface {
	Add(ctx context.Context, u User) (*User, error)
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type statsCache interface {
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type Service struct {
	repo  usersRepo
	cache statsCache
}

func NewService(repo usersRepo, cache statsCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

func (s *Service) Create(ctx context.Context, n name.Name, sex Sex) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.user.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u, err := s.repo.Add(ctx, User{
		ID:   uuid.New(),
		Name: n,
		Sex:  sex,
	})
	if err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.user.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByName resolves a user by exact name.
func (s *Service) GetByName(ctx context.Context, n string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.user.getbyname")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for i := range users {
		if users[i].Name.String() == n {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *Service) List(ctx context.Context) (_ []User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.user.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update renames the user or changes its sex. The sex changes the body fat
// formulas, so the cached stats are dropped.
func (s *Service) Update(ctx context.Context, u User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.user.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Update(ctx, u); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	s.invalidate(ctx, u.ID)
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.user.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *Service) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		log.Warnf("invalidate stats cache of user %s: %s", id, err)
	}
}

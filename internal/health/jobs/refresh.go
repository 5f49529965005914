package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/healthtracker/internal/health/user"
	"github.com/2beens/healthtracker/internal/telemetry/metrics"

	"github.com/google/uuid"
	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=refresh_mocks_test.go -package=jobs_test

type usersRepo interface {
	List(ctx context.Context) ([]user.User, error)
}

type statsCache interface {
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// warmer precomputes the cached stats of a single user.
type warmer interface {
	WarmUp(ctx context.Context, userID uuid.UUID) error
}

// StatsRefresher drops and recomputes the cached derived stats of every user,
// so that day-dependent values like the current cycle follow the calendar.
type StatsRefresher struct {
	users          usersRepo
	cache          statsCache
	warmers        []warmer
	metricsManager *metrics.Manager
	timeout        time.Duration
}

func NewStatsRefresher(
	users usersRepo,
	cache statsCache,
	metricsManager *metrics.Manager,
	warmers ...warmer,
) *StatsRefresher {
	return &StatsRefresher{
		users:          users,
		cache:          cache,
		warmers:        warmers,
		metricsManager: metricsManager,
		timeout:        10 * time.Minute,
	}
}

// Run refreshes all users. A failing user does not stop the refresh of the
// others, all errors are returned combined.
func (r *StatsRefresher) Run(ctx context.Context) error {
	start := time.Now()
	defer func() {
		if r.metricsManager != nil {
			r.metricsManager.CounterCacheRefreshRuns.Inc()
			r.metricsManager.HistCacheRefreshDuration.Observe(time.Since(start).Seconds())
		}
	}()

	users, err := r.users.List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	var result error
	for _, u := range users {
		if err := r.refreshUser(ctx, u.ID); err != nil {
			result = multierr.Append(result, fmt.Errorf("user %s: %w", u.ID, err))
		}
	}

	log.Debugf("stats refresh of %d users took %s", len(users), time.Since(start))
	return result
}

func (r *StatsRefresher) refreshUser(ctx context.Context, userID uuid.UUID) error {
	if err := r.cache.Invalidate(ctx, userID); err != nil {
		return fmt.Errorf("invalidate: %w", err)
	}
	for _, w := range r.warmers {
		if err := w.WarmUp(ctx, userID); err != nil {
			return fmt.Errorf("warm up: %w", err)
		}
	}
	return nil
}

// Schedule runs the refresh on the given cron spec (with seconds) until the
// returned stop function is called.
func (r *StatsRefresher) Schedule(spec string) (stop func(), err error) {
	c := cron.New()
	err = c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		if err := r.Run(ctx); err != nil {
			log.Errorf("scheduled stats refresh: %s", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule stats refresh [%s]: %w", spec, err)
	}

	c.Start()
	log.Infof("stats refresh scheduled: %s", spec)
	return c.Stop, nil
}

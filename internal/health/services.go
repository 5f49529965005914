package health

import (
	"github.com/2beens/healthtracker/internal/cache"
	"github.com/2beens/healthtracker/internal/health/body"
	"github.com/2beens/healthtracker/internal/health/cycle"
	"github.com/2beens/healthtracker/internal/health/exercise"
	"github.com/2beens/healthtracker/internal/health/export"
	"github.com/2beens/healthtracker/internal/health/routine"
	"github.com/2beens/healthtracker/internal/health/training"
	"github.com/2beens/healthtracker/internal/health/user"
	"github.com/2beens/healthtracker/internal/telemetry/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Services holds the domain services of the health tracker, all backed by
// the same Postgres pool and stats cache.
type Services struct {
	Users     *user.Service
	Body      *body.Service
	Cycles    *cycle.Service
	Exercises *exercise.Service
	Routines  *routine.Service
	Training  *training.Service
	Export    *export.Service

	UsersRepo *user.Repo
}

func NewServices(dbPool *pgxpool.Pool, statsCache *cache.StatsCache, metricsManager *metrics.Manager) *Services {
	usersRepo := user.NewRepo(dbPool)
	bodyRepo := body.NewRepo(dbPool)
	periodsRepo := cycle.NewRepo(dbPool)
	exercisesRepo := exercise.NewRepo(dbPool)
	routinesRepo := routine.NewRepo(dbPool)
	sessionsRepo := training.NewRepo(dbPool)

	return &Services{
		Users:     user.NewService(usersRepo, statsCache),
		Body:      body.NewService(bodyRepo, usersRepo, statsCache, metricsManager),
		Cycles:    cycle.NewService(periodsRepo, statsCache, metricsManager),
		Exercises: exercise.NewService(exercisesRepo, statsCache, metricsManager),
		Routines:  routine.NewService(routinesRepo, exercisesRepo, sessionsRepo, metricsManager),
		Training:  training.NewService(sessionsRepo, exercisesRepo, statsCache, metricsManager),
		Export:    export.NewService(usersRepo, bodyRepo, periodsRepo, exercisesRepo, routinesRepo, sessionsRepo),
		UsersRepo: usersRepo,
	}
}

package cycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/healthtracker/internal/health/user"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"
	"github.com/2beens/healthtracker/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrPeriodNotFound = errors.New("period not found")
	ErrPeriodExists   = errors.New("period already recorded for this date")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, userID uuid.UUID, p Period) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cycle.period.add")
	span.SetAttributes(attribute.String("user", userID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO period (user_id, date, intensity)
		VALUES ($1, $2, $3)
	`,
		userID, p.Date, int(p.Intensity),
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrPeriodExists
		}
		if pkg.IsForeignKeyViolationError(err) {
			return user.ErrUserNotFound
		}
		if pkg.IsCheckViolationError(err) {
			return ErrInvalidIntensity
		}
		return fmt.Errorf("insert period: %w", err)
	}
	return nil
}

func (r *Repo) Update(ctx context.Context, userID uuid.UUID, p Period) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cycle.period.update")
	span.SetAttributes(attribute.String("user", userID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE period
		SET intensity = $1
		WHERE user_id = $2 AND date = $3
	`,
		int(p.Intensity), userID, p.Date,
	)
	if err != nil {
		return fmt.Errorf("update period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPeriodNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cycle.period.delete")
	span.SetAttributes(attribute.String("user", userID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM period WHERE user_id = $1 AND date = $2`, userID, date)
	if err != nil {
		return fmt.Errorf("delete period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPeriodNotFound
	}
	return nil
}

func (r *Repo) List(ctx context.Context, userID uuid.UUID) (_ []Period, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cycle.period.list")
	span.SetAttributes(attribute.String("user", userID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT date, intensity
		FROM period
		WHERE user_id = $1
		ORDER BY date
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	defer rows.Close()

	periods := make([]Period, 0)
	for rows.Next() {
		var (
			p         Period
			intensity int16
		)
		if err := rows.Scan(&p.Date, &intensity); err != nil {
			return nil, fmt.Errorf("scan period: %w", err)
		}
		p.Intensity = Intensity(intensity)
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate periods: %w", err)
	}

	return periods, nil
}

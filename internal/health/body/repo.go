package body

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
	ErrWeightNotFound = errors.New("body weight not found")
	ErrWeightExists   = errors.New("body weight already recorded for this date")
	ErrFatNotFound    = errors.New("body fat not found")
	ErrFatExists      = errors.New("body fat already recorded for this date")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func mapWriteErr(err error, exists error) error {
	switch {
	case pkg.IsUniqueViolationError(err):
		return exists
	case pkg.IsForeignKeyViolationError(err):
		return user.ErrUserNotFound
	case pkg.IsCheckViolationError(err):
		return ErrInvalidWeight
	default:
		return err
	}
}

func (r *Repo) AddWeight(ctx context.Context, userID uuid.UUID, w Weight) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.weight.add")
	span.SetAttributes(attribute.String("user", userID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO body_weight (user_id, date, weight)
		VALUES ($1, $2, $3)
	`,
		userID, w.Date, w.Weight,
	)
	if err != nil {
		return fmt.Errorf("insert body weight: %w", mapWriteErr(err, ErrWeightExists))
	}
	return nil
}

func (r *Repo) UpdateWeight(ctx context.Context, userID uuid.UUID, w Weight) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.weight.update")
	span.SetAttributes(attribute.String("user", userID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE body_weight
		SET weight = $1
		WHERE user_id = $2 AND date = $3
	`,
		w.Weight, userID, w.Date,
	)
	if err != nil {
		return fmt.Errorf("update body weight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWeightNotFound
	}
	return nil
}

func (r *Repo) DeleteWeight(ctx context.Context, userID uuid.UUID, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.weight.delete")
	span.SetAttributes(attribute.String("user", userID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM body_weight WHERE user_id = $1 AND date = $2`, userID, date)
	if err != nil {
		return fmt.Errorf("delete body weight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWeightNotFound
	}
	return nil
}

func (r *Repo) ListWeights(ctx context.Context, userID uuid.UUID) (_ []Weight, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.weight.list")
	span.SetAttributes(attribute.String("user", userID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT date, weight
		FROM body_weight
		WHERE user_id = $1
		ORDER BY date
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list body weights: %w", err)
	}
	defer rows.Close()

	weights := make([]Weight, 0)
	for rows.Next() {
		var w Weight
		if err := rows.Scan(&w.Date, &w.Weight); err != nil {
			return nil, fmt.Errorf("scan body weight: %w", err)
		}
		weights = append(weights, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate body weights: %w", err)
	}

	return weights, nil
}

func (r *Repo) AddFat(ctx context.Context, userID uuid.UUID, f Fat) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.fat.add")
	span.SetAttributes(attribute.String("user", userID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO body_fat (user_id, date, chest, abdominal, thigh, tricep, subscapular, suprailiac, midaxillary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		userID, f.Date, f.Chest, f.Abdominal, f.Thigh, f.Tricep, f.Subscapular, f.Suprailiac, f.Midaxillary,
	)
	if err != nil {
		return fmt.Errorf("insert body fat: %w", mapWriteErr(err, ErrFatExists))
	}
	return nil
}

func (r *Repo) UpdateFat(ctx context.Context, userID uuid.UUID, f Fat) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.fat.update")
	span.SetAttributes(attribute.String("user", userID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE body_fat
		SET chest = $1, abdominal = $2, thigh = $3, tricep = $4,
		    subscapular = $5, suprailiac = $6, midaxillary = $7
		WHERE user_id = $8 AND date = $9
	`,
		f.Chest, f.Abdominal, f.Thigh, f.Tricep, f.Subscapular, f.Suprailiac, f.Midaxillary, userID, f.Date,
	)
	if err != nil {
		return fmt.Errorf("update body fat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFatNotFound
	}
	return nil
}

func (r *Repo) DeleteFat(ctx context.Context, userID uuid.UUID, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.fat.delete")
	span.SetAttributes(attribute.String("user", userID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM body_fat WHERE user_id = $1 AND date = $2`, userID, date)
	if err != nil {
		return fmt.Errorf("delete body fat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFatNotFound
	}
	return nil
}

func (r *Repo) ListFat(ctx context.Context, userID uuid.UUID) (_ []Fat, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.body.fat.list")
	span.SetAttributes(attribute.String("user", userID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT date, chest, abdominal, thigh, tricep, subscapular, suprailiac, midaxillary
		FROM body_fat
		WHERE user_id = $1
		ORDER BY date
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list body fat: %w", err)
	}
	defer rows.Close()

	records := make([]Fat, 0)
	for rows.Next() {
		var f Fat
		if err := rows.Scan(
			&f.Date, &f.Chest, &f.Abdominal, &f.Thigh, &f.Tricep, &f.Subscapular, &f.Suprailiac, &f.Midaxillary,
		); err != nil {
			return nil, fmt.Errorf("scan body fat: %w", err)
		}
		records = append(records, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate body fat: %w", err)
	}

	return records, nil
}

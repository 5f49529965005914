package exercise

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/healthtracker/internal/health/name"
	"github.com/2beens/healthtracker/internal/health/user"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"
	"github.com/2beens/healthtracker/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrExerciseExists   = errors.New("exercise with this name already exists")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, e Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercise.add")
	span.SetAttributes(attribute.String("user", e.UserID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	musclesJson, err := json.Marshal(e.Muscles)
	if err != nil {
		return fmt.Errorf("marshal muscles: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO exercise (id, user_id, name, muscles)
		VALUES ($1, $2, $3, $4)
	`,
		e.ID, e.UserID, e.Name.String(), musclesJson,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrExerciseExists
		}
		if pkg.IsForeignKeyViolationError(err) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("insert exercise: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, userID, id uuid.UUID) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercise.get")
	span.SetAttributes(attribute.String("id", id.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, muscles
		FROM exercise
		WHERE user_id = $1 AND id = $2
	`, userID, id)
	e, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return e, nil
}

func (r *Repo) List(ctx context.Context, userID uuid.UUID) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercise.list")
	span.SetAttributes(attribute.String("user", userID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, muscles
		FROM exercise
		WHERE user_id = $1
		ORDER BY name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercises: %w", err)
	}

	return exercises, nil
}

func (r *Repo) Update(ctx context.Context, e Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercise.update")
	span.SetAttributes(attribute.String("id", e.ID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	musclesJson, err := json.Marshal(e.Muscles)
	if err != nil {
		return fmt.Errorf("marshal muscles: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE exercise
		SET name = $1, muscles = $2
		WHERE user_id = $3 AND id = $4
	`,
		e.Name.String(), musclesJson, e.UserID, e.ID,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrExerciseExists
		}
		return fmt.Errorf("update exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercise.delete")
	span.SetAttributes(attribute.String("id", id.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func scanExercise(row pgx.Row) (*Exercise, error) {
	var (
		e           Exercise
		exName      string
		musclesJson []byte
	)
	if err := row.Scan(&e.ID, &e.UserID, &exName, &musclesJson); err != nil {
		return nil, err
	}
	e.Name = name.Name(exName)
	if err := json.Unmarshal(musclesJson, &e.Muscles); err != nil {
		return nil, fmt.Errorf("unmarshal muscles: %w", err)
	}
	return &e, nil
}

package training

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/healthtracker/internal/health/user"
	"github.com/2beens/healthtracker/internal/telemetry/tracing"
	"github.com/2beens/healthtracker/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const routineForeignKey = "training_session_routine_id_fkey"

var (
	ErrSessionNotFound = errors.New("training session not found")
	ErrUnknownRoutine  = errors.New("training session refers to an unknown routine")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func mapWriteErr(err error) error {
	if !pkg.IsForeignKeyViolationError(err) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName == routineForeignKey {
		return ErrUnknownRoutine
	}
	return user.ErrUserNotFound
}

func nullableRoutine(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func (r *Repo) Add(ctx context.Context, s Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.session.add")
	span.SetAttributes(attribute.String("user", s.UserID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	elementsJson, err := json.Marshal(s.Elements)
	if err != nil {
		return fmt.Errorf("marshal elements: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO training_session (id, user_id, routine_id, date, notes, elements)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		s.ID, s.UserID, nullableRoutine(s.RoutineID), s.Date, s.Notes, elementsJson,
	)
	if err != nil {
		return fmt.Errorf("insert training session: %w", mapWriteErr(err))
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, userID, id uuid.UUID) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.session.get")
	span.SetAttributes(attribute.String("id", id.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, routine_id, date, notes, elements
		FROM training_session
		WHERE user_id = $1 AND id = $2
	`, userID, id)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get training session: %w", err)
	}
	return s, nil
}

func (r *Repo) List(ctx context.Context, userID uuid.UUID) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.session.list")
	span.SetAttributes(attribute.String("user", userID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, routine_id, date, notes, elements
		FROM training_session
		WHERE user_id = $1
		ORDER BY date, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list training sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan training session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate training sessions: %w", err)
	}

	return sessions, nil
}

func (r *Repo) Update(ctx context.Context, s Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.session.update")
	span.SetAttributes(attribute.String("id", s.ID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	elementsJson, err := json.Marshal(s.Elements)
	if err != nil {
		return fmt.Errorf("marshal elements: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE training_session
		SET routine_id = $1, date = $2, notes = $3, elements = $4
		WHERE user_id = $5 AND id = $6
	`,
		nullableRoutine(s.RoutineID), s.Date, s.Notes, elementsJson, s.UserID, s.ID,
	)
	if err != nil {
		return fmt.Errorf("update training session: %w", mapWriteErr(err))
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.session.delete")
	span.SetAttributes(attribute.String("id", id.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM training_session WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete training session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func scanSession(row pgx.Row) (*Session, error) {
	var (
		s            Session
		routineID    *uuid.UUID
		elementsJson []byte
	)
	if err := row.Scan(&s.ID, &s.UserID, &routineID, &s.Date, &s.Notes, &elementsJson); err != nil {
		return nil, err
	}
	if routineID != nil {
		s.RoutineID = *routineID
	}
	if err := json.Unmarshal(elementsJson, &s.Elements); err != nil {
		return nil, fmt.Errorf("unmarshal elements: %w", err)
	}
	return &s, nil
}

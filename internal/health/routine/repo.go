package routine

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
	ErrRoutineNotFound = errors.New("routine not found")
	ErrRoutineExists   = errors.New("routine with this name already exists")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, rt Routine) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routine.add")
	span.SetAttributes(attribute.String("user", rt.UserID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sectionsJson, err := json.Marshal(rt.Sections)
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO routine (id, user_id, name, notes, archived, sections)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		rt.ID, rt.UserID, rt.Name.String(), rt.Notes, rt.Archived, sectionsJson,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrRoutineExists
		}
		if pkg.IsForeignKeyViolationError(err) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("insert routine: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, userID, id uuid.UUID) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routine.get")
	span.SetAttributes(attribute.String("id", id.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, notes, archived, sections
		FROM routine
		WHERE user_id = $1 AND id = $2
	`, userID, id)
	rt, err := scanRoutine(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoutineNotFound
		}
		return nil, fmt.Errorf("get routine: %w", err)
	}
	return rt, nil
}

func (r *Repo) List(ctx context.Context, userID uuid.UUID) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routine.list")
	span.SetAttributes(attribute.String("user", userID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, notes, archived, sections
		FROM routine
		WHERE user_id = $1
		ORDER BY name, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list routines: %w", err)
	}
	defer rows.Close()

	routines := make([]Routine, 0)
	for rows.Next() {
		rt, err := scanRoutine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan routine: %w", err)
		}
		routines = append(routines, *rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate routines: %w", err)
	}

	return routines, nil
}

func (r *Repo) Update(ctx context.Context, rt Routine) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routine.update")
	span.SetAttributes(attribute.String("id", rt.ID.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sectionsJson, err := json.Marshal(rt.Sections)
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE routine
		SET name = $1, notes = $2, archived = $3, sections = $4
		WHERE user_id = $5 AND id = $6
	`,
		rt.Name.String(), rt.Notes, rt.Archived, sectionsJson, rt.UserID, rt.ID,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrRoutineExists
		}
		return fmt.Errorf("update routine: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routine.delete")
	span.SetAttributes(attribute.String("id", id.String()))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM routine WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete routine: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

func scanRoutine(row pgx.Row) (*Routine, error) {
	var (
		rt           Routine
		routineName  string
		sectionsJson []byte
	)
	if err := row.Scan(&rt.ID, &rt.UserID, &routineName, &rt.Notes, &rt.Archived, &sectionsJson); err != nil {
		return nil, err
	}
	rt.Name = name.Name(routineName)
	if err := json.Unmarshal(sectionsJson, &rt.Sections); err != nil {
		return nil, fmt.Errorf("unmarshal sections: %w", err)
	}
	return &rt, nil
}

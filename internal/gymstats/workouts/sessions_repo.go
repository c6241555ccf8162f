package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CreateSession(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.session.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", session.UserID))

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO workout_session (id, user_id, started_at)
		VALUES ($1, $2, $3)
	`, session.ID, session.UserID, session.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("insert workout session: %w", err)
	}

	session.CompletedAt = nil
	session.Exercises = make([]Exercise, 0)
	return &session, nil
}

// GetSession returns the session with its exercises and their sets, in the order they were logged.
func (r *Repo) GetSession(ctx context.Context, id uuid.UUID) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.session.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", id.String()))

	session := &Session{}
	err = r.db.QueryRow(ctx, `
		SELECT id, user_id, started_at, completed_at
		FROM workout_session
		WHERE id = $1
	`, id).Scan(&session.ID, &session.UserID, &session.StartedAt, &session.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get workout session [%s]: %w", id, err)
	}

	exRows, err := r.db.Query(ctx, `
		SELECT we.id, we.session_id, we.exercise_id, et.name
		FROM workout_exercise we
		JOIN exercise_type et ON et.id = we.exercise_id
		WHERE we.session_id = $1
		ORDER BY we.created_at ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("list workout exercises: %w", err)
	}
	defer exRows.Close()

	session.Exercises = make([]Exercise, 0)
	exIndex := make(map[uuid.UUID]int)
	for exRows.Next() {
		ex := Exercise{Sets: make([]Set, 0)}
		if err := exRows.Scan(&ex.ID, &ex.SessionID, &ex.ExerciseID, &ex.ExerciseName); err != nil {
			return nil, fmt.Errorf("scan workout exercise: %w", err)
		}
		exIndex[ex.ID] = len(session.Exercises)
		session.Exercises = append(session.Exercises, ex)
	}
	if err := exRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout exercises: %w", err)
	}
	exRows.Close()

	setRows, err := r.db.Query(ctx, `
		SELECT ws.id, ws.workout_exercise_id, ws.weight, ws.reps, ws.rpe, ws.is_warmup, ws.completed_at
		FROM workout_set ws
		JOIN workout_exercise we ON we.id = ws.workout_exercise_id
		WHERE we.session_id = $1
		ORDER BY ws.completed_at ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("list workout sets: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		var s Set
		if err := setRows.Scan(&s.ID, &s.WorkoutExerciseID, &s.Weight, &s.Reps, &s.RPE, &s.IsWarmup, &s.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan workout set: %w", err)
		}
		if i, ok := exIndex[s.WorkoutExerciseID]; ok {
			session.Exercises[i].Sets = append(session.Exercises[i].Sets, s)
		}
	}
	if err := setRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout sets: %w", err)
	}

	return session, nil
}

func (r *Repo) AddExercise(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", exercise.ExerciseID))

	if exercise.ID == uuid.Nil {
		exercise.ID = uuid.New()
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO workout_exercise (id, session_id, exercise_id)
		VALUES ($1, $2, $3)
	`, exercise.ID, exercise.SessionID, exercise.ExerciseID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrExerciseTypeNotFound
		}
		return nil, fmt.Errorf("insert workout exercise: %w", err)
	}

	exercise.Sets = make([]Set, 0)
	return &exercise, nil
}

// GetExercise returns the workout exercise (without sets) and the session it belongs to.
func (r *Repo) GetExercise(ctx context.Context, id uuid.UUID) (_ *Exercise, _ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ex := &Exercise{Sets: make([]Set, 0)}
	session := &Session{}
	err = r.db.QueryRow(ctx, `
		SELECT we.id, we.session_id, we.exercise_id, et.name,
		       s.id, s.user_id, s.started_at, s.completed_at
		FROM workout_exercise we
		JOIN exercise_type et ON et.id = we.exercise_id
		JOIN workout_session s ON s.id = we.session_id
		WHERE we.id = $1
	`, id).Scan(
		&ex.ID, &ex.SessionID, &ex.ExerciseID, &ex.ExerciseName,
		&session.ID, &session.UserID, &session.StartedAt, &session.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrExerciseNotFound
		}
		return nil, nil, fmt.Errorf("get workout exercise [%s]: %w", id, err)
	}

	return ex, session, nil
}

// AddSet inserts the set while holding a share lock on the owning session row. A session
// completed concurrently either waits for the insert to commit or makes it fail with
// ErrSessionCompleted.
func (r *Repo) AddSet(ctx context.Context, set Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.set.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if set.ID == uuid.Nil {
		set.ID = uuid.New()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("add set, begin tx: %w", err)
	}
	defer func() {
		// no-op after commit
		_ = tx.Rollback(ctx)
	}()

	var completedAt *time.Time
	err = tx.QueryRow(ctx, `
		SELECT s.completed_at
		FROM workout_session s
		JOIN workout_exercise we ON we.session_id = s.id
		WHERE we.id = $1
		FOR SHARE OF s
	`, set.WorkoutExerciseID).Scan(&completedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("lock workout session of exercise [%s]: %w", set.WorkoutExerciseID, err)
	}
	if completedAt != nil {
		return nil, ErrSessionCompleted
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO workout_set (id, workout_exercise_id, weight, reps, rpe, is_warmup, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		set.ID,
		set.WorkoutExerciseID,
		set.Weight,
		set.Reps,
		set.RPE,
		set.IsWarmup,
		set.CompletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert workout set: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("add set, commit: %w", err)
	}
	return &set, nil
}

// CompleteSession marks an open session completed. An already completed (or unknown) session yields ErrSessionCompleted.
func (r *Repo) CompleteSession(ctx context.Context, id uuid.UUID, completedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.session.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE workout_session
		SET completed_at = $2
		WHERE id = $1 AND completed_at IS NULL
	`, id, completedAt)
	if err != nil {
		return fmt.Errorf("complete workout session [%s]: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionCompleted
	}

	return nil
}

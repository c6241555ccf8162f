package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymdesk/internal/gymstats/progression"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// BestWorkingSet returns the heaviest working set of the exercise from the user's
// completed sessions, excluding the given one. Nil when there is no such set.
func (r *Repo) BestWorkingSet(
	ctx context.Context,
	userID, exerciseID string,
	excludeSessionID uuid.UUID,
) (_ *progression.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.progress.best_set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	set := &progression.Set{}
	err = r.db.QueryRow(ctx, `
		SELECT ws.id, s.id, we.exercise_id, ws.weight, ws.reps, ws.rpe, ws.is_warmup, ws.completed_at
		FROM workout_set ws
		JOIN workout_exercise we ON we.id = ws.workout_exercise_id
		JOIN workout_session s ON s.id = we.session_id
		WHERE s.user_id = $1
		  AND we.exercise_id = $2
		  AND s.id <> $3
		  AND s.completed_at IS NOT NULL
		  AND ws.is_warmup = FALSE
		ORDER BY ws.weight DESC, ws.reps DESC
		LIMIT 1
	`, userID, exerciseID, excludeSessionID).Scan(
		&set.ID,
		&set.SessionID,
		&set.ExerciseID,
		&set.Weight,
		&set.Reps,
		&set.RPE,
		&set.IsWarmup,
		&set.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("best working set: %w", err)
	}

	return set, nil
}

// RecentWorkingSets returns up to limit working sets of the exercise from completed sessions, newest first.
func (r *Repo) RecentWorkingSets(ctx context.Context, userID, exerciseID string, limit int) (_ []progression.Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.progress.recent_sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	rows, err := r.db.Query(ctx, `
		SELECT ws.id, s.id, we.exercise_id, ws.weight, ws.reps, ws.rpe, ws.is_warmup, ws.completed_at
		FROM workout_set ws
		JOIN workout_exercise we ON we.id = ws.workout_exercise_id
		JOIN workout_session s ON s.id = we.session_id
		WHERE s.user_id = $1
		  AND we.exercise_id = $2
		  AND s.completed_at IS NOT NULL
		  AND ws.is_warmup = FALSE
		ORDER BY ws.completed_at DESC
		LIMIT $3
	`, userID, exerciseID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent working sets: %w", err)
	}
	defer rows.Close()

	sets := make([]progression.Set, 0, limit)
	for rows.Next() {
		var set progression.Set
		if err := rows.Scan(
			&set.ID,
			&set.SessionID,
			&set.ExerciseID,
			&set.Weight,
			&set.Reps,
			&set.RPE,
			&set.IsWarmup,
			&set.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan working set: %w", err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate working sets: %w", err)
	}

	return sets, nil
}

// UpsertSuggestion stores the suggestion, replacing the previous one of the same user and exercise.
func (r *Repo) UpsertSuggestion(ctx context.Context, suggestion progression.ProgressSuggestion) (_ *progression.ProgressSuggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.progress.upsert_suggestion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stored := &progression.ProgressSuggestion{}
	err = r.db.QueryRow(ctx, `
		INSERT INTO progress_suggestion (user_id, exercise_id, suggested_weight, rationale, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, exercise_id) DO UPDATE
		SET suggested_weight = EXCLUDED.suggested_weight,
		    rationale = EXCLUDED.rationale,
		    updated_at = EXCLUDED.updated_at
		RETURNING user_id, exercise_id, suggested_weight, rationale, updated_at
	`,
		suggestion.UserID,
		suggestion.ExerciseID,
		suggestion.SuggestedWeight,
		string(suggestion.Rationale),
		suggestion.UpdatedAt,
	).Scan(
		&stored.UserID,
		&stored.ExerciseID,
		&stored.SuggestedWeight,
		&stored.Rationale,
		&stored.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert suggestion: %w", err)
	}

	return stored, nil
}

func (r *Repo) GetSuggestion(ctx context.Context, userID, exerciseID string) (_ *progression.ProgressSuggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.progress.get_suggestion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	suggestion := &progression.ProgressSuggestion{}
	err = r.db.QueryRow(ctx, `
		SELECT user_id, exercise_id, suggested_weight, rationale, updated_at
		FROM progress_suggestion
		WHERE user_id = $1 AND exercise_id = $2
	`, userID, exerciseID).Scan(
		&suggestion.UserID,
		&suggestion.ExerciseID,
		&suggestion.SuggestedWeight,
		&suggestion.Rationale,
		&suggestion.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, progression.ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("get suggestion: %w", err)
	}

	return suggestion, nil
}

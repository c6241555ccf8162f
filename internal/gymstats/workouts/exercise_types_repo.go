package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymdesk/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
)

func (r *Repo) ExerciseTypes(ctx context.Context, muscleGroup string) (_ []ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise_types.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, muscle_group, description
		FROM exercise_type
		WHERE ($1::text = '' OR muscle_group = $1)
		ORDER BY muscle_group, name
	`, muscleGroup)
	if err != nil {
		return nil, fmt.Errorf("exercise types [query]: %w", err)
	}
	defer rows.Close()

	exerciseTypes := make([]ExerciseType, 0)
	for rows.Next() {
		var et ExerciseType
		if err := rows.Scan(&et.ID, &et.Name, &et.MuscleGroup, &et.Description); err != nil {
			return nil, fmt.Errorf("exercise types [scan]: %w", err)
		}
		exerciseTypes = append(exerciseTypes, et)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise types [rows]: %w", err)
	}

	return exerciseTypes, nil
}

func (r *Repo) ExerciseType(ctx context.Context, id string) (_ *ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise_types.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	et := &ExerciseType{}
	err = r.db.QueryRow(ctx, `
		SELECT id, name, muscle_group, description
		FROM exercise_type
		WHERE id = $1
	`, id).Scan(&et.ID, &et.Name, &et.MuscleGroup, &et.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseTypeNotFound
		}
		return nil, fmt.Errorf("exercise type [query row]: %w", err)
	}

	return et, nil
}

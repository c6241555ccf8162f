//go:build integration_test

package integration_testing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/2beens/gymdesk/internal/gymstats/progression"
	"github.com/2beens/gymdesk/internal/gymstats/workouts"
	"github.com/2beens/gymdesk/internal/middleware"

	"github.com/brianvoe/gofakeit/v6"
)

func (s *IntegrationTestSuite) TestWorkouts_CompleteSessionFlow() {
	ctx := context.Background()
	userID := gofakeit.UUID()
	startedAt := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)

	var session workouts.Session
	s.doJSON(ctx, http.MethodPost, "/workouts/sessions", workouts.StartSessionRequest{
		UserID:    userID,
		StartedAt: &startedAt,
	}, http.StatusCreated, &session)
	s.Equal(userID, session.UserID)

	var exercise workouts.Exercise
	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/workouts/sessions/%s/exercises", session.ID), workouts.AddExerciseRequest{
		ExerciseID: "bench_press",
	}, http.StatusCreated, &exercise)
	s.Equal("Bench Press", exercise.ExerciseName)

	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/workouts/sessions/%s/exercises", session.ID), workouts.AddExerciseRequest{
		ExerciseID: "no_such_exercise",
	}, http.StatusBadRequest, nil)

	rpe := 6.0
	warmupAt := startedAt.Add(5 * time.Minute)
	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/workouts/exercises/%s/sets", exercise.ID), workouts.LogSetRequest{
		Weight:      60,
		Reps:        10,
		IsWarmup:    true,
		CompletedAt: &warmupAt,
	}, http.StatusCreated, nil)
	for i := 0; i < 3; i++ {
		at := startedAt.Add(time.Duration(10+i*5) * time.Minute)
		s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/workouts/exercises/%s/sets", exercise.ID), workouts.LogSetRequest{
			Weight:      100,
			Reps:        11,
			RPE:         &rpe,
			CompletedAt: &at,
		}, http.StatusCreated, nil)
	}

	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/workouts/exercises/%s/sets", exercise.ID), workouts.LogSetRequest{
		Weight: 100,
		Reps:   0,
	}, http.StatusBadRequest, nil)

	completedAt := startedAt.Add(50 * time.Minute)
	var summary workouts.CompletionSummary
	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/workouts/sessions/%s/complete", session.ID), workouts.CompleteSessionRequest{
		CompletedAt: &completedAt,
	}, http.StatusOK, &summary)
	s.Equal(3, summary.TotalSets)
	s.Equal(33, summary.TotalReps)
	s.InDelta(3300.0, summary.TotalVolume, 0.001)
	s.Equal(50, summary.DurationMinutes)
	s.Len(summary.PRs, 3)
	s.Require().Len(summary.Suggestions, 1)
	s.InDelta(102.5, summary.Suggestions[0].SuggestedWeight, 0.001)
	s.Equal(progression.RationaleIncreaseLowFatigue, summary.Suggestions[0].Rationale)

	// completed sessions are read-only
	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/workouts/sessions/%s/complete", session.ID), nil, http.StatusConflict, nil)
	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/workouts/exercises/%s/sets", exercise.ID), workouts.LogSetRequest{
		Weight: 100,
		Reps:   5,
	}, http.StatusConflict, nil)

	var stored progression.ProgressSuggestion
	s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/workouts/suggestions/%s/bench_press", userID), nil, http.StatusOK, &stored)
	s.Equal(userID, stored.UserID)
	s.InDelta(102.5, stored.SuggestedWeight, 0.001)

	var fetched workouts.Session
	s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/workouts/sessions/%s", session.ID), nil, http.StatusOK, &fetched)
	s.True(fetched.IsCompleted())
	s.Require().Len(fetched.Exercises, 1)
	s.Len(fetched.Exercises[0].Sets, 4)
}

func (s *IntegrationTestSuite) TestWorkouts_SuggestionNotFound() {
	s.doJSON(context.Background(), http.MethodGet, "/workouts/suggestions/nobody/bench_press", nil, http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) TestWorkouts_ExerciseTypes() {
	var types []workouts.ExerciseType
	s.doJSON(context.Background(), http.MethodGet, "/workouts/exercises/types?muscle_group=legs", nil, http.StatusOK, &types)
	s.Require().NotEmpty(types)
	for _, et := range types {
		s.Equal("legs", et.MuscleGroup)
	}
}

func (s *IntegrationTestSuite) TestWorkouts_SetsRacingCompletion() {
	ctx := context.Background()
	userID := gofakeit.UUID()
	startedAt := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)

	var session workouts.Session
	s.doJSON(ctx, http.MethodPost, "/workouts/sessions", workouts.StartSessionRequest{
		UserID:    userID,
		StartedAt: &startedAt,
	}, http.StatusCreated, &session)

	var exercise workouts.Exercise
	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/workouts/sessions/%s/exercises", session.ID), workouts.AddExerciseRequest{
		ExerciseID: "bench_press",
	}, http.StatusCreated, &exercise)

	const setsCount = 20
	var (
		wg       sync.WaitGroup
		accepted atomic.Int32
		summary  workouts.CompletionSummary
	)
	for i := 0; i < setsCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body, err := json.Marshal(workouts.LogSetRequest{Weight: 80, Reps: 8})
			if err != nil {
				return
			}
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/workouts/exercises/%s/sets", serverEndpoint, exercise.ID), bytes.NewReader(body))
			if err != nil {
				return
			}
			req.Header.Set("User-Agent", "test-agent")
			req.Header.Set(middleware.TokenHeader, testAPIToken)
			resp, err := s.httpClient.Do(req)
			if err != nil {
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusCreated {
				accepted.Add(1)
			}
		}()
	}
	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/workouts/sessions/%s/complete", session.ID), nil, http.StatusOK, &summary)
	wg.Wait()

	var fetched workouts.Session
	s.doJSON(ctx, http.MethodGet, fmt.Sprintf("/workouts/sessions/%s", session.ID), nil, http.StatusOK, &fetched)
	s.Require().Len(fetched.Exercises, 1)
	// every accepted set is in the stored session and in the summary, nothing else got in
	s.Len(fetched.Exercises[0].Sets, int(accepted.Load()))
	s.Equal(int(accepted.Load()), summary.TotalSets)
}

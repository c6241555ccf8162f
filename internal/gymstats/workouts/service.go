package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymdesk/internal/gymstats/progression"
	"github.com/2beens/gymdesk/internal/telemetry/metrics"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	CreateSession(ctx context.Context, session Session) (*Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)
	AddExercise(ctx context.Context, exercise Exercise) (*Exercise, error)
	GetExercise(ctx context.Context, id uuid.UUID) (*Exercise, *Session, error)
	AddSet(ctx context.Context, set Set) (*Set, error)
	CompleteSession(ctx context.Context, id uuid.UUID, completedAt time.Time) error
	ExerciseTypes(ctx context.Context, muscleGroup string) ([]ExerciseType, error)
}

type exerciseTypesGetter interface {
	Get(ctx context.Context, id string) (*ExerciseType, error)
}

type progressionEngine interface {
	DetectPRs(ctx context.Context, userID string, sessionID uuid.UUID, exercises []progression.SessionExercise) ([]progression.PersonalRecord, error)
	GenerateSuggestion(ctx context.Context, userID, exerciseID string) (*progression.ProgressSuggestion, error)
	GetSuggestion(ctx context.Context, userID, exerciseID string) (*progression.ProgressSuggestion, error)
}

type Service struct {
	repo           workoutsRepo
	exerciseTypes  exerciseTypesGetter
	engine         progressionEngine
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(
	repo workoutsRepo,
	exerciseTypes exerciseTypesGetter,
	engine progressionEngine,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		exerciseTypes:  exerciseTypes,
		engine:         engine,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) StartSession(ctx context.Context, userID string, startedAt time.Time) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.session.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.New("start session: empty user id")
	}
	if startedAt.IsZero() {
		startedAt = s.now()
	}

	session, err := s.repo.CreateSession(ctx, Session{
		ID:        uuid.New(),
		UserID:    userID,
		StartedAt: startedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("start session [%s]: %w", userID, err)
	}
	return session, nil
}

func (s *Service) GetSession(ctx context.Context, id uuid.UUID) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.session.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.GetSession(ctx, id)
}

func (s *Service) AddExercise(ctx context.Context, sessionID uuid.UUID, exerciseID string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.exercise.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("add exercise: %w", err)
	}
	if session.IsCompleted() {
		return nil, ErrSessionCompleted
	}

	exerciseType, err := s.exerciseTypes.Get(ctx, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("add exercise: %w", err)
	}

	exercise, err := s.repo.AddExercise(ctx, Exercise{
		ID:         uuid.New(),
		SessionID:  sessionID,
		ExerciseID: exerciseType.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("add exercise: %w", err)
	}
	exercise.ExerciseName = exerciseType.Name

	return exercise, nil
}

// LogSet appends a set to an exercise of an open session. A zero CompletedAt means now.
// The repo re-checks the session under a row lock, so a set never lands in a session
// completed after the check below.
func (s *Service) LogSet(ctx context.Context, workoutExerciseID uuid.UUID, set Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.set.log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := set.Validate(); err != nil {
		return nil, err
	}

	_, session, err := s.repo.GetExercise(ctx, workoutExerciseID)
	if err != nil {
		return nil, fmt.Errorf("log set: %w", err)
	}
	if session.IsCompleted() {
		return nil, ErrSessionCompleted
	}

	set.ID = uuid.New()
	set.WorkoutExerciseID = workoutExerciseID
	if set.CompletedAt.IsZero() {
		set.CompletedAt = s.now()
	}

	stored, err := s.repo.AddSet(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("log set: %w", err)
	}
	return stored, nil
}

// CompleteSession closes the session, then reports new personal records and refreshes
// the progress suggestion of every exercise done in it. The summary is built from the
// session as stored after the update. Once the session is marked completed, PR and
// suggestion failures are logged and left out of the summary.
func (s *Service) CompleteSession(ctx context.Context, id uuid.UUID, completedAt time.Time) (_ *CompletionSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.session.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session_id", id.String()))

	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}
	if session.IsCompleted() {
		return nil, ErrSessionCompleted
	}

	if completedAt.IsZero() {
		completedAt = s.now()
	}
	if err := s.repo.CompleteSession(ctx, id, completedAt); err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}
	s.incCounter(func(m *metrics.Manager) { m.CounterSessionsCompleted.Inc() })

	// sets logged between the first read and the update belong to the summary too
	session, err = s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("complete session, reload: %w", err)
	}

	summary := summarize(*session, completedAt)
	sessionExercises := groupByExercise(*session)

	prs, err := s.engine.DetectPRs(ctx, session.UserID, session.ID, sessionExercises)
	if err != nil {
		log.Errorf("detect PRs, session [%s]: %s", session.ID, err)
	} else {
		summary.PRs = prs
		s.incCounter(func(m *metrics.Manager) { m.CounterPersonalRecords.Add(float64(len(prs))) })
	}

	for _, ex := range sessionExercises {
		suggestion, err := s.engine.GenerateSuggestion(ctx, session.UserID, ex.ExerciseID)
		if err != nil {
			// next completion recomputes it
			log.Errorf("generate suggestion [%s] [%s]: %s", session.UserID, ex.ExerciseID, err)
			continue
		}
		if suggestion == nil {
			continue
		}
		summary.Suggestions = append(summary.Suggestions, *suggestion)
		s.incCounter(func(m *metrics.Manager) {
			m.CounterSuggestions.WithLabelValues(suggestion.Rationale.MetricLabel()).Inc()
		})
	}

	span.SetAttributes(attribute.Int("prs", len(summary.PRs)))
	log.Debugf(
		"session [%s] completed: %d sets, %d reps, volume %.1f, %d PRs",
		session.ID, summary.TotalSets, summary.TotalReps, summary.TotalVolume, len(summary.PRs),
	)
	return &summary, nil
}

func (s *Service) GetSuggestion(ctx context.Context, userID, exerciseID string) (*progression.ProgressSuggestion, error) {
	return s.engine.GetSuggestion(ctx, userID, exerciseID)
}

func (s *Service) ExerciseTypes(ctx context.Context, muscleGroup string) ([]ExerciseType, error) {
	return s.repo.ExerciseTypes(ctx, muscleGroup)
}

func (s *Service) incCounter(fn func(m *metrics.Manager)) {
	if s.metricsManager != nil {
		fn(s.metricsManager)
	}
}

// groupByExercise merges the session's exercises by exercise type, keeping first-seen order.
func groupByExercise(session Session) []progression.SessionExercise {
	grouped := make([]progression.SessionExercise, 0, len(session.Exercises))
	index := make(map[string]int)
	for _, ex := range session.Exercises {
		i, ok := index[ex.ExerciseID]
		if !ok {
			i = len(grouped)
			index[ex.ExerciseID] = i
			grouped = append(grouped, progression.SessionExercise{
				ExerciseID:   ex.ExerciseID,
				ExerciseName: ex.ExerciseName,
				Sets:         make([]progression.Set, 0, len(ex.Sets)),
			})
		}
		for _, set := range ex.Sets {
			grouped[i].Sets = append(grouped[i].Sets, set.progressionSet(session.ID, ex.ExerciseID))
		}
	}
	return grouped
}

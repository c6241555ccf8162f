package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymdesk/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=progression_test

var ErrSuggestionNotFound = errors.New("suggestion not found")

// setsRepo is the record store the engine reads history from and writes suggestions to.
type setsRepo interface {
	// BestWorkingSet returns the heaviest non-warm-up set of the exercise outside the given session,
	// or nil when there is none.
	BestWorkingSet(ctx context.Context, userID, exerciseID string, excludeSessionID uuid.UUID) (*Set, error)
	// RecentWorkingSets returns up to limit non-warm-up sets from completed sessions, newest first.
	RecentWorkingSets(ctx context.Context, userID, exerciseID string, limit int) ([]Set, error)
	UpsertSuggestion(ctx context.Context, suggestion ProgressSuggestion) (*ProgressSuggestion, error)
	GetSuggestion(ctx context.Context, userID, exerciseID string) (*ProgressSuggestion, error)
}

type keyLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// SessionExercise groups the sets logged for one exercise in a session.
type SessionExercise struct {
	ExerciseID   string
	ExerciseName string
	Sets         []Set
}

type Engine struct {
	repo   setsRepo
	locker keyLocker
	now    func() time.Time
}

func NewEngine(repo setsRepo, locker keyLocker) *Engine {
	return &Engine{
		repo:   repo,
		locker: locker,
		now:    time.Now,
	}
}

// DetectPRs checks every working set of a completed session against the best set
// stored before that session. The previous best is fetched once per exercise.
func (e *Engine) DetectPRs(
	ctx context.Context,
	userID string,
	sessionID uuid.UUID,
	exercises []SessionExercise,
) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.progression.detect-prs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("session_id", sessionID.String()))

	prs := make([]PersonalRecord, 0)
	for _, ex := range exercises {
		working := WorkingSets(ex.Sets)
		if len(working) == 0 {
			continue
		}

		previousBest, err := e.repo.BestWorkingSet(ctx, userID, ex.ExerciseID, sessionID)
		if err != nil {
			return nil, fmt.Errorf("best working set [%s]: %w", ex.ExerciseID, err)
		}

		for _, s := range working {
			if pr, ok := DetectPR(ex.ExerciseName, s, previousBest); ok {
				prs = append(prs, pr)
			}
		}
	}

	span.SetAttributes(attribute.Int("prs", len(prs)))
	return prs, nil
}

// GenerateSuggestion recomputes and stores the suggested working weight for the
// user and exercise. Returns nil (and writes nothing) when there is no history.
func (e *Engine) GenerateSuggestion(ctx context.Context, userID, exerciseID string) (_ *ProgressSuggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.progression.generate-suggestion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	unlock, err := e.locker.Lock(ctx, suggestionLockKey(userID, exerciseID))
	if err != nil {
		return nil, fmt.Errorf("lock suggestion [%s] [%s]: %w", userID, exerciseID, err)
	}
	defer unlock()

	sets, err := e.repo.RecentWorkingSets(ctx, userID, exerciseID, RecentSetsLimit)
	if err != nil {
		return nil, fmt.Errorf("recent working sets: %w", err)
	}

	suggestion := Suggest(sets)
	if suggestion == nil {
		log.Tracef("no history for [%s] [%s], suggestion skipped", userID, exerciseID)
		return nil, nil
	}

	stored, err := e.repo.UpsertSuggestion(ctx, ProgressSuggestion{
		UserID:          userID,
		ExerciseID:      exerciseID,
		SuggestedWeight: suggestion.SuggestedWeight,
		Rationale:       suggestion.Rationale,
		UpdatedAt:       e.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert suggestion: %w", err)
	}

	span.SetAttributes(attribute.String("rationale", suggestion.Rationale.MetricLabel()))
	log.Debugf("suggestion [%s] [%s]: %.2f (%s)", userID, exerciseID, stored.SuggestedWeight, stored.Rationale)
	return stored, nil
}

func (e *Engine) GetSuggestion(ctx context.Context, userID, exerciseID string) (_ *ProgressSuggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.progression.get-suggestion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return e.repo.GetSuggestion(ctx, userID, exerciseID)
}

func suggestionLockKey(userID, exerciseID string) string {
	return "suggestion:" + userID + ":" + exerciseID
}

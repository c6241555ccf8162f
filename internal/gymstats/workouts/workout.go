package workouts

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymdesk/internal/gymstats/progression"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound      = errors.New("workout session not found")
	ErrSessionCompleted     = errors.New("workout session already completed")
	ErrExerciseNotFound     = errors.New("workout exercise not found")
	ErrExerciseTypeNotFound = errors.New("exercise type not found")
	ErrInvalidSet           = errors.New("invalid set")
)

// Session is a single workout of a user. Sets can be appended only while CompletedAt is nil.
type Session struct {
	ID          uuid.UUID  `json:"id"`
	UserID      string     `json:"userId"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	Exercises []Exercise `json:"exercises"`
}

func (s Session) IsCompleted() bool {
	return s.CompletedAt != nil
}

// Exercise is an exercise type performed within a session.
type Exercise struct {
	ID           uuid.UUID `json:"id"`
	SessionID    uuid.UUID `json:"sessionId"`
	ExerciseID   string    `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`

	Sets []Set `json:"sets"`
}

type Set struct {
	ID                uuid.UUID `json:"id"`
	WorkoutExerciseID uuid.UUID `json:"workoutExerciseId"`
	Weight            float64   `json:"weight"`
	Reps              int       `json:"reps"`
	RPE               *float64  `json:"rpe,omitempty"`
	IsWarmup          bool      `json:"isWarmup"`
	CompletedAt       time.Time `json:"completedAt"`
}

func (s Set) Validate() error {
	if s.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidSet)
	}
	if s.Reps <= 0 {
		return fmt.Errorf("%w: reps must be positive", ErrInvalidSet)
	}
	if s.RPE != nil && (*s.RPE < 1 || *s.RPE > 10) {
		return fmt.Errorf("%w: rpe must be between 1 and 10", ErrInvalidSet)
	}
	return nil
}

// progressionSet maps the set onto the shape the progression engine works with.
func (s Set) progressionSet(sessionID uuid.UUID, exerciseID string) progression.Set {
	return progression.Set{
		ID:          s.ID,
		SessionID:   sessionID,
		ExerciseID:  exerciseID,
		Weight:      s.Weight,
		Reps:        s.Reps,
		RPE:         s.RPE,
		IsWarmup:    s.IsWarmup,
		CompletedAt: s.CompletedAt,
	}
}

type ExerciseType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Description string `json:"description,omitempty"`
}

// CompletionSummary is returned when a session is completed. Totals count working sets only.
type CompletionSummary struct {
	SessionID       uuid.UUID                        `json:"sessionId"`
	TotalVolume     float64                          `json:"totalVolume"`
	TotalSets       int                              `json:"totalSets"`
	TotalReps       int                              `json:"totalReps"`
	DurationMinutes int                              `json:"durationMinutes"`
	PRs             []progression.PersonalRecord     `json:"prs"`
	Suggestions     []progression.ProgressSuggestion `json:"suggestions"`
}

// summarize computes the totals of a session completed at the given time.
func summarize(session Session, completedAt time.Time) CompletionSummary {
	summary := CompletionSummary{
		SessionID:   session.ID,
		PRs:         make([]progression.PersonalRecord, 0),
		Suggestions: make([]progression.ProgressSuggestion, 0),
	}
	for _, ex := range session.Exercises {
		for _, s := range ex.Sets {
			if s.IsWarmup {
				continue
			}
			summary.TotalSets++
			summary.TotalReps += s.Reps
			summary.TotalVolume += s.Weight * float64(s.Reps)
		}
	}
	if d := completedAt.Sub(session.StartedAt); d > 0 {
		summary.DurationMinutes = int(d / time.Minute)
	}
	return summary
}

package progression

import (
	"time"

	"github.com/google/uuid"
)

// Set is the workout-set shaped record the engine works on.
type Set struct {
	ID          uuid.UUID `json:"id"`
	SessionID   uuid.UUID `json:"sessionId"`
	ExerciseID  string    `json:"exerciseId"`
	Weight      float64   `json:"weight"`
	Reps        int       `json:"reps"`
	RPE         *float64  `json:"rpe,omitempty"`
	IsWarmup    bool      `json:"isWarmup"`
	CompletedAt time.Time `json:"completedAt"`
}

// OneRepMax returns the estimated one-rep-max of the set.
func (s Set) OneRepMax() float64 {
	return EstimateOneRepMax(s.Weight, s.Reps)
}

// WorkingSets filters out warm-up sets, keeping the input order.
func WorkingSets(sets []Set) []Set {
	working := make([]Set, 0, len(sets))
	for _, s := range sets {
		if s.IsWarmup {
			continue
		}
		working = append(working, s)
	}
	return working
}

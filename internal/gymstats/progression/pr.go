package progression

import (
	"github.com/google/uuid"
)

// PersonalRecord is reported when a completed working set beats the stored best
// for the same user and exercise.
type PersonalRecord struct {
	SetID              uuid.UUID `json:"setId"`
	ExerciseID         string    `json:"exerciseId"`
	ExerciseName       string    `json:"exerciseName"`
	Weight             float64   `json:"weight"`
	Reps               int       `json:"reps"`
	EstimatedOneRepMax float64   `json:"estimatedOneRepMax"`
	PreviousBest       float64   `json:"previousBest"`
}

// DetectPR compares the set against the previous best set of the same exercise.
// With no previous best the previous estimate is 0, so the first logged set is always a PR.
// Warm-up sets are never records.
func DetectPR(exerciseName string, set Set, previousBest *Set) (PersonalRecord, bool) {
	if set.IsWarmup {
		return PersonalRecord{}, false
	}

	current := set.OneRepMax()
	var previous float64
	if previousBest != nil {
		previous = previousBest.OneRepMax()
	}

	if current <= previous {
		return PersonalRecord{}, false
	}

	return PersonalRecord{
		SetID:              set.ID,
		ExerciseID:         set.ExerciseID,
		ExerciseName:       exerciseName,
		Weight:             set.Weight,
		Reps:               set.Reps,
		EstimatedOneRepMax: roundOneDecimal(current),
		PreviousBest:       roundOneDecimal(previous),
	}, true
}

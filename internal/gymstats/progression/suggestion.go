package progression

import (
	"time"
)

// Rationale explains a suggested working weight.
type Rationale string

const (
	RationaleIncreaseLowFatigue  Rationale = "increase — low fatigue, high reps"
	RationaleDecreaseHighFatigue Rationale = "decrease — high fatigue"
	RationaleIncreaseHighReps    Rationale = "increase — high rep count"
	RationaleMaintain            Rationale = "maintain current weight"
)

func (r Rationale) String() string {
	return string(r)
}

// MetricLabel is a short, label-safe name for the rationale.
func (r Rationale) MetricLabel() string {
	switch r {
	case RationaleIncreaseLowFatigue:
		return "increase_low_fatigue"
	case RationaleDecreaseHighFatigue:
		return "decrease_high_fatigue"
	case RationaleIncreaseHighReps:
		return "increase_high_reps"
	case RationaleMaintain:
		return "maintain"
	default:
		return "unknown"
	}
}

const (
	// RecentSetsLimit is how many of the latest working sets feed a suggestion.
	RecentSetsLimit = 10
	// WeightIncrement is the smallest plate/dumbbell step suggestions are rounded to.
	WeightIncrement = 0.25

	lowFatigueMaxRPE  = 7.0
	lowFatigueMinReps = 10.0
	highFatigueMinRPE = 9.0
	highRepsMinReps   = 12.0

	increaseFactor = 1.025
	decreaseFactor = 0.975
)

// Suggestion is the outcome of the progression heuristic over a window of sets.
type Suggestion struct {
	SuggestedWeight float64   `json:"suggestedWeight"`
	Rationale       Rationale `json:"rationale"`
	AvgWeight       float64   `json:"avgWeight"`
	AvgReps         float64   `json:"avgReps"`
	// AvgRPE is nil when none of the sets recorded an RPE.
	AvgRPE         *float64 `json:"avgRpe,omitempty"`
	SetsConsidered int      `json:"setsConsidered"`
}

// ProgressSuggestion is the stored suggestion, one per (user, exercise).
type ProgressSuggestion struct {
	UserID          string    `json:"userId"`
	ExerciseID      string    `json:"exerciseId"`
	SuggestedWeight float64   `json:"suggestedWeight"`
	Rationale       Rationale `json:"rationale"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Suggest runs the progression heuristic over the given sets (warm-ups are ignored).
// Rules are checked in order, first match wins:
//  1. avg RPE < 7 and avg reps >= 10 -> +2.5%
//  2. avg RPE > 9                   -> -2.5%
//  3. avg reps >= 12                -> +2.5%
//  4. otherwise keep the weight
//
// Returns nil when there is nothing to base a suggestion on.
func Suggest(sets []Set) *Suggestion {
	working := WorkingSets(sets)
	if len(working) == 0 {
		return nil
	}

	var totalWeight, totalReps, totalRPE float64
	rpeCount := 0
	for _, s := range working {
		totalWeight += s.Weight
		totalReps += float64(s.Reps)
		if s.RPE != nil {
			totalRPE += *s.RPE
			rpeCount++
		}
	}

	n := float64(len(working))
	avgWeight := totalWeight / n
	avgReps := totalReps / n

	var avgRPE *float64
	if rpeCount > 0 {
		v := totalRPE / float64(rpeCount)
		avgRPE = &v
	}

	factor := 1.0
	rationale := RationaleMaintain
	switch {
	case avgRPE != nil && *avgRPE < lowFatigueMaxRPE && avgReps >= lowFatigueMinReps:
		factor, rationale = increaseFactor, RationaleIncreaseLowFatigue
	case avgRPE != nil && *avgRPE > highFatigueMinRPE:
		factor, rationale = decreaseFactor, RationaleDecreaseHighFatigue
	case avgReps >= highRepsMinReps:
		factor, rationale = increaseFactor, RationaleIncreaseHighReps
	}

	return &Suggestion{
		SuggestedWeight: RoundToIncrement(avgWeight*factor, WeightIncrement),
		Rationale:       rationale,
		AvgWeight:       avgWeight,
		AvgReps:         avgReps,
		AvgRPE:          avgRPE,
		SetsConsidered:  len(working),
	}
}

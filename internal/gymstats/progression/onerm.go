package progression

import "math"

// EstimateOneRepMax estimates the one-rep-max with the Epley formula:
// weight * (1 + reps/30). A single rep is already a max effort and is returned as is.
// Non-positive input yields 0.
func EstimateOneRepMax(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	return weight * (1 + float64(reps)/30)
}

// RoundToIncrement rounds x to the nearest multiple of increment.
func RoundToIncrement(x, increment float64) float64 {
	if increment <= 0 {
		return x
	}
	return math.Round(x/increment) * increment
}

func roundOneDecimal(x float64) float64 {
	return math.Round(x*10) / 10
}

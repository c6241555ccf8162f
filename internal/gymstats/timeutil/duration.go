package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration renders a millisecond duration for display:
// "<N> min" below one hour, "<H>h <M>m" otherwise.
// Negative input is treated as zero.
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	minutes := ms / int64(time.Minute/time.Millisecond)
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// ElapsedMs returns the milliseconds between from and to, clamped to >= 0.
func ElapsedMs(from, to time.Time) int64 {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}
	return d.Milliseconds()
}

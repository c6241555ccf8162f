package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidBucketMode = errors.New("invalid bucket mode")

// BucketMode is the calendar granularity used to group timestamps.
type BucketMode string

const (
	BucketModeDay   BucketMode = "day"
	BucketModeMonth BucketMode = "month"
	BucketModeYear  BucketMode = "year"
)

// bucket keys are zero-padded so that plain string comparison orders them chronologically
const (
	dayKeyLayout   = "2006-01-02"
	monthKeyLayout = "2006-01"
	yearKeyLayout  = "2006"

	dayLabelLayout = "02/01/2006"
)

func (m BucketMode) String() string {
	return string(m)
}

func (m BucketMode) IsValid() bool {
	switch m {
	case BucketModeDay, BucketModeMonth, BucketModeYear:
		return true
	default:
		return false
	}
}

// ParseBucketMode parses day|month|year (case-insensitive).
// An empty string defaults to day.
func ParseBucketMode(s string) (BucketMode, error) {
	if s == "" {
		return BucketModeDay, nil
	}
	mode := BucketMode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidBucketMode, s)
	}
	return mode, nil
}

// BucketKey returns the sortable bucket key of t in location loc.
// A nil loc means time.Local.
func BucketKey(t time.Time, mode BucketMode, loc *time.Location) string {
	t = inLocation(t, loc)
	switch mode {
	case BucketModeMonth:
		return t.Format(monthKeyLayout)
	case BucketModeYear:
		return t.Format(yearKeyLayout)
	default:
		return t.Format(dayKeyLayout)
	}
}

// BucketLabel returns the display label for t. Day buckets are rendered as a
// localized calendar date (day/month/year), other modes reuse the key.
func BucketLabel(t time.Time, mode BucketMode, loc *time.Location) string {
	if mode == BucketModeDay || mode == "" {
		return inLocation(t, loc).Format(dayLabelLayout)
	}
	return BucketKey(t, mode, loc)
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc)
}

package attendance

import (
	"sort"
	"time"

	"github.com/2beens/gymdesk/internal/gymstats/timeutil"
)

// Bucket is a calendar period (day, month or year) of attendance records.
type Bucket struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	// Records keep the order they were passed in.
	Records         []Record `json:"records"`
	Count           int      `json:"count"`
	TotalDurationMs int64    `json:"totalDurationMs"`
	TotalDuration   string   `json:"totalDuration"`
}

// GroupAttendance groups the records by the bucket of their check-in time in loc.
// The bucket holding now comes first, the rest follow by descending key.
// Visits still in progress are counted up to now, so totals of open buckets grow between calls.
func GroupAttendance(records []Record, mode timeutil.BucketMode, now time.Time, loc *time.Location) []Bucket {
	if !mode.IsValid() {
		mode = timeutil.BucketModeDay
	}

	byKey := make(map[string]*Bucket)
	keys := make([]string, 0)
	for _, r := range records {
		key := timeutil.BucketKey(r.CheckInTime, mode, loc)
		b, ok := byKey[key]
		if !ok {
			b = &Bucket{
				Key:     key,
				Label:   timeutil.BucketLabel(r.CheckInTime, mode, loc),
				Records: make([]Record, 0),
			}
			byKey[key] = b
			keys = append(keys, key)
		}
		b.Records = append(b.Records, r)
		b.Count++
		b.TotalDurationMs += r.durationMs(now)
	}

	less := bucketKeyLess(timeutil.BucketKey(now, mode, loc))
	sort.Slice(keys, func(i, j int) bool {
		return less(keys[i], keys[j])
	})

	buckets := make([]Bucket, 0, len(keys))
	for _, key := range keys {
		b := byKey[key]
		b.TotalDuration = timeutil.FormatDuration(b.TotalDurationMs)
		buckets = append(buckets, *b)
	}
	return buckets
}

// bucketKeyLess orders the current bucket first, then the rest by descending key.
func bucketKeyLess(currentKey string) func(a, b string) bool {
	return func(a, b string) bool {
		if (a == currentKey) != (b == currentKey) {
			return a == currentKey
		}
		return a > b
	}
}

package attendance

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/2beens/gymdesk/internal/gymstats/timeutil"

	"github.com/google/uuid"
)

var (
	ErrRecordNotFound        = errors.New("attendance record not found")
	ErrAlreadyCheckedIn      = errors.New("user already checked in")
	ErrAlreadyCheckedOut     = errors.New("attendance record already checked out")
	ErrCheckOutBeforeCheckIn = errors.New("check-out time before check-in time")
)

// Record is a single gym visit. CheckOutTime is nil while the visit is in progress.
type Record struct {
	ID           uuid.UUID  `json:"id"`
	UserID       string     `json:"userId"`
	Scope        string     `json:"scope,omitempty"`
	CheckInTime  time.Time  `json:"checkInTime"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`
}

func (r Record) InProgress() bool {
	return r.CheckOutTime == nil
}

// DurationMinutes returns the visit length in whole minutes, and false while the visit is in progress.
func (r Record) DurationMinutes() (int, bool) {
	if r.InProgress() {
		return 0, false
	}
	return int(timeutil.ElapsedMs(r.CheckInTime, *r.CheckOutTime) / int64(time.Minute/time.Millisecond)), true
}

// durationMs counts an open visit up to now.
func (r Record) durationMs(now time.Time) int64 {
	end := now
	if r.CheckOutTime != nil {
		end = *r.CheckOutTime
	}
	return timeutil.ElapsedMs(r.CheckInTime, end)
}

func (r Record) MarshalJSON() ([]byte, error) {
	type record Record
	out := struct {
		record
		DurationMinutes *int `json:"durationMinutes"`
		InProgress      bool `json:"inProgress"`
	}{
		record:     record(r),
		InProgress: r.InProgress(),
	}
	if minutes, ok := r.DurationMinutes(); ok {
		out.DurationMinutes = &minutes
	}
	return json.Marshal(out)
}

//go:build integration_test

package integration_testing

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/gymdesk/internal/gymstats/attendance"

	"github.com/brianvoe/gofakeit/v6"
)

type recordResponse struct {
	attendance.Record
	DurationMinutes *int `json:"durationMinutes"`
	InProgress      bool `json:"inProgress"`
}

func (s *IntegrationTestSuite) TestAttendance_CheckInCheckOutAndBuckets() {
	ctx := context.Background()
	userID := gofakeit.UUID()
	checkIn := time.Now().UTC().Add(-90 * time.Minute).Truncate(time.Second)

	var record recordResponse
	s.doJSON(ctx, http.MethodPost, "/attendance/checkin", attendance.CheckInRequest{
		UserID:      userID,
		Scope:       "main-gym",
		CheckInTime: &checkIn,
	}, http.StatusCreated, &record)
	s.Equal(userID, record.UserID)
	s.True(record.InProgress)
	s.Nil(record.DurationMinutes)

	// second open visit is rejected
	s.doJSON(ctx, http.MethodPost, "/attendance/checkin", attendance.CheckInRequest{
		UserID: userID,
		Scope:  "main-gym",
	}, http.StatusConflict, nil)

	checkOut := checkIn.Add(75 * time.Minute)
	var checkedOut recordResponse
	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/attendance/%s/checkout", record.ID), attendance.CheckOutRequest{
		CheckOutTime: &checkOut,
	}, http.StatusOK, &checkedOut)
	s.False(checkedOut.InProgress)
	s.Require().NotNil(checkedOut.DurationMinutes)
	s.Equal(75, *checkedOut.DurationMinutes)

	s.doJSON(ctx, http.MethodPost, fmt.Sprintf("/attendance/%s/checkout", record.ID), attendance.CheckOutRequest{
		CheckOutTime: &checkOut,
	}, http.StatusConflict, nil)

	var buckets []attendance.Bucket
	s.doJSON(ctx, http.MethodGet, "/attendance/buckets?mode=day&user_id="+userID, nil, http.StatusOK, &buckets)
	s.Require().NotEmpty(buckets)

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	s.Equal(1, total)
	s.Equal(checkIn.Format("2006-01-02"), buckets[0].Key)
	s.Equal("1h 15m", buckets[0].TotalDuration)
}

func (s *IntegrationTestSuite) TestAttendance_InvalidBucketMode() {
	s.doJSON(context.Background(), http.MethodGet, "/attendance/buckets?mode=week", nil, http.StatusBadRequest, nil)
}

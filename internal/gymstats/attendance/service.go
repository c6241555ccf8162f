package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymdesk/internal/gymstats/timeutil"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=attendance_test

type attendanceRepo interface {
	Add(ctx context.Context, record Record) (*Record, error)
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	SetCheckOut(ctx context.Context, id uuid.UUID, checkOutTime time.Time) (*Record, error)
	List(ctx context.Context, params ListParams) ([]Record, error)
}

type CheckInParams struct {
	UserID string
	Scope  string
	// zero means now
	At time.Time
}

type BucketsParams struct {
	UserID string
	Scope  string
	Mode   timeutil.BucketMode
	// optional check-in window, both ends inclusive
	From *time.Time
	To   *time.Time
}

type Service struct {
	repo attendanceRepo
	// bucket boundaries are computed in this location
	loc *time.Location
	now func() time.Time
}

func NewService(repo attendanceRepo, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

func (s *Service) CheckIn(ctx context.Context, params CheckInParams) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.attendance.checkin")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userID := strings.TrimSpace(params.UserID)
	if userID == "" {
		return nil, fmt.Errorf("check in: empty user id")
	}

	at := params.At
	if at.IsZero() {
		at = s.now()
	}

	record, err := s.repo.Add(ctx, Record{
		ID:          uuid.New(),
		UserID:      userID,
		Scope:       strings.TrimSpace(params.Scope),
		CheckInTime: at,
	})
	if err != nil {
		return nil, fmt.Errorf("check in [%s]: %w", userID, err)
	}

	log.Debugf("user [%s] checked in [%s] at %s", record.UserID, record.ID, record.CheckInTime)
	return record, nil
}

// CheckOut closes the visit. A zero at means now.
func (s *Service) CheckOut(ctx context.Context, id uuid.UUID, at time.Time) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.attendance.checkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("record_id", id.String()))

	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check out: %w", err)
	}
	if !record.InProgress() {
		return nil, ErrAlreadyCheckedOut
	}

	if at.IsZero() {
		at = s.now()
	}
	if at.Before(record.CheckInTime) {
		return nil, ErrCheckOutBeforeCheckIn
	}

	record, err = s.repo.SetCheckOut(ctx, id, at)
	if err != nil {
		return nil, fmt.Errorf("check out: %w", err)
	}

	log.Debugf("user [%s] checked out [%s] at %s", record.UserID, record.ID, at)
	return record, nil
}

func (s *Service) Buckets(ctx context.Context, params BucketsParams) (_ []Bucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.attendance.buckets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("mode", params.Mode.String()))

	records, err := s.repo.List(ctx, ListParams{
		UserID: params.UserID,
		Scope:  params.Scope,
		From:   params.From,
		To:     params.To,
	})
	if err != nil {
		return nil, fmt.Errorf("buckets: %w", err)
	}

	return GroupAttendance(records, params.Mode, s.now(), s.loc), nil
}

package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/2beens/gymdesk/internal/gymstats/timeutil"
	"github.com/2beens/gymdesk/internal/telemetry/metrics"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=attendance_test

type attendanceService interface {
	CheckIn(ctx context.Context, params CheckInParams) (*Record, error)
	CheckOut(ctx context.Context, id uuid.UUID, at time.Time) (*Record, error)
	Buckets(ctx context.Context, params BucketsParams) ([]Bucket, error)
}

type CheckInRequest struct {
	UserID      string     `json:"userId"`
	Scope       string     `json:"scope"`
	CheckInTime *time.Time `json:"checkInTime"`
}

type CheckOutRequest struct {
	CheckOutTime *time.Time `json:"checkOutTime"`
}

type Handler struct {
	service        attendanceService
	metricsManager *metrics.Manager
}

func NewHandler(service attendanceService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (h *Handler) HandleCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.attendance.checkin")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("check in, unmarshal json params: %s", err)
		http.Error(w, "check in failed", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	params := CheckInParams{
		UserID: req.UserID,
		Scope:  req.Scope,
	}
	if req.CheckInTime != nil {
		params.At = *req.CheckInTime
	}

	record, err := h.service.CheckIn(ctx, params)
	if err != nil {
		if errors.Is(err, ErrAlreadyCheckedIn) {
			http.Error(w, "error, user already checked in", http.StatusConflict)
			return
		}
		log.Errorf("check in [%s]: %s", req.UserID, err)
		http.Error(w, "error, check in failed", http.StatusInternalServerError)
		return
	}

	recordJson, err := json.Marshal(record)
	if err != nil {
		log.Errorf("marshal attendance record: %s", err)
		http.Error(w, "error, check in failed", http.StatusInternalServerError)
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterCheckIns.Inc()
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordJson, http.StatusCreated)
}

// HandleCheckOut accepts an optional JSON body with the check-out time; no body means now.
func (h *Handler) HandleCheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.attendance.checkout")
	defer span.End()

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid record id", http.StatusBadRequest)
		return
	}

	var req CheckOutRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			log.Tracef("check out, unmarshal json params: %s", err)
			http.Error(w, "check out failed", http.StatusBadRequest)
			return
		}
	}

	var at time.Time
	if req.CheckOutTime != nil {
		at = *req.CheckOutTime
	}

	record, err := h.service.CheckOut(ctx, id, at)
	if err != nil {
		switch {
		case errors.Is(err, ErrRecordNotFound):
			http.Error(w, "error, attendance record not found", http.StatusNotFound)
		case errors.Is(err, ErrAlreadyCheckedOut):
			http.Error(w, "error, already checked out", http.StatusConflict)
		case errors.Is(err, ErrCheckOutBeforeCheckIn):
			http.Error(w, "error, check-out time before check-in time", http.StatusBadRequest)
		default:
			log.Errorf("check out [%s]: %s", id, err)
			http.Error(w, "error, check out failed", http.StatusInternalServerError)
		}
		return
	}

	recordJson, err := json.Marshal(record)
	if err != nil {
		log.Errorf("marshal attendance record: %s", err)
		http.Error(w, "error, check out failed", http.StatusInternalServerError)
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterCheckOuts.Inc()
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, recordJson)
}

func (h *Handler) HandleBuckets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.attendance.buckets")
	defer span.End()

	query := r.URL.Query()
	mode, err := timeutil.ParseBucketMode(query.Get("mode"))
	if err != nil {
		http.Error(w, "error, mode must be one of: day, month, year", http.StatusBadRequest)
		return
	}

	from, err := parseTimeParam(query.Get("from"))
	if err != nil {
		http.Error(w, "error, from must be an RFC3339 time", http.StatusBadRequest)
		return
	}
	to, err := parseTimeParam(query.Get("to"))
	if err != nil {
		http.Error(w, "error, to must be an RFC3339 time", http.StatusBadRequest)
		return
	}
	if from != nil && to != nil && from.After(*to) {
		http.Error(w, "error, from is after to", http.StatusBadRequest)
		return
	}

	buckets, err := h.service.Buckets(ctx, BucketsParams{
		UserID: query.Get("user_id"),
		Scope:  query.Get("scope"),
		Mode:   mode,
		From:   from,
		To:     to,
	})
	if err != nil {
		log.Errorf("attendance buckets [%s]: %s", mode, err)
		http.Error(w, "error, failed to get attendance", http.StatusInternalServerError)
		return
	}

	bucketsJson, err := json.Marshal(buckets)
	if err != nil {
		log.Errorf("marshal attendance buckets: %s", err)
		http.Error(w, "error, failed to get attendance", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, bucketsJson)
}

// parseTimeParam parses an optional RFC3339 query param. Empty means unset.
func parseTimeParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

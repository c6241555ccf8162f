package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/gymdesk/internal/gymstats/progression"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	StartSession(ctx context.Context, userID string, startedAt time.Time) (*Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)
	AddExercise(ctx context.Context, sessionID uuid.UUID, exerciseID string) (*Exercise, error)
	LogSet(ctx context.Context, workoutExerciseID uuid.UUID, set Set) (*Set, error)
	CompleteSession(ctx context.Context, id uuid.UUID, completedAt time.Time) (*CompletionSummary, error)
	GetSuggestion(ctx context.Context, userID, exerciseID string) (*progression.ProgressSuggestion, error)
	ExerciseTypes(ctx context.Context, muscleGroup string) ([]ExerciseType, error)
}

type StartSessionRequest struct {
	UserID    string     `json:"userId"`
	StartedAt *time.Time `json:"startedAt"`
}

type AddExerciseRequest struct {
	ExerciseID string `json:"exerciseId"`
}

type LogSetRequest struct {
	Weight      float64    `json:"weight"`
	Reps        int        `json:"reps"`
	RPE         *float64   `json:"rpe"`
	IsWarmup    bool       `json:"isWarmup"`
	CompletedAt *time.Time `json:"completedAt"`
}

type CompleteSessionRequest struct {
	CompletedAt *time.Time `json:"completedAt"`
}

type OneRepMaxResponse struct {
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	OneRepMax float64 `json:"oneRepMax"`
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.session.start")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("start session, unmarshal json params: %s", err)
		http.Error(w, "start session failed", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	var startedAt time.Time
	if req.StartedAt != nil {
		startedAt = *req.StartedAt
	}

	session, err := h.service.StartSession(ctx, req.UserID, startedAt)
	if err != nil {
		log.Errorf("start session [%s]: %s", req.UserID, err)
		http.Error(w, "error, start session failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, session, http.StatusCreated)
}

func (h *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.session.get")
	defer span.End()

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid session id", http.StatusBadRequest)
		return
	}

	session, err := h.service.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "error, session not found", http.StatusNotFound)
			return
		}
		log.Errorf("get session [%s]: %s", id, err)
		http.Error(w, "error, get session failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, session, http.StatusOK)
}

func (h *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercise.add")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid session id", http.StatusBadRequest)
		return
	}

	var req AddExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}
	if req.ExerciseID == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}

	exercise, err := h.service.AddExercise(ctx, sessionID, req.ExerciseID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			http.Error(w, "error, session not found", http.StatusNotFound)
		case errors.Is(err, ErrExerciseTypeNotFound):
			http.Error(w, "error, unknown exercise", http.StatusBadRequest)
		case errors.Is(err, ErrSessionCompleted):
			http.Error(w, "error, session already completed", http.StatusConflict)
		default:
			log.Errorf("add exercise [%s] [%s]: %s", sessionID, req.ExerciseID, err)
			http.Error(w, "error, add exercise failed", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, exercise, http.StatusCreated)
}

func (h *Handler) HandleLogSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.set.log")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	exerciseID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid exercise id", http.StatusBadRequest)
		return
	}

	var req LogSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("log set, unmarshal json params: %s", err)
		http.Error(w, "log set failed", http.StatusBadRequest)
		return
	}

	set := Set{
		Weight:   req.Weight,
		Reps:     req.Reps,
		RPE:      req.RPE,
		IsWarmup: req.IsWarmup,
	}
	if req.CompletedAt != nil {
		set.CompletedAt = *req.CompletedAt
	}

	stored, err := h.service.LogSet(ctx, exerciseID, set)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSet):
			http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrExerciseNotFound):
			http.Error(w, "error, workout exercise not found", http.StatusNotFound)
		case errors.Is(err, ErrSessionCompleted):
			http.Error(w, "error, session already completed", http.StatusConflict)
		default:
			log.Errorf("log set [%s]: %s", exerciseID, err)
			http.Error(w, "error, log set failed", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, stored, http.StatusCreated)
}

// HandleCompleteSession accepts an optional JSON body with the completion time.
func (h *Handler) HandleCompleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.session.complete")
	defer span.End()

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid session id", http.StatusBadRequest)
		return
	}

	var req CompleteSessionRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			log.Tracef("complete session, unmarshal json params: %s", err)
			http.Error(w, "complete session failed", http.StatusBadRequest)
			return
		}
	}

	var completedAt time.Time
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	summary, err := h.service.CompleteSession(ctx, id, completedAt)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			http.Error(w, "error, session not found", http.StatusNotFound)
		case errors.Is(err, ErrSessionCompleted):
			http.Error(w, "error, session already completed", http.StatusConflict)
		default:
			log.Errorf("complete session [%s]: %s", id, err)
			http.Error(w, "error, complete session failed", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, summary, http.StatusOK)
}

func (h *Handler) HandleGetSuggestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.suggestion.get")
	defer span.End()

	vars := mux.Vars(r)
	userID, exerciseID := vars["userId"], vars["exerciseId"]

	suggestion, err := h.service.GetSuggestion(ctx, userID, exerciseID)
	if err != nil {
		if errors.Is(err, progression.ErrSuggestionNotFound) {
			http.Error(w, "error, no suggestion yet", http.StatusNotFound)
			return
		}
		log.Errorf("get suggestion [%s] [%s]: %s", userID, exerciseID, err)
		http.Error(w, "error, get suggestion failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, suggestion, http.StatusOK)
}

func (h *Handler) HandleExerciseTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercise_types")
	defer span.End()

	muscleGroup := r.URL.Query().Get("muscle_group")
	exerciseTypes, err := h.service.ExerciseTypes(ctx, muscleGroup)
	if err != nil {
		log.Errorf("get exercise types [%s]: %s", muscleGroup, err)
		http.Error(w, "error, get exercise types failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, exerciseTypes, http.StatusOK)
}

// HandleOneRepMax estimates the 1RM for the weight and reps query params.
func (h *Handler) HandleOneRepMax(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.one_rep_max")
	defer span.End()

	query := r.URL.Query()
	weight, err := strconv.ParseFloat(query.Get("weight"), 64)
	if err != nil || math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		http.Error(w, "error, weight must be a positive number", http.StatusBadRequest)
		return
	}
	reps, err := strconv.Atoi(query.Get("reps"))
	if err != nil || reps <= 0 {
		http.Error(w, "error, reps must be a positive integer", http.StatusBadRequest)
		return
	}

	oneRM := progression.EstimateOneRepMax(weight, reps)
	if math.IsInf(oneRM, 0) {
		http.Error(w, "error, weight out of range", http.StatusBadRequest)
		return
	}

	writeJSON(w, OneRepMaxResponse{
		Weight:    weight,
		Reps:      reps,
		OneRepMax: oneRM,
	}, http.StatusOK)
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	resJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "error, failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resJson, status)
}

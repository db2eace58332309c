package logbook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=logbook_mocks_test.go -package=logbook_test

type logbookRepo interface {
	AddProgram(ctx context.Context, program WorkoutProgram) (*WorkoutProgram, error)
	AddDay(ctx context.Context, userID uuid.UUID, day WorkoutDay) (*WorkoutDay, error)
	AddExercise(ctx context.Context, userID uuid.UUID, exercise Exercise) (*Exercise, error)
	AddNutrition(ctx context.Context, entry NutritionLog) (*NutritionLog, error)
}

// entry kinds, used as label values for CounterLogbookEntries
const (
	kindProgram   = "program"
	kindDay       = "day"
	kindExercise  = "exercise"
	kindNutrition = "nutrition"
)

type AddProgramRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type AddDayRequest struct {
	Name      string `json:"name"`
	DayOfWeek *int   `json:"dayOfWeek"`
}

type AddExerciseRequest struct {
	Name     string   `json:"name"`
	SetCount int      `json:"setCount"`
	Reps     int      `json:"reps"`
	Weight   *float64 `json:"weight"`
	Notes    string   `json:"notes"`
	// defaults to the time of the request
	PerformedAt *time.Time `json:"performedAt"`
}

type AddNutritionRequest struct {
	// YYYY-MM-DD, defaults to today (UTC)
	Date          string   `json:"date"`
	MealType      string   `json:"mealType"`
	Calories      int      `json:"calories"`
	Protein       float64  `json:"protein"`
	Carbohydrates *float64 `json:"carbohydrates"`
	Fat           *float64 `json:"fat"`
	Notes         string   `json:"notes"`
}

type Handler struct {
	repo           logbookRepo
	metricsManager *metrics.Manager
	// injectable for tests
	NowFunc func() time.Time
}

func NewHandler(repo logbookRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

func decodeJsonBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Tracef("logbook, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func idFromVars(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func (handler *Handler) HandleAddProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.program.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req AddProgramRequest
	if !decodeJsonBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "validation failed", "name must not be empty")
		return
	}

	program, err := handler.repo.AddProgram(ctx, WorkoutProgram{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		log.Errorf("failed to add workout program for user [%s]: %s", userID, err)
		http.Error(w, "error, failed to add workout program", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterLogbookEntries.WithLabelValues(kindProgram).Inc()
	pkg.WriteJSON(w, program, http.StatusCreated)
}

func (handler *Handler) HandleAddDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.day.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	programID, ok := idFromVars(r, "programId")
	if !ok {
		http.Error(w, "error, invalid program id", http.StatusBadRequest)
		return
	}

	var req AddDayRequest
	if !decodeJsonBody(w, r, &req) {
		return
	}

	var validationErrs []string
	if strings.TrimSpace(req.Name) == "" {
		validationErrs = append(validationErrs, "name must not be empty")
	}
	if req.DayOfWeek != nil && (*req.DayOfWeek < 0 || *req.DayOfWeek > 6) {
		validationErrs = append(validationErrs, "day of week must be between 0 and 6")
	}
	if len(validationErrs) > 0 {
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "validation failed", validationErrs...)
		return
	}

	day, err := handler.repo.AddDay(ctx, userID, WorkoutDay{
		WorkoutProgramID: programID,
		Name:             req.Name,
		DayOfWeek:        req.DayOfWeek,
	})
	if err != nil {
		if errors.Is(err, ErrWorkoutProgramNotFound) {
			http.Error(w, "workout program not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to add workout day to program [%d]: %s", programID, err)
		http.Error(w, "error, failed to add workout day", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterLogbookEntries.WithLabelValues(kindDay).Inc()
	pkg.WriteJSON(w, day, http.StatusCreated)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.exercise.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	dayID, ok := idFromVars(r, "dayId")
	if !ok {
		http.Error(w, "error, invalid workout day id", http.StatusBadRequest)
		return
	}

	var req AddExerciseRequest
	if !decodeJsonBody(w, r, &req) {
		return
	}

	var validationErrs []string
	if strings.TrimSpace(req.Name) == "" {
		validationErrs = append(validationErrs, "name must not be empty")
	}
	if req.SetCount < 0 {
		validationErrs = append(validationErrs, "set count cannot be negative")
	}
	if req.Reps < 0 {
		validationErrs = append(validationErrs, "reps cannot be negative")
	}
	if req.Weight != nil && *req.Weight < 0 {
		validationErrs = append(validationErrs, "weight cannot be negative")
	}
	if len(validationErrs) > 0 {
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "validation failed", validationErrs...)
		return
	}

	performedAt := handler.NowFunc()
	if req.PerformedAt != nil && !req.PerformedAt.IsZero() {
		performedAt = *req.PerformedAt
	}

	exercise, err := handler.repo.AddExercise(ctx, userID, Exercise{
		WorkoutDayID: dayID,
		Name:         strings.TrimSpace(req.Name),
		SetCount:     req.SetCount,
		Reps:         req.Reps,
		Weight:       req.Weight,
		Notes:        req.Notes,
		CreatedAt:    performedAt,
	})
	if err != nil {
		if errors.Is(err, ErrWorkoutDayNotFound) {
			http.Error(w, "workout day not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to add exercise [%s] to day [%d]: %s", req.Name, dayID, err)
		http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise [%s] logged for user [%s]", exercise.Name, userID)
	handler.metricsManager.CounterLogbookEntries.WithLabelValues(kindExercise).Inc()
	pkg.WriteJSON(w, exercise, http.StatusCreated)
}

func (handler *Handler) HandleAddNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logbook.nutrition.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req AddNutritionRequest
	if !decodeJsonBody(w, r, &req) {
		return
	}

	var validationErrs []string
	now := handler.NowFunc().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.Date != "" {
		parsed, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			validationErrs = append(validationErrs, "date must be in YYYY-MM-DD format")
		}
		date = parsed
	}
	if req.Calories < 0 {
		validationErrs = append(validationErrs, "calories cannot be negative")
	}
	if req.Protein < 0 {
		validationErrs = append(validationErrs, "protein cannot be negative")
	}
	if req.Carbohydrates != nil && *req.Carbohydrates < 0 {
		validationErrs = append(validationErrs, "carbohydrates cannot be negative")
	}
	if req.Fat != nil && *req.Fat < 0 {
		validationErrs = append(validationErrs, "fat cannot be negative")
	}
	if len(validationErrs) > 0 {
		pkg.WriteErrorResponse(w, http.StatusBadRequest, "validation failed", validationErrs...)
		return
	}

	entry, err := handler.repo.AddNutrition(ctx, NutritionLog{
		UserID:        userID,
		Date:          date,
		MealType:      req.MealType,
		Calories:      req.Calories,
		Protein:       req.Protein,
		Carbohydrates: req.Carbohydrates,
		Fat:           req.Fat,
		Notes:         req.Notes,
	})
	if err != nil {
		log.Errorf("failed to add nutrition entry for user [%s]: %s", userID, err)
		http.Error(w, "error, failed to add nutrition entry", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterLogbookEntries.WithLabelValues(kindNutrition).Inc()
	pkg.WriteJSON(w, entry, http.StatusCreated)
}

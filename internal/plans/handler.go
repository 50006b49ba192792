package plans

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/planner"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"
)

type UpsertDayRequest struct {
	Exercises []planner.Exercise `json:"exercises"`
	Meals     []planner.Meal     `json:"meals"`
}

type CompletionRequest struct {
	Completed bool `json:"completed"`
}

type ListResponse struct {
	Plans []planner.DayPlan `json:"plans"`
	Total int               `json:"total"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	plansRouter := mainRouter.PathPrefix("/plans").Subrouter()
	plansRouter.HandleFunc("/generate", handler.HandleGenerate).Methods("POST", "OPTIONS").Name("generate-plans")
	plansRouter.HandleFunc("/regenerate-intensity", handler.HandleRegenerateIntensity).Methods("POST", "OPTIONS").Name("regenerate-intensity")
	plansRouter.HandleFunc("", handler.HandleList).Methods("GET", "OPTIONS").Name("list-plans")
	plansRouter.HandleFunc("/{day}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-plan")
	plansRouter.HandleFunc("/{day}", handler.HandleUpsert).Methods("PUT", "OPTIONS").Name("upsert-plan")
	plansRouter.HandleFunc("/{day}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-plan")
	plansRouter.HandleFunc("/{day}/exercises/{id}/complete", handler.HandleExerciseCompletion).Methods("PUT", "OPTIONS").Name("complete-exercise")
	plansRouter.HandleFunc("/{day}/meals/{id}/complete", handler.HandleMealCompletion).Methods("PUT", "OPTIONS").Name("complete-meal")

	progressRouter := mainRouter.PathPrefix("/progress").Subrouter()
	progressRouter.HandleFunc("/weekly", handler.HandleWeeklyProgress).Methods("GET", "OPTIONS").Name("progress-weekly")
	progressRouter.HandleFunc("/exercises", handler.HandleExerciseProgress).Methods("GET", "OPTIONS").Name("progress-exercises")
	progressRouter.HandleFunc("/meals", handler.HandleMealProgress).Methods("GET", "OPTIONS").Name("progress-meals")
	progressRouter.HandleFunc("/time", handler.HandleTimeProgress).Methods("GET", "OPTIONS").Name("progress-time")
	progressRouter.HandleFunc("/goal", handler.HandleGoalProgress).Methods("GET", "OPTIONS").Name("progress-goal")
	progressRouter.HandleFunc("/streaks", handler.HandleStreaks).Methods("GET", "OPTIONS").Name("progress-streaks")
}

func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.generate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	plans, err := handler.service.GenerateWeek(ctx, userID)
	if err != nil {
		handleError(w, "generate week", err)
		return
	}

	log.Debugf("generated week for user %d", userID)
	pkg.WriteJSON(w, ListResponse{Plans: plans, Total: len(plans)}, http.StatusCreated)
}

func (handler *Handler) HandleRegenerateIntensity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.regenerateIntensity")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	plans, err := handler.service.RegenerateIntensity(ctx, userID)
	if err != nil {
		handleError(w, "regenerate intensity", err)
		return
	}

	pkg.WriteJSON(w, ListResponse{Plans: plans, Total: len(plans)}, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	plans, err := handler.service.ListPlans(ctx, userID)
	if err != nil {
		handleError(w, "list plans", err)
		return
	}

	pkg.WriteJSON(w, ListResponse{Plans: plans, Total: len(plans)}, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	plan, err := handler.service.GetPlan(ctx, userID, mux.Vars(r)["day"])
	if err != nil {
		handleError(w, "get plan", err)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.upsert")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var upsertReq UpsertDayRequest
	if err := json.NewDecoder(r.Body).Decode(&upsertReq); err != nil {
		log.Tracef("upsert plan, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	plan, err := handler.service.UpsertDay(ctx, userID, mux.Vars(r)["day"], upsertReq.Exercises, upsertReq.Meals)
	if err != nil {
		handleError(w, "upsert plan", err)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	day := mux.Vars(r)["day"]
	if err := handler.service.DeletePlan(ctx, userID, day); err != nil {
		handleError(w, "delete plan", err)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted:"+day)
}

func (handler *Handler) HandleExerciseCompletion(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.completeExercise")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var completionReq CompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&completionReq); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	plan, err := handler.service.SetExerciseCompleted(ctx, userID, vars["day"], vars["id"], completionReq.Completed)
	if err != nil {
		handleError(w, "complete exercise", err)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (handler *Handler) HandleMealCompletion(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.completeMeal")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var completionReq CompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&completionReq); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	plan, err := handler.service.SetMealCompleted(ctx, userID, vars["day"], vars["id"], completionReq.Completed)
	if err != nil {
		handleError(w, "complete meal", err)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (handler *Handler) HandleWeeklyProgress(w http.ResponseWriter, r *http.Request) {
	handler.writeProgress(w, r, "weekly", func(h *Handler, r *http.Request, userID int) (any, error) {
		return h.service.GetWeeklyProgress(r.Context(), userID)
	})
}

func (handler *Handler) HandleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	handler.writeProgress(w, r, "exercises", func(h *Handler, r *http.Request, userID int) (any, error) {
		return h.service.GetExerciseProgress(r.Context(), userID)
	})
}

func (handler *Handler) HandleMealProgress(w http.ResponseWriter, r *http.Request) {
	handler.writeProgress(w, r, "meals", func(h *Handler, r *http.Request, userID int) (any, error) {
		return h.service.GetMealProgress(r.Context(), userID)
	})
}

func (handler *Handler) HandleTimeProgress(w http.ResponseWriter, r *http.Request) {
	handler.writeProgress(w, r, "time", func(h *Handler, r *http.Request, userID int) (any, error) {
		return h.service.GetTimeProgress(r.Context(), userID)
	})
}

func (handler *Handler) HandleGoalProgress(w http.ResponseWriter, r *http.Request) {
	handler.writeProgress(w, r, "goal", func(h *Handler, r *http.Request, userID int) (any, error) {
		return h.service.GetGoalProgress(r.Context(), userID)
	})
}

func (handler *Handler) HandleStreaks(w http.ResponseWriter, r *http.Request) {
	handler.writeProgress(w, r, "streaks", func(h *Handler, r *http.Request, userID int) (any, error) {
		return h.service.GetStreaks(r.Context(), userID)
	})
}

func (handler *Handler) writeProgress(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	get func(h *Handler, r *http.Request, userID int) (any, error),
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress."+name)
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	result, err := get(handler, r.WithContext(ctx), userID)
	if err != nil {
		handleError(w, name+" progress", err)
		return
	}

	pkg.WriteJSON(w, result, http.StatusOK)
}

func handleError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, planner.ErrProfileNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	case errors.Is(err, planner.ErrPlanNotFound):
		http.Error(w, "plan not found", http.StatusNotFound)
	case errors.Is(err, planner.ErrItemNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, planner.ErrInvalidDay),
		errors.Is(err, planner.ErrInvalidGoal),
		errors.Is(err, ErrInvalidPlan):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s failed: %s", op, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

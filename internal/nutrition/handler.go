package nutrition

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitplanner/internal/middleware"
	"github.com/2beens/fitplanner/internal/planner"
	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=nutrition_test

type foodSearcher interface {
	SearchFoods(ctx context.Context, query string, pageSize int) ([]planner.Food, error)
}

type SearchResponse struct {
	Query string         `json:"query"`
	Foods []planner.Food `json:"foods"`
	Total int            `json:"total"`
}

type Handler struct {
	api foodSearcher
}

func NewHandler(api foodSearcher) *Handler {
	return &Handler{
		api: api,
	}
}

// SetupRoutes registers the public nutrition routes. They need no session,
// so they are rate limited per client instead.
func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) {
	nutritionRouter := mainRouter.PathPrefix("/nutrition").Subrouter()
	nutritionRouter.HandleFunc("/search", handler.HandleSearch).Methods("GET", "OPTIONS").Name("nutrition-search")
	nutritionRouter.Use(middleware.RateLimit(rateLimiter, "nutrition", allowedPerMin, metricsManager))
}

func (handler *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.search")
	defer span.End()

	query := r.URL.Query().Get("q")
	pageSize := 0
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		pageSize = limit
	}

	foods, err := handler.api.SearchFoods(ctx, query, pageSize)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyQuery):
			http.Error(w, "query param q missing", http.StatusBadRequest)
		case errors.Is(err, ErrUpstream):
			log.Warnf("nutrition search [%s]: %s", query, err)
			http.Error(w, "nutrition lookup unavailable", http.StatusBadGateway)
		default:
			log.Errorf("nutrition search [%s]: %s", query, err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, SearchResponse{
		Query: query,
		Foods: foods,
		Total: len(foods),
	}, http.StatusOK)
}

package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fitplanner/internal/planner"
	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50

	per100gQuantity = 100
	per100gUnit     = "g"
)

var (
	ErrEmptyQuery = errors.New("empty query")
	ErrUpstream   = errors.New("nutrition api error")
)

// Api looks up foods in USDA FoodData Central and normalizes them to planner foods.
type Api struct {
	baseURL    string // https://api.nal.usda.gov/fdc/v1
	apiKey     string
	httpClient *http.Client
	cache      *freecache.Cache
	cacheTTL   time.Duration
	metrics    *metrics.Manager
}

func NewApi(
	baseURL, apiKey string,
	httpClient *http.Client,
	cacheSizeMB int,
	cacheTTL time.Duration,
	metricsManager *metrics.Manager,
) *Api {
	megabyte := 1024 * 1024
	return &Api{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		cache:      freecache.NewCache(cacheSizeMB * megabyte),
		cacheTTL:   cacheTTL,
		metrics:    metricsManager,
	}
}

// SearchFoods returns up to pageSize foods matching the query, with nutrition per 100 g.
// Results are cached per normalized query and page size.
func (a *Api) SearchFoods(ctx context.Context, query string, pageSize int) (foods []planner.Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutritionApi.searchFoods")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	query = normalizeQuery(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	pageSize = min(pageSize, maxPageSize)
	span.SetAttributes(attribute.String("nutrition.query", query))

	cacheKey := []byte(fmt.Sprintf("search::%s::%d", query, pageSize))
	if cached, err := a.cache.Get(cacheKey); err == nil {
		if err := json.Unmarshal(cached, &foods); err == nil {
			log.Tracef("found nutrition search [%s] in cache", query)
			span.SetAttributes(attribute.Bool("nutrition.from-cache", true))
			a.metrics.CounterNutritionLookups.WithLabelValues("hit").Inc()
			return foods, nil
		} else {
			log.Errorf("failed to unmarshal cached nutrition search [%s]: %s", query, err)
		}
	}
	span.SetAttributes(attribute.Bool("nutrition.from-cache", false))
	a.metrics.CounterNutritionLookups.WithLabelValues("miss").Inc()

	params := url.Values{}
	params.Set("query", query)
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("api_key", a.apiKey)
	searchURL := fmt.Sprintf("%s/foods/search?%s", a.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read nutrition api response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Debugf("nutrition api responded [%d]: %s", resp.StatusCode, respBytes)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var searchResp searchResponse
	if err := json.Unmarshal(respBytes, &searchResp); err != nil {
		return nil, fmt.Errorf("unmarshal nutrition api response: %w", err)
	}

	foods = make([]planner.Food, 0, len(searchResp.Foods))
	for _, f := range searchResp.Foods {
		foods = append(foods, toPlannerFood(f))
	}

	foodsBytes, err := json.Marshal(foods)
	if err != nil {
		log.Errorf("marshal nutrition search [%s] for cache: %s", query, err)
		return foods, nil
	}
	if err := a.cache.Set(cacheKey, foodsBytes, int(a.cacheTTL.Seconds())); err != nil {
		log.Errorf("failed to cache nutrition search [%s]: %s", query, err)
	} else {
		log.Debugf("nutrition search cache set for: %s", query)
	}

	return foods, nil
}

func normalizeQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}

// toPlannerFood keeps energy, protein, carbs and fat. Missing macros stay nil.
func toPlannerFood(f searchFood) planner.Food {
	food := planner.Food{
		Name:     f.Description,
		Quantity: per100gQuantity,
		Unit:     per100gUnit,
	}

	for _, n := range f.FoodNutrients {
		value := n.Value
		switch n.NutrientID {
		case nutrientIDEnergy:
			// some entries carry energy in kJ
			if strings.EqualFold(n.UnitName, "kJ") {
				value /= 4.184
			}
			food.Calories = int(math.Round(value))
		case nutrientIDProtein:
			food.Protein = round1Ptr(value)
		case nutrientIDCarbs:
			food.Carbs = round1Ptr(value)
		case nutrientIDFat:
			food.Fat = round1Ptr(value)
		}
	}

	return food
}

func round1Ptr(v float64) *float64 {
	rounded := math.Round(v*10) / 10
	return &rounded
}

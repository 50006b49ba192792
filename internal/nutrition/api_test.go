package nutrition_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/2beens/fitplanner/internal/nutrition"
	"github.com/2beens/fitplanner/internal/telemetry/metrics"
)

const appleSearchResponse = `{
	"totalHits": 2,
	"currentPage": 1,
	"totalPages": 1,
	"foods": [
		{
			"fdcId": 171688,
			"description": "Apples, raw, with skin",
			"dataType": "SR Legacy",
			"foodNutrients": [
				{"nutrientId": 1003, "nutrientName": "Protein", "unitName": "G", "value": 0.26},
				{"nutrientId": 1004, "nutrientName": "Total lipid (fat)", "unitName": "G", "value": 0.17},
				{"nutrientId": 1005, "nutrientName": "Carbohydrate, by difference", "unitName": "G", "value": 13.81},
				{"nutrientId": 1008, "nutrientName": "Energy", "unitName": "KCAL", "value": 52},
				{"nutrientId": 2000, "nutrientName": "Sugars, total", "unitName": "G", "value": 10.39}
			]
		},
		{
			"fdcId": 2000001,
			"description": "APPLE CHIPS",
			"dataType": "Branded",
			"brandOwner": "Crunchy Co",
			"foodNutrients": [
				{"nutrientId": 1008, "nutrientName": "Energy", "unitName": "kJ", "value": 2092}
			]
		}
	]
}`

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func newTestApi(t *testing.T, handler http.HandlerFunc) (*nutrition.Api, *metrics.Manager) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	metricsManager := metrics.NewTestManager()
	api := nutrition.NewApi(server.URL+"/", "test-key", server.Client(), 1, time.Hour, metricsManager)
	return api, metricsManager
}

func TestApi_SearchFoods(t *testing.T) {
	var calls atomic.Int32
	api, metricsManager := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/foods/search", r.URL.Path)
		assert.Equal(t, "apple", r.URL.Query().Get("query"))
		assert.Equal(t, "5", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(appleSearchResponse))
	})
	ctx := context.Background()

	foods, err := api.SearchFoods(ctx, "Apple", 5)
	require.NoError(t, err)
	require.Len(t, foods, 2)

	apple := foods[0]
	assert.Equal(t, "Apples, raw, with skin", apple.Name)
	assert.Equal(t, 100.0, apple.Quantity)
	assert.Equal(t, "g", apple.Unit)
	assert.Equal(t, 52, apple.Calories)
	require.NotNil(t, apple.Protein)
	assert.Equal(t, 0.3, *apple.Protein)
	assert.Equal(t, 13.8, *apple.Carbs)
	assert.Equal(t, 0.2, *apple.Fat)

	chips := foods[1]
	assert.Equal(t, 500, chips.Calories)
	assert.Nil(t, chips.Protein)
	assert.Nil(t, chips.Fat)

	// same normalized query is served from cache
	cached, err := api.SearchFoods(ctx, "  APPLE ", 5)
	require.NoError(t, err)
	assert.Equal(t, foods, cached)
	assert.Equal(t, int32(1), calls.Load())

	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterNutritionLookups.WithLabelValues("miss")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metricsManager.CounterNutritionLookups.WithLabelValues("hit")))
}

func TestApi_SearchFoods_Errors(t *testing.T) {
	var calls atomic.Int32
	api, _ := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Query().Get("query") == "broken json" {
			_, _ = w.Write([]byte(`{"foods": [`))
			return
		}
		http.Error(w, "API_KEY_INVALID", http.StatusForbidden)
	})
	ctx := context.Background()

	_, err := api.SearchFoods(ctx, "   ", 5)
	assert.ErrorIs(t, err, nutrition.ErrEmptyQuery)
	assert.Equal(t, int32(0), calls.Load())

	_, err = api.SearchFoods(ctx, "oats", 5)
	assert.ErrorIs(t, err, nutrition.ErrUpstream)

	// failures are not cached
	_, err = api.SearchFoods(ctx, "oats", 5)
	assert.ErrorIs(t, err, nutrition.ErrUpstream)
	assert.Equal(t, int32(2), calls.Load())

	_, err = api.SearchFoods(ctx, "broken json", 5)
	require.Error(t, err)
	assert.NotErrorIs(t, err, nutrition.ErrUpstream)
}

func TestApi_SearchFoods_PageSize(t *testing.T) {
	var pageSizes []string
	api, _ := newTestApi(t, func(w http.ResponseWriter, r *http.Request) {
		pageSizes = append(pageSizes, r.URL.Query().Get("pageSize"))
		_, _ = w.Write([]byte(`{"foods": []}`))
	})
	ctx := context.Background()

	foods, err := api.SearchFoods(ctx, "rice", 0)
	require.NoError(t, err)
	assert.Empty(t, foods)
	_, err = api.SearchFoods(ctx, "rice", 500)
	require.NoError(t, err)

	assert.Equal(t, []string{"10", "50"}, pageSizes)
}

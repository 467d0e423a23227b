package openfoodfacts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/haasonsaas/instacart-calorie-scraper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserAgent = "test-agent/1.0"

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, testUserAgent, 9*time.Second)
}

func TestNewClient(t *testing.T) {
	client := newTestClient("https://world.openfoodfacts.org")

	assert.NotNil(t, client)
	assert.Equal(t, "https://world.openfoodfacts.org", client.baseURL)
	assert.Equal(t, testUserAgent, client.userAgent)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
}

func TestSearchCalories_PerServing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cgi/search.pl", r.URL.Path)
		assert.Equal(t, "organic bananas", r.URL.Query().Get("search_terms"))
		assert.Equal(t, "1", r.URL.Query().Get("json"))
		assert.Equal(t, "1", r.URL.Query().Get("page_size"))
		assert.Equal(t, "nutriments", r.URL.Query().Get("fields"))
		assert.Equal(t, testUserAgent, r.Header.Get("User-Agent"))

		response := domain.OFFSearchResponse{
			Products: []domain.OFFProduct{
				{Nutriments: domain.OFFNutriments{EnergyKcalServing: 105, EnergyKcal100g: 89}},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	kcal, err := client.SearchCalories(context.Background(), "organic bananas")

	require.NoError(t, err)
	assert.Equal(t, 105.0, kcal)
}

func TestSearchCalories_FallsBackToPer100g(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := domain.OFFSearchResponse{
			Products: []domain.OFFProduct{
				{Nutriments: domain.OFFNutriments{EnergyKcal100g: 89}},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	kcal, err := client.SearchCalories(context.Background(), "bananas")

	require.NoError(t, err)
	assert.Equal(t, 89.0, kcal)
}

func TestSearchCalories_ZeroValueTreatedAsMiss(t *testing.T) {
	// A genuinely zero-calorie product is indistinguishable from missing
	// data at this tier; both fall through to the next one.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := domain.OFFSearchResponse{
			Products: []domain.OFFProduct{
				{Nutriments: domain.OFFNutriments{EnergyKcalServing: 0, EnergyKcal100g: 0}},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	kcal, err := client.SearchCalories(context.Background(), "black coffee")

	assert.Zero(t, kcal)
	assert.ErrorIs(t, err, domain.ErrCaloriesNotFound)
}

func TestSearchCalories_EmptyProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.OFFSearchResponse{})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.SearchCalories(context.Background(), "nonexistent product")

	assert.ErrorIs(t, err, domain.ErrCaloriesNotFound)
}

func TestSearchCalories_ServerError(t *testing.T) {
	attempts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.SearchCalories(context.Background(), "bananas")

	assert.ErrorIs(t, err, domain.ErrLookupFailed)
	assert.Equal(t, 1, attempts) // single attempt per tier, no retries
}

func TestSearchCalories_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("invalid json"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.SearchCalories(context.Background(), "bananas")

	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestSearchCalories_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	client := NewClient(server.URL, testUserAgent, 100*time.Millisecond)

	_, err := client.SearchCalories(context.Background(), "bananas")

	assert.ErrorIs(t, err, domain.ErrLookupFailed)
}

func TestSearchCalories_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := client.SearchCalories(ctx, "bananas")

	assert.Error(t, err)
}

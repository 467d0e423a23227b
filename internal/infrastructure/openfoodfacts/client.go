package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/haasonsaas/instacart-calorie-scraper/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the OpenFoodFacts search API.
// The API is free and unauthenticated; it serves as tier 1 of the
// calorie lookup fallback.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *rate.Limiter
}

// NewClient creates a new OpenFoodFacts API client
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	// OpenFoodFacts asks bulk users to stay around 1 search per second
	limiter := rate.NewLimiter(rate.Limit(1), 1)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		userAgent:   userAgent,
		rateLimiter: limiter,
	}
}

// SearchCalories searches OpenFoodFacts for the product name and returns a
// calories-per-serving value. The per-serving kilocalorie field is preferred,
// falling back to the per-100g field; zero kilocalorie values are treated as
// a miss. Single attempt, no retries.
func (c *Client) SearchCalories(ctx context.Context, name string) (float64, error) {
	endpoint := fmt.Sprintf("%s/cgi/search.pl", c.baseURL)
	params := url.Values{}
	params.Add("search_terms", name)
	params.Add("json", "1")
	params.Add("page_size", "1")
	params.Add("fields", "nutriments") // only the nutrient sub-fields we read

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("%w: rate limiter: %v", domain.ErrLookupFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: status %d", domain.ErrLookupFailed, resp.StatusCode)
	}

	var searchResp domain.OFFSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	if len(searchResp.Products) == 0 {
		return 0, domain.ErrCaloriesNotFound
	}

	nutriments := searchResp.Products[0].Nutriments
	kcal := nutriments.EnergyKcalServing
	if kcal == 0 {
		kcal = nutriments.EnergyKcal100g
	}
	if kcal == 0 {
		return 0, domain.ErrCaloriesNotFound
	}

	return kcal, nil
}

package fdc

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

// energyNutrientName and kcalUnitName identify the calories-per-serving
// entry in an FDC nutrient list.
const (
	energyNutrientName = "Energy"
	kcalUnitName       = "KCAL"
)

// Client handles communication with the USDA FoodData Central API. It is
// tier 2 of the calorie lookup fallback and requires an API key; a client
// constructed without one reports itself disabled and never hits the network.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	userAgent   string
	rateLimiter *rate.Limiter
}

// NewClient creates a new FDC API client. An empty apiKey disables the client.
func NewClient(apiKey, baseURL, userAgent string, timeout time.Duration) *Client {
	// USDA allows 1000 requests per hour
	// rate.Limit is requests per second, so 1000/3600 ≈ 0.278 requests/sec
	limiter := rate.NewLimiter(rate.Limit(0.278), 10) // burst of 10 requests

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		userAgent:   userAgent,
		rateLimiter: limiter,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// SearchCalories searches FDC for the product name and returns the value of
// the first food's Energy nutrient in kilocalories. Single attempt, no retries.
func (c *Client) SearchCalories(ctx context.Context, name string) (float64, error) {
	if !c.Enabled() {
		return 0, domain.ErrSourceDisabled
	}

	endpoint := fmt.Sprintf("%s/v1/foods/search", c.baseURL)
	params := url.Values{}
	params.Add("query", name)
	params.Add("pageSize", "1")
	params.Add("api_key", c.apiKey)

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

	var searchResp domain.FDCSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	if len(searchResp.Foods) == 0 {
		return 0, domain.ErrCaloriesNotFound
	}

	for _, nutrient := range searchResp.Foods[0].Nutrients {
		if nutrient.NutrientName == energyNutrientName && nutrient.UnitName == kcalUnitName {
			return nutrient.Value, nil
		}
	}

	return 0, domain.ErrCaloriesNotFound
}

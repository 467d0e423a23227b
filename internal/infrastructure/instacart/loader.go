// Package instacart parses retailer product JSON dumps into product records.
package instacart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/haasonsaas/instacart-calorie-scraper/internal/domain"
)

// priceTokenRegex matches the first numeric token in a raw price string:
// an integer, a decimal, or a bare ".99". Texts with several numbers, like
// "2 for $5.00", yield the first token.
var priceTokenRegex = regexp.MustCompile(`\d+(?:\.\d+)?|\.\d+`)

// rawItem is one element of a retailer JSON dump. All fields are optional;
// missing name/location default to empty strings.
type rawItem struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Price    string `json:"price"`
}

// Loader reads retailer JSON dumps from disk.
type Loader struct{}

// NewLoader creates a new product dump loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadProducts reads a retailer's JSON dump and returns product records in
// file order with calories unset. An unreadable path or a file that is not a
// JSON array of objects is fatal to the run; there is no partial recovery.
func (l *Loader) LoadProducts(store domain.Store, path string) ([]domain.ProductRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s dump %s: %w", store, path, err)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("failed to parse %s dump %s: %w", store, path, err)
	}
	if elements == nil {
		// A top-level "null" unmarshals into a nil slice without error.
		return nil, fmt.Errorf("failed to parse %s dump %s: top-level JSON array required", store, path)
	}

	records := make([]domain.ProductRecord, 0, len(elements))
	for i, raw := range elements {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, fmt.Errorf("failed to parse %s dump %s: element %d is not an object", store, path, i)
		}

		var item rawItem
		if err := json.Unmarshal(trimmed, &item); err != nil {
			return nil, fmt.Errorf("failed to parse %s dump %s: element %d: %w", store, path, i, err)
		}

		records = append(records, domain.ProductRecord{
			Store:    store,
			Name:     strings.TrimSpace(item.Name),
			Location: item.Location,
			PriceUSD: ExtractPrice(item.Price),
		})
	}

	return records, nil
}

// ExtractPrice pulls the first numeric token out of raw price text and
// parses it as a dollar amount. Returns nil when the text has no digits.
func ExtractPrice(raw string) *float64 {
	token := priceTokenRegex.FindString(raw)
	if token == "" {
		return nil
	}

	price, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil
	}

	return &price
}

// Package csvout serializes enriched product records to a sorted CSV table.
package csvout

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/haasonsaas/instacart-calorie-scraper/internal/domain"
)

var header = []string{"Store", "Name", "Location", "Price_USD", "Calories_per_serving"}

// Writer writes product records as CSV, sorted ascending by (store, name).
type Writer struct{}

// NewWriter creates a new CSV table writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteTable sorts a copy of the records and writes them to path with a
// header row. The destination is overwritten; writes are not atomic.
func (w *Writer) WriteTable(path string, records []domain.ProductRecord) error {
	rows := make([]domain.ProductRecord, len(records))
	copy(rows, records)

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Store != rows[j].Store {
			return rows[i].Store < rows[j].Store
		}
		return rows[i].Name < rows[j].Name
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			string(row.Store),
			row.Name,
			row.Location,
			formatPrice(row.PriceUSD),
			formatCalories(row.Calories),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush output %s: %w", path, err)
	}

	return nil
}

func formatPrice(price *float64) string {
	if price == nil {
		return ""
	}
	return strconv.FormatFloat(*price, 'f', -1, 64)
}

func formatCalories(info domain.CalorieInfo) string {
	switch info.Status {
	case domain.CalorieKnown:
		return strconv.FormatFloat(info.PerServing, 'f', -1, 64)
	case domain.CalorieNotApplicable:
		return "N/A"
	default:
		return "Unknown"
	}
}

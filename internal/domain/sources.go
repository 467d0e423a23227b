package domain

import "context"

// CalorieSource is one tier of the calorie lookup fallback chain.
// Implementations return ErrCaloriesNotFound for a clean miss,
// ErrSourceDisabled when not configured, and ErrLookupFailed or
// ErrMalformedResponse for transport and shape failures.
type CalorieSource interface {
	SearchCalories(ctx context.Context, name string) (float64, error)
}

// Pacer throttles consecutive external lookups. Wait blocks until the next
// call is permitted or the context is done.
type Pacer interface {
	Wait(ctx context.Context) error
}

// LookupCache remembers resolver outcomes for the duration of a run so
// duplicate product names are only looked up once.
type LookupCache interface {
	Get(name string) (value float64, found, ok bool)
	Set(name string, value float64, found bool)
}

// ProductLoader reads one retailer's product dump into records.
type ProductLoader interface {
	LoadProducts(store Store, path string) ([]ProductRecord, error)
}

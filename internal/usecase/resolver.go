package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/haasonsaas/instacart-calorie-scraper/internal/domain"
)

// Resolver looks up calories-per-serving through a two-tier fallback:
// OpenFoodFacts first, then USDA FoodData Central when configured. Transport
// and response-shape failures are downgraded to a per-name miss; Resolve
// never returns an error to the pipeline.
type Resolver struct {
	primary   domain.CalorieSource
	secondary domain.CalorieSource
	cache     domain.LookupCache
	log       *slog.Logger
}

// NewResolver creates a new calorie resolver. secondary may be a disabled
// source; cache may be nil to disable per-run memoization.
func NewResolver(primary, secondary domain.CalorieSource, cache domain.LookupCache, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}

	return &Resolver{
		primary:   primary,
		secondary: secondary,
		cache:     cache,
		log:       log,
	}
}

// Resolve returns the calories-per-serving for a product name, or found=false
// when neither tier produced a usable value. A usable tier-1 value means
// tier 2 is never consulted.
func (r *Resolver) Resolve(ctx context.Context, name string) (kcal float64, found bool) {
	if r.cache != nil {
		if value, hit, ok := r.cache.Get(name); ok {
			return value, hit
		}
	}

	kcal, found = r.lookup(ctx, name)

	if r.cache != nil {
		r.cache.Set(name, kcal, found)
	}

	return kcal, found
}

func (r *Resolver) lookup(ctx context.Context, name string) (float64, bool) {
	if kcal, ok := r.tryTier(ctx, r.primary, "openfoodfacts", name); ok {
		return kcal, true
	}

	if r.secondary != nil {
		if kcal, ok := r.tryTier(ctx, r.secondary, "fdc", name); ok {
			return kcal, true
		}
	}

	return 0, false
}

// tryTier runs a single tier's lookup, converting every failure mode into a
// miss. Clean misses and disabled tiers are expected; anything else is logged.
func (r *Resolver) tryTier(ctx context.Context, source domain.CalorieSource, tier, name string) (float64, bool) {
	kcal, err := source.SearchCalories(ctx, name)
	if err == nil {
		return kcal, true
	}

	switch {
	case errors.Is(err, domain.ErrCaloriesNotFound):
		r.log.Debug("calorie lookup miss", "tier", tier, "name", name)
	case errors.Is(err, domain.ErrSourceDisabled):
		r.log.Debug("calorie source disabled", "tier", tier)
	default:
		r.log.Warn("calorie lookup failed", "tier", tier, "name", name, "error", err)
	}

	return 0, false
}

package usecase

import (
	"context"
	"testing"

	"github.com/haasonsaas/instacart-calorie-scraper/internal/domain"
	"github.com/haasonsaas/instacart-calorie-scraper/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
)

// fakeSource is a scripted CalorieSource that counts its calls.
type fakeSource struct {
	kcal  float64
	err   error
	calls int
}

func (f *fakeSource) SearchCalories(ctx context.Context, name string) (float64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.kcal, nil
}

func TestResolver_PrimaryHitSkipsSecondary(t *testing.T) {
	primary := &fakeSource{kcal: 105}
	secondary := &fakeSource{kcal: 89}
	resolver := NewResolver(primary, secondary, nil, nil)

	kcal, found := resolver.Resolve(context.Background(), "bananas")

	assert.True(t, found)
	assert.Equal(t, 105.0, kcal)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls, "secondary must not be consulted on a primary hit")
}

func TestResolver_FallsBackToSecondary(t *testing.T) {
	primary := &fakeSource{err: domain.ErrCaloriesNotFound}
	secondary := &fakeSource{kcal: 89}
	resolver := NewResolver(primary, secondary, nil, nil)

	kcal, found := resolver.Resolve(context.Background(), "bananas")

	assert.True(t, found)
	assert.Equal(t, 89.0, kcal)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestResolver_TransportFailureDowngradedToMiss(t *testing.T) {
	primary := &fakeSource{err: domain.ErrLookupFailed}
	secondary := &fakeSource{err: domain.ErrMalformedResponse}
	resolver := NewResolver(primary, secondary, nil, nil)

	kcal, found := resolver.Resolve(context.Background(), "bananas")

	assert.False(t, found)
	assert.Zero(t, kcal)
}

func TestResolver_DisabledSecondaryIsSkippedQuietly(t *testing.T) {
	primary := &fakeSource{err: domain.ErrCaloriesNotFound}
	secondary := &fakeSource{err: domain.ErrSourceDisabled}
	resolver := NewResolver(primary, secondary, nil, nil)

	_, found := resolver.Resolve(context.Background(), "bananas")

	assert.False(t, found)
	assert.Equal(t, 1, secondary.calls)
}

func TestResolver_NilSecondary(t *testing.T) {
	primary := &fakeSource{err: domain.ErrCaloriesNotFound}
	resolver := NewResolver(primary, nil, nil, nil)

	_, found := resolver.Resolve(context.Background(), "bananas")

	assert.False(t, found)
	assert.Equal(t, 1, primary.calls)
}

func TestResolver_CacheDeduplicatesLookups(t *testing.T) {
	primary := &fakeSource{kcal: 105}
	resolver := NewResolver(primary, nil, cache.NewMemoryCache(), nil)

	for i := 0; i < 3; i++ {
		kcal, found := resolver.Resolve(context.Background(), "Organic Bananas")
		assert.True(t, found)
		assert.Equal(t, 105.0, kcal)
	}

	assert.Equal(t, 1, primary.calls, "duplicate names should hit the network once")
}

func TestResolver_CacheRemembersMisses(t *testing.T) {
	primary := &fakeSource{err: domain.ErrCaloriesNotFound}
	resolver := NewResolver(primary, nil, cache.NewMemoryCache(), nil)

	_, found := resolver.Resolve(context.Background(), "mystery item")
	assert.False(t, found)
	_, found = resolver.Resolve(context.Background(), "mystery item")
	assert.False(t, found)

	assert.Equal(t, 1, primary.calls)
}

package dynamic

import (
	"context"
	"testing"
	"time"

	vendorRepo "eventhub/database/repository/vendor"
	"eventhub/models"
	"eventhub/services/cache"
	"eventhub/services/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepo struct {
	*vendorRepo.MemoryVendorRepo
	typeCalls int
}

func (r *countingRepo) ServiceTypeCounts(ctx context.Context) ([]vendorRepo.FacetCount, error) {
	r.typeCalls++
	return r.MemoryVendorRepo.ServiceTypeCounts(ctx)
}

func vendor(name, service, city string, pmin, pmax float64) models.Vendor {
	return models.Vendor{
		Name:        name,
		ServiceType: service,
		City:        city,
		Rating:      4,
		Pricing:     models.PriceRange{Min: pmin, Max: pmax},
		IsActive:    true,
	}
}

func newFixture(t *testing.T) (*DefaultDynamicService, *countingRepo, *time.Time) {
	t.Helper()
	repo := &countingRepo{MemoryVendorRepo: vendorRepo.NewMemoryVendorRepo(
		vendor("Click", "photography", "Bangalore", 20000, 80000),
		vendor("Snap", "photography", "Bengaluru", 15000, 40000),
		vendor("Spin", "dj", "Pune", 8000, 25000),
		vendor("Fog", "smoke-machines", "Pune", 2000, 5000),
	)}
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := cache.NewMemoryStoreWithClock(func() time.Time { return now })
	return NewDefaultDynamicService(repo, taxonomy.Default(), store, nil), repo, &now
}

func TestServiceTypes(t *testing.T) {
	svc, _, _ := newFixture(t)

	types, err := svc.ServiceTypes(context.Background())
	require.NoError(t, err)

	byID := map[string]models.ServiceTypeOption{}
	for _, ty := range types {
		byID[ty.ID] = ty
	}
	assert.Equal(t, "photography", types[0].ID, "taxonomy order first")
	assert.Equal(t, int64(2), byID["photography"].VendorCount)
	assert.Equal(t, "photography-video", byID["photography"].Category)
	assert.Equal(t, int64(0), byID["catering"].VendorCount)

	last := types[len(types)-1]
	assert.Equal(t, models.ServiceTypeOption{ID: "smoke-machines", Label: "Smoke-Machines", VendorCount: 1}, last)
}

func TestCitiesMergeAliases(t *testing.T) {
	svc, _, _ := newFixture(t)

	cities, err := svc.Cities(context.Background())
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "bangalore", cities[0].ID)
	assert.Equal(t, int64(2), cities[0].VendorCount)
	assert.Equal(t, "pune", cities[1].ID)
	assert.Equal(t, "Pune", cities[1].Name)
}

func TestPriceRanges(t *testing.T) {
	svc, _, _ := newFixture(t)

	ranges, err := svc.PriceRanges(context.Background())
	require.NoError(t, err)
	require.Len(t, ranges, 3)
	assert.Equal(t, "dj", ranges[0].ServiceType)
	assert.Equal(t, "DJ", ranges[0].Label)
	assert.Equal(t, models.PriceRangeOption{
		ServiceType: "photography",
		Label:       "Photography",
		Min:         15000,
		Max:         80000,
		Avg:         17500,
		VendorCount: 2,
	}, ranges[1])
}

func TestSearchSuggestions(t *testing.T) {
	svc, _, _ := newFixture(t)

	got, err := svc.SearchSuggestions(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "service:photography", got[0].ID)
	assert.Equal(t, "Photography", got[0].Label)
	assert.Equal(t, 2, got[0].Score)
	assert.Equal(t, "city:bangalore", got[1].ID)
}

func TestFilterStats(t *testing.T) {
	svc, _, _ := newFixture(t)

	stats, err := svc.FilterStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalVendors)
	assert.Equal(t, 3, stats.ServiceTypes)
	assert.Equal(t, 2, stats.Cities)
	assert.Equal(t, 2000.0, stats.PriceMin)
	assert.Equal(t, 80000.0, stats.PriceMax)
}

func TestLookupsAreCachedForFiveMinutes(t *testing.T) {
	svc, repo, now := newFixture(t)
	ctx := context.Background()

	_, err := svc.ServiceTypes(ctx)
	require.NoError(t, err)
	_, err = svc.ServiceTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.typeCalls)

	*now = now.Add(CacheTTL)
	_, err = svc.ServiceTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.typeCalls, "entry still valid at exactly the TTL")

	*now = now.Add(time.Millisecond)
	_, err = svc.ServiceTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.typeCalls)
}

func TestNilCacheAlwaysLoads(t *testing.T) {
	repo := &countingRepo{MemoryVendorRepo: vendorRepo.NewMemoryVendorRepo()}
	svc := NewDefaultDynamicService(repo, taxonomy.Default(), nil, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.ServiceTypes(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 2, repo.typeCalls)
}

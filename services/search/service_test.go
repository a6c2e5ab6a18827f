package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	vendorRepo "eventhub/database/repository/vendor"
	"eventhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVendor(name, service, city, area string, rating, pmin, pmax float64) models.Vendor {
	return models.Vendor{
		Name:        name,
		ServiceType: service,
		City:        city,
		Area:        area,
		Rating:      rating,
		Pricing:     models.PriceRange{Min: pmin, Max: pmax},
		IsActive:    true,
	}
}

func TestSearchPagination(t *testing.T) {
	var seed []models.Vendor
	for i := 0; i < 25; i++ {
		seed = append(seed, seedVendor(fmt.Sprintf("Caterer %02d", i), "catering", "Pune", "", 4, 1000, 5000))
	}
	svc := NewDefaultSearchService(vendorRepo.NewMemoryVendorRepo(seed...), nil)

	res, err := svc.Search(context.Background(), models.SearchParams{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, res.Results, 10)
	assert.Equal(t, int64(25), res.Total)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 3, res.TotalPages)
}

func TestSearchDefaults(t *testing.T) {
	svc := NewDefaultSearchService(vendorRepo.NewMemoryVendorRepo(), nil)

	res, err := svc.Search(context.Background(), models.SearchParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Zero(t, res.Total)
	assert.Zero(t, res.TotalPages)
	assert.Empty(t, res.Results)
	assert.Empty(t, res.Groups)
}

func TestSearchRejectsInvalidParams(t *testing.T) {
	svc := NewDefaultSearchService(vendorRepo.NewMemoryVendorRepo(), nil)

	_, err := svc.Search(context.Background(), models.SearchParams{Sort: models.SortDistance})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.NotEmpty(t, verr.Errors)
}

func TestSearchBudgetAndVerifiedProperties(t *testing.T) {
	var seed []models.Vendor
	for i := 0; i < 40; i++ {
		v := seedVendor(fmt.Sprintf("Venue %02d", i), "venue", "Goa", "", float64(i%5), float64(i*5000), float64(i*5000+30000))
		v.Verified = i%3 == 0
		seed = append(seed, v)
	}
	svc := NewDefaultSearchService(vendorRepo.NewMemoryVendorRepo(seed...), nil)

	lo, hi := 60000.0, 90000.0
	res, err := svc.Search(context.Background(), models.SearchParams{
		Budget:   &models.BudgetRange{Min: &lo, Max: &hi},
		Verified: true,
		Limit:    100,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Results)
	for _, r := range res.Results {
		assert.True(t, r.Verified, r.Name)
		assert.LessOrEqual(t, r.Pricing.Min, hi, r.Name)
		assert.GreaterOrEqual(t, r.Pricing.Max, lo, r.Name)
	}
}

func TestSearchCityExpansionAndTiers(t *testing.T) {
	lat, lng := 12.9784, 77.6408
	home := seedVendor("Home Area", "dj", "Bengaluru", "Indiranagar", 3, 1, 2)
	home.Location = models.NewGeoPoint(12.9780, 77.6400)
	nearby := seedVendor("Close By", "dj", "Bangalore", "Domlur", 3, 1, 2)
	nearby.Location = models.NewGeoPoint(12.9610, 77.6387)
	city := seedVendor("Across Town", "dj", "bangalore", "Whitefield", 5, 1, 2)
	city.Location = models.NewGeoPoint(12.9698, 77.7500)
	adjacent := seedVendor("Palace Beats", "dj", "Mysuru", "", 4, 1, 2)
	elsewhere := seedVendor("Far Away", "dj", "Chennai", "", 5, 1, 2)

	svc := NewDefaultSearchService(vendorRepo.NewMemoryVendorRepo(home, nearby, city, adjacent, elsewhere), nil)
	res, err := svc.Search(context.Background(), models.SearchParams{
		ServiceID: "DJ",
		Location:  &models.LocationParams{City: "Bengaluru", Area: "Indiranagar", Latitude: &lat, Longitude: &lng},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Total, "Chennai is outside the expanded city set")

	tiers := map[string]string{}
	for _, r := range res.Results {
		tiers[r.Name] = r.MatchTier
	}
	assert.Equal(t, map[string]string{
		"Home Area":    TierExactArea,
		"Close By":     TierNearby,
		"Across Town":  TierSameCity,
		"Palace Beats": TierAdjacentCity,
	}, tiers)

	var order []string
	for _, g := range res.Groups {
		order = append(order, g.Tier)
	}
	assert.Equal(t, []string{TierExactArea, TierNearby, TierSameCity, TierAdjacentCity}, order)

	for _, r := range res.Results {
		if r.Name == "Palace Beats" {
			assert.Nil(t, r.DistanceKm)
		} else {
			assert.NotNil(t, r.DistanceKm)
		}
	}
}

func TestBuildCriteria(t *testing.T) {
	lat, lng := 19.07, 72.87
	lo := 100.0
	c := buildCriteria(models.SearchParams{
		Query:       "  wedding dj ",
		ServiceType: "Live-Band",
		ServiceID:   "",
		Budget:      &models.BudgetRange{Min: &lo},
		Location:    &models.LocationParams{City: "Bombay", Latitude: &lat, Longitude: &lng, Radius: 15},
	})

	assert.Equal(t, "wedding dj", c.Text)
	assert.Equal(t, "live-band", c.ServiceType)
	assert.Equal(t, models.SortRelevance, c.Sort)
	assert.Equal(t, &lo, c.BudgetMin)
	assert.Nil(t, c.BudgetMax)
	require.NotNil(t, c.Near)
	assert.Equal(t, 15.0, c.Near.RadiusKm)
	assert.Equal(t, []string{"bombay", "kalyan-dombivli", "mumbai", "navi mumbai", "thane", "vasai-virar"}, c.Cities)
}

func TestExpandCitiesEmpty(t *testing.T) {
	assert.Nil(t, expandCities("   "))
}

type failingRepo struct {
	vendorRepo.VendorRepository
}

func (failingRepo) Search(context.Context, vendorRepo.SearchCriteria) ([]models.VendorResult, int64, error) {
	return nil, 0, errors.New("connection refused")
}

func TestSearchWrapsRepositoryErrors(t *testing.T) {
	svc := NewDefaultSearchService(failingRepo{}, nil)
	_, err := svc.Search(context.Background(), models.SearchParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	vendorRepo "eventhub/database/repository/vendor"
	"eventhub/models"
	"eventhub/services/cache"
	"eventhub/services/dynamic"
	"eventhub/services/taxonomy"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenRepo struct{ vendorRepo.VendorRepository }

func (brokenRepo) Stats(context.Context) (vendorRepo.VendorStats, error) {
	return vendorRepo.VendorStats{}, errors.New("mongo down")
}

func dynamicRouter(repo vendorRepo.VendorRepository) *gin.Engine {
	svc := dynamic.NewDefaultDynamicService(repo, taxonomy.Default(), cache.NewMemoryStore(), nil)
	h := NewDynamicHandler(svc, nil)
	r := gin.New()
	r.GET("/api/dynamic/service-types", h.ServiceTypesHandler)
	r.GET("/api/dynamic/cities", h.CitiesHandler)
	r.GET("/api/dynamic/price-ranges", h.PriceRangesHandler)
	r.GET("/api/dynamic/search-suggestions", h.SearchSuggestionsHandler)
	r.GET("/api/dynamic/filter-stats", h.FilterStatsHandler)
	return r
}

func TestDynamicHandlers(t *testing.T) {
	repo := vendorRepo.NewMemoryVendorRepo(
		models.Vendor{Name: "A", ServiceType: "dj", City: "Pune", Rating: 4, Verified: true, IsActive: true,
			Pricing: models.PriceRange{Min: 5000, Max: 20000}},
		models.Vendor{Name: "B", ServiceType: "catering", City: "Mumbai", Rating: 3, IsActive: true,
			Pricing: models.PriceRange{Min: 300, Max: 900}},
	)
	r := dynamicRouter(repo)

	for _, path := range []string{
		"/api/dynamic/service-types",
		"/api/dynamic/cities",
		"/api/dynamic/price-ranges",
		"/api/dynamic/search-suggestions?limit=5",
	} {
		w, env := doRequest(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.True(t, env.Success, path)
	}

	_, env := doRequest(r, http.MethodGet, "/api/dynamic/filter-stats", nil)
	var stats models.FilterStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(2), stats.TotalVendors)
	assert.Equal(t, int64(1), stats.VerifiedVendors)
	assert.Equal(t, 2, stats.Cities)
}

func TestDynamicHandlerFailure(t *testing.T) {
	r := dynamicRouter(brokenRepo{})

	w, env := doRequest(r, http.MethodGet, "/api/dynamic/filter-stats", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "failed to load filter stats", env.Error)
}

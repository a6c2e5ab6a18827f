package search

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	vendorRepo "eventhub/database/repository/vendor"
	"eventhub/metrics"
	"eventhub/models"
	"eventhub/services/location"
	"eventhub/utils"

	"go.uber.org/zap"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Search validates params, runs the vendor query and annotates every hit with
// its distance and match tier.
func (s *DefaultSearchService) Search(ctx context.Context, params models.SearchParams) (*models.SearchResult, error) {
	if res := ValidateParams(params); !res.Valid {
		return nil, &ValidationError{Errors: res.Errors}
	}

	page, limit := pageAndLimit(params)
	criteria := buildCriteria(params)
	criteria.Skip = (page - 1) * limit
	criteria.Limit = limit

	results, total, err := s.Repo.Search(ctx, criteria)
	if err != nil {
		s.Logger.Error("Vendor search failed", zap.Error(err), zap.String("query", params.Query))
		return nil, fmt.Errorf("vendor search failed: %w", err)
	}
	metrics.SearchResultsTotal.Observe(float64(total))

	for i := range results {
		annotate(&results[i], params.Location)
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	s.Logger.Debug("Vendor search",
		zap.String("query", params.Query),
		zap.String("serviceType", criteria.ServiceType),
		zap.Strings("cities", criteria.Cities),
		zap.Int64("total", total),
		zap.Int("page", page),
	)
	return &models.SearchResult{
		Results:    results,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		Groups:     GroupVendorsByTier(results),
	}, nil
}

func pageAndLimit(params models.SearchParams) (int, int) {
	page, limit := params.Page, params.Limit
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return page, min(limit, MaxLimit)
}

// buildCriteria resolves request params into repository criteria. Paging is left to the caller.
func buildCriteria(params models.SearchParams) vendorRepo.SearchCriteria {
	serviceType := params.ServiceID
	if serviceType == "" {
		serviceType = params.ServiceType
	}

	c := vendorRepo.SearchCriteria{
		Text:        strings.TrimSpace(params.Query),
		ServiceType: strings.ToLower(strings.TrimSpace(serviceType)),
		Verified:    params.Verified,
		MinRating:   params.Rating,
		Sort:        params.Sort,
	}
	if c.Sort == "" {
		c.Sort = models.SortRelevance
	}
	if b := params.Budget; b != nil {
		c.BudgetMin, c.BudgetMax = b.Min, b.Max
	}
	if loc := params.Location; loc != nil {
		c.Cities = expandCities(loc.City)
		if loc.HasCoordinates() {
			c.Near = &vendorRepo.GeoFilter{
				Latitude:  *loc.Latitude,
				Longitude: *loc.Longitude,
				RadiusKm:  loc.Radius,
			}
		}
	}
	return c
}

// expandCities returns the folded city name with its aliases and adjacent cities,
// so vendors listed under any of them can be tiered.
func expandCities(city string) []string {
	canonical := location.NormalizeCity(city)
	if canonical == "" {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	add := func(names ...string) {
		for _, name := range names {
			if n := utils.Fold(name); n != "" && !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	add(city, canonical)
	add(location.AliasesOf(canonical)...)
	for _, adj := range location.AdjacentCities(canonical) {
		add(adj)
		add(location.AliasesOf(adj)...)
	}
	sort.Strings(out)
	return out
}

func annotate(r *models.VendorResult, loc *models.LocationParams) {
	if r.DistanceKm == nil && loc.HasCoordinates() {
		if lat, lng, ok := r.Location.LatLng(); ok {
			d := utils.HaversineKm(*loc.Latitude, *loc.Longitude, lat, lng)
			r.DistanceKm = &d
		}
	}
	r.MatchTier = AssignTier(*r, loc)
}

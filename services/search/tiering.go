package search

import (
	"eventhub/models"
	"eventhub/services/location"
	"eventhub/utils"
)

// Match tiers, most specific first.
const (
	TierExactArea    = "exact_area"
	TierNearby       = "nearby"
	TierSameCity     = "same_city"
	TierAdjacentCity = "adjacent_city"
	TierAll          = "all"
)

// Distance thresholds for the coordinate based tiers.
const (
	NearbyRadiusKm   = 5.0
	AdjacentRadiusKm = 50.0
)

var tierOrder = []struct {
	tier     string
	label    string
	priority int
}{
	{TierExactArea, "In your area", 1},
	{TierNearby, "Nearby", 2},
	{TierSameCity, "In your city", 3},
	{TierAdjacentCity, "Nearby cities", 4},
	{TierAll, "More vendors", 5},
}

// AssignTier classifies a vendor by how close it is to the requested location.
func AssignTier(v models.VendorResult, loc *models.LocationParams) string {
	if loc == nil || (loc.City == "" && !loc.HasCoordinates()) {
		return TierAll
	}

	sameCity := loc.City != "" && location.SameCity(v.City, loc.City)
	switch {
	case sameCity && loc.Area != "" && utils.Fold(v.Area) == utils.Fold(loc.Area):
		return TierExactArea
	case v.DistanceKm != nil && *v.DistanceKm <= NearbyRadiusKm:
		return TierNearby
	case sameCity:
		return TierSameCity
	case loc.City != "" && location.IsAdjacent(loc.City, v.City):
		return TierAdjacentCity
	case v.DistanceKm != nil && *v.DistanceKm <= AdjacentRadiusKm:
		return TierAdjacentCity
	}
	return TierAll
}

// GroupVendorsByTier buckets results by MatchTier in fixed priority order.
// Unknown or empty tiers fall into "all"; empty buckets are dropped.
func GroupVendorsByTier(results []models.VendorResult) []models.TierGroup {
	buckets := make(map[string][]models.VendorResult, len(tierOrder))
	for _, r := range results {
		tier := r.MatchTier
		if !knownTier(tier) {
			tier = TierAll
		}
		buckets[tier] = append(buckets[tier], r)
	}

	groups := []models.TierGroup{}
	for _, t := range tierOrder {
		if vendors := buckets[t.tier]; len(vendors) > 0 {
			groups = append(groups, models.TierGroup{
				Tier:     t.tier,
				Label:    t.label,
				Priority: t.priority,
				Vendors:  vendors,
			})
		}
	}
	return groups
}

func knownTier(tier string) bool {
	for _, t := range tierOrder {
		if t.tier == tier {
			return true
		}
	}
	return false
}

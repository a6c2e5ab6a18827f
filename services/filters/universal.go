package filters

import "eventhub/models"

func float(v float64) *float64 { return &v }

// universalFilters is shared by every request. Hand out clones only.
var universalFilters = []models.Filter{
	{
		ID:    "sort",
		Label: "Sort by",
		Type:  models.FilterSelect,
		Options: []models.FilterOption{
			{Value: models.SortRelevance, Label: "Most relevant"},
			{Value: models.SortRating, Label: "Highest rated"},
			{Value: models.SortPriceLow, Label: "Price: low to high"},
			{Value: models.SortPriceHigh, Label: "Price: high to low"},
			{Value: models.SortDistance, Label: "Nearest first"},
		},
		Default: models.SortRelevance,
	},
	{ID: "verified", Label: "Verified vendors only", Type: models.FilterToggle, Default: false},
	{ID: "rating", Label: "Minimum rating", Type: models.FilterRange, Min: float(0), Max: float(5), Step: 0.5, Default: 0.0},
	{ID: "deals", Label: "Deals & offers", Type: models.FilterToggle, Default: false},
	{
		ID:    "budget",
		Label: "Budget",
		Type:  models.FilterRange,
		Min:   float(0),
		Max:   float(500000),
		Step:  1000,
		Presets: []models.BudgetPreset{
			{Label: "Under ₹25k", Min: 0, Max: 25000},
			{Label: "₹25k - ₹50k", Min: 25000, Max: 50000},
			{Label: "₹50k - ₹1L", Min: 50000, Max: 100000},
			{Label: "₹1L - ₹2.5L", Min: 100000, Max: 250000},
			{Label: "₹2.5L+", Min: 250000, Max: 500000},
		},
	},
	{
		ID:    "response_time",
		Label: "Response time",
		Type:  models.FilterSelect,
		Options: []models.FilterOption{
			{Value: "any", Label: "Any"},
			{Value: "1h", Label: "Within 1 hour"},
			{Value: "24h", Label: "Within 24 hours"},
			{Value: "48h", Label: "Within 48 hours"},
		},
		Default: "any",
	},
}

// UniversalFilters returns a fresh copy of the always-present filters, in display order.
func UniversalFilters() []models.Filter {
	out := make([]models.Filter, len(universalFilters))
	for i, f := range universalFilters {
		out[i] = f.Clone()
	}
	return out
}

// eventTypes feeds the locked event type filter.
var eventTypes = []models.FilterOption{
	{Value: "wedding", Label: "Wedding"},
	{Value: "engagement", Label: "Engagement"},
	{Value: "birthday", Label: "Birthday"},
	{Value: "anniversary", Label: "Anniversary"},
	{Value: "corporate", Label: "Corporate Event"},
	{Value: "baby-shower", Label: "Baby Shower"},
	{Value: "festival", Label: "Festival"},
	{Value: "other", Label: "Other"},
}

package filters

import "eventhub/models"

// budgetOverride replaces the universal budget bounds for a service.
type budgetOverride struct {
	Min, Max, Step float64
	Presets        []models.BudgetPreset
}

type serviceConfig struct {
	Filters []models.Filter
	Budget  *budgetOverride
}

func options(pairs ...string) []models.FilterOption {
	out := make([]models.FilterOption, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, models.FilterOption{Value: pairs[i], Label: pairs[i+1]})
	}
	return out
}

// serviceConfigs is keyed by taxonomy service id.
var serviceConfigs = map[string]serviceConfig{
	"photography": {
		Filters: []models.Filter{
			{
				ID: "photography_type", Label: "Photography style", Type: models.FilterMultiSelect,
				Options: options("candid", "Candid", "traditional", "Traditional", "pre-wedding", "Pre-wedding",
					"fashion", "Fashion", "product", "Product"),
			},
			{
				ID: "coverage_hours", Label: "Coverage", Type: models.FilterSelect,
				Options: options("half-day", "Half day", "full-day", "Full day", "multi-day", "Multiple days"),
			},
			{
				ID: "deliverables", Label: "Deliverables", Type: models.FilterMultiSelect,
				Options: options("album", "Printed album", "digital", "Digital gallery", "highlights", "Highlight reel"),
			},
		},
		Budget: &budgetOverride{
			Min: 10000, Max: 300000, Step: 5000,
			Presets: []models.BudgetPreset{
				{Label: "Under ₹25k", Min: 10000, Max: 25000},
				{Label: "₹25k - ₹75k", Min: 25000, Max: 75000},
				{Label: "₹75k - ₹1.5L", Min: 75000, Max: 150000},
				{Label: "₹1.5L+", Min: 150000, Max: 300000},
			},
		},
	},
	"videography": {
		Filters: []models.Filter{
			{
				ID: "video_style", Label: "Video style", Type: models.FilterMultiSelect,
				Options: options("cinematic", "Cinematic", "documentary", "Documentary", "traditional", "Traditional"),
			},
			{ID: "drone_coverage", Label: "Drone coverage", Type: models.FilterToggle, Default: false},
		},
		Budget: &budgetOverride{Min: 15000, Max: 400000, Step: 5000},
	},
	"catering": {
		Filters: []models.Filter{
			{
				ID: "cuisine", Label: "Cuisine", Type: models.FilterMultiSelect,
				Options: options("north-indian", "North Indian", "south-indian", "South Indian", "chinese", "Chinese",
					"continental", "Continental", "mughlai", "Mughlai"),
			},
			{
				ID: "meal_type", Label: "Meal type", Type: models.FilterSelect,
				Options: options("veg", "Vegetarian", "non-veg", "Non-vegetarian", "both", "Both"),
			},
			{ID: "guest_count", Label: "Guests", Type: models.FilterRange, Min: float(50), Max: float(5000), Step: 50},
		},
		Budget: &budgetOverride{Min: 20000, Max: 2000000, Step: 10000},
	},
	"venue": {
		Filters: []models.Filter{
			{
				ID: "venue_type", Label: "Venue type", Type: models.FilterMultiSelect,
				Options: options("banquet", "Banquet hall", "lawn", "Lawn", "resort", "Resort", "rooftop", "Rooftop",
					"farmhouse", "Farmhouse"),
			},
			{ID: "capacity", Label: "Capacity", Type: models.FilterRange, Min: float(20), Max: float(5000), Step: 10},
			{
				ID: "setting", Label: "Setting", Type: models.FilterSelect,
				Options: options("indoor", "Indoor", "outdoor", "Outdoor", "both", "Indoor & outdoor"),
			},
		},
		Budget: &budgetOverride{Min: 50000, Max: 5000000, Step: 25000},
	},
	"decoration": {
		Filters: []models.Filter{
			{
				ID: "decor_theme", Label: "Theme", Type: models.FilterMultiSelect,
				Options: options("traditional", "Traditional", "floral", "Floral", "minimal", "Minimal",
					"royal", "Royal", "boho", "Boho"),
			},
		},
	},
	"dj": {
		Filters: []models.Filter{
			{
				ID: "music_genres", Label: "Genres", Type: models.FilterMultiSelect,
				Options: options("bollywood", "Bollywood", "punjabi", "Punjabi", "edm", "EDM", "retro", "Retro"),
			},
			{ID: "sound_lighting_included", Label: "Sound & lighting included", Type: models.FilterToggle, Default: false},
		},
	},
	"makeup": {
		Filters: []models.Filter{
			{
				ID: "makeup_type", Label: "Makeup type", Type: models.FilterMultiSelect,
				Options: options("bridal", "Bridal", "party", "Party", "hd", "HD", "airbrush", "Airbrush"),
			},
			{ID: "home_service", Label: "Home service", Type: models.FilterToggle, Default: false},
		},
	},
	"mehendi": {
		Filters: []models.Filter{
			{
				ID: "mehendi_style", Label: "Style", Type: models.FilterMultiSelect,
				Options: options("rajasthani", "Rajasthani", "arabic", "Arabic", "indo-western", "Indo-western"),
			},
		},
	},
	"event-planner": {
		Filters: []models.Filter{
			{
				ID: "planning_scope", Label: "Scope", Type: models.FilterSelect,
				Options: options("full", "Full planning", "partial", "Partial planning", "day-of", "Day-of coordination"),
			},
		},
	},
}

// specificFilters returns cloned filters for serviceID and its budget override, if any.
func specificFilters(serviceID string) ([]models.Filter, *budgetOverride) {
	cfg, ok := serviceConfigs[serviceID]
	if !ok {
		return []models.Filter{}, nil
	}
	out := make([]models.Filter, len(cfg.Filters))
	for i, f := range cfg.Filters {
		out[i] = f.Clone()
	}
	return out, cfg.Budget
}

func applyBudget(universal []models.Filter, b *budgetOverride) {
	if b == nil {
		return
	}
	for i := range universal {
		if universal[i].ID != "budget" {
			continue
		}
		universal[i].Min = float(b.Min)
		universal[i].Max = float(b.Max)
		if b.Step > 0 {
			universal[i].Step = b.Step
		}
		if b.Presets != nil {
			universal[i].Presets = append([]models.BudgetPreset(nil), b.Presets...)
		}
	}
}

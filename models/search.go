package models

// Sort orders accepted by vendor search.
const (
	SortRelevance = "relevance"
	SortRating    = "rating"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortDistance  = "distance"
)

// LocationParams narrows a search geographically.
type LocationParams struct {
	City      string   `json:"city,omitempty"`
	Area      string   `json:"area,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	// Radius in kilometres.
	Radius float64 `json:"radius,omitempty" validate:"gte=0,lte=500"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (l *LocationParams) HasCoordinates() bool {
	return l != nil && l.Latitude != nil && l.Longitude != nil
}

// BudgetRange is the requested spend band; either bound may be absent.
type BudgetRange struct {
	Min *float64 `json:"min,omitempty" validate:"omitempty,gte=0"`
	Max *float64 `json:"max,omitempty" validate:"omitempty,gte=0"`
}

// SearchParams is the body of POST /api/search.
type SearchParams struct {
	Query       string          `json:"query" validate:"max=200"`
	ServiceID   string          `json:"serviceId,omitempty"`
	ServiceType string          `json:"serviceType,omitempty"`
	EventType   string          `json:"eventType,omitempty"`
	Location    *LocationParams `json:"location,omitempty"`
	Budget      *BudgetRange    `json:"budget,omitempty"`
	Verified    bool            `json:"verified,omitempty"`
	Rating      float64         `json:"rating,omitempty" validate:"gte=0,lte=5"`
	Sort        string          `json:"sort,omitempty" validate:"omitempty,oneof=relevance rating price-low price-high distance"`
	Page        int             `json:"page,omitempty" validate:"gte=0"`
	Limit       int             `json:"limit,omitempty" validate:"gte=0,lte=100"`
}

// TierGroup is one bucket of tiered search results.
type TierGroup struct {
	Tier     string         `json:"tier"`
	Label    string         `json:"label"`
	Priority int            `json:"priority"`
	Vendors  []VendorResult `json:"vendors"`
}

// SearchResult is the data payload of a search response.
type SearchResult struct {
	Results    []VendorResult `json:"results"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	Groups     []TierGroup    `json:"groups,omitempty"`
}

// ValidationResult collects problems without failing fast.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

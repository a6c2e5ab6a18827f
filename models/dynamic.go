package models

// ServiceTypeOption is a service type with its taxonomy placement and vendor count.
type ServiceTypeOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Icon        string `json:"icon,omitempty"`
	Category    string `json:"category,omitempty"`
	VendorCount int64  `json:"vendorCount"`
}

// CityOption is a city that has active vendors.
type CityOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	VendorCount int64  `json:"vendorCount"`
}

// PriceRangeOption summarises quoted prices for one service type.
type PriceRangeOption struct {
	ServiceType string  `json:"serviceType"`
	Label       string  `json:"label"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Avg         float64 `json:"avg"`
	VendorCount int64   `json:"vendorCount"`
}

// FilterStats are catalogue-wide numbers shown next to the filter panel.
type FilterStats struct {
	TotalVendors     int64   `json:"totalVendors"`
	VerifiedVendors  int64   `json:"verifiedVendors"`
	VendorsWithDeals int64   `json:"vendorsWithDeals"`
	AverageRating    float64 `json:"averageRating"`
	PriceMin         float64 `json:"priceMin"`
	PriceMax         float64 `json:"priceMax"`
	ServiceTypes     int     `json:"serviceTypes"`
	Cities           int     `json:"cities"`
}

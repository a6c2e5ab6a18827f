package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceRange is the price band a vendor quotes, in rupees.
type PriceRange struct {
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}

// Vendor is an event-service business listed on the marketplace.
// Only vendors with IsActive set are discoverable; Verified is a filter, not a gate.
type Vendor struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	BusinessName      string             `bson:"businessName" json:"businessName"`
	ContactPerson     string             `bson:"contactPerson" json:"contactPerson"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	ServiceType       string             `bson:"serviceType" json:"serviceType"`
	City              string             `bson:"city" json:"city"`
	Area              string             `bson:"area" json:"area"`
	Location          GeoPoint           `bson:"location" json:"location"`
	Pricing           PriceRange         `bson:"pricing" json:"pricing"`
	Rating            float64            `bson:"rating" json:"rating"`
	ReviewCount       int                `bson:"reviewCount" json:"reviewCount"`
	Verified          bool               `bson:"verified" json:"verified"`
	IsActive          bool               `bson:"isActive" json:"isActive"`
	SearchKeywords    []string           `bson:"searchKeywords,omitempty" json:"searchKeywords,omitempty"`
	ResponseTimeHours float64            `bson:"responseTimeHours,omitempty" json:"responseTimeHours,omitempty"`
	HasDeals          bool               `bson:"hasDeals" json:"hasDeals"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// VendorResult is a vendor as returned by search, with ranking metadata.
type VendorResult struct {
	Vendor     `bson:",inline"`
	Score      float64  `bson:"score,omitempty" json:"score,omitempty"`
	DistanceKm *float64 `bson:"-" json:"distanceKm,omitempty"`
	// Distance in metres, as produced by $geoNear.
	DistanceM *float64 `bson:"distance,omitempty" json:"-"`
	MatchTier string   `bson:"-" json:"matchTier"`
}

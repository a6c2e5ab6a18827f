package models

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// NewGeoPoint builds a GeoJSON point from latitude/longitude.
func NewGeoPoint(lat, lng float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// LatLng returns the point's latitude and longitude; ok is false for an unset point.
func (p GeoPoint) LatLng() (lat, lng float64, ok bool) {
	if len(p.Coordinates) < 2 {
		return 0, 0, false
	}
	return p.Coordinates[1], p.Coordinates[0], true
}

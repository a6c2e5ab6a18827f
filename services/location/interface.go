package location

import (
	"context"

	"eventhub/models"
)

// PlaceSource resolves cities and areas. OverpassClient is the production implementation.
type PlaceSource interface {
	FetchCities(ctx context.Context) []models.Place
	FetchAreas(ctx context.Context, cityName string) []models.Place
}

// LocationService backs the /api/locations endpoints.
type LocationService interface {
	SearchCities(ctx context.Context, q string, limit int) []models.City
	AreasForCity(ctx context.Context, cityID string, limit int) ([]models.Area, error)
	SearchAreas(ctx context.Context, cityID, q string, limit int) ([]models.Area, error)
}

// DefaultLocationService implements LocationService on top of a PlaceSource.
type DefaultLocationService struct {
	Places PlaceSource
}

func NewDefaultLocationService(places PlaceSource) *DefaultLocationService {
	return &DefaultLocationService{Places: places}
}

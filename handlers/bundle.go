package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Search endpoints
	SearchVendorsHandler   gin.HandlerFunc
	SuggestionsHandler     gin.HandlerFunc
	GenerateFiltersHandler gin.HandlerFunc
	ValidateFiltersHandler gin.HandlerFunc

	// Location endpoints
	SearchCitiesHandler gin.HandlerFunc
	CityAreasHandler    gin.HandlerFunc
	SearchAreasHandler  gin.HandlerFunc

	// Dynamic lookup endpoints
	ServiceTypesHandler      gin.HandlerFunc
	CitiesHandler            gin.HandlerFunc
	PriceRangesHandler       gin.HandlerFunc
	SearchSuggestionsHandler gin.HandlerFunc
	FilterStatsHandler       gin.HandlerFunc

	HealthHandler       gin.HandlerFunc
	PublicConfigHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handler structs into a bundle.
func NewHandlerBundle(sh *SearchHandler, lh *LocationHandler, dh *DynamicHandler) *HandlerBundle {
	return &HandlerBundle{
		SearchVendorsHandler:   sh.SearchVendorsHandler,
		SuggestionsHandler:     sh.SuggestionsHandler,
		GenerateFiltersHandler: sh.GenerateFiltersHandler,
		ValidateFiltersHandler: sh.ValidateFiltersHandler,

		SearchCitiesHandler: lh.SearchCitiesHandler,
		CityAreasHandler:    lh.CityAreasHandler,
		SearchAreasHandler:  lh.SearchAreasHandler,

		ServiceTypesHandler:      dh.ServiceTypesHandler,
		CitiesHandler:            dh.CitiesHandler,
		PriceRangesHandler:       dh.PriceRangesHandler,
		SearchSuggestionsHandler: dh.SearchSuggestionsHandler,
		FilterStatsHandler:       dh.FilterStatsHandler,

		HealthHandler:       HealthHandler,
		PublicConfigHandler: PublicConfigHandler,
	}
}

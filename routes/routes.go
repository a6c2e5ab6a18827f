package routes

import (
	"time"

	"eventhub/handlers"
	"eventhub/metrics"
	"eventhub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterSearchRoutes registers vendor search, autocomplete and filter endpoints.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/search")
	{
		api.POST("", hb.SearchVendorsHandler)
		api.GET("/suggestions", hb.SuggestionsHandler)
		api.POST("/filters", hb.GenerateFiltersHandler)
		api.POST("/filters/validate", hb.ValidateFiltersHandler)
	}
}

// RegisterLocationRoutes registers city and area lookups.
func RegisterLocationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/locations")
	{
		api.GET("/cities/search", hb.SearchCitiesHandler)
		api.GET("/cities/:id/areas", hb.CityAreasHandler)
		api.GET("/areas/search", hb.SearchAreasHandler)
	}
}

// RegisterDynamicRoutes registers the cached lookup lists.
func RegisterDynamicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dynamic")
	{
		api.GET("/service-types", hb.ServiceTypesHandler)
		api.GET("/cities", hb.CitiesHandler)
		api.GET("/price-ranges", hb.PriceRangesHandler)
		api.GET("/search-suggestions", hb.SearchSuggestionsHandler)
		api.GET("/filter-stats", hb.FilterStatsHandler)
	}
}

// RegisterSystemRoutes registers health, metrics and public client configuration.
func RegisterSystemRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/api/config/public", hb.PublicConfigHandler)
}

// RegisterRoutes centralizes registration of all endpoints and CORS.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(metrics.Middleware())

	RegisterSearchRoutes(r, hb)
	RegisterLocationRoutes(r, hb)
	RegisterDynamicRoutes(r, hb)
	RegisterSystemRoutes(r, hb)
}

package handlers

import (
	"context"
	"net/http"

	"eventhub/models"
	"eventhub/services/dynamic"
	"eventhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DynamicHandler serves the cached lookup lists behind /api/dynamic.
type DynamicHandler struct {
	DynamicSvc dynamic.DynamicService
	Logger     *zap.Logger
}

func NewDynamicHandler(svc dynamic.DynamicService, logger *zap.Logger) *DynamicHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DynamicHandler{DynamicSvc: svc, Logger: logger}
}

// respond runs load and writes its result, or a 500 naming what failed.
func respond[T any](c *gin.Context, logger *zap.Logger, what string, load func(ctx context.Context) (T, error)) {
	data, err := load(c.Request.Context())
	if err != nil {
		logger.Error("DynamicHandler: failed to load "+what, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load "+what)
		return
	}
	utils.JSONSuccess(c, data)
}

// ServiceTypesHandler handles GET /api/dynamic/service-types.
func (h *DynamicHandler) ServiceTypesHandler(c *gin.Context) {
	respond(c, h.Logger, "service types", h.DynamicSvc.ServiceTypes)
}

// CitiesHandler handles GET /api/dynamic/cities.
func (h *DynamicHandler) CitiesHandler(c *gin.Context) {
	respond(c, h.Logger, "cities", h.DynamicSvc.Cities)
}

// PriceRangesHandler handles GET /api/dynamic/price-ranges.
func (h *DynamicHandler) PriceRangesHandler(c *gin.Context) {
	respond(c, h.Logger, "price ranges", h.DynamicSvc.PriceRanges)
}

// SearchSuggestionsHandler handles GET /api/dynamic/search-suggestions.
func (h *DynamicHandler) SearchSuggestionsHandler(c *gin.Context) {
	limit := queryInt(c, "limit")
	respond(c, h.Logger, "search suggestions", func(ctx context.Context) ([]models.Suggestion, error) {
		return h.DynamicSvc.SearchSuggestions(ctx, limit)
	})
}

// FilterStatsHandler handles GET /api/dynamic/filter-stats.
func (h *DynamicHandler) FilterStatsHandler(c *gin.Context) {
	respond(c, h.Logger, "filter stats", h.DynamicSvc.FilterStats)
}

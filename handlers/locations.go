package handlers

import (
	"errors"
	"net/http"

	"eventhub/services/location"
	"eventhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LocationHandler serves city and area lookups.
type LocationHandler struct {
	LocationSvc location.LocationService
	Logger      *zap.Logger
}

func NewLocationHandler(svc location.LocationService, logger *zap.Logger) *LocationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocationHandler{LocationSvc: svc, Logger: logger}
}

// SearchCitiesHandler handles GET /api/locations/cities/search.
func (h *LocationHandler) SearchCitiesHandler(c *gin.Context) {
	limit := queryInt(c, "limit")
	utils.JSONSuccess(c, h.LocationSvc.SearchCities(c.Request.Context(), c.Query("q"), limit))
}

// CityAreasHandler handles GET /api/locations/cities/:id/areas.
func (h *LocationHandler) CityAreasHandler(c *gin.Context) {
	cityID := c.Param("id")
	areas, err := h.LocationSvc.AreasForCity(c.Request.Context(), cityID, queryInt(c, "limit"))
	if err != nil {
		h.respondAreaError(c, "CityAreasHandler", cityID, err)
		return
	}
	utils.JSONSuccess(c, areas)
}

// SearchAreasHandler handles GET /api/locations/areas/search.
func (h *LocationHandler) SearchAreasHandler(c *gin.Context) {
	cityID := c.Query("cityId")
	if cityID == "" {
		utils.JSONError(c, http.StatusBadRequest, "cityId is required")
		return
	}
	areas, err := h.LocationSvc.SearchAreas(c.Request.Context(), cityID, c.Query("q"), queryInt(c, "limit"))
	if err != nil {
		h.respondAreaError(c, "SearchAreasHandler", cityID, err)
		return
	}
	utils.JSONSuccess(c, areas)
}

func (h *LocationHandler) respondAreaError(c *gin.Context, fn, cityID string, err error) {
	if errors.Is(err, location.ErrUnknownCity) {
		utils.JSONError(c, http.StatusNotFound, "unknown city", cityID)
		return
	}
	h.Logger.Error(fn+": failed to load areas", zap.String("cityId", cityID), zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "failed to load areas")
}

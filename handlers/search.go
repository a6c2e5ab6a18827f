package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"eventhub/models"
	"eventhub/services/filters"
	"eventhub/services/search"
	"eventhub/services/taxonomy"
	"eventhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultSuggestionLimit = 8
	maxSuggestionLimit     = 50
)

// SearchHandler serves vendor search, autocomplete and the filter panel.
type SearchHandler struct {
	SearchSvc search.SearchService
	FilterSvc filters.FilterService
	Taxonomy  *taxonomy.Taxonomy
	Logger    *zap.Logger
}

func NewSearchHandler(searchSvc search.SearchService, filterSvc filters.FilterService, tx *taxonomy.Taxonomy, logger *zap.Logger) *SearchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchHandler{SearchSvc: searchSvc, FilterSvc: filterSvc, Taxonomy: tx, Logger: logger}
}

// SearchVendorsHandler handles POST /api/search.
func (h *SearchHandler) SearchVendorsHandler(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		h.Logger.Warn("SearchVendorsHandler: invalid request body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.SearchSvc.Search(c.Request.Context(), params)
	if err != nil {
		var verr *search.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, "invalid search parameters", verr.Errors...)
			return
		}
		getLogger(c).Error("SearchVendorsHandler: search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "search failed")
		return
	}

	utils.JSONSuccess(c, result)
}

// SuggestionsHandler handles GET /api/search/suggestions.
func (h *SearchHandler) SuggestionsHandler(c *gin.Context) {
	limit := queryLimit(c, defaultSuggestionLimit, maxSuggestionLimit)
	utils.JSONSuccess(c, h.Taxonomy.Suggest(c.Query("q"), limit))
}

// GenerateFiltersHandler handles POST /api/search/filters.
func (h *SearchHandler) GenerateFiltersHandler(c *gin.Context) {
	var sc models.SearchContext
	if err := c.ShouldBindJSON(&sc); err != nil {
		h.Logger.Warn("GenerateFiltersHandler: invalid request body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	utils.JSONSuccess(c, h.FilterSvc.Generate(sc))
}

type validateFiltersRequest struct {
	Context    models.SearchContext `json:"context"`
	Selections map[string]any       `json:"selections"`
}

// ValidateFiltersHandler handles POST /api/search/filters/validate. The schema is
// regenerated from the submitted context so clients cannot loosen locked filters.
func (h *SearchHandler) ValidateFiltersHandler(c *gin.Context) {
	var body validateFiltersRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.Logger.Warn("ValidateFiltersHandler: invalid request body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	schema := h.FilterSvc.Generate(body.Context)
	utils.JSONSuccess(c, h.FilterSvc.Validate(schema, body.Selections))
}

// queryInt reads a non-negative integer query parameter; absent or malformed values yield 0.
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// queryLimit reads ?limit=, falling back to def when absent and capping at max.
func queryLimit(c *gin.Context, def, max int) int {
	n := queryInt(c, "limit")
	if n == 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	vendorRepo "eventhub/database/repository/vendor"
	"eventhub/models"
	"eventhub/services/filters"
	"eventhub/services/search"
	"eventhub/services/taxonomy"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Errors  []string        `json:"errors"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func doRequest(r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

type failingSearch struct{}

func (failingSearch) Search(context.Context, models.SearchParams) (*models.SearchResult, error) {
	return nil, errors.New("connection refused")
}

func (failingSearch) Validate(models.SearchParams) models.ValidationResult {
	return models.ValidationResult{Valid: true, Errors: []string{}}
}

func searchRouter(svc search.SearchService) *gin.Engine {
	tx := taxonomy.Default()
	h := NewSearchHandler(svc, filters.NewDefaultFilterService(tx), tx, nil)
	r := gin.New()
	r.POST("/api/search", h.SearchVendorsHandler)
	r.GET("/api/search/suggestions", h.SuggestionsHandler)
	r.POST("/api/search/filters", h.GenerateFiltersHandler)
	r.POST("/api/search/filters/validate", h.ValidateFiltersHandler)
	return r
}

func TestSearchVendorsHandler(t *testing.T) {
	repo := vendorRepo.NewMemoryVendorRepo(
		models.Vendor{Name: "Spice Route", ServiceType: "catering", City: "Pune", Rating: 4.5, IsActive: true},
		models.Vendor{Name: "Royal Feasts", ServiceType: "catering", City: "Pune", Rating: 4.1, IsActive: true},
		models.Vendor{Name: "Beat Box", ServiceType: "dj", City: "Pune", Rating: 3.9, IsActive: true},
	)
	r := searchRouter(search.NewDefaultSearchService(repo, nil))

	w, env := doRequest(r, http.MethodPost, "/api/search", gin.H{"serviceId": "catering", "sort": "rating"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var result models.SearchResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, int64(2), result.Total)
	require.Len(t, result.Results, 2)
	assert.Equal(t, "Spice Route", result.Results[0].Name)
}

func TestSearchVendorsHandlerValidation(t *testing.T) {
	r := searchRouter(search.NewDefaultSearchService(vendorRepo.NewMemoryVendorRepo(), nil))

	w, env := doRequest(r, http.MethodPost, "/api/search", gin.H{"limit": 500, "sort": "distance"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "invalid search parameters", env.Error)
	assert.Len(t, env.Errors, 2)

	w, env = doRequest(r, http.MethodPost, "/api/search", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request body", env.Error)
}

func TestSearchVendorsHandlerBackendFailure(t *testing.T) {
	r := searchRouter(failingSearch{})

	w, env := doRequest(r, http.MethodPost, "/api/search", gin.H{"query": "dj"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "search failed", env.Error)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestSuggestionsHandler(t *testing.T) {
	r := searchRouter(failingSearch{})

	w, env := doRequest(r, http.MethodGet, "/api/search/suggestions?q=photographer&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var suggestions []models.Suggestion
	require.NoError(t, json.Unmarshal(env.Data, &suggestions))
	require.Len(t, suggestions, 2)
	assert.Equal(t, "photographers", suggestions[0].TaxonomyID)

	_, env = doRequest(r, http.MethodGet, "/api/search/suggestions?q=", nil)
	assert.JSONEq(t, "[]", string(env.Data))
}

func TestGenerateFiltersHandler(t *testing.T) {
	r := searchRouter(failingSearch{})

	w, env := doRequest(r, http.MethodPost, "/api/search/filters", models.SearchContext{Query: "photographer", Location: "Pune"})
	require.Equal(t, http.StatusOK, w.Code)

	var schema models.FilterSchema
	require.NoError(t, json.Unmarshal(env.Data, &schema))
	assert.Len(t, schema.Universal, 6)
	assert.NotEmpty(t, schema.Specific)
	require.NotEmpty(t, schema.Context)
	assert.True(t, schema.Context[0].Locked)
	assert.Equal(t, "Pune", schema.Context[0].Value)
}

func TestValidateFiltersHandler(t *testing.T) {
	r := searchRouter(failingSearch{})

	body := gin.H{
		"context":    models.SearchContext{Query: "photographer"},
		"selections": gin.H{"verified": true, "rating": 4.5},
	}
	w, env := doRequest(r, http.MethodPost, "/api/search/filters/validate", body)
	require.Equal(t, http.StatusOK, w.Code)
	var res models.ValidationResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.True(t, res.Valid)

	body["selections"] = gin.H{"verified": "yes", "nonsense": 1}
	_, env = doRequest(r, http.MethodPost, "/api/search/filters/validate", body)
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 2)
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/locations/cities/:id/areas", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/locations/cities/:id/areas", "200"))
	for _, id := range []string{"mumbai", "pune"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/locations/cities/"+id+"/areas", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/locations/cities/:id/areas", "200"))
	assert.Equal(t, 2.0, after-before)
}

func TestMiddleware_UnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unknown", "404"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "unknown", "404"))
	assert.Equal(t, 1.0, after-before)
}

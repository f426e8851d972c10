package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveBackendCall_CountsByOutcome(t *testing.T) {
	before := testutil.ToFloat64(backendCalls.WithLabelValues("/login", OutcomeUnreachable))
	ObserveBackendCall("/login", OutcomeUnreachable, 10*time.Millisecond)
	ObserveBackendCall("/login", OutcomeUnreachable, 10*time.Millisecond)
	after := testutil.ToFloat64(backendCalls.WithLabelValues("/login", OutcomeUnreachable))
	if after-before != 2 {
		t.Fatalf("expected 2 new observations, got %v", after-before)
	}
}

func TestMiddleware_RecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/static/*filepath", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(Handler()))

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/static/*filepath", "204"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/css/app.css", nil))
	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/static/*filepath", "204"))
	if after-before != 1 {
		t.Fatalf("expected one request recorded, got %v", after-before)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "diary_gateway_http_requests_total") {
		t.Fatalf("exposition missing request counter")
	}
}

func TestMiddleware_InFlightSurvivesPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery(), Middleware())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	before := testutil.ToFloat64(httpInFlight)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected recovery to answer 500, got %d", w.Code)
	}
	if after := testutil.ToFloat64(httpInFlight); after != before {
		t.Fatalf("in-flight gauge leaked: before=%v after=%v", before, after)
	}
}

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"glucose-advisor/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockGlucoseHandler is a mock implementation of GlucoseRoutes that echoes
// which handler was hit.
type MockGlucoseHandler struct{}

func reply(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"handler": "` + name + `"}`))
	}
}

func (h *MockGlucoseHandler) Index(w http.ResponseWriter, r *http.Request) { reply("index")(w, r) }
func (h *MockGlucoseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	reply("submit")(w, r)
}
func (h *MockGlucoseHandler) PostAdvice(w http.ResponseWriter, r *http.Request) {
	reply("advice")(w, r)
}
func (h *MockGlucoseHandler) GetHbA1c(w http.ResponseWriter, r *http.Request) {
	reply("hba1c")(w, r)
}
func (h *MockGlucoseHandler) GetReadings(w http.ResponseWriter, r *http.Request) {
	reply("readings")(w, r)
}
func (h *MockGlucoseHandler) DeleteReadings(w http.ResponseWriter, r *http.Request) {
	reply("delete-readings")(w, r)
}
func (h *MockGlucoseHandler) GetReadingsChart(w http.ResponseWriter, r *http.Request) {
	reply("chart")(w, r)
}
func (h *MockGlucoseHandler) GetRandomFact(w http.ResponseWriter, r *http.Request) {
	reply("fact")(w, r)
}
func (h *MockGlucoseHandler) Ping(w http.ResponseWriter, r *http.Request) { reply("ping")(w, r) }

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	router := mux.NewRouter()
	appRouter := NewRouter(&MockGlucoseHandler{}, metrics.NewMetrics(), router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{"Index", "GET", "/", http.StatusOK, `{"handler": "index"}`},
		{"Submit", "POST", "/", http.StatusOK, `{"handler": "submit"}`},
		{"Advice", "POST", "/v1/advice", http.StatusOK, `{"handler": "advice"}`},
		{"HbA1c", "GET", "/v1/hba1c?avg=120", http.StatusOK, `{"handler": "hba1c"}`},
		{"Readings", "GET", "/v1/readings", http.StatusOK, `{"handler": "readings"}`},
		{"Delete Readings", "DELETE", "/v1/readings", http.StatusOK, `{"handler": "delete-readings"}`},
		{"Chart", "GET", "/v1/readings/chart", http.StatusOK, `{"handler": "chart"}`},
		{"Fact", "GET", "/v1/facts/random", http.StatusOK, `{"handler": "fact"}`},
		{"Ping Route", "GET", "/ping", http.StatusOK, `{"handler": "ping"}`},
		{"Wrong Method", "GET", "/v1/advice", http.StatusMethodNotAllowed, ""},
		{"Invalid Route", "GET", "/invalid", http.StatusNotFound, ""},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	m := metrics.NewMetrics()
	router := mux.NewRouter()
	NewRouter(&MockGlucoseHandler{}, m, router).RegisterRoutes()

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/ping", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/ping", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/ping", "200")))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `http_requests_total{code="200",route="/ping"} 2`))
}

func TestRouter_MetricsSkipUnmatchedRequests(t *testing.T) {
	m := metrics.NewMetrics()
	router := mux.NewRouter()
	NewRouter(&MockGlucoseHandler{}, m, router).RegisterRoutes()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/invalid", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/v1/advice", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	assert.Equal(t, 0, testutil.CollectAndCount(m.RequestsTotal))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/ping", nil))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestsTotal))
}

func TestGlucoseHttpServer_RunStopsOnCancel(t *testing.T) {
	router := mux.NewRouter()
	srv := NewGlucoseHttpServer(NewRouter(&MockGlucoseHandler{}, metrics.NewMetrics(), router), router, "0", time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

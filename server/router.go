package server

import (
	"net/http"

	"glucose-advisor/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// GlucoseRoutes is the set of handlers the router serves.
type GlucoseRoutes interface {
	Index(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	PostAdvice(w http.ResponseWriter, r *http.Request)
	GetHbA1c(w http.ResponseWriter, r *http.Request)
	GetReadings(w http.ResponseWriter, r *http.Request)
	DeleteReadings(w http.ResponseWriter, r *http.Request)
	GetReadingsChart(w http.ResponseWriter, r *http.Request)
	GetRandomFact(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	glucoseHandler GlucoseRoutes
	metrics        *metrics.Metrics
	router         *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	glucoseHandler GlucoseRoutes,
	m *metrics.Metrics,
	router *mux.Router) *Router {
	return &Router{
		glucoseHandler: glucoseHandler,
		metrics:        m,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(requestMetricsMiddleware(r.metrics))

	// form page
	r.router.HandleFunc("/", r.glucoseHandler.Index).Methods("GET")
	r.router.HandleFunc("/", r.glucoseHandler.Submit).Methods("POST")

	// expects {"glucose": float, "context": "Fasting"|"Postprandial (after meal)"}
	r.router.HandleFunc("/v1/advice", r.glucoseHandler.PostAdvice).Methods("POST")
	// expects ?avg={average glucose(float)}
	r.router.HandleFunc("/v1/hba1c", r.glucoseHandler.GetHbA1c).Methods("GET")

	r.router.HandleFunc("/v1/readings", r.glucoseHandler.GetReadings).Methods("GET")
	r.router.HandleFunc("/v1/readings", r.glucoseHandler.DeleteReadings).Methods("DELETE")
	r.router.HandleFunc("/v1/readings/chart", r.glucoseHandler.GetReadingsChart).Methods("GET")
	r.router.HandleFunc("/v1/facts/random", r.glucoseHandler.GetRandomFact).Methods("GET")

	r.router.HandleFunc("/ping", r.glucoseHandler.Ping).Methods("GET")
	r.router.Handle("/metrics", promhttp.HandlerFor(r.metrics.Registry, promhttp.HandlerOpts{})).Methods("GET")
}

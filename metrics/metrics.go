package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	Registry      *prometheus.Registry
	AdviceTotal   *prometheus.CounterVec
	HbA1cTotal    *prometheus.CounterVec
	RejectedTotal *prometheus.CounterVec
	RequestsTotal *prometheus.CounterVec
}

// NewMetrics registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		AdviceTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "glucose_advice_total",
			Help: "Glucose readings classified, by measurement context and band.",
		}, []string{"context", "band"}),
		HbA1cTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hba1c_estimates_total",
			Help: "HbA1c estimates computed, by severity.",
		}, []string{"severity"}),
		RejectedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "glucose_inputs_rejected_total",
			Help: "Inputs rejected by validation, by field.",
		}, []string{"field"}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests served, by route and status code.",
		}, []string{"route", "code"}),
	}
	reg.MustRegister(m.AdviceTotal, m.HbA1cTotal, m.RejectedTotal, m.RequestsTotal)
	return m
}

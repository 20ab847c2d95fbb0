package server

import (
	"net/http"
	"strconv"

	"glucose-advisor/metrics"

	"github.com/gorilla/mux"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// requestMetricsMiddleware counts requests by route template and status.
// mux runs middleware only for matched routes, so 404 and 405 responses are
// not counted.
func requestMetricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			route, err := mux.CurrentRoute(r).GetPathTemplate()
			if err != nil {
				return
			}
			m.RequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		})
	}
}

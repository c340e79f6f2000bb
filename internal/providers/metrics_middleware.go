package providers

import (
	"net/http"
	"time"
)

// endpointUnmatched labels requests for paths no route claims, so probe
// traffic collapses into one metric series instead of one per path.
const endpointUnmatched = "unmatched"

// statusWriter records the status the handler commits. A first Write
// without WriteHeader commits the implicit 200.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.status = http.StatusOK
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// MetricsMiddleware counts requests and observes their duration, labeled
// by the registered route the path resolved to.
func MetricsMiddleware(metrics MetricsProviderInterface, router RouterProviderInterface, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		endpoint, known := router.Pattern(r.URL.Path)
		if !known {
			endpoint = endpointUnmatched
		}
		metrics.IncRequestsTotal(endpoint, sw.status)
		metrics.ObserveRequestDuration(endpoint, time.Since(start))
	})
}

// internal/server/middleware.go
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"activity-signups/internal/common/logger"
	"activity-signups/internal/common/metrics"
	"activity-signups/internal/common/observability"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps a route with request-ID tagging, access logging, and
// request metrics. The route label is the registration pattern, keeping
// metric cardinality independent of path parameters.
func instrument(route string, next http.HandlerFunc, log logger.Logger, obs *observability.Observability) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)

		elapsed := time.Since(start)
		log.Info("request handled", map[string]interface{}{
			"requestId": requestID,
			"method":    r.Method,
			"path":      r.URL.Path,
			"status":    rec.status,
			"elapsedMs": elapsed.Milliseconds(),
		})

		metrics.RequestDuration.
			WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).
			Observe(elapsed.Seconds())
		if obs != nil {
			obs.RecordRequest(r.Context(), route, rec.status)
			obs.RecordRequestDuration(r.Context(), elapsed, route)
		}
	}
}

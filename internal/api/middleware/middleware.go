// Package middleware holds the router-level wrappers: correlation-ID
// propagation and HTTP request metrics.
package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/correlation"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/metrics"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/tooldiag"
)

// CorrelationHeader carries the request correlation ID in and out.
const CorrelationHeader = "X-Correlation-ID"

// Correlation attaches a correlation ID to every request context. An
// incoming X-Correlation-ID is honored so chat-layer retries stay
// traceable end to end; otherwise a fresh ID is minted.
func Correlation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		corrID := r.Header.Get(CorrelationHeader)
		if corrID == "" {
			corrID = correlation.New()
		}

		w.Header().Set(CorrelationHeader, corrID)
		next.ServeHTTP(w, r.WithContext(correlation.With(r.Context(), corrID)))
	})
}

// statusRecorder captures the response code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Metrics records request count and latency per method and route.
func Metrics(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			m.ObserveHTTPRequest(r.Method, route, strconv.Itoa(rec.status), time.Since(start))
		})
	}
}

// bodyRecorder buffers a handler's response so it can be re-emitted
// inside the diagnostics envelope.
type bodyRecorder struct {
	header http.Header
	status int
	buf    bytes.Buffer
}

func (r *bodyRecorder) Header() http.Header         { return r.header }
func (r *bodyRecorder) WriteHeader(status int)      { r.status = status }
func (r *bodyRecorder) Write(b []byte) (int, error) { return r.buf.Write(b) }

// ToolDiag wraps a chat-facing operation: it records the invocation in
// the diagnostics registry and re-emits the handler's JSON payload
// inside the standard tool envelope (tool, status, correlation id,
// timing). A response of 500 or above counts as a failed tool call;
// client errors do not, the tool itself worked.
func ToolDiag(registry *tooldiag.Registry, tool string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		done := registry.Track(tool)
		rec := &bodyRecorder{header: make(http.Header), status: http.StatusOK}

		next(rec, r)

		var httpErr error
		if rec.status >= http.StatusBadRequest {
			httpErr = fmt.Errorf("http %d", rec.status)
		}
		if rec.status >= http.StatusInternalServerError {
			done(httpErr)
		} else {
			done(nil)
		}

		env := tooldiag.Normalize(tool, correlation.FromContext(r.Context()), httpErr,
			time.Since(start), json.RawMessage(rec.buf.Bytes()))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(rec.status)
		_ = json.NewEncoder(w).Encode(env)
	}
}

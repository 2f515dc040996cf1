package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/correlation"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/tooldiag"
)

func TestCorrelationMintsAndEchoes(t *testing.T) {
	var seen string
	h := Correlation(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = correlation.FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(CorrelationHeader))
}

func TestCorrelationHonorsIncomingHeader(t *testing.T) {
	var seen string
	h := Correlation(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = correlation.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CorrelationHeader, "corr-retry-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "corr-retry-1", seen)
	assert.Equal(t, "corr-retry-1", rec.Header().Get(CorrelationHeader))
}

func TestToolDiagWrapsResponseInEnvelope(t *testing.T) {
	registry := tooldiag.NewRegistry(nil)
	h := ToolDiag(registry, "get_capacity", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"score":50}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/capacity", nil)
	req = req.WithContext(correlation.With(req.Context(), "corr-1"))
	rec := httptest.NewRecorder()
	h(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var env tooldiag.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "get_capacity", env.Tool)
	assert.Equal(t, "ok", env.Status)
	assert.Equal(t, "corr-1", env.CorrelationID)
	assert.JSONEq(t, `{"score":50}`, string(env.Data))

	snap := registry.Snapshot(0)
	assert.Equal(t, int64(1), snap.TotalCalls)
	assert.Equal(t, 1.0, snap.OverallSuccess)
}

func TestToolDiagCountsServerErrorsAsFailures(t *testing.T) {
	registry := tooldiag.NewRegistry(nil)
	h := ToolDiag(registry, "book_service_call", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"upstream"}`))
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var env tooldiag.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "error", env.Status)

	snap := registry.Snapshot(0)
	require.Len(t, snap.Tools, 1)
	assert.Equal(t, int64(1), snap.Tools[0].Failures)
}

func TestToolDiagClientErrorIsNotAToolFailure(t *testing.T) {
	registry := tooldiag.NewRegistry(nil)
	h := ToolDiag(registry, "lookup_customer", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"no match"}`))
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/api/v1/customers/lookup", nil))

	var env tooldiag.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "error", env.Status, "the caller still sees an error status")

	snap := registry.Snapshot(0)
	require.Len(t, snap.Tools, 1)
	assert.Zero(t, snap.Tools[0].Failures, "a 4xx means the tool worked and the input didn't")
}

package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/vouch/pkg/httpx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRequestMetricsInstrument(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := httpx.NewRequestMetrics("vouch", reg)

	h := m.Instrument("invites.create")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	for range 3 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/invites", nil))
	}

	require.Equal(t, 1, testutil.CollectAndCount(reg, "vouch_http_requests_total"))
	require.Equal(t, 1, testutil.CollectAndCount(reg, "vouch_http_request_duration_seconds"))
}

func TestNilRequestMetrics(t *testing.T) {
	var m *httpx.RequestMetrics

	rec := httptest.NewRecorder()
	m.Instrument("livez")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

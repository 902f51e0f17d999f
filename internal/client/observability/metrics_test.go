package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripper_CountsRequests(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &http.Client{Transport: m.RoundTripper(nil)}

	for _, path := range []string{"/ok", "/ok", "/missing"} {
		resp, err := client.Get(server.URL + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("200", "get")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("404", "get")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestHandler_ExposesFavoritesGauge(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)

	m.FavoritesGauge().Set(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "shop_favorites_total 3"))
}

func TestNewMetricsWith_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewMetricsWith(reg, reg)
	require.NoError(t, err)

	_, err = NewMetricsWith(reg, reg)
	assert.Error(t, err)
}

func TestPush_SendsRequestCounters(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)
	m.requests.WithLabelValues("200", "get").Inc()

	var (
		method string
		path   string
		body   []byte
	)
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer gateway.Close()

	require.NoError(t, m.Push(context.Background(), gateway.URL))

	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/metrics/job/"+PushJob, path)
	assert.Contains(t, string(body), "shop_client_requests_total")
	assert.Contains(t, string(body), "shop_favorites_total")
}

func TestPush_GatewayError(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)

	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer gateway.Close()

	assert.ErrorContains(t, m.Push(context.Background(), gateway.URL), "failed to push metrics")
}

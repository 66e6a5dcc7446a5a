package templatesvc

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminHealth(t *testing.T) {
	var ready atomic.Bool
	reg := prometheus.NewRegistry()
	a := NewAdmin(":0", zerolog.Nop(), reg, NewMetrics(reg), ready.Load)

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	ready.Store(true)
	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	a := NewAdmin(":0", zerolog.Nop(), reg, m, func() bool { return true })

	// pprof goes through the measuring middleware
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, testutil.CollectAndCount(m.http))

	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "templatesvc_lifecycle_state")
	assert.Contains(t, body, "templatesvc_admin_http_request_duration_seconds")
	assert.Contains(t, body, "go_goroutines")
}

func TestAdminMetricsBoundedPaths(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	a := NewAdmin(":0", zerolog.Nop(), reg, m, func() bool { return true })

	for i := range 50 {
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/junk/"+strconv.Itoa(i), nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}
	for _, p := range []string{"/debug/pprof/", "/debug/pprof/cmdline"} {
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
	}

	assert.Equal(t, 3, testutil.CollectAndCount(m.http))
	assert.Equal(t, uint64(50), histogramCount(t, m, "other"))
	assert.Equal(t, uint64(1), histogramCount(t, m, "/debug/pprof/"))
}

func histogramCount(t *testing.T, m *Metrics, route string) uint64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, m.http.WithLabelValues(route).(prometheus.Histogram).Write(&out))
	return out.GetHistogram().GetSampleCount()
}

func TestAdminRun(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	reg := prometheus.NewRegistry()
	a := NewAdmin(addr, zerolog.Nop(), reg, NewMetrics(reg), func() bool { return true })

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		res, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		defer res.Body.Close()
		_, _ = io.Copy(io.Discard, res.Body)
		return res.StatusCode == http.StatusOK
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("admin server did not shut down")
	}
}

func TestAdminRunBindError(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	reg := prometheus.NewRegistry()
	a := NewAdmin(occupied.Addr().String(), zerolog.Nop(), reg, NewMetrics(reg), func() bool { return true })
	var be *BindError
	require.ErrorAs(t, a.Run(context.Background()), &be)
}

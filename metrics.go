package templatesvc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const metricsNamespace = "templatesvc"

// Metrics are the prometheus collectors shared by the server components.
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	inflight prometheus.Gauge
	state    prometheus.Gauge
	http     *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors with reg.
// Go runtime and process collectors are registered too.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "grpc_requests_total",
			Help:      "grpc calls handled, by method and status code",
		}, []string{"method", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "grpc_request_duration_seconds",
			Help:      "grpc call serve latency",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		}, []string{"method"}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "grpc_inflight_requests",
			Help:      "grpc calls currently executing",
		}),
		state: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "lifecycle_state",
			Help:      "server lifecycle state: 0 created, 1 starting, 2 serving, 3 stopping, 4 stopped",
		}),
		http: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "admin_http_request_duration_seconds",
			Help:      "admin http request serve latency",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1},
		}, []string{"path"}),
	}
	reg.MustRegister(
		m.requests, m.latency, m.inflight, m.state, m.http,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) setState(s State) {
	if m == nil {
		return
	}
	m.state.Set(float64(s))
}

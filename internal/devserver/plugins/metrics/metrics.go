// Package metrics is the dev server's Prometheus plugin. It counts and times
// every request passing through the dev server and exposes the registry at
// /__metrics.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/threadboard/internal/devconfig"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	Name = "metrics"

	Path = "/__metrics"

	namespace = "devserver"
)

// Plugin records request metrics. It implements devserver.Middleware and
// devserver.RouteRegistrar.
type Plugin struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// Factory returns a factory for a fresh Plugin.
func Factory() devconfig.PluginFactory {
	return func() (devconfig.Plugin, error) {
		return New()
	}
}

// New creates the plugin with its own registry, so several instances never
// collide on metric names.
func New() (*Plugin, error) {
	p := &Plugin{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests served by the dev server.",
			},
			[]string{"code", "method"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
	}

	for _, c := range []prometheus.Collector{
		p.requests,
		p.duration,
		p.inFlight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := p.registry.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register collector: %w", err)
		}
	}

	return p, nil
}

func (p *Plugin) Name() string { return Name }

func (p *Plugin) Wrap(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerInFlight(p.inFlight,
		promhttp.InstrumentHandlerDuration(p.duration,
			promhttp.InstrumentHandlerCounter(p.requests, next),
		),
	)
}

func (p *Plugin) RegisterRoutes(r chi.Router) error {
	r.Handle(Path, promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{
		Registry:          p.registry,
		EnableOpenMetrics: true,
	}))
	return nil
}

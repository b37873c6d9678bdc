// Package metrics provides a Prometheus implementation of port.Metrics.
//
// Collectors are created lazily the first time a metric name is used, with
// label names taken from the tag keys of that first call.
package metrics

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultBuckets suit sub-millisecond calculations up to slow HTTP requests, in seconds.
var DefaultBuckets = []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}

// Prometheus records metrics into its own registry.
type Prometheus struct {
	namespace string
	registry  *prometheus.Registry

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	histograms map[string]*prometheus.HistogramVec
}

// NewPrometheus creates a Prometheus recorder with Go runtime and process collectors registered.
//
// Parameters:
//   - namespace: prefix for every metric name (e.g., "resin_calc")
//
// Returns:
//   - *Prometheus: the recorder
func NewPrometheus(namespace string) *Prometheus {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Prometheus{
		namespace:  namespace,
		registry:   reg,
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
		histograms: make(map[string]*prometheus.HistogramVec),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler returns the HTTP handler serving the registry in exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Counter implements port.Metrics.
func (p *Prometheus) Counter(name string, value float64, tags map[string]string) {
	if value < 0 {
		return
	}
	p.mu.Lock()
	vec, ok := p.counters[name]
	if !ok {
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      name,
			Help:      "Counter " + name,
		}, labelNames(tags))
		if !p.register(vec) {
			p.mu.Unlock()
			return
		}
		p.counters[name] = vec
	}
	p.mu.Unlock()

	if c, err := vec.GetMetricWith(tags); err == nil {
		c.Add(value)
	}
}

// Gauge implements port.Metrics.
func (p *Prometheus) Gauge(name string, value float64, tags map[string]string) {
	p.mu.Lock()
	vec, ok := p.gauges[name]
	if !ok {
		vec = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Name:      name,
			Help:      "Gauge " + name,
		}, labelNames(tags))
		if !p.register(vec) {
			p.mu.Unlock()
			return
		}
		p.gauges[name] = vec
	}
	p.mu.Unlock()

	if g, err := vec.GetMetricWith(tags); err == nil {
		g.Set(value)
	}
}

// Histogram implements port.Metrics.
func (p *Prometheus) Histogram(name string, value float64, tags map[string]string) {
	p.observe(name, value, tags, DefaultBuckets)
}

// Timing implements port.Metrics. Durations are recorded in seconds
// under "<name>_seconds".
func (p *Prometheus) Timing(name string, duration time.Duration, tags map[string]string) {
	p.observe(name+"_seconds", duration.Seconds(), tags, DefaultBuckets)
}

func (p *Prometheus) observe(name string, value float64, tags map[string]string, buckets []float64) {
	p.mu.Lock()
	vec, ok := p.histograms[name]
	if !ok {
		vec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Name:      name,
			Help:      "Histogram " + name,
			Buckets:   buckets,
		}, labelNames(tags))
		if !p.register(vec) {
			p.mu.Unlock()
			return
		}
		p.histograms[name] = vec
	}
	p.mu.Unlock()

	if h, err := vec.GetMetricWith(tags); err == nil {
		h.Observe(value)
	}
}

// register must be called with mu held. It reports false when the name
// clashes with an existing collector of another type.
func (p *Prometheus) register(c prometheus.Collector) bool {
	return p.registry.Register(c) == nil
}

func labelNames(tags map[string]string) []string {
	names := make([]string, 0, len(tags))
	for k := range tags {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

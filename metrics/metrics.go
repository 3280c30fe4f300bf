// Package metrics instruments the plan provider with prometheus collectors.
package metrics

import (
	"fmt"
	"time"

	"github.com/dimitarvdimitrov/planwatch/config"
	"github.com/dimitarvdimitrov/planwatch/plan"
	"github.com/dimitarvdimitrov/planwatch/tmaster"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "planwatch"

	resultSuccess = "success"
)

type Config struct {
	// ExportInterval is how often the service pulls the plan to refresh the
	// component gauges.
	ExportInterval config.Duration `toml:"export_interval"`
}

func (c *Config) Normalize() {
	if c.ExportInterval.Duration == 0 {
		c.ExportInterval.Duration = time.Minute
	}
}

func (c Config) Validate() error {
	if c.ExportInterval.Duration <= 0 {
		return fmt.Errorf("metrics: export_interval must be positive")
	}
	return nil
}

// Provider collects the fetch outcomes of one topology's provider.
type Provider struct {
	fetches      *prometheus.CounterVec
	fetchLatency prometheus.Summary
	staleServed  prometheus.Counter
	components   *prometheus.GaugeVec
	lastSuccess  prometheus.Gauge
}

func NewProvider(reg prometheus.Registerer, topology string) (*Provider, error) {
	labels := prometheus.Labels{"topology": topology}
	m := &Provider{
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "provider",
				Name:        "fetches_total",
				Help:        "Physical plan fetches by result: success, location, transport, decode or unknown.",
				ConstLabels: labels,
			},
			[]string{"result"},
		),
		fetchLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Namespace:   namespace,
				Subsystem:   "provider",
				Name:        "fetch_duration_seconds",
				Help:        "Time spent fetching the physical plan, successful or not.",
				ConstLabels: labels,
			},
		),
		staleServed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "provider",
				Name:        "stale_served_total",
				Help:        "Times a cached physical plan was served because a fresh fetch failed.",
				ConstLabels: labels,
			},
		),
		components: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Subsystem:   "plan",
				Name:        "components",
				Help:        "Number of components in the last served physical plan by role.",
				ConstLabels: labels,
			},
			[]string{"role"},
		),
		lastSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Subsystem:   "provider",
				Name:        "last_success_timestamp_seconds",
				Help:        "Unix time of the last successful fetch.",
				ConstLabels: labels,
			},
		),
	}

	for _, c := range []prometheus.Collector{m.fetches, m.fetchLatency, m.staleServed, m.components, m.lastSuccess} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Provider) ObserveFetch(took time.Duration, err error) {
	m.fetchLatency.Observe(took.Seconds())
	if err != nil {
		m.fetches.WithLabelValues(tmaster.Kind(err)).Inc()
		return
	}
	m.fetches.WithLabelValues(resultSuccess).Inc()
	m.lastSuccess.Set(float64(time.Now().Unix()))
}

func (m *Provider) ObserveStale() {
	m.staleServed.Inc()
}

// ObserveSnapshot updates the component gauges from a served plan.
func (m *Provider) ObserveSnapshot(s *plan.Snapshot) {
	m.components.WithLabelValues("spouts").Set(float64(len(s.SpoutNames())))
	m.components.WithLabelValues("bolts").Set(float64(len(s.BoltNames())))
}

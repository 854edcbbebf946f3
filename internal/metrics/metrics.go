// Package metrics exports tooltip lifecycle counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vango-dev/tooltips/pkg/definition"
	"github.com/vango-dev/tooltips/pkg/loader"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "tooltips").
	Namespace string

	// ConstLabels are added to every metric.
	ConstLabels prometheus.Labels

	// Registry is where the collectors are registered.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Collector counts definitions, registrations and visibility changes. It
// implements tooltip.Observer and loader.Stats.
type Collector struct {
	definitions   *prometheus.CounterVec
	registrations *prometheus.CounterVec
	removals      prometheus.Counter
	transitions   *prometheus.CounterVec
	registered    prometheus.Gauge
	visible       prometheus.Gauge
}

// New creates the collectors and registers them with cfg.Registry. It
// panics if they are already registered there, like promauto does.
func New(cfg Config) *Collector {
	if cfg.Namespace == "" {
		cfg.Namespace = "tooltips"
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(cfg.Registry)

	return &Collector{
		definitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "definitions_total",
			Help:        "Definition blocks processed, by source and outcome",
			ConstLabels: cfg.ConstLabels,
		}, []string{"source", "outcome"}),

		registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "registrations_total",
			Help:        "Tooltips registered, by trigger",
			ConstLabels: cfg.ConstLabels,
		}, []string{"trigger"}),

		removals: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "removals_total",
			Help:        "Tooltips removed",
			ConstLabels: cfg.ConstLabels,
		}),

		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Name:        "transitions_total",
			Help:        "Visibility changes, by direction",
			ConstLabels: cfg.ConstLabels,
		}, []string{"to"}),

		registered: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Name:        "registered",
			Help:        "Tooltips currently registered",
			ConstLabels: cfg.ConstLabels,
		}),

		visible: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Name:        "visible",
			Help:        "Tooltips currently visible",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

// Loaded implements loader.Stats.
func (c *Collector) Loaded(source string, outcome loader.Outcome) {
	c.definitions.WithLabelValues(source, string(outcome)).Inc()
}

// Registered implements tooltip.Observer.
func (c *Collector) Registered(_ string, trigger definition.Trigger) {
	c.registrations.WithLabelValues(string(trigger)).Inc()
	c.registered.Inc()
}

// Removed implements tooltip.Observer.
func (c *Collector) Removed(string) {
	c.removals.Inc()
	c.registered.Dec()
}

// Shown implements tooltip.Observer.
func (c *Collector) Shown(string) {
	c.transitions.WithLabelValues("visible").Inc()
	c.visible.Inc()
}

// Hidden implements tooltip.Observer.
func (c *Collector) Hidden(string) {
	c.transitions.WithLabelValues("hidden").Inc()
	c.visible.Dec()
}

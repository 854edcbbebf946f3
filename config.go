package tooltips

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vango-dev/tooltips/pkg/loader"
	"github.com/vango-dev/tooltips/pkg/tooltip"
	"go.opentelemetry.io/otel/trace"
)

// DefaultRootID is the id of the element that parents every tooltip.
const DefaultRootID = "shiny-tooltips-root"

// Config configures a System.
type Config struct {
	// RootID is the id of the root container.
	// Default: "shiny-tooltips-root".
	RootID string

	// DefinitionClass marks definition blocks.
	// Default: "shiny-tooltip-definition".
	DefinitionClass string

	// ClassPrefix prefixes every class set on tooltip elements.
	// Default: "shiny-tooltip".
	ClassPrefix string

	// GracePeriod is how long an interactive hover tooltip stays open after
	// the pointer leaves its target, giving the pointer time to reach it.
	// Default: 100ms.
	GracePeriod time.Duration

	// Logger is the structured logger for the system.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics is where lifecycle collectors are registered.
	// If nil, no metrics are collected.
	Metrics prometheus.Registerer

	// Tracer wraps definition scans in spans.
	// If nil, the global OpenTelemetry provider is used.
	Tracer trace.Tracer
}

// DefaultConfig returns a Config with every default filled in.
func DefaultConfig() Config {
	return Config{
		RootID:          DefaultRootID,
		DefinitionClass: loader.DefaultClass,
		ClassPrefix:     tooltip.DefaultClassPrefix,
		GracePeriod:     tooltip.DefaultGracePeriod,
		Logger:          slog.Default(),
	}
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.RootID == "" {
		c.RootID = d.RootID
	}
	if c.DefinitionClass == "" {
		c.DefinitionClass = d.DefinitionClass
	}
	if c.ClassPrefix == "" {
		c.ClassPrefix = d.ClassPrefix
	}
	if c.GracePeriod <= 0 {
		c.GracePeriod = d.GracePeriod
	}
	if c.Logger == nil {
		c.Logger = d.Logger
	}
}

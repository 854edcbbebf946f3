package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vango-dev/tooltips/pkg/definition"
	"github.com/vango-dev/tooltips/pkg/loader"
)

// value returns the sum of every sample of the named family whose labels
// include want.
func value(t *testing.T, reg *prometheus.Registry, name string, want map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	var sum float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metrics:
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			for k, v := range want {
				if labels[k] != v {
					continue metrics
				}
			}
			switch {
			case m.GetCounter() != nil:
				sum += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				sum += m.GetGauge().GetValue()
			}
		}
	}
	return sum
}

func TestCollectorLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(Config{Registry: reg})

	c.Loaded("initial", loader.Registered)
	c.Loaded("initial", loader.Malformed)
	c.Loaded("mutation", loader.Registered)
	c.Loaded("mutation", loader.Duplicate)
	c.Registered("a", definition.Hover)
	c.Registered("b", definition.Click)
	c.Shown("a")
	c.Shown("b")
	c.Hidden("a")
	c.Removed("b")

	tests := []struct {
		name   string
		labels map[string]string
		want   float64
	}{
		{"tooltips_definitions_total", map[string]string{"outcome": "registered"}, 2},
		{"tooltips_definitions_total", map[string]string{"source": "initial", "outcome": "malformed"}, 1},
		{"tooltips_definitions_total", map[string]string{"outcome": "duplicate"}, 1},
		{"tooltips_registrations_total", map[string]string{"trigger": "click"}, 1},
		{"tooltips_registrations_total", nil, 2},
		{"tooltips_removals_total", nil, 1},
		{"tooltips_transitions_total", map[string]string{"to": "visible"}, 2},
		{"tooltips_transitions_total", map[string]string{"to": "hidden"}, 1},
		{"tooltips_registered", nil, 1},
		{"tooltips_visible", nil, 1},
	}
	for _, tt := range tests {
		if got := value(t, reg, tt.name, tt.labels); got != tt.want {
			t.Errorf("%s%v = %v, want %v", tt.name, tt.labels, got, tt.want)
		}
	}
}

func TestNamespaceAndConstLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(Config{Namespace: "docs", ConstLabels: prometheus.Labels{"page": "index"}, Registry: reg})
	c.Registered("a", definition.Focus)

	if got := value(t, reg, "docs_registrations_total", map[string]string{"page": "index", "trigger": "focus"}); got != 1 {
		t.Errorf("docs_registrations_total = %v, want 1", got)
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(Config{Registry: reg})
	defer func() {
		if recover() == nil {
			t.Error("second New on the same registry should panic")
		}
	}()
	New(Config{Registry: reg})
}

package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// Metrics bundles the meter provider with the private registry its
// Prometheus exporter writes to.
type Metrics struct {
	Provider *sdkmetric.MeterProvider
	Registry *prometheus.Registry
	name     string
}

// InitMetrics initializes an OpenTelemetry meter provider backed by the
// Prometheus exporter. The exporter registers on a fresh registry rather than
// the global one, so several engines can coexist in one process.
func InitMetrics(cfg MetricsConfig) (*Metrics, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
		promexporter.WithoutScopeInfo(),
	)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	return &Metrics{Provider: provider, Registry: registry, name: cfg.ServiceName}, nil
}

// Meter returns the meter scoped to the configured service name.
func (m *Metrics) Meter() metric.Meter {
	return m.Provider.Meter(m.name)
}

// FamilyNames gathers the registry and returns the names of every metric
// family currently exported.
func (m *Metrics) FamilyNames() ([]string, error) {
	families, err := m.Registry.Gather()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	return names, nil
}

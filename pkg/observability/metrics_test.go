package observability

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics_ExportsCounters(t *testing.T) {
	m, err := InitMetrics(MetricsConfig{ServiceName: "loan-engine"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Provider.Shutdown(context.Background()) })

	counter, err := m.Meter().Int64Counter("loanengine.test.calls")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	names, err := m.FamilyNames()
	require.NoError(t, err)

	found := false
	for _, n := range names {
		if strings.HasPrefix(n, "loanengine_test_calls") {
			found = true
		}
	}
	assert.True(t, found, "expected loanengine_test_calls in %v", names)
}

func TestInitMetrics_IndependentRegistries(t *testing.T) {
	a, err := InitMetrics(MetricsConfig{ServiceName: "a"})
	require.NoError(t, err)
	b, err := InitMetrics(MetricsConfig{ServiceName: "b"})
	require.NoError(t, err)

	assert.NotSame(t, a.Registry, b.Registry)
}

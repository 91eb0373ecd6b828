package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFlowMetricsCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewFlowMetrics(reg)

	m.ObserveAvailability("success")
	m.ObserveAvailability("success")
	m.ObserveAvailability("error")
	m.ObserveDashboardLoad(false)
	m.ObserveJobRequest(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.availabilityTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.availabilityTotal.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dashboardTotal.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("multi")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *FlowMetrics
	assert.NotPanics(t, func() {
		m.ObserveAvailability("success")
		m.ObserveDashboardLoad(true)
		m.ObserveTutorialPhase("active")
		m.ObserveJobRequest(1)
	})
}

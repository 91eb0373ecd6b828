package metrics

import "github.com/prometheus/client_golang/prometheus"

// FlowMetrics counts outcomes of the booking, dashboard and tutorial flows.
type FlowMetrics struct {
	availabilityTotal *prometheus.CounterVec
	dashboardTotal    *prometheus.CounterVec
	tutorialTotal     *prometheus.CounterVec
	requestsTotal     *prometheus.CounterVec
}

func NewFlowMetrics(reg prometheus.Registerer) *FlowMetrics {
	m := &FlowMetrics{
		availabilityTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "servineo",
			Subsystem: "booking",
			Name:      "availability_fetch_total",
			Help:      "Slot fetches by classified outcome",
		}, []string{"status"}),
		dashboardTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "servineo",
			Subsystem: "dashboard",
			Name:      "job_loads_total",
			Help:      "Provider job list loads",
		}, []string{"result"}),
		tutorialTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "servineo",
			Subsystem: "tutorial",
			Name:      "transitions_total",
			Help:      "Tutorial phase transitions",
		}, []string{"phase"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "servineo",
			Subsystem: "booking",
			Name:      "job_requests_total",
			Help:      "Job request targets composed",
		}, []string{"slots"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.availabilityTotal, m.dashboardTotal, m.tutorialTotal, m.requestsTotal)
	return m
}

func (m *FlowMetrics) ObserveAvailability(status string) {
	if m == nil {
		return
	}
	m.availabilityTotal.WithLabelValues(status).Inc()
}

func (m *FlowMetrics) ObserveDashboardLoad(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.dashboardTotal.WithLabelValues(result).Inc()
}

func (m *FlowMetrics) ObserveTutorialPhase(phase string) {
	if m == nil {
		return
	}
	m.tutorialTotal.WithLabelValues(phase).Inc()
}

func (m *FlowMetrics) ObserveJobRequest(slotCount int) {
	if m == nil {
		return
	}
	label := "single"
	if slotCount > 1 {
		label = "multi"
	}
	m.requestsTotal.WithLabelValues(label).Inc()
}

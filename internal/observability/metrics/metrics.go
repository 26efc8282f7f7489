package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters for the lead intake and fan-out flows.
type LeadMetrics struct {
	leadsTotal      *prometheus.CounterVec
	deliveriesTotal *prometheus.CounterVec
	chatTotal       *prometheus.CounterVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		leadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brightdoor",
			Subsystem: "leads",
			Name:      "received_total",
			Help:      "Total form submissions by form and outcome",
		}, []string{"form", "status"}),
		deliveriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brightdoor",
			Subsystem: "fanout",
			Name:      "deliveries_total",
			Help:      "Total per-destination delivery attempts",
		}, []string{"destination", "status"}),
		chatTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brightdoor",
			Subsystem: "chat",
			Name:      "messages_total",
			Help:      "Total chat messages handled",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.leadsTotal, m.deliveriesTotal, m.chatTotal)
	return m
}

func (m *LeadMetrics) ObserveLead(form, status string) {
	if m == nil {
		return
	}
	m.leadsTotal.WithLabelValues(form, status).Inc()
}

func (m *LeadMetrics) ObserveDelivery(destination, status string) {
	if m == nil {
		return
	}
	m.deliveriesTotal.WithLabelValues(destination, status).Inc()
}

func (m *LeadMetrics) ObserveChat(status string) {
	if m == nil {
		return
	}
	m.chatTotal.WithLabelValues(status).Inc()
}

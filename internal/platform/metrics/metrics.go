package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "demoshebn"

// Metrics holds the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	MessagesSent        prometheus.Counter
	MessagesFailed      prometheus.Counter
	FeedEvents          *prometheus.CounterVec
	ActiveSubscriptions prometheus.Gauge
	SignUps             *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		MessagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "messages",
			Name:      "sent_total",
			Help:      "Messages inserted.",
		}),
		MessagesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "messages",
			Name:      "failed_total",
			Help:      "Message inserts that returned an error.",
		}),
		FeedEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "events_total",
			Help:      "Change events by kind and direction.",
		}, []string{"kind", "direction"}),
		ActiveSubscriptions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "active_subscriptions",
			Help:      "Realtime subscriptions currently held by chat sessions.",
		}),
		SignUps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signup",
			Name:      "outcomes_total",
			Help:      "Finished sign-up flows by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.MessagesSent,
		m.MessagesFailed,
		m.FeedEvents,
		m.ActiveSubscriptions,
		m.SignUps,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) MessageSent() {
	if m != nil {
		m.MessagesSent.Inc()
	}
}

func (m *Metrics) MessageFailed() {
	if m != nil {
		m.MessagesFailed.Inc()
	}
}

func (m *Metrics) FeedEvent(kind, direction string) {
	if m != nil {
		m.FeedEvents.WithLabelValues(kind, direction).Inc()
	}
}

func (m *Metrics) SubscriptionOpened() {
	if m != nil {
		m.ActiveSubscriptions.Inc()
	}
}

func (m *Metrics) SubscriptionClosed() {
	if m != nil {
		m.ActiveSubscriptions.Dec()
	}
}

func (m *Metrics) SignUpFinished(outcome string) {
	if m != nil {
		m.SignUps.WithLabelValues(outcome).Inc()
	}
}

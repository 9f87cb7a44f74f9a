package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Namespace = "wa_antilink_bot"

var (
	Violations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "violations_total",
		Help:      "Total number of rule violations by rule",
	}, []string{"rule"})

	DeletedMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "deleted_messages_total",
		Help:      "Total number of deleted messages",
	}, []string{"reason"})

	Removals = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "removals_total",
		Help:      "Total number of participant removal attempts by outcome",
	}, []string{"outcome"})

	EnforcementDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "enforcement_duration_seconds",
		Help:      "Duration of enforcement cycles",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})

	ActiveStrikes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "active_strikes",
		Help:      "Number of (group, sender) pairs with a recorded strike",
	})
)

func IncViolation(rule string) {
	Violations.WithLabelValues(rule).Inc()
}

func IncDeletedMessages(reason string) {
	DeletedMessages.WithLabelValues(reason).Inc()
}

func IncRemoval(outcome string) {
	Removals.WithLabelValues(outcome).Inc()
}

func ObserveEnforcement(outcome string, duration float64) {
	EnforcementDuration.WithLabelValues(outcome).Observe(duration)
}

func SetActiveStrikes(count float64) {
	ActiveStrikes.Set(count)
}

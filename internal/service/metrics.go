package service

import (
	"github.com/godilite/mbti-server/internal/mbti"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors for assessment activity. A nil *Metrics is a no-op.
type Metrics struct {
	completed       *prometheus.CounterVec
	answers         prometheus.Counter
	storageFailures prometheus.Counter
	sessionsStarted prometheus.Counter
}

// MustNewMetrics registers the collectors with reg and panics on duplicate registration.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		completed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mbti",
				Name:      "assessments_completed_total",
				Help:      "Completed and persisted assessments by resolved type code.",
			},
			[]string{"type_code"},
		),
		answers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mbti",
			Name:      "answers_submitted_total",
			Help:      "Answers recorded across all sessions, including overwrites.",
		}),
		storageFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mbti",
			Name:      "result_storage_failures_total",
			Help:      "Assessment results that could not be persisted.",
		}),
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mbti",
			Name:      "sessions_started_total",
			Help:      "Assessment sessions started.",
		}),
	}
	reg.MustRegister(m.completed, m.answers, m.storageFailures, m.sessionsStarted)
	return m
}

func (m *Metrics) observeCompleted(code mbti.TypeCode) {
	if m == nil {
		return
	}
	m.completed.WithLabelValues(string(code)).Inc()
}

func (m *Metrics) observeAnswer() {
	if m == nil {
		return
	}
	m.answers.Inc()
}

func (m *Metrics) observeStorageFailure() {
	if m == nil {
		return
	}
	m.storageFailures.Inc()
}

func (m *Metrics) observeSessionStarted() {
	if m == nil {
		return
	}
	m.sessionsStarted.Inc()
}

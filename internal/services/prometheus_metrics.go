package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricMutationCommitted   = "ledger.mutation.committed"
	MetricMutationRejected    = "ledger.mutation.rejected"
	MetricPersistFailed       = "ledger.persist.failed"
	MetricMutationDuration    = "ledger.mutation"
	MetricPersistDuration     = "ledger.persist"
	MetricCircuitBreaker      = "circuit_breaker.state"
	MetricLedgerUsers         = "ledger.users"
	MetricLedgerAccounts      = "ledger.accounts"
	MetricLedgerJournal       = "ledger.journal_entries"
	MetricSessionOpened       = "session.opened"
	MetricSessionClosed       = "session.closed"
	MetricSessionRequest      = "session.request"
	MetricAuthenticationEvent = "authentication_event"
)

type PrometheusMetrics struct {
	mutationsTotal            *prometheus.CounterVec
	mutationDuration          prometheus.Histogram
	persistDuration           prometheus.Histogram
	persistFailuresTotal      prometheus.Counter
	circuitBreakerState       *prometheus.GaugeVec
	ledgerUsers               prometheus.Gauge
	ledgerAccounts            prometheus.Gauge
	ledgerJournalEntries      prometheus.Gauge
	sessionsActive            prometheus.Gauge
	sessionsTotal             *prometheus.CounterVec
	requestsTotal             *prometheus.CounterVec
	authenticationEventsTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors on reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		mutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_mutations_total",
				Help: "Total number of ledger mutations by outcome",
			},
			[]string{"operation", "status"},
		),
		mutationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_mutation_duration_milliseconds",
				Help:    "Time from semaphore acquisition to publish in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		persistDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_persist_duration_milliseconds",
				Help:    "Snapshot write duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		persistFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_persist_failures_total",
				Help: "Total number of failed snapshot writes",
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		ledgerUsers: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_users",
				Help: "Registered users in the committed ledger",
			},
		),
		ledgerAccounts: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_accounts",
				Help: "Open currency accounts in the committed ledger",
			},
		),
		ledgerJournalEntries: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_journal_entries",
				Help: "Records in the transaction journal",
			},
		),
		sessionsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_sessions_active",
				Help: "Currently connected sessions",
			},
		),
		sessionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_sessions_total",
				Help: "Total number of sessions by close reason",
			},
			[]string{"reason"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_requests_total",
				Help: "Total number of session requests",
			},
			[]string{"opcode", "status"},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]

	switch name {
	case MetricMutationCommitted:
		m.mutationsTotal.WithLabelValues(operation, "success").Inc()
	case MetricMutationRejected:
		m.mutationsTotal.WithLabelValues(operation, "rejected_"+tags["reason"]).Inc()
	case MetricPersistFailed:
		m.mutationsTotal.WithLabelValues(operation, "persistence_failure").Inc()
		m.persistFailuresTotal.Inc()
	case MetricSessionOpened:
		m.sessionsActive.Inc()
	case MetricSessionClosed:
		m.sessionsActive.Dec()
		m.sessionsTotal.WithLabelValues(tags["reason"]).Inc()
	case MetricSessionRequest:
		m.requestsTotal.WithLabelValues(tags["opcode"], tags["status"]).Inc()
	case MetricAuthenticationEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricMutationDuration:
		m.mutationDuration.Observe(float64(duration.Milliseconds()))
	case MetricPersistDuration:
		m.persistDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreaker:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case MetricLedgerUsers:
		m.ledgerUsers.Set(value)
	case MetricLedgerAccounts:
		m.ledgerAccounts.Set(value)
	case MetricLedgerJournal:
		m.ledgerJournalEntries.Set(value)
	}
}

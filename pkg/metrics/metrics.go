package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search outcomes
const (
	OutcomeMatched      = "matched"
	OutcomeAlternatives = "alternatives"
	OutcomeNone         = "none"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SearchesTotal        *prometheus.CounterVec
	SearchAlternatives   prometheus.Histogram
	SearchExistingEvents prometheus.Histogram

	IntegrationDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec
}

// New создает метрики и регистрирует их в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		SearchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_options_searches_total",
			Help:        "Booking option searches by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		SearchAlternatives: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "booking_options_alternatives",
			Help:        "Number of alternatives returned by unmatched searches",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 2, 3, 5, 10},
		}),
		SearchExistingEvents: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "booking_options_existing_events",
			Help:        "Number of existing room bookings considered per search",
			ConstLabels: constLabels,
			Buckets:     prometheus.ExponentialBuckets(1, 2, 10),
		}),

		IntegrationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "integration_request_duration_seconds",
			Help:        "Latency of calls to external services",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"integration", "operation", "status"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation", "status"}),
		DBOpenConnections: newDBGauge("db_open_connections", "Number of established connections", constLabels),
		DBInUse:           newDBGauge("db_in_use_connections", "Number of connections currently in use", constLabels),
		DBIdle:            newDBGauge("db_idle_connections", "Number of idle connections", constLabels),
		DBWaitCount:       newDBGauge("db_wait_count", "Total number of connections waited for", constLabels),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SearchesTotal,
		m.SearchAlternatives,
		m.SearchExistingEvents,
		m.IntegrationDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
	)

	return m
}

func newDBGauge(name, help string, constLabels prometheus.Labels) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name:        name,
		Help:        help,
		ConstLabels: constLabels,
	}, []string{"db"})
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveSearch фиксирует результат поиска вариантов бронирования
func (m *Metrics) ObserveSearch(matched bool, alternatives int, existingEvents int) {
	outcome := OutcomeMatched
	if !matched {
		outcome = OutcomeAlternatives
		if alternatives == 0 {
			outcome = OutcomeNone
		}
		m.SearchAlternatives.Observe(float64(alternatives))
	}
	m.SearchesTotal.WithLabelValues(outcome).Inc()
	m.SearchExistingEvents.Observe(float64(existingEvents))
}

// ObserveIntegration фиксирует вызов внешнего сервиса
func (m *Metrics) ObserveIntegration(integration, operation string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.IntegrationDuration.WithLabelValues(integration, operation, status).Observe(duration.Seconds())
}

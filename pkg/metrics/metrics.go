package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   prometheus.Gauge
	DBInUseConnections  prometheus.Gauge
	DBIdleConnections   prometheus.Gauge
	DBWaitCount         prometheus.Gauge
	DBTransactionsTotal *prometheus.CounterVec

	// Бизнес-метрики расписания
	RejectionsTotal        *prometheus.CounterVec
	BookingsCreatedTotal   prometheus.Counter
	BookingsUnassigned     prometheus.Counter
	WorkingTimesSavedTotal *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer регистрирует метрики в переданном реестре (используется в тестах)
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections to the database",
			ConstLabels: labels,
		}),

		DBInUseConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),

		DBIdleConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),

		DBWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),

		DBTransactionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_transactions_total",
			Help:        "Total number of database transactions by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),

		RejectionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "scheduling_rejections_total",
			Help:        "Booking and roster requests rejected by validation, by operation and kind",
			ConstLabels: labels,
		}, []string{"operation", "kind"}),

		BookingsCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of created bookings",
			ConstLabels: labels,
		}),

		BookingsUnassigned: factory.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_unassigned_total",
			Help:        "Bookings that lost their employee after a working time edit",
			ConstLabels: labels,
		}),

		WorkingTimesSavedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "working_times_saved_total",
			Help:        "Total number of working time changes by action",
			ConstLabels: labels,
		}, []string{"action"}),
	}
}

// RecordRejection учитывает отказ валидации; безопасен для nil
func (m *Metrics) RecordRejection(operation, kind string) {
	if m == nil {
		return
	}
	m.RejectionsTotal.WithLabelValues(operation, kind).Inc()
}

// RecordBookingCreated учитывает созданное бронирование; безопасен для nil
func (m *Metrics) RecordBookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreatedTotal.Inc()
}

// RecordBookingsUnassigned учитывает бронирования, потерявшие сотрудника; безопасен для nil
func (m *Metrics) RecordBookingsUnassigned(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.BookingsUnassigned.Add(float64(count))
}

// RecordWorkingTimeSaved учитывает изменение рабочего времени (created/updated/deleted); безопасен для nil
func (m *Metrics) RecordWorkingTimeSaved(action string) {
	if m == nil {
		return
	}
	m.WorkingTimesSavedTotal.WithLabelValues(action).Inc()
}

// Package metrics содержит Prometheus-метрики сервиса
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
	DBQueriesTotal      *prometheus.CounterVec
	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   *prometheus.GaugeVec
	DBInUseConnections  *prometheus.GaugeVec
	DBIdleConnections   *prometheus.GaugeVec
	DBWaitCount         *prometheus.GaugeVec
	DBWaitDurationTotal *prometheus.GaugeVec

	// Бизнес-метрики расписания
	ReservationsCreated *prometheus.CounterVec
	BookingRejections   *prometheus.CounterVec
	ShiftsExpanded      *prometheus.CounterVec
	FreeSlotsReturned   *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в default registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном registry (для тестов - prometheus.NewRegistry())
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitDurationTotal: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_duration_seconds_total",
			Help:        "Total time blocked waiting for a new connection",
			ConstLabels: constLabels,
		}, []string{"db"}),

		ReservationsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Total number of created reservations",
			ConstLabels: constLabels,
		}, []string{"service_id"}),

		BookingRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_rejections_total",
			Help:        "Rejected booking attempts by reason",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		ShiftsExpanded: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "shifts_expanded_total",
			Help:        "Total number of shifts derived from recurrence rules",
			ConstLabels: constLabels,
		}, []string{"rule"}),

		FreeSlotsReturned: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "free_slots_returned",
			Help:        "Number of free slots returned per availability query",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}, []string{}),
	}
}

// IncReservationCreated учитывает созданную бронь
func (m *Metrics) IncReservationCreated(serviceID string) {
	m.ReservationsCreated.WithLabelValues(serviceID).Inc()
}

// IncBookingRejected учитывает отклонённую попытку бронирования
func (m *Metrics) IncBookingRejected(reason string) {
	m.BookingRejections.WithLabelValues(reason).Inc()
}

// AddShiftsExpanded учитывает смены, созданные разворачиванием правила повторения
func (m *Metrics) AddShiftsExpanded(rule string, count int) {
	m.ShiftsExpanded.WithLabelValues(rule).Add(float64(count))
}

// ObserveFreeSlots учитывает размер ответа со свободными слотами
func (m *Metrics) ObserveFreeSlots(count int) {
	m.FreeSlotsReturned.WithLabelValues().Observe(float64(count))
}

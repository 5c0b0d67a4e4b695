// Package api собирает HTTP-маршруты сервиса
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-ShiftService/internal/api/handlers"
	"github.com/m04kA/SMC-ShiftService/internal/api/middleware"
	"github.com/m04kA/SMC-ShiftService/pkg/metrics"
)

// Routes обработчики эндпоинтов
type Routes struct {
	CreateCategory http.HandlerFunc
	ListCategories http.HandlerFunc

	CreateProvider http.HandlerFunc
	ListProviders  http.HandlerFunc
	GetProvider    http.HandlerFunc

	CreateService      http.HandlerFunc
	ListServices       http.HandlerFunc
	GetService         http.HandlerFunc
	ListUpcomingShifts http.HandlerFunc

	CreateShift    http.HandlerFunc
	ListShifts     http.HandlerFunc
	GetShift       http.HandlerFunc
	AttachServices http.HandlerFunc
	GetFreeSlots   http.HandlerFunc

	Archive http.HandlerFunc

	CreateReservation       http.HandlerFunc
	ListReservations        http.HandlerFunc
	ListMyReservations      http.HandlerFunc
	GetReservation          http.HandlerFunc
	UpdateReservationStatus http.HandlerFunc
}

// MetricsOptions настройки HTTP метрик. Nil Collector отключает метрики.
type MetricsOptions struct {
	Collector *metrics.Metrics
	Path      string
	Handler   http.Handler // по умолчанию promhttp.Handler()
}

// NewRouter создает роутер с префиксом /api/v1
func NewRouter(routes Routes, opts MetricsOptions) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if opts.Collector != nil {
		r.Use(middleware.MetricsMiddleware(opts.Collector))

		metricsHandler := opts.Handler
		if metricsHandler == nil {
			metricsHandler = promhttp.Handler()
		}
		r.Handle(opts.Path, metricsHandler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// Справочники
	// ============================================================
	api.HandleFunc("/categories", routes.CreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories", routes.ListCategories).Methods(http.MethodGet)

	api.HandleFunc("/providers", routes.CreateProvider).Methods(http.MethodPost)
	api.HandleFunc("/providers", routes.ListProviders).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId:[0-9]+}", routes.GetProvider).Methods(http.MethodGet)

	api.HandleFunc("/services", routes.CreateService).Methods(http.MethodPost)
	api.HandleFunc("/services", routes.ListServices).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId:[0-9]+}", routes.GetService).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId:[0-9]+}/shifts", routes.ListUpcomingShifts).Methods(http.MethodGet)

	// ============================================================
	// Смены
	// ============================================================
	api.HandleFunc("/shifts", routes.CreateShift).Methods(http.MethodPost)
	api.HandleFunc("/shifts", routes.ListShifts).Methods(http.MethodGet)
	// Архивная проекция только для чтения
	api.HandleFunc("/shifts/archived", handlers.MethodNotAllowed).Methods(http.MethodPost)
	api.HandleFunc("/shifts/{shiftId:[0-9]+}", routes.GetShift).Methods(http.MethodGet)
	api.HandleFunc("/shifts/{shiftId:[0-9]+}/services", routes.AttachServices).Methods(http.MethodPost)
	api.HandleFunc("/shifts/{shiftId:[0-9]+}/free-slots", routes.GetFreeSlots).Methods(http.MethodGet)

	api.HandleFunc("/archive", routes.Archive).Methods(http.MethodPost)

	// ============================================================
	// Брони
	// ============================================================
	api.HandleFunc("/reservations", routes.ListReservations).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId:[0-9]+}/status", routes.UpdateReservationStatus).Methods(http.MethodPatch)

	// Требуют X-User-ID
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/reservations", routes.CreateReservation).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}", routes.GetReservation).Methods(http.MethodGet)
	protected.HandleFunc("/users/me/reservations", routes.ListMyReservations).Methods(http.MethodGet)

	return r
}

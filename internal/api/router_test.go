package api

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ShiftService/pkg/metrics"
)

func stubRoutes() Routes {
	var routes Routes
	v := reflect.ValueOf(&routes).Elem()
	for i := 0; i < v.NumField(); i++ {
		name := v.Type().Field(i).Name
		v.Field(i).Set(reflect.ValueOf(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("X-Route", name)
			w.WriteHeader(http.StatusTeapot)
		})))
	}
	return routes
}

func TestNewRouter(t *testing.T) {
	router := NewRouter(stubRoutes(), MetricsOptions{})

	cases := []struct {
		method string
		path   string
		userID string
		status int
		route  string
	}{
		{http.MethodPost, "/api/v1/shifts", "", http.StatusTeapot, "CreateShift"},
		{http.MethodPost, "/api/v1/shifts/archived", "", http.StatusMethodNotAllowed, ""},
		{http.MethodGet, "/api/v1/shifts/7", "", http.StatusTeapot, "GetShift"},
		{http.MethodGet, "/api/v1/shifts/7/free-slots", "", http.StatusTeapot, "GetFreeSlots"},
		{http.MethodGet, "/api/v1/services/3", "", http.StatusTeapot, "GetService"},
		{http.MethodGet, "/api/v1/services/3/shifts", "", http.StatusTeapot, "ListUpcomingShifts"},
		{http.MethodPost, "/api/v1/reservations", "", http.StatusUnauthorized, ""},
		{http.MethodPost, "/api/v1/reservations", "5", http.StatusTeapot, "CreateReservation"},
		{http.MethodGet, "/api/v1/reservations", "", http.StatusTeapot, "ListReservations"},
		{http.MethodGet, "/api/v1/reservations/9", "", http.StatusUnauthorized, ""},
		{http.MethodGet, "/api/v1/reservations/9", "5", http.StatusTeapot, "GetReservation"},
		{http.MethodGet, "/api/v1/users/me/reservations", "5", http.StatusTeapot, "ListMyReservations"},
		{http.MethodPatch, "/api/v1/reservations/9/status", "", http.StatusTeapot, "UpdateReservationStatus"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			r := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.userID != "" {
				r.Header.Set("X-User-ID", tc.userID)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.route, w.Header().Get("X-Route"))
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestNewRouter_MetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry("test", reg)
	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router := NewRouter(stubRoutes(), MetricsOptions{Collector: m, Path: "/metrics", Handler: metricsHandler})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSchedulingCounters(t *testing.T) {
	m := NewWithRegistry("test-service", prometheus.NewRegistry())

	m.IncReservationCreated("7")
	m.IncReservationCreated("7")
	m.IncBookingRejected("slot_unavailable")
	m.AddShiftsExpanded("weekly", 3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReservationsCreated.WithLabelValues("7")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingRejections.WithLabelValues("slot_unavailable")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ShiftsExpanded.WithLabelValues("weekly")))
}

func TestNewWithRegistry_IsolatedRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewWithRegistry("a", prometheus.NewRegistry())
		NewWithRegistry("a", prometheus.NewRegistry())
	})
}

package create_reservation

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/internal/usecase/fakes"
	"github.com/m04kA/SMC-ShiftService/pkg/logger"
	"github.com/m04kA/SMC-ShiftService/pkg/metrics"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
}

type env struct {
	uc        *UseCase
	store     *fakes.Store
	tx        *fakes.TxManager
	publisher *fakes.Publisher
	metrics   *metrics.Metrics
	service   int64
	shift     int64
}

func setup(t *testing.T) env {
	t.Helper()
	store := fakes.NewStore()
	tx := fakes.NewTxManager(store)
	publisher := &fakes.Publisher{}
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())

	uc := NewUseCase(
		fakes.ShiftRepository{Store: store},
		fakes.ServiceRepository{Store: store},
		fakes.ReservationRepository{Store: store},
		tx,
		publisher,
		m,
		logger.NewNop(),
	)

	service := store.AddService(domain.Service{DurationMinutes: 15})
	shift := store.AddShift(domain.Shift{StartAt: at(8, 0), EndAt: at(10, 0), IsAvailable: true, ServiceIDs: []int64{service}})

	return env{uc: uc, store: store, tx: tx, publisher: publisher, metrics: m, service: service, shift: shift}
}

func (e env) book(start time.Time) (*Response, error) {
	return e.uc.Execute(context.Background(), &Request{RequesterID: 42, ShiftID: e.shift, ServiceID: e.service, StartAt: start})
}

func TestExecute_BooksFreeSlot(t *testing.T) {
	e := setup(t)

	resp, err := e.book(at(9, 0))
	require.NoError(t, err)

	r := resp.Reservation
	assert.Equal(t, domain.StatusReview, r.Status)
	assert.False(t, r.IsArchived)
	assert.Regexp(t, regexp.MustCompile(`^[a-zA-Z0-9]{9}$`), r.Code)

	require.Len(t, e.publisher.Reservations, 1)
	assert.Equal(t, r.ID, e.publisher.Reservations[0].ReservationID)
	assert.Equal(t, 1.0, testutil.ToFloat64(e.metrics.ReservationsCreated.WithLabelValues("1")))
}

func TestExecute_SlotUnavailable(t *testing.T) {
	e := setup(t)

	_, err := e.book(at(9, 0))
	require.NoError(t, err)

	cases := map[string]time.Time{
		"same start":           at(9, 0),
		"overlapping start":    at(8, 50),
		"off the slot grid":    at(8, 5),
		"before shift":         at(7, 45),
		"running past the end": at(9, 50),
		"at shift end":         at(10, 0),
	}
	for name, start := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := e.book(start)
			assert.ErrorIs(t, err, ErrSlotUnavailable)
		})
	}

	assert.Len(t, e.store.Reservations(), 1)
	assert.Equal(t, float64(len(cases)), testutil.ToFloat64(e.metrics.BookingRejections.WithLabelValues(reasonSlotUnavailable)))
}

func TestExecute_RejectedReservationFreesSlot(t *testing.T) {
	e := setup(t)
	e.store.AddReservation(domain.Reservation{ShiftID: e.shift, ServiceID: e.service, StartAt: at(9, 0), Status: domain.StatusNotAccepted, Code: "rejected0"})

	_, err := e.book(at(9, 0))
	assert.NoError(t, err)
}

func TestExecute_ConcurrentBookingsOfSameSlot(t *testing.T) {
	e := setup(t)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		rejected  int
	)

	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.book(at(8, 30))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrSlotUnavailable), errors.Is(err, ErrBookingConflict):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, rejected)
	assert.Len(t, e.store.Reservations(), 1)
}

func TestExecute_CommitConflict(t *testing.T) {
	e := setup(t)
	e.tx.FailCommits = 1

	_, err := e.book(at(8, 0))
	assert.ErrorIs(t, err, ErrBookingConflict)
	assert.Empty(t, e.store.Reservations())
	assert.Empty(t, e.publisher.Reservations)

	// повтор после конфликта проходит
	_, err = e.book(at(8, 0))
	assert.NoError(t, err)
}

func TestExecute_PublishFailureDoesNotFailBooking(t *testing.T) {
	e := setup(t)
	e.publisher.Err = errors.New("broker down")

	_, err := e.book(at(8, 0))
	assert.NoError(t, err)
	assert.Len(t, e.store.Reservations(), 1)
}

func TestExecute_BookabilityGuards(t *testing.T) {
	e := setup(t)
	other := e.store.AddService(domain.Service{DurationMinutes: 15})
	archived := e.store.AddShift(domain.Shift{StartAt: at(8, 0), EndAt: at(10, 0), IsAvailable: true, IsArchived: true, ServiceIDs: []int64{e.service}})
	unavailable := e.store.AddShift(domain.Shift{StartAt: at(8, 0), EndAt: at(10, 0), ServiceIDs: []int64{e.service}})

	cases := []struct {
		name string
		req  Request
		want error
	}{
		{"archived shift", Request{RequesterID: 1, ShiftID: archived, ServiceID: e.service, StartAt: at(8, 0)}, ErrShiftNotBookable},
		{"unavailable shift", Request{RequesterID: 1, ShiftID: unavailable, ServiceID: e.service, StartAt: at(8, 0)}, ErrShiftNotBookable},
		{"service not offered", Request{RequesterID: 1, ShiftID: e.shift, ServiceID: other, StartAt: at(8, 0)}, ErrServiceNotOffered},
		{"unknown shift", Request{RequesterID: 1, ShiftID: 999, ServiceID: e.service, StartAt: at(8, 0)}, ErrShiftNotFound},
		{"unknown service", Request{RequesterID: 1, ShiftID: e.shift, ServiceID: 999, StartAt: at(8, 0)}, ErrServiceNotFound},
		{"missing requester", Request{ShiftID: e.shift, ServiceID: e.service, StartAt: at(8, 0)}, ErrInvalidInput},
		{"missing start", Request{RequesterID: 1, ShiftID: e.shift, ServiceID: e.service}, ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.uc.Execute(context.Background(), &tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Empty(t, e.store.Reservations())
}

func TestRandomCodeGenerator(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		code, err := RandomCodeGenerator{}.Generate()
		require.NoError(t, err)
		assert.Len(t, code, domain.ConfirmationCodeLength)
		assert.Regexp(t, `^[a-zA-Z0-9]+$`, code)
		seen[code] = true
	}
	assert.Len(t, seen, 100)
}

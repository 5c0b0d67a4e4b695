package get_free_slots

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
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

func setup(t *testing.T) (*UseCase, *fakes.Store) {
	t.Helper()
	store := fakes.NewStore()
	uc := NewUseCase(
		fakes.ShiftRepository{Store: store},
		fakes.ServiceRepository{Store: store},
		fakes.ReservationRepository{Store: store},
		metrics.NewWithRegistry("test", prometheus.NewRegistry()),
		logger.NewNop(),
	)
	return uc, store
}

func TestExecute_SubtractsReservationsByTheirOwnDuration(t *testing.T) {
	uc, store := setup(t)
	short := store.AddService(domain.Service{DurationMinutes: 15})
	long := store.AddService(domain.Service{DurationMinutes: 45})
	shift := store.AddShift(domain.Shift{StartAt: at(8, 0), EndAt: at(10, 0), IsAvailable: true, ServiceIDs: []int64{short, long}})

	// 45-минутная бронь занимает 08:15-09:00
	store.AddReservation(domain.Reservation{ShiftID: shift, ServiceID: long, StartAt: at(8, 15), Status: domain.StatusAccepted, Code: "a"})
	// отклонённая бронь не занимает календарь
	store.AddReservation(domain.Reservation{ShiftID: shift, ServiceID: short, StartAt: at(9, 0), Status: domain.StatusNotAccepted, Code: "b"})

	resp, err := uc.Execute(context.Background(), &Request{ShiftID: shift, ServiceID: short})
	require.NoError(t, err)
	assert.Equal(t, 15, resp.DurationMinutes)
	assert.Equal(t, []time.Time{
		at(8, 0),
		at(9, 0), at(9, 15), at(9, 30), at(9, 45),
	}, resp.Slots)
}

func TestExecute_NotBookableShiftHasNoSlots(t *testing.T) {
	uc, store := setup(t)
	svc := store.AddService(domain.Service{DurationMinutes: 15})
	archived := store.AddShift(domain.Shift{StartAt: at(8, 0), EndAt: at(9, 0), IsAvailable: true, IsArchived: true, ServiceIDs: []int64{svc}})
	unavailable := store.AddShift(domain.Shift{StartAt: at(8, 0), EndAt: at(9, 0), ServiceIDs: []int64{svc}})

	for _, id := range []int64{archived, unavailable} {
		resp, err := uc.Execute(context.Background(), &Request{ShiftID: id, ServiceID: svc})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	}
}

func TestExecute_Errors(t *testing.T) {
	uc, store := setup(t)
	offered := store.AddService(domain.Service{DurationMinutes: 15})
	other := store.AddService(domain.Service{DurationMinutes: 15})
	shift := store.AddShift(domain.Shift{StartAt: at(8, 0), EndAt: at(9, 0), IsAvailable: true, ServiceIDs: []int64{offered}})

	_, err := uc.Execute(context.Background(), &Request{ShiftID: 999, ServiceID: offered})
	assert.ErrorIs(t, err, ErrShiftNotFound)

	_, err = uc.Execute(context.Background(), &Request{ShiftID: shift, ServiceID: 999})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(context.Background(), &Request{ShiftID: shift, ServiceID: other})
	assert.ErrorIs(t, err, ErrServiceNotOffered)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

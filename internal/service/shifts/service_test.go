package shifts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/internal/service/shifts/models"
	"github.com/m04kA/SMC-ShiftService/internal/usecase/fakes"
	"github.com/m04kA/SMC-ShiftService/pkg/logger"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Service, *fakes.Store) {
	t.Helper()
	store := fakes.NewStore()
	svc := NewService(
		fakes.ShiftRepository{Store: store},
		fakes.ServiceRepository{Store: store},
		func() time.Time { return now },
		logger.NewNop(),
	)
	return svc, store
}

func shiftAt(start time.Time, serviceIDs ...int64) domain.Shift {
	return domain.Shift{
		StartAt:     start,
		EndAt:       start.Add(2 * time.Hour),
		Recurrence:  domain.RecurrenceNone,
		IsAvailable: true,
		ServiceIDs:  serviceIDs,
	}
}

func TestList_Projections(t *testing.T) {
	svc, store := setup(t)
	live := store.AddShift(shiftAt(now))
	archived := shiftAt(now.Add(time.Hour))
	archived.IsArchived = true
	archivedID := store.AddShift(archived)

	resp, err := svc.List(context.Background(), &models.ListShiftsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Shifts, 1)
	assert.Equal(t, live, resp.Shifts[0].ID)
	assert.Equal(t, []int64{}, resp.Shifts[0].ServiceIDs)

	resp, err = svc.List(context.Background(), &models.ListShiftsRequest{View: "archived"})
	require.NoError(t, err)
	require.Len(t, resp.Shifts, 1)
	assert.Equal(t, archivedID, resp.Shifts[0].ID)

	_, err = svc.List(context.Background(), &models.ListShiftsRequest{View: "deleted"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_ProviderFilter(t *testing.T) {
	svc, store := setup(t)
	providerID := int64(42)
	own := shiftAt(now)
	own.ProviderID = &providerID
	ownID := store.AddShift(own)
	store.AddShift(shiftAt(now))

	resp, err := svc.List(context.Background(), &models.ListShiftsRequest{ProviderID: &providerID})
	require.NoError(t, err)
	require.Len(t, resp.Shifts, 1)
	assert.Equal(t, ownID, resp.Shifts[0].ID)
}

func TestUpcoming(t *testing.T) {
	svc, store := setup(t)
	serviceID := store.AddService(domain.Service{Name: "Cut", DurationMinutes: 30})

	store.AddShift(shiftAt(now.Add(-24*time.Hour), serviceID)) // прошедшая
	soon := store.AddShift(shiftAt(now.Add(24*time.Hour), serviceID))
	later := store.AddShift(shiftAt(now.Add(48*time.Hour), serviceID))
	store.AddShift(shiftAt(now.Add(24 * time.Hour))) // без услуги
	gone := shiftAt(now.Add(72*time.Hour), serviceID)
	gone.IsArchived = true
	store.AddShift(gone)

	resp, err := svc.Upcoming(context.Background(), &models.UpcomingShiftsRequest{ServiceID: serviceID})
	require.NoError(t, err)
	require.Len(t, resp.Shifts, 2)
	assert.Equal(t, later, resp.Shifts[0].ID)
	assert.Equal(t, soon, resp.Shifts[1].ID)

	_, err = svc.Upcoming(context.Background(), &models.UpcomingShiftsRequest{ServiceID: 999})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetByID(t *testing.T) {
	svc, store := setup(t)
	id := store.AddShift(shiftAt(now))

	resp, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T12:00:00Z", resp.StartAt)

	_, err = svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrShiftNotFound)
}

package archive_entities

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/internal/usecase/fakes"
	"github.com/m04kA/SMC-ShiftService/pkg/logger"
)

func setup(t *testing.T) (*UseCase, *fakes.Store, *fakes.Publisher) {
	t.Helper()
	store := fakes.NewStore()
	publisher := &fakes.Publisher{}
	uc := NewUseCase(
		fakes.ShiftRepository{Store: store},
		fakes.ReservationRepository{Store: store},
		publisher,
		fakes.NewTxManager(store),
		logger.NewNop(),
	)
	return uc, store, publisher
}

func TestExecute_ShiftsIdempotent(t *testing.T) {
	uc, store, publisher := setup(t)
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	a := store.AddShift(domain.Shift{StartAt: start, EndAt: start.Add(time.Hour)})
	b := store.AddShift(domain.Shift{StartAt: start, EndAt: start.Add(time.Hour)})

	resp, err := uc.Execute(context.Background(), &Request{EntityType: "shift", IDs: []int64{a}})
	require.NoError(t, err)
	assert.Equal(t, []int64{a}, resp.Archived)

	first := store.Shifts()

	// повторная архивация того же и ещё одной смены
	resp, err = uc.Execute(context.Background(), &Request{EntityType: "shift", IDs: []int64{a, b}})
	require.NoError(t, err)
	assert.Equal(t, []int64{b}, resp.Archived)
	assert.Equal(t, 2, resp.Requested)

	// третий вызов ничего не меняет и не ошибается
	resp, err = uc.Execute(context.Background(), &Request{EntityType: "shift", IDs: []int64{a, b}})
	require.NoError(t, err)
	assert.Empty(t, resp.Archived)

	shifts := store.Shifts()
	assert.True(t, shifts[0].IsArchived)
	assert.True(t, shifts[1].IsArchived)
	assert.Equal(t, first[0], shifts[0])

	assert.Len(t, publisher.Archives, 2)
}

func TestExecute_ReservationKeepsStatus(t *testing.T) {
	uc, store, _ := setup(t)
	id := store.AddReservation(domain.Reservation{Status: domain.StatusAccepted, Code: "c"})

	_, err := uc.Execute(context.Background(), &Request{EntityType: "reservation", IDs: []int64{id}})
	require.NoError(t, err)

	r := store.Reservations()[0]
	assert.True(t, r.IsArchived)
	assert.Equal(t, domain.StatusAccepted, r.Status)
	assert.True(t, domain.IsArchivedReservation(r))
}

func TestExecute_Validation(t *testing.T) {
	uc, _, _ := setup(t)

	_, err := uc.Execute(context.Background(), &Request{EntityType: "provider", IDs: []int64{1}})
	assert.ErrorIs(t, err, ErrInvalidEntityType)

	_, err = uc.Execute(context.Background(), &Request{EntityType: "shift"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{EntityType: "shift", IDs: []int64{0}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

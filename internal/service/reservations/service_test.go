package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/internal/domain"
	"github.com/m04kA/SMC-ShiftService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ShiftService/internal/usecase/fakes"
	"github.com/m04kA/SMC-ShiftService/pkg/logger"
)

func TestList_RejectedGoesToArchive(t *testing.T) {
	store := fakes.NewStore()
	svc := NewService(fakes.ReservationRepository{Store: store}, logger.NewNop())

	serviceID := store.AddService(domain.Service{Name: "Cut", DurationMinutes: 30})
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	add := func(shiftID int64, status domain.ReservationStatus, archived bool) int64 {
		return store.AddReservation(domain.Reservation{
			RequesterID: 7,
			ShiftID:     shiftID,
			ServiceID:   serviceID,
			StartAt:     start,
			Code:        "abc",
			Status:      status,
			IsArchived:  archived,
		})
	}

	review := add(1, domain.StatusReview, false)
	accepted := add(1, domain.StatusAccepted, false)
	rejected := add(1, domain.StatusNotAccepted, false)
	archived := add(1, domain.StatusAccepted, true)
	add(2, domain.StatusReview, false)

	shiftID := int64(1)
	live, err := svc.List(context.Background(), &models.ListReservationsRequest{ShiftID: &shiftID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{review, accepted}, ids(live))
	assert.Equal(t, "2024-01-01T09:30:00Z", live.Reservations[0].EndAt)

	arch, err := svc.List(context.Background(), &models.ListReservationsRequest{View: "archived", ShiftID: &shiftID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{rejected, archived}, ids(arch))
}

func TestListForUser(t *testing.T) {
	store := fakes.NewStore()
	svc := NewService(fakes.ReservationRepository{Store: store}, logger.NewNop())

	mine := store.AddReservation(domain.Reservation{RequesterID: 7, Status: domain.StatusReview, Code: "a"})
	store.AddReservation(domain.Reservation{RequesterID: 8, Status: domain.StatusReview, Code: "b"})

	resp, err := svc.ListForUser(context.Background(), &models.ListUserReservationsRequest{RequesterID: 7})
	require.NoError(t, err)
	assert.Equal(t, []int64{mine}, ids(resp))

	_, err = svc.GetByID(context.Background(), mine, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)

	got, err := svc.GetByID(context.Background(), mine, 7)
	require.NoError(t, err)
	assert.Equal(t, "review", got.Status)

	_, err = svc.GetByID(context.Background(), 999, 7)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func ids(resp *models.ReservationListResponse) []int64 {
	out := make([]int64, 0, len(resp.Reservations))
	for _, r := range resp.Reservations {
		out = append(out, r.ID)
	}
	return out
}
